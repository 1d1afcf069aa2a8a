package handler

import (
	"context"
	"net/http"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/middleware"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

// AuthService defines the behavior needed by AuthHandler.
type AuthService interface {
	SignUp(ctx context.Context, input usecase.SignUpInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, *usecase.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	ConfirmEmail(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, userID string) error
}

// AuthHandler handles registration and session endpoints.
type AuthHandler struct {
	authUC AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC AuthService) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SignUp registers a new user. The account starts with an unconfirmed email;
// a confirmation link is delivered out of band.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user, err := h.authUC.SignUp(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	user, tokens, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		User:         dto.UserFromDomain(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Refresh rotates a refresh token into a new pair. The presented token is
// revoked whether or not the exchange succeeds past verification.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	tokens, err := h.authUC.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout revokes the presented refresh token for the authenticated user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	var req dto.LogoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.authUC.Logout(r.Context(), userID, req.RefreshToken); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConfirmEmail consumes a confirmation token from the query string.
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeBadRequest(w, "missing token query parameter")
		return
	}

	if err := h.authUC.ConfirmEmail(r.Context(), token); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}

// ResendConfirmation issues a fresh confirmation token for the authenticated
// user.
func (h *AuthHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	if err := h.authUC.ResendConfirmation(r.Context(), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
