package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

type fakeAuthService struct {
	SignUpFunc             func(ctx context.Context, input usecase.SignUpInput) (*domain.User, error)
	LoginFunc              func(ctx context.Context, email, password string) (*domain.User, *usecase.TokenPair, error)
	RefreshFunc            func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	LogoutFunc             func(ctx context.Context, userID, refreshToken string) error
	ConfirmEmailFunc       func(ctx context.Context, token string) error
	ResendConfirmationFunc func(ctx context.Context, userID string) error
}

func (f *fakeAuthService) SignUp(ctx context.Context, input usecase.SignUpInput) (*domain.User, error) {
	return f.SignUpFunc(ctx, input)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.User, *usecase.TokenPair, error) {
	return f.LoginFunc(ctx, email, password)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return f.RefreshFunc(ctx, refreshToken)
}

func (f *fakeAuthService) Logout(ctx context.Context, userID, refreshToken string) error {
	return f.LogoutFunc(ctx, userID, refreshToken)
}

func (f *fakeAuthService) ConfirmEmail(ctx context.Context, token string) error {
	return f.ConfirmEmailFunc(ctx, token)
}

func (f *fakeAuthService) ResendConfirmation(ctx context.Context, userID string) error {
	return f.ResendConfirmationFunc(ctx, userID)
}

func newTestUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser(domain.UserFields{
		ID:               testUserID,
		Username:         "joao",
		Email:            "joao@example.com",
		HashedPassword:   "$2a$10$abcdefghijklmnopqrstuv",
		CreatedTimestamp: int64(1700000000000),
		ConfirmedEmail:   false,
		RefreshTokens:    []string{"outstanding"},
	})
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}

	return user
}

func authTestRouter(svc AuthService) http.Handler {
	h := NewAuthHandler(svc)

	r := chi.NewRouter()
	r.Post("/auth/signup", h.SignUp)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Get("/auth/confirm", h.ConfirmEmail)

	return r
}

func TestAuthHandlerSignUp(t *testing.T) {
	svc := &fakeAuthService{
		SignUpFunc: func(ctx context.Context, input usecase.SignUpInput) (*domain.User, error) {
			if input.Email != "joao@example.com" {
				t.Errorf("Email = %s", input.Email)
			}
			return newTestUser(t), nil
		},
	}

	body, _ := json.Marshal(dto.SignUpRequest{
		Username: strPtr("joao"),
		Email:    strPtr("joao@example.com"),
		Password: strPtr("Str0ng#Passw0rd"),
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	if strings.Contains(rec.Body.String(), "hashedPassword") {
		t.Errorf("signup response leaks hash: %s", rec.Body)
	}
}

func TestAuthHandlerSignUpWeakPassword(t *testing.T) {
	svc := &fakeAuthService{
		SignUpFunc: func(ctx context.Context, input usecase.SignUpInput) (*domain.User, error) {
			return nil, &domain.InvalidParamError{
				Param:     "[redacted]",
				ParamName: "password",
				Reason:    domain.ReasonTooShort,
				Expected:  "a string with at least 8 characters",
			}
		},
	}

	body, _ := json.Marshal(dto.SignUpRequest{Username: strPtr("joao"), Email: strPtr("joao@example.com"), Password: strPtr("weak")})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
	if strings.Contains(rec.Body.String(), "weak") {
		t.Errorf("error response echoes the plain password: %s", rec.Body)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, *usecase.TokenPair, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}

	body, _ := json.Marshal(dto.LoginRequest{Email: "joao@example.com", Password: "wrong"})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &fakeAuthService{
		LoginFunc: func(ctx context.Context, email, password string) (*domain.User, *usecase.TokenPair, error) {
			return newTestUser(t), &usecase.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	}

	body, _ := json.Marshal(dto.LoginRequest{Email: "joao@example.com", Password: "Str0ng#Passw0rd"})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp dto.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.AccessToken != "access" || resp.RefreshToken != "refresh" {
		t.Errorf("tokens not carried: %+v", resp)
	}
	if resp.User == nil || resp.User.ID != testUserID {
		t.Errorf("user missing from login response: %+v", resp.User)
	}
}

func TestAuthHandlerConfirmEmailMissingToken(t *testing.T) {
	svc := &fakeAuthService{
		ConfirmEmailFunc: func(ctx context.Context, token string) error {
			t.Fatal("service must not be reached without a token")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/confirm", nil)
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestAuthHandlerRefreshExpired(t *testing.T) {
	svc := &fakeAuthService{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
			return nil, domain.ErrExpiredToken
		},
	}

	body, _ := json.Marshal(dto.RefreshRequest{RefreshToken: "stale"})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	authTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body)
	}
}
