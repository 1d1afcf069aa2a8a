package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/handler"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/middleware"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/auth"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

type listOnlyAccountService struct {
	listed bool
}

func (s *listOnlyAccountService) CreateBankAccount(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
	return nil, domain.NewInternalError(nil)
}

func (s *listOnlyAccountService) GetBankAccount(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error) {
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (s *listOnlyAccountService) ListBankAccounts(ctx context.Context, userID string) ([]*usecase.BankAccountWithBalance, error) {
	s.listed = true
	return nil, nil
}

func (s *listOnlyAccountService) UpdateBankAccount(ctx context.Context, input usecase.UpdateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
	return nil, &domain.NotFoundError{Prop: "id", Value: input.ID}
}

func (s *listOnlyAccountService) DeleteBankAccount(ctx context.Context, id, userID string) error {
	return &domain.NotFoundError{Prop: "id", Value: id}
}

func newTestRouter(accountSvc handler.BankAccountService, tokens *auth.JWTManager) http.Handler {
	return NewRouter(RouterConfig{
		AuthHandler:        handler.NewAuthHandler(nil),
		UserHandler:        handler.NewUserHandler(nil),
		BankAccountHandler: handler.NewBankAccountHandler(accountSvc),
		ExpenseHandler:     handler.NewExpenseHandler(nil),
		IncomeHandler:      handler.NewIncomeHandler(nil),
		TransferHandler:    handler.NewTransferHandler(nil),
		HealthHandler:      handler.NewHealthHandler(nil, nil),
		AuthMiddleware:     middleware.NewAuthMiddleware(tokens, nil),
		Logger:             zerolog.Nop(),
	})
}

func TestRouterHealthIsPublic(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", 15*time.Minute, 720*time.Hour)
	router := newTestRouter(&listOnlyAccountService{}, tokens)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
}

func TestRouterProtectedRoutesRequireToken(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", 15*time.Minute, 720*time.Hour)
	svc := &listOnlyAccountService{}
	router := newTestRouter(svc, tokens)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bankaccounts", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body)
	}
	if svc.listed {
		t.Error("service reached without authentication")
	}
}

func TestRouterAuthenticatedRequestReachesHandler(t *testing.T) {
	tokens := auth.NewJWTManager("test-secret", 15*time.Minute, 720*time.Hour)
	svc := &listOnlyAccountService{}
	router := newTestRouter(svc, tokens)

	accessToken, err := tokens.GenerateAccess("user00000000000000001", "joao@example.com")
	if err != nil {
		t.Fatalf("GenerateAccess failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bankaccounts", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if !svc.listed {
		t.Error("expected the list handler to be reached")
	}
}
