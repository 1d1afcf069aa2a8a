package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

const testAccountID = "bankaccount0000000001"

type fakeBankAccountService struct {
	CreateBankAccountFunc func(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error)
	GetBankAccountFunc    func(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error)
	ListBankAccountsFunc  func(ctx context.Context, userID string) ([]*usecase.BankAccountWithBalance, error)
	UpdateBankAccountFunc func(ctx context.Context, input usecase.UpdateBankAccountInput) (*usecase.BankAccountWithBalance, error)
	DeleteBankAccountFunc func(ctx context.Context, id, userID string) error
}

func (f *fakeBankAccountService) CreateBankAccount(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
	return f.CreateBankAccountFunc(ctx, input)
}

func (f *fakeBankAccountService) GetBankAccount(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error) {
	return f.GetBankAccountFunc(ctx, id, userID)
}

func (f *fakeBankAccountService) ListBankAccounts(ctx context.Context, userID string) ([]*usecase.BankAccountWithBalance, error) {
	return f.ListBankAccountsFunc(ctx, userID)
}

func (f *fakeBankAccountService) UpdateBankAccount(ctx context.Context, input usecase.UpdateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
	return f.UpdateBankAccountFunc(ctx, input)
}

func (f *fakeBankAccountService) DeleteBankAccount(ctx context.Context, id, userID string) error {
	return f.DeleteBankAccountFunc(ctx, id, userID)
}

func newTestAccountWithBalance(t *testing.T, balance string) *usecase.BankAccountWithBalance {
	t.Helper()

	account, err := domain.NewBankAccount(domain.BankAccountFields{
		ID:               testAccountID,
		Name:             "Checking",
		UserID:           testUserID,
		InitialAmount:    decimal.RequireFromString("2000"),
		CreatedTimestamp: int64(1700000000000),
	})
	if err != nil {
		t.Fatalf("NewBankAccount failed: %v", err)
	}

	return &usecase.BankAccountWithBalance{
		Account: account,
		Balance: decimal.RequireFromString(balance),
	}
}

func accountTestRouter(svc BankAccountService) http.Handler {
	h := NewBankAccountHandler(svc)

	r := chi.NewRouter()
	r.Post("/bankaccounts", h.Create)
	r.Get("/bankaccounts", h.List)
	r.Get("/bankaccounts/{id}", h.Get)
	r.Patch("/bankaccounts/{id}", h.Update)
	r.Get("/bankaccounts/{id}/balance", h.Balance)

	return r
}

func TestBankAccountHandlerCreate(t *testing.T) {
	svc := &fakeBankAccountService{
		CreateBankAccountFunc: func(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
			if input.UserID != testUserID {
				t.Errorf("UserID = %s, want %s", input.UserID, testUserID)
			}
			return newTestAccountWithBalance(t, "2000"), nil
		},
	}

	body, _ := json.Marshal(dto.CreateBankAccountRequest{
		Name:          strPtr("Checking"),
		InitialAmount: decPtr("2000"),
	})

	rec := httptest.NewRecorder()
	accountTestRouter(svc).ServeHTTP(rec, authedRequest(http.MethodPost, "/bankaccounts", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var resp dto.BankAccountResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.TotalAmount.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("TotalAmount = %s, want 2000", resp.TotalAmount)
	}
}

func TestBankAccountHandlerCreateValidationFailure(t *testing.T) {
	svc := &fakeBankAccountService{
		CreateBankAccountFunc: func(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
			return nil, &domain.InvalidParamError{
				Param:     "C",
				ParamName: "name",
				Reason:    domain.ReasonTooShort,
				Expected:  "a string with at least 2 characters",
			}
		},
	}

	body, _ := json.Marshal(dto.CreateBankAccountRequest{
		Name:          strPtr("C"),
		InitialAmount: decPtr("0"),
	})

	rec := httptest.NewRecorder()
	accountTestRouter(svc).ServeHTTP(rec, authedRequest(http.MethodPost, "/bankaccounts", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Param != "name" || resp.Reason != "too-short" {
		t.Errorf("unexpected error body: %+v", resp)
	}
}

func TestBankAccountHandlerBalance(t *testing.T) {
	svc := &fakeBankAccountService{
		GetBankAccountFunc: func(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error) {
			return newTestAccountWithBalance(t, "1548"), nil
		},
	}

	rec := httptest.NewRecorder()
	accountTestRouter(svc).ServeHTTP(rec, authedRequest(http.MethodGet, "/bankaccounts/"+testAccountID+"/balance", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp dto.BalanceResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !resp.TotalAmount.Equal(decimal.RequireFromString("1548")) {
		t.Errorf("TotalAmount = %s, want 1548", resp.TotalAmount)
	}
	if resp.BankAccountID != testAccountID {
		t.Errorf("BankAccountID = %s, want %s", resp.BankAccountID, testAccountID)
	}
}

func TestBankAccountHandlerGetForeignAccount(t *testing.T) {
	svc := &fakeBankAccountService{
		GetBankAccountFunc: func(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error) {
			return nil, &domain.NotFoundError{Prop: "id", Value: id}
		},
	}

	rec := httptest.NewRecorder()
	accountTestRouter(svc).ServeHTTP(rec, authedRequest(http.MethodGet, "/bankaccounts/"+testAccountID, nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body)
	}
}

func TestBankAccountHandlerUpdateClearsImage(t *testing.T) {
	var captured usecase.UpdateBankAccountInput
	svc := &fakeBankAccountService{
		UpdateBankAccountFunc: func(ctx context.Context, input usecase.UpdateBankAccountInput) (*usecase.BankAccountWithBalance, error) {
			captured = input
			return newTestAccountWithBalance(t, "2000"), nil
		},
	}

	rec := httptest.NewRecorder()
	accountTestRouter(svc).ServeHTTP(rec, authedRequest(http.MethodPatch, "/bankaccounts/"+testAccountID, []byte(`{"imageUrl": null}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if !captured.ImageURL.IsSet() || !captured.ImageURL.IsNull() {
		t.Error("expected the null imageUrl to reach the use case as an explicit null")
	}
	if captured.Name.IsSet() {
		t.Error("expected the absent name to stay unset")
	}
}
