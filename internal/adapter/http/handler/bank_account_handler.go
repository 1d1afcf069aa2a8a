package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/dto"
	"github.com/JoaoSCoelho/my-finances-backend/internal/adapter/http/middleware"
	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

// BankAccountService defines the behavior needed by BankAccountHandler.
type BankAccountService interface {
	CreateBankAccount(ctx context.Context, input usecase.CreateBankAccountInput) (*usecase.BankAccountWithBalance, error)
	GetBankAccount(ctx context.Context, id, userID string) (*usecase.BankAccountWithBalance, error)
	ListBankAccounts(ctx context.Context, userID string) ([]*usecase.BankAccountWithBalance, error)
	UpdateBankAccount(ctx context.Context, input usecase.UpdateBankAccountInput) (*usecase.BankAccountWithBalance, error)
	DeleteBankAccount(ctx context.Context, id, userID string) error
}

// BankAccountHandler handles bank account endpoints. Every operation is
// scoped to the authenticated user; accounts of other users read as absent.
type BankAccountHandler struct {
	accountUC BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(accountUC BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{accountUC: accountUC}
}

// Create creates a new bank account for the authenticated user.
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	var req dto.CreateBankAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	input, err := req.ToUseCaseInput(userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	account, err := h.accountUC.CreateBankAccount(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BankAccountFromDomain(account))
}

// Get retrieves one of the user's accounts with its derived balance.
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	account, err := h.accountUC.GetBankAccount(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// List lists the user's accounts with their derived balances.
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	accounts, err := h.accountUC.ListBankAccounts(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBankAccountsResponse{
		BankAccounts: dto.BankAccountsFromDomain(accounts),
		Total:        int64(len(accounts)),
	})
}

// Balance returns just the derived balance of one account.
func (h *BankAccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	id := chi.URLParam(r, "id")

	account, err := h.accountUC.GetBankAccount(r.Context(), id, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		BankAccountID: id,
		TotalAmount:   account.Balance,
	})
}

// Update applies a partial update to one of the user's accounts.
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	var req dto.UpdateBankAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	account, err := h.accountUC.UpdateBankAccount(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id"), userID))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BankAccountFromDomain(account))
}

// Delete removes one of the user's accounts. Transactions referencing the
// account are left in place.
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	if err := h.accountUC.DeleteBankAccount(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
