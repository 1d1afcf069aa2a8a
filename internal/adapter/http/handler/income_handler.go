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

// IncomeService defines the behavior needed by IncomeHandler.
type IncomeService interface {
	CreateIncome(ctx context.Context, input usecase.CreateIncomeInput) (*domain.Income, error)
	GetIncome(ctx context.Context, id, userID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, bankAccountID, userID string) ([]*domain.Income, error)
	UpdateIncome(ctx context.Context, input usecase.UpdateIncomeInput) (*domain.Income, error)
	DeleteIncome(ctx context.Context, id, userID string) error
}

// IncomeHandler handles income endpoints.
type IncomeHandler struct {
	incomeUC IncomeService
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeUC IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeUC: incomeUC}
}

// Create records a new income on one of the user's accounts.
func (h *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	var req dto.CreateIncomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	input, err := req.ToUseCaseInput(userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	income, err := h.incomeUC.CreateIncome(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(income))
}

// Get retrieves one income.
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	income, err := h.incomeUC.GetIncome(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(income))
}

// ListByAccount lists the incomes of one account.
func (h *IncomeHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	incomes, err := h.incomeUC.ListIncomes(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListIncomesResponse{
		Incomes: dto.IncomesFromDomain(incomes),
		Total:   int64(len(incomes)),
	})
}

// Update applies a partial update to one income.
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	var req dto.UpdateIncomeRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	income, err := h.incomeUC.UpdateIncome(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id"), userID))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(income))
}

// Delete removes one income.
func (h *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrInvalidToken)
		return
	}

	if err := h.incomeUC.DeleteIncome(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
