package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// IncomeUseCase handles income business logic. It mirrors ExpenseUseCase
// with gain in place of spent.
type IncomeUseCase struct {
	incomeRepo  IncomeRepository
	accountRepo BankAccountRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewIncomeUseCase creates a new IncomeUseCase. m may be nil.
func NewIncomeUseCase(incomeRepo IncomeRepository, accountRepo BankAccountRepository, idGen IDGenerator, m *metrics.Metrics) *IncomeUseCase {
	return &IncomeUseCase{
		incomeRepo:  incomeRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     m,
	}
}

// CreateIncomeInput represents input for creating an income.
type CreateIncomeInput struct {
	UserID        string
	BankAccountID string
	Title         string
	Gain          decimal.Decimal
	Description   *string
}

// CreateIncome validates the input, checks account ownership and persists the
// new income.
func (uc *IncomeUseCase) CreateIncome(ctx context.Context, input CreateIncomeInput) (*domain.Income, error) {
	fields := domain.IncomeFields{
		ID:               uc.idGen.Generate(),
		Title:            input.Title,
		BankAccountID:    input.BankAccountID,
		Gain:             input.Gain,
		CreatedTimestamp: time.Now().UTC().UnixMilli(),
	}
	if input.Description != nil {
		fields.Description = *input.Description
	}

	income, err := domain.NewIncome(fields)
	if err != nil {
		return nil, err
	}

	owned, err := uc.accountRepo.Exists(ctx, input.BankAccountID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "bankAccountId", Value: input.BankAccountID}
	}

	if err := uc.incomeRepo.Set(ctx, income); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.WithLabelValues("income").Inc()
	}

	return income, nil
}

// GetIncome retrieves an income scoped to the requesting user.
func (uc *IncomeUseCase) GetIncome(ctx context.Context, id, userID string) (*domain.Income, error) {
	income, err := uc.incomeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owned, err := uc.accountRepo.Exists(ctx, income.BankAccountID(), userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}

	return income, nil
}

// ListIncomes lists the incomes of one of the user's accounts.
func (uc *IncomeUseCase) ListIncomes(ctx context.Context, bankAccountID, userID string) ([]*domain.Income, error) {
	owned, err := uc.accountRepo.Exists(ctx, bankAccountID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "bankAccountId", Value: bankAccountID}
	}

	return uc.incomeRepo.ListByAccount(ctx, bankAccountID)
}

// UpdateIncomeInput represents a partial update of an income.
type UpdateIncomeInput struct {
	ID            string
	UserID        string
	Title         domain.Optional[string]
	Gain          domain.Optional[decimal.Decimal]
	BankAccountID domain.Optional[string]
	Description   domain.Optional[string]
}

// UpdateIncome re-validates the merged field set and persists a new entity
// instance.
func (uc *IncomeUseCase) UpdateIncome(ctx context.Context, input UpdateIncomeInput) (*domain.Income, error) {
	current, err := uc.GetIncome(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	fields := domain.IncomeFields{
		ID:               current.ID(),
		Title:            current.Title(),
		BankAccountID:    current.BankAccountID(),
		Gain:             current.Gain(),
		CreatedTimestamp: current.CreatedTimestamp(),
	}
	if desc := current.Description(); desc != nil {
		fields.Description = *desc
	}

	if input.Title.IsSet() {
		if input.Title.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "title"}
		}
		fields.Title = input.Title.Value()
	}

	if input.Gain.IsSet() {
		if input.Gain.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "gain"}
		}
		fields.Gain = input.Gain.Value()
	}

	if input.BankAccountID.IsSet() {
		if input.BankAccountID.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "bankAccountId"}
		}

		newAccountID := input.BankAccountID.Value()
		if newAccountID != current.BankAccountID() {
			owned, err := uc.accountRepo.Exists(ctx, newAccountID, input.UserID)
			if err != nil {
				return nil, err
			}
			if !owned {
				return nil, &domain.NotFoundError{Prop: "bankAccountId", Value: newAccountID}
			}
		}
		fields.BankAccountID = newAccountID
	}

	if input.Description.IsSet() {
		if input.Description.IsNull() {
			fields.Description = nil
		} else {
			fields.Description = input.Description.Value()
		}
	}

	updated, err := domain.NewIncome(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteIncome deletes an income scoped to the requesting user.
func (uc *IncomeUseCase) DeleteIncome(ctx context.Context, id, userID string) error {
	if _, err := uc.GetIncome(ctx, id, userID); err != nil {
		return err
	}

	return uc.incomeRepo.Delete(ctx, id)
}
