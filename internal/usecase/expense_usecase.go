package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// ExpenseUseCase handles expense business logic.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	accountRepo BankAccountRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewExpenseUseCase creates a new ExpenseUseCase. m may be nil.
func NewExpenseUseCase(expenseRepo ExpenseRepository, accountRepo BankAccountRepository, idGen IDGenerator, m *metrics.Metrics) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     m,
	}
}

// CreateExpenseInput represents input for creating an expense.
type CreateExpenseInput struct {
	UserID        string
	BankAccountID string
	Title         string
	Spent         decimal.Decimal
	Description   *string
}

// CreateExpense validates the input, checks that the referenced account
// exists and belongs to the user, and persists the new expense.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	fields := domain.ExpenseFields{
		ID:               uc.idGen.Generate(),
		Title:            input.Title,
		BankAccountID:    input.BankAccountID,
		Spent:            input.Spent,
		CreatedTimestamp: time.Now().UTC().UnixMilli(),
	}
	if input.Description != nil {
		fields.Description = *input.Description
	}

	expense, err := domain.NewExpense(fields)
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

	if err := uc.expenseRepo.Set(ctx, expense); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.WithLabelValues("expense").Inc()
	}

	return expense, nil
}

// GetExpense retrieves an expense scoped to the requesting user. Expenses on
// accounts the user does not own are reported as not found.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id, userID string) (*domain.Expense, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owned, err := uc.accountRepo.Exists(ctx, expense.BankAccountID(), userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}

	return expense, nil
}

// ListExpenses lists the expenses of one of the user's accounts.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, bankAccountID, userID string) ([]*domain.Expense, error) {
	owned, err := uc.accountRepo.Exists(ctx, bankAccountID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "bankAccountId", Value: bankAccountID}
	}

	return uc.expenseRepo.ListByAccount(ctx, bankAccountID)
}

// UpdateExpenseInput represents a partial update. Description set to null
// clears it; moving the expense to another account re-validates ownership of
// the new account.
type UpdateExpenseInput struct {
	ID            string
	UserID        string
	Title         domain.Optional[string]
	Spent         domain.Optional[decimal.Decimal]
	BankAccountID domain.Optional[string]
	Description   domain.Optional[string]
}

// UpdateExpense re-validates the merged field set and persists a new entity
// instance.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*domain.Expense, error) {
	current, err := uc.GetExpense(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	fields := domain.ExpenseFields{
		ID:               current.ID(),
		Title:            current.Title(),
		BankAccountID:    current.BankAccountID(),
		Spent:            current.Spent(),
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

	if input.Spent.IsSet() {
		if input.Spent.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "spent"}
		}
		fields.Spent = input.Spent.Value()
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

	updated, err := domain.NewExpense(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteExpense deletes an expense scoped to the requesting user.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id, userID string) error {
	if _, err := uc.GetExpense(ctx, id, userID); err != nil {
		return err
	}

	return uc.expenseRepo.Delete(ctx, id)
}
