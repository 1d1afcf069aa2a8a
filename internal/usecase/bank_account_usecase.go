package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// BankAccountUseCase handles bank account business logic.
type BankAccountUseCase struct {
	accountRepo BankAccountRepository
	balance     *BalanceUseCase
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewBankAccountUseCase creates a new BankAccountUseCase. m may be nil.
func NewBankAccountUseCase(accountRepo BankAccountRepository, balance *BalanceUseCase, idGen IDGenerator, m *metrics.Metrics) *BankAccountUseCase {
	return &BankAccountUseCase{
		accountRepo: accountRepo,
		balance:     balance,
		idGen:       idGen,
		metrics:     m,
	}
}

// BankAccountWithBalance pairs an account with its derived balance.
type BankAccountWithBalance struct {
	Account *domain.BankAccount
	Balance decimal.Decimal
}

// CreateBankAccountInput represents input for creating a bank account.
type CreateBankAccountInput struct {
	UserID        string
	Name          string
	InitialAmount decimal.Decimal
	ImageURL      *string
}

// CreateBankAccount creates a new bank account for the requesting user.
func (uc *BankAccountUseCase) CreateBankAccount(ctx context.Context, input CreateBankAccountInput) (*BankAccountWithBalance, error) {
	fields := domain.BankAccountFields{
		ID:               uc.idGen.Generate(),
		Name:             input.Name,
		UserID:           input.UserID,
		InitialAmount:    input.InitialAmount,
		CreatedTimestamp: time.Now().UTC().UnixMilli(),
	}
	if input.ImageURL != nil {
		fields.ImageURL = *input.ImageURL
	}

	account, err := domain.NewBankAccount(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Set(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	// A fresh account has no transactions: its balance is the initial amount.
	return &BankAccountWithBalance{Account: account, Balance: account.InitialAmount()}, nil
}

// GetBankAccount retrieves an account with its derived balance. An account
// owned by someone else is reported as not found, never as a permission
// error.
func (uc *BankAccountUseCase) GetBankAccount(ctx context.Context, id, userID string) (*BankAccountWithBalance, error) {
	owned, err := uc.accountRepo.Exists(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	balance, err := uc.balance.ComputeBalance(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BankAccountWithBalance{Account: account, Balance: balance}, nil
}

// ListBankAccounts lists the user's accounts, each with a derived balance.
func (uc *BankAccountUseCase) ListBankAccounts(ctx context.Context, userID string) ([]*BankAccountWithBalance, error) {
	accounts, err := uc.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	withBalances := make([]*BankAccountWithBalance, 0, len(accounts))
	for _, account := range accounts {
		balance, err := uc.balance.ComputeBalance(ctx, account.ID())
		if err != nil {
			return nil, err
		}

		withBalances = append(withBalances, &BankAccountWithBalance{Account: account, Balance: balance})
	}

	return withBalances, nil
}

// UpdateBankAccountInput represents a partial update. Name and InitialAmount
// must carry a value when present; ImageURL set to null clears the image.
type UpdateBankAccountInput struct {
	ID            string
	UserID        string
	Name          domain.Optional[string]
	InitialAmount domain.Optional[decimal.Decimal]
	ImageURL      domain.Optional[string]
}

// UpdateBankAccount re-validates the merged field set and persists a new
// entity instance. The stored entity is never mutated in place.
func (uc *BankAccountUseCase) UpdateBankAccount(ctx context.Context, input UpdateBankAccountInput) (*BankAccountWithBalance, error) {
	owned, err := uc.accountRepo.Exists(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "id", Value: input.ID}
	}

	current, err := uc.accountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fields := domain.BankAccountFields{
		ID:               current.ID(),
		Name:             current.Name(),
		UserID:           current.UserID(),
		InitialAmount:    current.InitialAmount(),
		CreatedTimestamp: current.CreatedTimestamp(),
	}
	if url := current.ImageURL(); url != nil {
		fields.ImageURL = *url
	}

	if input.Name.IsSet() {
		if input.Name.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "name"}
		}
		fields.Name = input.Name.Value()
	}

	if input.InitialAmount.IsSet() {
		if input.InitialAmount.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "initialAmount"}
		}
		fields.InitialAmount = input.InitialAmount.Value()
	}

	if input.ImageURL.IsSet() {
		if input.ImageURL.IsNull() {
			fields.ImageURL = nil
		} else {
			fields.ImageURL = input.ImageURL.Value()
		}
	}

	updated, err := domain.NewBankAccount(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	balance, err := uc.balance.ComputeBalance(ctx, updated.ID())
	if err != nil {
		return nil, err
	}

	return &BankAccountWithBalance{Account: updated, Balance: balance}, nil
}

// DeleteBankAccount deletes the account. Its transactions are deliberately
// left in place: the source system never cascaded this deletion.
func (uc *BankAccountUseCase) DeleteBankAccount(ctx context.Context, id, userID string) error {
	owned, err := uc.accountRepo.Exists(ctx, id, userID)
	if err != nil {
		return err
	}
	if !owned {
		return &domain.NotFoundError{Prop: "id", Value: id}
	}

	return uc.accountRepo.Delete(ctx, id)
}
