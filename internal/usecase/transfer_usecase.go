package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// TransferUseCase handles transfer business logic.
type TransferUseCase struct {
	transferRepo TransferRepository
	accountRepo  BankAccountRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. m may be nil.
func NewTransferUseCase(transferRepo TransferRepository, accountRepo BankAccountRepository, idGen IDGenerator, m *metrics.Metrics) *TransferUseCase {
	return &TransferUseCase{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		idGen:        idGen,
		metrics:      m,
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	UserID                string
	GiverBankAccountID    string
	ReceiverBankAccountID string
	Title                 string
	Amount                decimal.Decimal
	Description           *string
}

// CreateTransfer creates a transfer between two of the user's accounts. The
// self-transfer check runs before any repository lookup: a transfer from an
// account to itself fails with ImpossibleCombination even when the account
// does not exist.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	if input.GiverBankAccountID == input.ReceiverBankAccountID {
		return nil, &domain.ImpossibleCombinationError{
			PropA: "giverBankAccountId",
			PropB: "receiverBankAccountId",
		}
	}

	fields := domain.TransferFields{
		ID:                    uc.idGen.Generate(),
		Title:                 input.Title,
		GiverBankAccountID:    input.GiverBankAccountID,
		ReceiverBankAccountID: input.ReceiverBankAccountID,
		Amount:                input.Amount,
		CreatedTimestamp:      time.Now().UTC().UnixMilli(),
	}
	if input.Description != nil {
		fields.Description = *input.Description
	}

	transfer, err := domain.NewTransfer(fields)
	if err != nil {
		return nil, err
	}

	owned, err := uc.accountRepo.Exists(ctx, input.GiverBankAccountID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "giverBankAccountId", Value: input.GiverBankAccountID}
	}

	owned, err = uc.accountRepo.Exists(ctx, input.ReceiverBankAccountID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "receiverBankAccountId", Value: input.ReceiverBankAccountID}
	}

	if err := uc.transferRepo.Set(ctx, transfer); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.WithLabelValues("transfer").Inc()
	}

	return transfer, nil
}

// GetTransfer retrieves a transfer scoped to the requesting user. The user
// must own at least the giver side.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id, userID string) (*domain.Transfer, error) {
	transfer, err := uc.transferRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	visible, err := uc.userCanSee(ctx, transfer, userID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}

	return transfer, nil
}

// ListTransfers lists every transfer touching one of the user's accounts,
// whether as giver or receiver.
func (uc *TransferUseCase) ListTransfers(ctx context.Context, bankAccountID, userID string) ([]*domain.Transfer, error) {
	owned, err := uc.accountRepo.Exists(ctx, bankAccountID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, &domain.NotFoundError{Prop: "bankAccountId", Value: bankAccountID}
	}

	return uc.transferRepo.ListByAnyAccount(ctx, bankAccountID)
}

// UpdateTransferInput represents a partial update of a transfer.
type UpdateTransferInput struct {
	ID                    string
	UserID                string
	Title                 domain.Optional[string]
	Amount                domain.Optional[decimal.Decimal]
	GiverBankAccountID    domain.Optional[string]
	ReceiverBankAccountID domain.Optional[string]
	Description           domain.Optional[string]
}

// UpdateTransfer re-validates the merged field set, including the
// self-transfer rule against the merged account pair, and persists a new
// entity instance.
func (uc *TransferUseCase) UpdateTransfer(ctx context.Context, input UpdateTransferInput) (*domain.Transfer, error) {
	current, err := uc.GetTransfer(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	fields := domain.TransferFields{
		ID:                    current.ID(),
		Title:                 current.Title(),
		GiverBankAccountID:    current.GiverBankAccountID(),
		ReceiverBankAccountID: current.ReceiverBankAccountID(),
		Amount:                current.Amount(),
		CreatedTimestamp:      current.CreatedTimestamp(),
	}
	if desc := current.Description(); desc != nil {
		fields.Description = *desc
	}

	giverID := current.GiverBankAccountID()
	receiverID := current.ReceiverBankAccountID()

	if input.GiverBankAccountID.IsSet() {
		if input.GiverBankAccountID.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "giverBankAccountId"}
		}
		giverID = input.GiverBankAccountID.Value()
	}

	if input.ReceiverBankAccountID.IsSet() {
		if input.ReceiverBankAccountID.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "receiverBankAccountId"}
		}
		receiverID = input.ReceiverBankAccountID.Value()
	}

	if giverID == receiverID {
		return nil, &domain.ImpossibleCombinationError{
			PropA: "giverBankAccountId",
			PropB: "receiverBankAccountId",
		}
	}

	if giverID != current.GiverBankAccountID() {
		owned, err := uc.accountRepo.Exists(ctx, giverID, input.UserID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, &domain.NotFoundError{Prop: "giverBankAccountId", Value: giverID}
		}
	}

	if receiverID != current.ReceiverBankAccountID() {
		owned, err := uc.accountRepo.Exists(ctx, receiverID, input.UserID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, &domain.NotFoundError{Prop: "receiverBankAccountId", Value: receiverID}
		}
	}

	fields.GiverBankAccountID = giverID
	fields.ReceiverBankAccountID = receiverID

	if input.Title.IsSet() {
		if input.Title.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "title"}
		}
		fields.Title = input.Title.Value()
	}

	if input.Amount.IsSet() {
		if input.Amount.IsNull() {
			return nil, &domain.MissingParamError{ParamName: "amount"}
		}
		fields.Amount = input.Amount.Value()
	}

	if input.Description.IsSet() {
		if input.Description.IsNull() {
			fields.Description = nil
		} else {
			fields.Description = input.Description.Value()
		}
	}

	updated, err := domain.NewTransfer(fields)
	if err != nil {
		return nil, err
	}

	if err := uc.transferRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTransfer deletes a transfer scoped to the requesting user.
func (uc *TransferUseCase) DeleteTransfer(ctx context.Context, id, userID string) error {
	if _, err := uc.GetTransfer(ctx, id, userID); err != nil {
		return err
	}

	return uc.transferRepo.Delete(ctx, id)
}

// userCanSee reports whether the user owns either side of the transfer.
func (uc *TransferUseCase) userCanSee(ctx context.Context, transfer *domain.Transfer, userID string) (bool, error) {
	owned, err := uc.accountRepo.Exists(ctx, transfer.GiverBankAccountID(), userID)
	if err != nil {
		return false, err
	}
	if owned {
		return true, nil
	}

	owned, err = uc.accountRepo.Exists(ctx, transfer.ReceiverBankAccountID(), userID)
	if err != nil {
		return false, err
	}

	return owned, nil
}
