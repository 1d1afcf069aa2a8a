package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// TransferRepository implements transfer persistence
type TransferRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(pool *pgxpool.Pool, retrier *Retrier) *TransferRepository {
	return &TransferRepository{pool: pool, retrier: retrier}
}

const transferColumns = `id, title, giver_bank_account_id, receiver_bank_account_id, amount::text, description, created_timestamp`

// Set inserts a new transfer
func (r *TransferRepository) Set(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, title, giver_bank_account_id, receiver_bank_account_id, amount, description, created_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	data := transfer.Data()
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.GiverBankAccountID,
			data.ReceiverBankAccountID,
			data.Amount.String(),
			data.Description,
			data.CreatedTimestamp,
		)
		return err
	})
}

// GetByID retrieves a transfer by ID
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	return scanTransfer(r.pool.QueryRow(ctx, query, id), id)
}

// ListByGiver retrieves transfers where the account is the giver
func (r *TransferRepository) ListByGiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE giver_bank_account_id = $1 ORDER BY created_timestamp`
	return r.list(ctx, query, bankAccountID)
}

// ListByReceiver retrieves transfers where the account is the receiver
func (r *TransferRepository) ListByReceiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE receiver_bank_account_id = $1 ORDER BY created_timestamp`
	return r.list(ctx, query, bankAccountID)
}

// ListByAnyAccount retrieves transfers touching the account on either side
func (r *TransferRepository) ListByAnyAccount(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM transfers
		WHERE giver_bank_account_id = $1 OR receiver_bank_account_id = $1
		ORDER BY created_timestamp
	`
	return r.list(ctx, query, bankAccountID)
}

// Update rewrites the mutable fields of a transfer
func (r *TransferRepository) Update(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		UPDATE transfers
		SET title = $2, giver_bank_account_id = $3, receiver_bank_account_id = $4, amount = $5, description = $6
		WHERE id = $1
	`

	data := transfer.Data()
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.GiverBankAccountID,
			data.ReceiverBankAccountID,
			data.Amount.String(),
			data.Description,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return &domain.NotFoundError{Prop: "id", Value: data.ID}
		}
		return nil
	})
}

// Delete removes a transfer
func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `DELETE FROM transfers WHERE id = $1`, id)
		return err
	})
}

func (r *TransferRepository) list(ctx context.Context, query, bankAccountID string) ([]*domain.Transfer, error) {
	rows, err := r.pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows, "")
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transfer)
	}

	return transfers, rows.Err()
}

func scanTransfer(row pgx.Row, id string) (*domain.Transfer, error) {
	var (
		transferID       string
		title            string
		giverID          string
		receiverID       string
		amount           string
		description      *string
		createdTimestamp int64
	)

	err := row.Scan(&transferID, &title, &giverID, &receiverID, &amount, &description, &createdTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}
	if err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	fields := domain.TransferFields{
		ID:                    transferID,
		Title:                 title,
		GiverBankAccountID:    giverID,
		ReceiverBankAccountID: receiverID,
		Amount:                value,
		CreatedTimestamp:      createdTimestamp,
	}
	if description != nil {
		fields.Description = *description
	}

	transfer, err := domain.NewTransfer(fields)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return transfer, nil
}
