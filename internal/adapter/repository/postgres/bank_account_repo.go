package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// BankAccountRepository implements bank account persistence
type BankAccountRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(pool *pgxpool.Pool, retrier *Retrier) *BankAccountRepository {
	return &BankAccountRepository{pool: pool, retrier: retrier}
}

const bankAccountColumns = `id, name, user_id, initial_amount::text, image_url, created_timestamp`

// Set inserts a new bank account
func (r *BankAccountRepository) Set(ctx context.Context, account *domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (id, name, user_id, initial_amount, image_url, created_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	data := account.Data()
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Name,
			data.UserID,
			data.InitialAmount.String(),
			data.ImageURL,
			data.CreatedTimestamp,
		)
		return err
	})
}

// Exists reports whether the account exists and belongs to the user. A match
// on id alone is not enough; ownership is part of the predicate.
func (r *BankAccountRepository) Exists(ctx context.Context, id, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE id = $1 AND user_id = $2)`,
		id, userID,
	).Scan(&exists)
	return exists, err
}

// GetByID retrieves a bank account by ID
func (r *BankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE id = $1`
	return scanBankAccount(r.pool.QueryRow(ctx, query, id), id)
}

// ListByUser retrieves every account owned by the user
func (r *BankAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_timestamp`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows, "")
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Update rewrites the mutable fields of a bank account
func (r *BankAccountRepository) Update(ctx context.Context, account *domain.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET name = $2, initial_amount = $3, image_url = $4
		WHERE id = $1
	`

	data := account.Data()
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Name,
			data.InitialAmount.String(),
			data.ImageURL,
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

// Delete removes a bank account. Its transactions stay behind.
func (r *BankAccountRepository) Delete(ctx context.Context, id string) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
		return err
	})
}

func scanBankAccount(row pgx.Row, id string) (*domain.BankAccount, error) {
	var (
		accountID        string
		name             string
		userID           string
		initialAmount    string
		imageURL         *string
		createdTimestamp int64
	)

	err := row.Scan(&accountID, &name, &userID, &initialAmount, &imageURL, &createdTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(initialAmount)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	fields := domain.BankAccountFields{
		ID:               accountID,
		Name:             name,
		UserID:           userID,
		InitialAmount:    amount,
		CreatedTimestamp: createdTimestamp,
	}
	if imageURL != nil {
		fields.ImageURL = *imageURL
	}

	account, err := domain.NewBankAccount(fields)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return account, nil
}
