package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// IncomeRepository implements income persistence
type IncomeRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(pool *pgxpool.Pool, retrier *Retrier) *IncomeRepository {
	return &IncomeRepository{pool: pool, retrier: retrier}
}

const incomeColumns = `id, title, bank_account_id, gain::text, description, created_timestamp`

// Set inserts a new income
func (r *IncomeRepository) Set(ctx context.Context, income *domain.Income) error {
	query := `
		INSERT INTO incomes (id, title, bank_account_id, gain, description, created_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	data := income.Data()
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.BankAccountID,
			data.Gain.String(),
			data.Description,
			data.CreatedTimestamp,
		)
		return err
	})
}

// GetByID retrieves an income by ID
func (r *IncomeRepository) GetByID(ctx context.Context, id string) (*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE id = $1`
	return scanIncome(r.pool.QueryRow(ctx, query, id), id)
}

// ListByAccount retrieves every income of the account
func (r *IncomeRepository) ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM incomes WHERE bank_account_id = $1 ORDER BY created_timestamp`

	rows, err := r.pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []*domain.Income
	for rows.Next() {
		income, err := scanIncome(rows, "")
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}

	return incomes, rows.Err()
}

// Update rewrites the mutable fields of an income
func (r *IncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	query := `
		UPDATE incomes
		SET title = $2, bank_account_id = $3, gain = $4, description = $5
		WHERE id = $1
	`

	data := income.Data()
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.BankAccountID,
			data.Gain.String(),
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

// Delete removes an income
func (r *IncomeRepository) Delete(ctx context.Context, id string) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
		return err
	})
}

func scanIncome(row pgx.Row, id string) (*domain.Income, error) {
	var (
		incomeID         string
		title            string
		bankAccountID    string
		gain             string
		description      *string
		createdTimestamp int64
	)

	err := row.Scan(&incomeID, &title, &bankAccountID, &gain, &description, &createdTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(gain)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	fields := domain.IncomeFields{
		ID:               incomeID,
		Title:            title,
		BankAccountID:    bankAccountID,
		Gain:             amount,
		CreatedTimestamp: createdTimestamp,
	}
	if description != nil {
		fields.Description = *description
	}

	income, err := domain.NewIncome(fields)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return income, nil
}
