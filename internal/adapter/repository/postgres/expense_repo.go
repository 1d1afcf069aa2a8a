package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// ExpenseRepository implements expense persistence
type ExpenseRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(pool *pgxpool.Pool, retrier *Retrier) *ExpenseRepository {
	return &ExpenseRepository{pool: pool, retrier: retrier}
}

const expenseColumns = `id, title, bank_account_id, spent::text, description, created_timestamp`

// Set inserts a new expense
func (r *ExpenseRepository) Set(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (id, title, bank_account_id, spent, description, created_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	data := expense.Data()
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.BankAccountID,
			data.Spent.String(),
			data.Description,
			data.CreatedTimestamp,
		)
		return err
	})
}

// GetByID retrieves an expense by ID
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(r.pool.QueryRow(ctx, query, id), id)
}

// ListByAccount retrieves every expense of the account
func (r *ExpenseRepository) ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE bank_account_id = $1 ORDER BY created_timestamp`

	rows, err := r.pool.Query(ctx, query, bankAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows, "")
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// Update rewrites the mutable fields of an expense
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET title = $2, bank_account_id = $3, spent = $4, description = $5
		WHERE id = $1
	`

	data := expense.Data()
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Title,
			data.BankAccountID,
			data.Spent.String(),
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

// Delete removes an expense
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
		return err
	})
}

func scanExpense(row pgx.Row, id string) (*domain.Expense, error) {
	var (
		expenseID        string
		title            string
		bankAccountID    string
		spent            string
		description      *string
		createdTimestamp int64
	)

	err := row.Scan(&expenseID, &title, &bankAccountID, &spent, &description, &createdTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Prop: "id", Value: id}
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(spent)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	fields := domain.ExpenseFields{
		ID:               expenseID,
		Title:            title,
		BankAccountID:    bankAccountID,
		Spent:            amount,
		CreatedTimestamp: createdTimestamp,
	}
	if description != nil {
		fields.Description = *description
	}

	expense, err := domain.NewExpense(fields)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	return expense, nil
}
