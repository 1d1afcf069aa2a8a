package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// UserRepository implements user persistence
type UserRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool, retrier *Retrier) *UserRepository {
	return &UserRepository{pool: pool, retrier: retrier}
}

const userColumns = `id, username, email, hashed_password, created_timestamp, confirmed_email, refresh_tokens`

// Set inserts a new user
func (r *UserRepository) Set(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, hashed_password, created_timestamp, confirmed_email, refresh_tokens)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	data := user.Data()
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Username,
			data.Email,
			data.HashedPassword,
			data.CreatedTimestamp,
			data.ConfirmedEmail,
			data.RefreshTokens,
		)
		return err
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id), "id", id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, email), "email", email)
}

// ExistsByID reports whether a user with the given id exists
func (r *UserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// ExistsByEmail reports whether a user with the given email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// Update rewrites the mutable fields of a user
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, hashed_password = $3, confirmed_email = $4, refresh_tokens = $5
		WHERE id = $1
	`

	data := user.Data()
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			data.ID,
			data.Username,
			data.HashedPassword,
			data.ConfirmedEmail,
			data.RefreshTokens,
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

// UpdateConfirmedEmail flips the confirmed flag for a user
func (r *UserRepository) UpdateConfirmedEmail(ctx context.Context, id string, confirmed bool) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, `UPDATE users SET confirmed_email = $2 WHERE id = $1`, id, confirmed)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return &domain.NotFoundError{Prop: "id", Value: id}
		}
		return nil
	})
}

// UpdateRefreshTokens replaces the outstanding refresh token set for a user
func (r *UserRepository) UpdateRefreshTokens(ctx context.Context, id string, tokens []string) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, `UPDATE users SET refresh_tokens = $2 WHERE id = $1`, id, tokens)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return &domain.NotFoundError{Prop: "id", Value: id}
		}
		return nil
	})
}

func (r *UserRepository) scanUser(row pgx.Row, prop, value string) (*domain.User, error) {
	var (
		id               string
		username         string
		email            string
		hashedPassword   string
		createdTimestamp int64
		confirmedEmail   bool
		refreshTokens    []string
	)

	err := row.Scan(&id, &username, &email, &hashedPassword, &createdTimestamp, &confirmedEmail, &refreshTokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Prop: prop, Value: value}
	}
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(domain.UserFields{
		ID:               id,
		Username:         username,
		Email:            email,
		HashedPassword:   hashedPassword,
		CreatedTimestamp: createdTimestamp,
		ConfirmedEmail:   confirmedEmail,
		RefreshTokens:    refreshTokens,
	})
	if err != nil {
		// A row that fails validation means the stored data is corrupt.
		return nil, domain.NewInternalError(err)
	}

	return user, nil
}
