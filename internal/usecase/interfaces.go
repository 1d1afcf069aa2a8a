package usecase

import (
	"context"
	"time"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// UserRepository defines data access for users. Email uniqueness lives here,
// not in the entity.
type UserRepository interface {
	Set(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateConfirmedEmail(ctx context.Context, id string, confirmed bool) error
	UpdateRefreshTokens(ctx context.Context, id string, tokens []string) error
}

// BankAccountRepository defines data access for bank accounts. Exists is the
// ownership primitive: it matches on both id and owner without loading the
// row.
type BankAccountRepository interface {
	Set(ctx context.Context, account *domain.BankAccount) error
	Exists(ctx context.Context, id, userID string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.BankAccount, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error)
	Update(ctx context.Context, account *domain.BankAccount) error
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Set(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
}

// IncomeRepository defines data access for incomes.
type IncomeRepository interface {
	Set(ctx context.Context, income *domain.Income) error
	GetByID(ctx context.Context, id string) (*domain.Income, error)
	ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Income, error)
	Update(ctx context.Context, income *domain.Income) error
	Delete(ctx context.Context, id string) error
}

// TransferRepository defines data access for transfers. The giver/receiver
// split feeds the balance engine; ListByAnyAccount is the disjunctive filter
// used for account statements.
type TransferRepository interface {
	Set(ctx context.Context, transfer *domain.Transfer) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	ListByGiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	ListByReceiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	ListByAnyAccount(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	Update(ctx context.Context, transfer *domain.Transfer) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator generates unique 21-character IDs.
type IDGenerator interface {
	Generate() string
}

// TokenManager issues and verifies the access/refresh token pair. Its
// implementations translate library failures into domain errors before they
// reach the core.
type TokenManager interface {
	GenerateAccess(userID, email string) (string, error)
	GenerateRefresh(userID string) (string, error)
	VerifyRefresh(token string) (userID string, err error)
}

// Mailer delivers transactional email. Narrow contract; delivery transport is
// outside the core.
type Mailer interface {
	SendEmailConfirmation(ctx context.Context, email, token string) error
}

// ConfirmationTokenStore keeps pending email-confirmation tokens.
type ConfirmationTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume atomically reads and invalidates token, returning the user id
	// it was issued for.
	Consume(ctx context.Context, token string) (string, error)
}

// IdempotencyStore handles idempotency key storage for mutating requests.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
