package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// testID builds a deterministic 21-character id from a short label.
func testID(label string) string {
	return fmt.Sprintf("%021s", label)
}

func newTestAccount(t *testing.T, id, userID string, initial int64) *domain.BankAccount {
	t.Helper()
	account, err := domain.NewBankAccount(domain.BankAccountFields{
		ID:               id,
		Name:             "Checking",
		UserID:           userID,
		InitialAmount:    decimal.NewFromInt(initial),
		CreatedTimestamp: int64(1700000000000),
	})
	if err != nil {
		t.Fatalf("failed to build test account: %v", err)
	}
	return account
}

func newTestExpense(t *testing.T, id, accountID string, spent int64) *domain.Expense {
	t.Helper()
	expense, err := domain.NewExpense(domain.ExpenseFields{
		ID:               id,
		Title:            "Groceries",
		BankAccountID:    accountID,
		Spent:            decimal.NewFromInt(spent),
		CreatedTimestamp: int64(1700000000000),
	})
	if err != nil {
		t.Fatalf("failed to build test expense: %v", err)
	}
	return expense
}

func newTestIncome(t *testing.T, id, accountID string, gain int64) *domain.Income {
	t.Helper()
	income, err := domain.NewIncome(domain.IncomeFields{
		ID:               id,
		Title:            "Salary",
		BankAccountID:    accountID,
		Gain:             decimal.NewFromInt(gain),
		CreatedTimestamp: int64(1700000000000),
	})
	if err != nil {
		t.Fatalf("failed to build test income: %v", err)
	}
	return income
}

func newTestTransfer(t *testing.T, id, giverID, receiverID string, amount int64) *domain.Transfer {
	t.Helper()
	transfer, err := domain.NewTransfer(domain.TransferFields{
		ID:                    id,
		Title:                 "Savings move",
		GiverBankAccountID:    giverID,
		ReceiverBankAccountID: receiverID,
		Amount:                decimal.NewFromInt(amount),
		CreatedTimestamp:      int64(1700000000000),
	})
	if err != nil {
		t.Fatalf("failed to build test transfer: %v", err)
	}
	return transfer
}

func newTestUser(t *testing.T, id, email, hashedPassword string, refreshTokens []string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(domain.UserFields{
		ID:               id,
		Username:         "joao",
		Email:            email,
		HashedPassword:   hashedPassword,
		CreatedTimestamp: int64(1700000000000),
		ConfirmedEmail:   true,
		RefreshTokens:    refreshTokens,
	})
	if err != nil {
		t.Fatalf("failed to build test user: %v", err)
	}
	return user
}
