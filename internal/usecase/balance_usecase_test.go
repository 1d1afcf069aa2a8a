package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase/mocks"
)

func newBalanceFixture() (*mocks.MockBankAccountRepository, *mocks.MockExpenseRepository, *mocks.MockIncomeRepository, *mocks.MockTransferRepository, *usecase.BalanceUseCase) {
	accRepo := mocks.NewMockBankAccountRepository()
	expRepo := mocks.NewMockExpenseRepository()
	incRepo := mocks.NewMockIncomeRepository()
	trfRepo := mocks.NewMockTransferRepository()
	uc := usecase.NewBalanceUseCase(accRepo, expRepo, incRepo, trfRepo, nil)
	return accRepo, expRepo, incRepo, trfRepo, uc
}

func TestBalanceUseCase_NoTransactions(t *testing.T) {
	accRepo, _, _, _, uc := newBalanceFixture()
	ctx := context.Background()

	accountID := testID("acc-1")
	userID := testID("user-1")
	if err := accRepo.Set(ctx, newTestAccount(t, accountID, userID, 2000)); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}

	balance, err := uc.ComputeBalance(ctx, accountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected balance to equal the initial amount 2000, got %s", balance)
	}
}

func TestBalanceUseCase_FullScenario(t *testing.T) {
	accRepo, expRepo, incRepo, trfRepo, uc := newBalanceFixture()
	ctx := context.Background()

	userID := testID("user-1")
	giverID := testID("acc-giver")
	receiverID := testID("acc-recv")

	if err := accRepo.Set(ctx, newTestAccount(t, giverID, userID, 2000)); err != nil {
		t.Fatalf("failed to seed giver: %v", err)
	}
	if err := accRepo.Set(ctx, newTestAccount(t, receiverID, userID, 0)); err != nil {
		t.Fatalf("failed to seed receiver: %v", err)
	}

	check := func(accountID string, want int64) {
		t.Helper()
		balance, err := uc.ComputeBalance(ctx, accountID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !balance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("expected balance %d, got %s", want, balance)
		}
	}

	check(giverID, 2000)

	if err := expRepo.Set(ctx, newTestExpense(t, testID("exp-1"), giverID, 52)); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
	check(giverID, 1948)

	if err := incRepo.Set(ctx, newTestIncome(t, testID("inc-1"), giverID, 100)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}
	check(giverID, 2048)

	if err := trfRepo.Set(ctx, newTestTransfer(t, testID("trf-1"), giverID, receiverID, 500)); err != nil {
		t.Fatalf("failed to seed transfer: %v", err)
	}
	check(giverID, 1548)
	check(receiverID, 500)
}

func TestBalanceUseCase_MixedTransactions(t *testing.T) {
	accRepo, expRepo, incRepo, trfRepo, uc := newBalanceFixture()
	ctx := context.Background()

	userID := testID("user-1")
	accountID := testID("acc-1")
	otherID := testID("acc-2")

	if err := accRepo.Set(ctx, newTestAccount(t, accountID, userID, 100)); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	if err := accRepo.Set(ctx, newTestAccount(t, otherID, userID, 0)); err != nil {
		t.Fatalf("failed to seed other: %v", err)
	}

	// incomes 30+70, expenses 10+40, given 25, received 5
	incRepo.Set(ctx, newTestIncome(t, testID("inc-1"), accountID, 30))
	incRepo.Set(ctx, newTestIncome(t, testID("inc-2"), accountID, 70))
	expRepo.Set(ctx, newTestExpense(t, testID("exp-1"), accountID, 10))
	expRepo.Set(ctx, newTestExpense(t, testID("exp-2"), accountID, 40))
	trfRepo.Set(ctx, newTestTransfer(t, testID("trf-1"), accountID, otherID, 25))
	trfRepo.Set(ctx, newTestTransfer(t, testID("trf-2"), otherID, accountID, 5))

	balance, err := uc.ComputeBalance(ctx, accountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := decimal.NewFromInt(100 + 30 + 70 - 10 - 40 - 25 + 5)
	if !balance.Equal(want) {
		t.Errorf("expected balance %s, got %s", want, balance)
	}
}

func TestBalanceUseCase_AccountNotFound(t *testing.T) {
	_, _, _, _, uc := newBalanceFixture()

	_, err := uc.ComputeBalance(context.Background(), testID("missing"))
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBalanceUseCase_FetchFailurePropagates(t *testing.T) {
	accRepo, expRepo, _, _, uc := newBalanceFixture()
	ctx := context.Background()

	accountID := testID("acc-1")
	if err := accRepo.Set(ctx, newTestAccount(t, accountID, testID("user-1"), 100)); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}

	wantErr := errors.New("connection reset")
	expRepo.ListByAccountFunc = func(ctx context.Context, bankAccountID string) ([]*domain.Expense, error) {
		return nil, wantErr
	}

	_, err := uc.ComputeBalance(ctx, accountID)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
}
