package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/metrics"
)

// BalanceUseCase derives a bank account's current amount from its transaction
// history on every read. Nothing is cached or stored: a balance can never
// drift from its transactions, at the cost of O(transactions) per query.
//
// The four sums are independent reads issued concurrently with no locking
// guard, so a write that lands mid-computation may be partially visible.
// That is the source system's accepted consistency model; do not "fix" it by
// adding a snapshot or a lock without changing the contract.
type BalanceUseCase struct {
	accountRepo  BankAccountRepository
	expenseRepo  ExpenseRepository
	incomeRepo   IncomeRepository
	transferRepo TransferRepository
	metrics      *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase. metrics may be nil.
func NewBalanceUseCase(
	accountRepo BankAccountRepository,
	expenseRepo ExpenseRepository,
	incomeRepo IncomeRepository,
	transferRepo TransferRepository,
	m *metrics.Metrics,
) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo:  accountRepo,
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		transferRepo: transferRepo,
		metrics:      m,
	}
}

// ComputeBalance returns initialAmount + incomes + transfers received
// - expenses - transfers given for the account.
func (uc *BalanceUseCase) ComputeBalance(ctx context.Context, bankAccountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, bankAccountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var incomeTotal, expenseTotal, receivedTotal, givenTotal decimal.Decimal

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		incomes, err := uc.incomeRepo.ListByAccount(ctx, bankAccountID)
		if err != nil {
			return err
		}

		for _, income := range incomes {
			incomeTotal = incomeTotal.Add(income.Gain())
		}

		return nil
	})

	g.Go(func() error {
		expenses, err := uc.expenseRepo.ListByAccount(ctx, bankAccountID)
		if err != nil {
			return err
		}

		for _, expense := range expenses {
			expenseTotal = expenseTotal.Add(expense.Spent())
		}

		return nil
	})

	g.Go(func() error {
		received, err := uc.transferRepo.ListByReceiver(ctx, bankAccountID)
		if err != nil {
			return err
		}

		for _, transfer := range received {
			receivedTotal = receivedTotal.Add(transfer.Amount())
		}

		return nil
	})

	g.Go(func() error {
		given, err := uc.transferRepo.ListByGiver(ctx, bankAccountID)
		if err != nil {
			return err
		}

		for _, transfer := range given {
			givenTotal = givenTotal.Add(transfer.Amount())
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return decimal.Decimal{}, err
	}

	if uc.metrics != nil {
		uc.metrics.BalancesComputed.Inc()
	}

	return account.InitialAmount().
		Add(incomeTotal).
		Add(receivedTotal).
		Sub(expenseTotal).
		Sub(givenTotal), nil
}
