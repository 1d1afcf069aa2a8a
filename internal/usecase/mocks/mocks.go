package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	SetFunc                  func(ctx context.Context, user *domain.User) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	ExistsByIDFunc           func(ctx context.Context, id string) (bool, error)
	ExistsByEmailFunc        func(ctx context.Context, email string) (bool, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	UpdateConfirmedEmailFunc func(ctx context.Context, id string, confirmed bool) error
	UpdateRefreshTokensFunc  func(ctx context.Context, id string, tokens []string) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Set(ctx context.Context, user *domain.User) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID()] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email() == email {
			return user, nil
		}
	}
	return nil, &domain.NotFoundError{Prop: "email", Value: email}
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID()]; !ok {
		return &domain.NotFoundError{Prop: "id", Value: user.ID()}
	}
	m.users[user.ID()] = user
	return nil
}

func (m *MockUserRepository) UpdateConfirmedEmail(ctx context.Context, id string, confirmed bool) error {
	if m.UpdateConfirmedEmailFunc != nil {
		return m.UpdateConfirmedEmailFunc(ctx, id, confirmed)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return &domain.NotFoundError{Prop: "id", Value: id}
	}
	data := user.Data()
	updated, err := domain.NewUser(domain.UserFields{
		ID:               data.ID,
		Username:         data.Username,
		Email:            data.Email,
		HashedPassword:   data.HashedPassword,
		CreatedTimestamp: data.CreatedTimestamp,
		ConfirmedEmail:   confirmed,
		RefreshTokens:    data.RefreshTokens,
	})
	if err != nil {
		return err
	}
	m.users[id] = updated
	return nil
}

func (m *MockUserRepository) UpdateRefreshTokens(ctx context.Context, id string, tokens []string) error {
	if m.UpdateRefreshTokensFunc != nil {
		return m.UpdateRefreshTokensFunc(ctx, id, tokens)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return &domain.NotFoundError{Prop: "id", Value: id}
	}
	data := user.Data()
	updated, err := domain.NewUser(domain.UserFields{
		ID:               data.ID,
		Username:         data.Username,
		Email:            data.Email,
		HashedPassword:   data.HashedPassword,
		CreatedTimestamp: data.CreatedTimestamp,
		ConfirmedEmail:   data.ConfirmedEmail,
		RefreshTokens:    tokens,
	})
	if err != nil {
		return err
	}
	m.users[id] = updated
	return nil
}

// MockBankAccountRepository is a mock implementation of BankAccountRepository.
type MockBankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	SetFunc        func(ctx context.Context, account *domain.BankAccount) error
	ExistsFunc     func(ctx context.Context, id, userID string) (bool, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.BankAccount, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.BankAccount, error)
	UpdateFunc     func(ctx context.Context, account *domain.BankAccount) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func NewMockBankAccountRepository() *MockBankAccountRepository {
	return &MockBankAccountRepository{
		accounts: make(map[string]*domain.BankAccount),
	}
}

func (m *MockBankAccountRepository) Set(ctx context.Context, account *domain.BankAccount) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID()] = account
	return nil
}

func (m *MockBankAccountRepository) Exists(ctx context.Context, id, userID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[id]
	return ok && account.UserID() == userID, nil
}

func (m *MockBankAccountRepository) GetByID(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[id]; ok {
		return account, nil
	}
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (m *MockBankAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BankAccount, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.BankAccount
	for _, account := range m.accounts {
		if account.UserID() == userID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (m *MockBankAccountRepository) Update(ctx context.Context, account *domain.BankAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.ID()]; !ok {
		return &domain.NotFoundError{Prop: "id", Value: account.ID()}
	}
	m.accounts[account.ID()] = account
	return nil
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense

	SetFunc           func(ctx context.Context, expense *domain.Expense) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Expense, error)
	ListByAccountFunc func(ctx context.Context, bankAccountID string) ([]*domain.Expense, error)
	UpdateFunc        func(ctx context.Context, expense *domain.Expense) error
	DeleteFunc        func(ctx context.Context, id string) error
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) Set(ctx context.Context, expense *domain.Expense) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses[expense.ID()] = expense
	return nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if expense, ok := m.expenses[id]; ok {
		return expense, nil
	}
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (m *MockExpenseRepository) ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Expense, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, bankAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, expense := range m.expenses {
		if expense.BankAccountID() == bankAccountID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[expense.ID()]; !ok {
		return &domain.NotFoundError{Prop: "id", Value: expense.ID()}
	}
	m.expenses[expense.ID()] = expense
	return nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expenses, id)
	return nil
}

// MockIncomeRepository is a mock implementation of IncomeRepository.
type MockIncomeRepository struct {
	mu      sync.RWMutex
	incomes map[string]*domain.Income

	SetFunc           func(ctx context.Context, income *domain.Income) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Income, error)
	ListByAccountFunc func(ctx context.Context, bankAccountID string) ([]*domain.Income, error)
	UpdateFunc        func(ctx context.Context, income *domain.Income) error
	DeleteFunc        func(ctx context.Context, id string) error
}

func NewMockIncomeRepository() *MockIncomeRepository {
	return &MockIncomeRepository{
		incomes: make(map[string]*domain.Income),
	}
}

func (m *MockIncomeRepository) Set(ctx context.Context, income *domain.Income) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, income)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incomes[income.ID()] = income
	return nil
}

func (m *MockIncomeRepository) GetByID(ctx context.Context, id string) (*domain.Income, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if income, ok := m.incomes[id]; ok {
		return income, nil
	}
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (m *MockIncomeRepository) ListByAccount(ctx context.Context, bankAccountID string) ([]*domain.Income, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, bankAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var incomes []*domain.Income
	for _, income := range m.incomes {
		if income.BankAccountID() == bankAccountID {
			incomes = append(incomes, income)
		}
	}
	return incomes, nil
}

func (m *MockIncomeRepository) Update(ctx context.Context, income *domain.Income) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, income)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.incomes[income.ID()]; !ok {
		return &domain.NotFoundError{Prop: "id", Value: income.ID()}
	}
	m.incomes[income.ID()] = income
	return nil
}

func (m *MockIncomeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.incomes, id)
	return nil
}

// MockTransferRepository is a mock implementation of TransferRepository.
type MockTransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer

	SetFunc              func(ctx context.Context, transfer *domain.Transfer) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Transfer, error)
	ListByGiverFunc      func(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	ListByReceiverFunc   func(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	ListByAnyAccountFunc func(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error)
	UpdateFunc           func(ctx context.Context, transfer *domain.Transfer) error
	DeleteFunc           func(ctx context.Context, id string) error
}

func NewMockTransferRepository() *MockTransferRepository {
	return &MockTransferRepository{
		transfers: make(map[string]*domain.Transfer),
	}
}

func (m *MockTransferRepository) Set(ctx context.Context, transfer *domain.Transfer) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers[transfer.ID()] = transfer
	return nil
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if transfer, ok := m.transfers[id]; ok {
		return transfer, nil
	}
	return nil, &domain.NotFoundError{Prop: "id", Value: id}
}

func (m *MockTransferRepository) ListByGiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	if m.ListByGiverFunc != nil {
		return m.ListByGiverFunc(ctx, bankAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transfers []*domain.Transfer
	for _, transfer := range m.transfers {
		if transfer.GiverBankAccountID() == bankAccountID {
			transfers = append(transfers, transfer)
		}
	}
	return transfers, nil
}

func (m *MockTransferRepository) ListByReceiver(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	if m.ListByReceiverFunc != nil {
		return m.ListByReceiverFunc(ctx, bankAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transfers []*domain.Transfer
	for _, transfer := range m.transfers {
		if transfer.ReceiverBankAccountID() == bankAccountID {
			transfers = append(transfers, transfer)
		}
	}
	return transfers, nil
}

func (m *MockTransferRepository) ListByAnyAccount(ctx context.Context, bankAccountID string) ([]*domain.Transfer, error) {
	if m.ListByAnyAccountFunc != nil {
		return m.ListByAnyAccountFunc(ctx, bankAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transfers []*domain.Transfer
	for _, transfer := range m.transfers {
		if transfer.GiverBankAccountID() == bankAccountID || transfer.ReceiverBankAccountID() == bankAccountID {
			transfers = append(transfers, transfer)
		}
	}
	return transfers, nil
}

func (m *MockTransferRepository) Update(ctx context.Context, transfer *domain.Transfer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, transfer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transfers[transfer.ID()]; !ok {
		return &domain.NotFoundError{Prop: "id", Value: transfer.ID()}
	}
	m.transfers[transfer.ID()] = transfer
	return nil
}

func (m *MockTransferRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transfers, id)
	return nil
}

// MockIDGenerator is a sequential mock implementation of IDGenerator. The
// generated IDs are 21 characters long, matching the domain constraint.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("%021d", m.next)
}

// MockConfirmationTokenStore is an in-memory ConfirmationTokenStore.
type MockConfirmationTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string

	SaveFunc    func(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeFunc func(ctx context.Context, token string) (string, error)
}

func NewMockConfirmationTokenStore() *MockConfirmationTokenStore {
	return &MockConfirmationTokenStore{
		tokens: make(map[string]string),
	}
}

func (m *MockConfirmationTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token, userID, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = userID
	return nil
}

func (m *MockConfirmationTokenStore) Consume(ctx context.Context, token string) (string, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.tokens[token]
	if !ok {
		return "", &domain.NotFoundError{Prop: "token", Value: token}
	}
	delete(m.tokens, token)
	return userID, nil
}
