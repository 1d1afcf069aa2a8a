package dto

import (
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

// ErrorResponse represents an error in API responses. Param, Reason and
// Expected are only present for validation failures.
type ErrorResponse struct {
	Code     int    `json:"code,omitempty"`
	Name     string `json:"name"`
	Error    string `json:"error"`
	Param    string `json:"param,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// UserResponse represents a user in API responses. The password hash and the
// outstanding refresh tokens never leave the server.
type UserResponse struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	CreatedTimestamp int64  `json:"createdTimestamp"`
	ConfirmedEmail   bool   `json:"confirmedEmail"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:               u.ID(),
		Username:         u.Username(),
		Email:            u.Email(),
		CreatedTimestamp: u.CreatedTimestamp(),
		ConfirmedEmail:   u.ConfirmedEmail(),
	}
}

// AuthResponse carries the user and a fresh token pair.
type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// TokenResponse carries a token pair without the user.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BankAccountResponse represents a bank account in API responses. The total
// balance is derived at read time and travels alongside the stored fields.
type BankAccountResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	UserID           string          `json:"userId"`
	InitialAmount    decimal.Decimal `json:"initialAmount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	ImageURL         *string         `json:"imageUrl,omitempty"`
}

// BankAccountFromDomain converts an account with its balance to a response.
func BankAccountFromDomain(a *usecase.BankAccountWithBalance) *BankAccountResponse {
	data := a.Account.Data()
	return &BankAccountResponse{
		ID:               data.ID,
		Name:             data.Name,
		UserID:           data.UserID,
		InitialAmount:    data.InitialAmount,
		TotalAmount:      a.Balance,
		CreatedTimestamp: data.CreatedTimestamp,
		ImageURL:         data.ImageURL,
	}
}

// BankAccountsFromDomain converts accounts with balances to responses.
func BankAccountsFromDomain(accounts []*usecase.BankAccountWithBalance) []*BankAccountResponse {
	result := make([]*BankAccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = BankAccountFromDomain(a)
	}
	return result
}

// ListBankAccountsResponse wraps an account listing.
type ListBankAccountsResponse struct {
	BankAccounts []*BankAccountResponse `json:"bankAccounts"`
	Total        int64                  `json:"total"`
}

// BalanceResponse carries a derived account balance.
type BalanceResponse struct {
	BankAccountID string          `json:"bankAccountId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	BankAccountID    string          `json:"bankAccountId"`
	Spent            decimal.Decimal `json:"spent"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	Description      *string         `json:"description,omitempty"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	data := e.Data()
	return &ExpenseResponse{
		ID:               data.ID,
		Title:            data.Title,
		BankAccountID:    data.BankAccountID,
		Spent:            data.Spent,
		CreatedTimestamp: data.CreatedTimestamp,
		Description:      data.Description,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// ListExpensesResponse wraps an expense listing.
type ListExpensesResponse struct {
	Expenses []*ExpenseResponse `json:"expenses"`
	Total    int64              `json:"total"`
}

// IncomeResponse represents an income in API responses.
type IncomeResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	BankAccountID    string          `json:"bankAccountId"`
	Gain             decimal.Decimal `json:"gain"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	Description      *string         `json:"description,omitempty"`
}

// IncomeFromDomain converts a domain income to a response.
func IncomeFromDomain(i *domain.Income) *IncomeResponse {
	data := i.Data()
	return &IncomeResponse{
		ID:               data.ID,
		Title:            data.Title,
		BankAccountID:    data.BankAccountID,
		Gain:             data.Gain,
		CreatedTimestamp: data.CreatedTimestamp,
		Description:      data.Description,
	}
}

// IncomesFromDomain converts domain incomes to responses.
func IncomesFromDomain(incomes []*domain.Income) []*IncomeResponse {
	result := make([]*IncomeResponse, len(incomes))
	for i, in := range incomes {
		result[i] = IncomeFromDomain(in)
	}
	return result
}

// ListIncomesResponse wraps an income listing.
type ListIncomesResponse struct {
	Incomes []*IncomeResponse `json:"incomes"`
	Total   int64             `json:"total"`
}

// TransferResponse represents a transfer in API responses.
type TransferResponse struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	GiverBankAccountID    string          `json:"giverBankAccountId"`
	ReceiverBankAccountID string          `json:"receiverBankAccountId"`
	Amount                decimal.Decimal `json:"amount"`
	CreatedTimestamp      int64           `json:"createdTimestamp"`
	Description           *string         `json:"description,omitempty"`
}

// TransferFromDomain converts a domain transfer to a response.
func TransferFromDomain(t *domain.Transfer) *TransferResponse {
	data := t.Data()
	return &TransferResponse{
		ID:                    data.ID,
		Title:                 data.Title,
		GiverBankAccountID:    data.GiverBankAccountID,
		ReceiverBankAccountID: data.ReceiverBankAccountID,
		Amount:                data.Amount,
		CreatedTimestamp:      data.CreatedTimestamp,
		Description:           data.Description,
	}
}

// TransfersFromDomain converts domain transfers to responses.
func TransfersFromDomain(transfers []*domain.Transfer) []*TransferResponse {
	result := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		result[i] = TransferFromDomain(t)
	}
	return result
}

// ListTransfersResponse wraps a transfer listing.
type ListTransfersResponse struct {
	Transfers []*TransferResponse `json:"transfers"`
	Total     int64               `json:"total"`
}
