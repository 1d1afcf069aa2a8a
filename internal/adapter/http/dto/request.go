package dto

import (
	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
	"github.com/JoaoSCoelho/my-finances-backend/internal/usecase"
)

// required unwraps a pointer decoded from JSON. An absent field is reported
// as MissingParam before any value validation runs.
func required[T any](p *T, name string) (T, error) {
	if p == nil {
		var zero T
		return zero, &domain.MissingParamError{ParamName: name}
	}
	return *p, nil
}

// SignUpRequest represents a request to register a user.
type SignUpRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *SignUpRequest) ToUseCaseInput() (usecase.SignUpInput, error) {
	username, err := required(r.Username, "username")
	if err != nil {
		return usecase.SignUpInput{}, err
	}
	email, err := required(r.Email, "email")
	if err != nil {
		return usecase.SignUpInput{}, err
	}
	password, err := required(r.Password, "password")
	if err != nil {
		return usecase.SignUpInput{}, err
	}
	return usecase.SignUpInput{
		Username: username,
		Email:    email,
		Password: password,
	}, nil
}

// LoginRequest represents a credentials login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token to be exchanged for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LogoutRequest carries the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateUserRequest represents a partial profile update. Absent fields keep
// the stored value.
type UpdateUserRequest struct {
	Username domain.Optional[string] `json:"username"`
	Password domain.Optional[string] `json:"password"`
}

// ToUseCaseInput converts to use case input for the given user.
func (r *UpdateUserRequest) ToUseCaseInput(userID string) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		ID:       userID,
		Username: r.Username,
		Password: r.Password,
	}
}

// CreateBankAccountRequest represents a request to create a bank account.
type CreateBankAccountRequest struct {
	Name          *string          `json:"name"`
	InitialAmount *decimal.Decimal `json:"initialAmount"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *CreateBankAccountRequest) ToUseCaseInput(userID string) (usecase.CreateBankAccountInput, error) {
	name, err := required(r.Name, "name")
	if err != nil {
		return usecase.CreateBankAccountInput{}, err
	}
	initialAmount, err := required(r.InitialAmount, "initialAmount")
	if err != nil {
		return usecase.CreateBankAccountInput{}, err
	}
	return usecase.CreateBankAccountInput{
		UserID:        userID,
		Name:          name,
		InitialAmount: initialAmount,
		ImageURL:      r.ImageURL,
	}, nil
}

// UpdateBankAccountRequest represents a partial update. An explicit null
// imageUrl clears the image.
type UpdateBankAccountRequest struct {
	Name          domain.Optional[string]          `json:"name"`
	InitialAmount domain.Optional[decimal.Decimal] `json:"initialAmount"`
	ImageURL      domain.Optional[string]          `json:"imageUrl"`
}

// ToUseCaseInput converts to use case input for the given account and owner.
func (r *UpdateBankAccountRequest) ToUseCaseInput(id, userID string) usecase.UpdateBankAccountInput {
	return usecase.UpdateBankAccountInput{
		ID:            id,
		UserID:        userID,
		Name:          r.Name,
		InitialAmount: r.InitialAmount,
		ImageURL:      r.ImageURL,
	}
}

// CreateExpenseRequest represents a request to record an expense.
type CreateExpenseRequest struct {
	Title         *string          `json:"title"`
	Spent         *decimal.Decimal `json:"spent"`
	BankAccountID *string          `json:"bankAccountId"`
	Description   *string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *CreateExpenseRequest) ToUseCaseInput(userID string) (usecase.CreateExpenseInput, error) {
	title, err := required(r.Title, "title")
	if err != nil {
		return usecase.CreateExpenseInput{}, err
	}
	spent, err := required(r.Spent, "spent")
	if err != nil {
		return usecase.CreateExpenseInput{}, err
	}
	bankAccountID, err := required(r.BankAccountID, "bankAccountId")
	if err != nil {
		return usecase.CreateExpenseInput{}, err
	}
	return usecase.CreateExpenseInput{
		UserID:        userID,
		BankAccountID: bankAccountID,
		Title:         title,
		Spent:         spent,
		Description:   r.Description,
	}, nil
}

// UpdateExpenseRequest represents a partial update of an expense.
type UpdateExpenseRequest struct {
	Title         domain.Optional[string]          `json:"title"`
	Spent         domain.Optional[decimal.Decimal] `json:"spent"`
	BankAccountID domain.Optional[string]          `json:"bankAccountId"`
	Description   domain.Optional[string]          `json:"description"`
}

// ToUseCaseInput converts to use case input for the given expense and owner.
func (r *UpdateExpenseRequest) ToUseCaseInput(id, userID string) usecase.UpdateExpenseInput {
	return usecase.UpdateExpenseInput{
		ID:            id,
		UserID:        userID,
		Title:         r.Title,
		Spent:         r.Spent,
		BankAccountID: r.BankAccountID,
		Description:   r.Description,
	}
}

// CreateIncomeRequest represents a request to record an income.
type CreateIncomeRequest struct {
	Title         *string          `json:"title"`
	Gain          *decimal.Decimal `json:"gain"`
	BankAccountID *string          `json:"bankAccountId"`
	Description   *string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *CreateIncomeRequest) ToUseCaseInput(userID string) (usecase.CreateIncomeInput, error) {
	title, err := required(r.Title, "title")
	if err != nil {
		return usecase.CreateIncomeInput{}, err
	}
	gain, err := required(r.Gain, "gain")
	if err != nil {
		return usecase.CreateIncomeInput{}, err
	}
	bankAccountID, err := required(r.BankAccountID, "bankAccountId")
	if err != nil {
		return usecase.CreateIncomeInput{}, err
	}
	return usecase.CreateIncomeInput{
		UserID:        userID,
		BankAccountID: bankAccountID,
		Title:         title,
		Gain:          gain,
		Description:   r.Description,
	}, nil
}

// UpdateIncomeRequest represents a partial update of an income.
type UpdateIncomeRequest struct {
	Title         domain.Optional[string]          `json:"title"`
	Gain          domain.Optional[decimal.Decimal] `json:"gain"`
	BankAccountID domain.Optional[string]          `json:"bankAccountId"`
	Description   domain.Optional[string]          `json:"description"`
}

// ToUseCaseInput converts to use case input for the given income and owner.
func (r *UpdateIncomeRequest) ToUseCaseInput(id, userID string) usecase.UpdateIncomeInput {
	return usecase.UpdateIncomeInput{
		ID:            id,
		UserID:        userID,
		Title:         r.Title,
		Gain:          r.Gain,
		BankAccountID: r.BankAccountID,
		Description:   r.Description,
	}
}

// CreateTransferRequest represents a request to move money between two of
// the user's accounts.
type CreateTransferRequest struct {
	Title                 *string          `json:"title"`
	Amount                *decimal.Decimal `json:"amount"`
	GiverBankAccountID    *string          `json:"giverBankAccountId"`
	ReceiverBankAccountID *string          `json:"receiverBankAccountId"`
	Description           *string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *CreateTransferRequest) ToUseCaseInput(userID string) (usecase.CreateTransferInput, error) {
	title, err := required(r.Title, "title")
	if err != nil {
		return usecase.CreateTransferInput{}, err
	}
	amount, err := required(r.Amount, "amount")
	if err != nil {
		return usecase.CreateTransferInput{}, err
	}
	giverID, err := required(r.GiverBankAccountID, "giverBankAccountId")
	if err != nil {
		return usecase.CreateTransferInput{}, err
	}
	receiverID, err := required(r.ReceiverBankAccountID, "receiverBankAccountId")
	if err != nil {
		return usecase.CreateTransferInput{}, err
	}
	return usecase.CreateTransferInput{
		UserID:                userID,
		GiverBankAccountID:    giverID,
		ReceiverBankAccountID: receiverID,
		Title:                 title,
		Amount:                amount,
		Description:           r.Description,
	}, nil
}

// UpdateTransferRequest represents a partial update of a transfer.
type UpdateTransferRequest struct {
	Title                 domain.Optional[string]          `json:"title"`
	Amount                domain.Optional[decimal.Decimal] `json:"amount"`
	GiverBankAccountID    domain.Optional[string]          `json:"giverBankAccountId"`
	ReceiverBankAccountID domain.Optional[string]          `json:"receiverBankAccountId"`
	Description           domain.Optional[string]          `json:"description"`
}

// ToUseCaseInput converts to use case input for the given transfer and owner.
func (r *UpdateTransferRequest) ToUseCaseInput(id, userID string) usecase.UpdateTransferInput {
	return usecase.UpdateTransferInput{
		ID:                    id,
		UserID:                userID,
		Title:                 r.Title,
		Amount:                r.Amount,
		GiverBankAccountID:    r.GiverBankAccountID,
		ReceiverBankAccountID: r.ReceiverBankAccountID,
		Description:           r.Description,
	}
}
