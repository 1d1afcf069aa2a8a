package domain

import "github.com/shopspring/decimal"

// Expense is a frozen aggregate recording money spent from a bank account.
type Expense struct {
	id               ID
	title            TransactionTitle
	bankAccountID    ID
	spent            NoNegativeAmount
	createdTimestamp Timestamp
	description      *AnyString
}

// ExpenseFields carries the raw input for NewExpense. Description may be nil.
type ExpenseFields struct {
	ID               any
	Title            any
	BankAccountID    any
	Spent            any
	CreatedTimestamp any
	Description      any
}

// NewExpense validates f and constructs the aggregate. Check order: own id,
// title, bankAccountId, spent, createdTimestamp, then the optional
// description.
func NewExpense(f ExpenseFields) (*Expense, error) {
	id, err := NewID(f.ID)
	if err != nil {
		return nil, err
	}

	title, err := NewTransactionTitle(f.Title)
	if err != nil {
		return nil, err
	}

	bankAccountID, err := NewID(f.BankAccountID)
	if err != nil {
		return nil, AsParam(err, "bankAccountId")
	}

	spent, err := NewNoNegativeAmount(f.Spent)
	if err != nil {
		return nil, AsParam(err, "spent")
	}

	createdTimestamp, err := NewTimestamp(f.CreatedTimestamp)
	if err != nil {
		return nil, AsParam(err, "createdTimestamp")
	}

	var description *AnyString
	if f.Description != nil {
		d, err := NewAnyString(f.Description)
		if err != nil {
			return nil, AsParam(err, "description")
		}
		description = &d
	}

	return &Expense{
		id:               id,
		title:            title,
		bankAccountID:    bankAccountID,
		spent:            spent,
		createdTimestamp: createdTimestamp,
		description:      description,
	}, nil
}

func (e *Expense) ID() string              { return e.id.String() }
func (e *Expense) Title() string           { return e.title.String() }
func (e *Expense) BankAccountID() string   { return e.bankAccountID.String() }
func (e *Expense) Spent() decimal.Decimal  { return e.spent.Decimal() }
func (e *Expense) CreatedTimestamp() int64 { return e.createdTimestamp.Millis() }

// Description returns the description, or nil when the expense has none.
func (e *Expense) Description() *string {
	if e.description == nil {
		return nil
	}

	s := e.description.String()
	return &s
}

// ExpenseData is the plain-data projection of an Expense.
type ExpenseData struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	BankAccountID    string          `json:"bankAccountId"`
	Spent            decimal.Decimal `json:"spent"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	Description      *string         `json:"description,omitempty"`
}

// Data returns the plain-data projection.
func (e *Expense) Data() ExpenseData {
	return ExpenseData{
		ID:               e.ID(),
		Title:            e.Title(),
		BankAccountID:    e.BankAccountID(),
		Spent:            e.Spent(),
		CreatedTimestamp: e.CreatedTimestamp(),
		Description:      e.Description(),
	}
}
