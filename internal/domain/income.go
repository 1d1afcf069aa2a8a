package domain

import "github.com/shopspring/decimal"

// Income is a frozen aggregate recording money gained by a bank account.
type Income struct {
	id               ID
	title            TransactionTitle
	bankAccountID    ID
	gain             NoNegativeAmount
	createdTimestamp Timestamp
	description      *AnyString
}

// IncomeFields carries the raw input for NewIncome. Description may be nil.
type IncomeFields struct {
	ID               any
	Title            any
	BankAccountID    any
	Gain             any
	CreatedTimestamp any
	Description      any
}

// NewIncome validates f and constructs the aggregate, checking fields in the
// same order as NewExpense.
func NewIncome(f IncomeFields) (*Income, error) {
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

	gain, err := NewNoNegativeAmount(f.Gain)
	if err != nil {
		return nil, AsParam(err, "gain")
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

	return &Income{
		id:               id,
		title:            title,
		bankAccountID:    bankAccountID,
		gain:             gain,
		createdTimestamp: createdTimestamp,
		description:      description,
	}, nil
}

func (i *Income) ID() string              { return i.id.String() }
func (i *Income) Title() string           { return i.title.String() }
func (i *Income) BankAccountID() string   { return i.bankAccountID.String() }
func (i *Income) Gain() decimal.Decimal   { return i.gain.Decimal() }
func (i *Income) CreatedTimestamp() int64 { return i.createdTimestamp.Millis() }

// Description returns the description, or nil when the income has none.
func (i *Income) Description() *string {
	if i.description == nil {
		return nil
	}

	s := i.description.String()
	return &s
}

// IncomeData is the plain-data projection of an Income.
type IncomeData struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	BankAccountID    string          `json:"bankAccountId"`
	Gain             decimal.Decimal `json:"gain"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	Description      *string         `json:"description,omitempty"`
}

// Data returns the plain-data projection.
func (i *Income) Data() IncomeData {
	return IncomeData{
		ID:               i.ID(),
		Title:            i.Title(),
		BankAccountID:    i.BankAccountID(),
		Gain:             i.Gain(),
		CreatedTimestamp: i.CreatedTimestamp(),
		Description:      i.Description(),
	}
}
