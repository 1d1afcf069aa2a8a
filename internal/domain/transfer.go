package domain

import "github.com/shopspring/decimal"

// Transfer is a frozen aggregate recording money moved between two bank
// accounts. Giver and receiver equality is rejected at creation time by the
// use case, before any repository lookup, not here.
type Transfer struct {
	id                ID
	title             TransactionTitle
	giverAccountID    ID
	receiverAccountID ID
	amount            NoNegativeAmount
	createdTimestamp  Timestamp
	description       *AnyString
}

// TransferFields carries the raw input for NewTransfer. Description may be
// nil.
type TransferFields struct {
	ID                    any
	Title                 any
	GiverBankAccountID    any
	ReceiverBankAccountID any
	Amount                any
	CreatedTimestamp      any
	Description           any
}

// NewTransfer validates f and constructs the aggregate. Check order: own id,
// title, giverBankAccountId, receiverBankAccountId, amount, createdTimestamp,
// then the optional description.
func NewTransfer(f TransferFields) (*Transfer, error) {
	id, err := NewID(f.ID)
	if err != nil {
		return nil, err
	}

	title, err := NewTransactionTitle(f.Title)
	if err != nil {
		return nil, err
	}

	giverID, err := NewID(f.GiverBankAccountID)
	if err != nil {
		return nil, AsParam(err, "giverBankAccountId")
	}

	receiverID, err := NewID(f.ReceiverBankAccountID)
	if err != nil {
		return nil, AsParam(err, "receiverBankAccountId")
	}

	amount, err := NewNoNegativeAmount(f.Amount)
	if err != nil {
		return nil, AsParam(err, "amount")
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

	return &Transfer{
		id:                id,
		title:             title,
		giverAccountID:    giverID,
		receiverAccountID: receiverID,
		amount:            amount,
		createdTimestamp:  createdTimestamp,
		description:       description,
	}, nil
}

func (t *Transfer) ID() string                    { return t.id.String() }
func (t *Transfer) Title() string                 { return t.title.String() }
func (t *Transfer) GiverBankAccountID() string    { return t.giverAccountID.String() }
func (t *Transfer) ReceiverBankAccountID() string { return t.receiverAccountID.String() }
func (t *Transfer) Amount() decimal.Decimal       { return t.amount.Decimal() }
func (t *Transfer) CreatedTimestamp() int64       { return t.createdTimestamp.Millis() }

// Description returns the description, or nil when the transfer has none.
func (t *Transfer) Description() *string {
	if t.description == nil {
		return nil
	}

	s := t.description.String()
	return &s
}

// TransferData is the plain-data projection of a Transfer.
type TransferData struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	GiverBankAccountID    string          `json:"giverBankAccountId"`
	ReceiverBankAccountID string          `json:"receiverBankAccountId"`
	Amount                decimal.Decimal `json:"amount"`
	CreatedTimestamp      int64           `json:"createdTimestamp"`
	Description           *string         `json:"description,omitempty"`
}

// Data returns the plain-data projection.
func (t *Transfer) Data() TransferData {
	return TransferData{
		ID:                    t.ID(),
		Title:                 t.Title(),
		GiverBankAccountID:    t.GiverBankAccountID(),
		ReceiverBankAccountID: t.ReceiverBankAccountID(),
		Amount:                t.Amount(),
		CreatedTimestamp:      t.CreatedTimestamp(),
		Description:           t.Description(),
	}
}
