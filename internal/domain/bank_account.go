package domain

import "github.com/shopspring/decimal"

// BankAccount is a frozen aggregate owned by exactly one user. Its current
// amount is never stored: it is derived on read from the account's
// transaction history plus the initial amount seeded here.
type BankAccount struct {
	id               ID
	name             BankAccountName
	userID           ID
	initialAmount    Amount
	createdTimestamp Timestamp
	imageURL         *URL
}

// BankAccountFields carries the raw input for NewBankAccount. ImageURL may be
// nil for accounts without an image.
type BankAccountFields struct {
	ID               any
	Name             any
	UserID           any
	InitialAmount    any
	CreatedTimestamp any
	ImageURL         any
}

// NewBankAccount validates f and constructs the aggregate. Check order: own
// id, name, userId, initialAmount, createdTimestamp, then the optional image.
func NewBankAccount(f BankAccountFields) (*BankAccount, error) {
	id, err := NewID(f.ID)
	if err != nil {
		return nil, err
	}

	name, err := NewBankAccountName(f.Name)
	if err != nil {
		return nil, err
	}

	userID, err := NewID(f.UserID)
	if err != nil {
		return nil, AsParam(err, "userId")
	}

	initialAmount, err := NewAmount(f.InitialAmount)
	if err != nil {
		return nil, AsParam(err, "initialAmount")
	}

	createdTimestamp, err := NewTimestamp(f.CreatedTimestamp)
	if err != nil {
		return nil, AsParam(err, "createdTimestamp")
	}

	var imageURL *URL
	if f.ImageURL != nil {
		u, err := NewURL(f.ImageURL)
		if err != nil {
			return nil, AsParam(err, "imageUrl")
		}
		imageURL = &u
	}

	return &BankAccount{
		id:               id,
		name:             name,
		userID:           userID,
		initialAmount:    initialAmount,
		createdTimestamp: createdTimestamp,
		imageURL:         imageURL,
	}, nil
}

func (a *BankAccount) ID() string                     { return a.id.String() }
func (a *BankAccount) Name() string                   { return a.name.String() }
func (a *BankAccount) UserID() string                 { return a.userID.String() }
func (a *BankAccount) InitialAmount() decimal.Decimal { return a.initialAmount.Decimal() }
func (a *BankAccount) CreatedTimestamp() int64        { return a.createdTimestamp.Millis() }

// ImageURL returns the image URL, or nil when the account has none.
func (a *BankAccount) ImageURL() *string {
	if a.imageURL == nil {
		return nil
	}

	s := a.imageURL.String()
	return &s
}

// BankAccountData is the plain-data projection of a BankAccount. Field names
// are the wire format for persistence payloads and API responses.
type BankAccountData struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	UserID           string          `json:"userId"`
	InitialAmount    decimal.Decimal `json:"initialAmount"`
	CreatedTimestamp int64           `json:"createdTimestamp"`
	ImageURL         *string         `json:"imageUrl,omitempty"`
}

// Data returns the plain-data projection.
func (a *BankAccount) Data() BankAccountData {
	return BankAccountData{
		ID:               a.ID(),
		Name:             a.Name(),
		UserID:           a.UserID(),
		InitialAmount:    a.InitialAmount(),
		CreatedTimestamp: a.CreatedTimestamp(),
		ImageURL:         a.ImageURL(),
	}
}
