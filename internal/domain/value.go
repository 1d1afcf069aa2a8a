package domain

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// IDLength is the exact length of every entity identifier. IDs are opaque:
// only their length is structural, existence is always a repository concern.
const IDLength = 21

// Text length bounds per kind.
const (
	MinUsernameLength        = 3
	MaxUsernameLength        = 30
	MinBankAccountNameLength = 3
	MaxBankAccountNameLength = 30
	MinTransactionTitleLen   = 3
	MaxTransactionTitleLen   = 50
	MinPasswordLength        = 8
	MaxPasswordLength        = 128
	MaxURLLength             = 255
)

// Shared charset for usernames, account names and transaction titles:
// letters (including accented Latin), digits, spaces and common punctuation.
var textRegex = regexp.MustCompile(`^[0-9A-Za-zÀ-ÖØ-öø-ÿ !?@#$%&*()_+='",.:;/\\|-]*$`)

var (
	hasUpperRegex = regexp.MustCompile(`[A-Z]`)
	hasLowerRegex = regexp.MustCompile(`[a-z]`)
	hasDigitRegex = regexp.MustCompile(`[0-9]`)
	urlRegex      = regexp.MustCompile(`^https?://[^\s]+\.[^\s]+$`)
)

// ID wraps a validated entity identifier.
type ID struct {
	value string
}

// NewID validates raw as a 21-character identifier string. Content is not
// inspected beyond its length.
func NewID(raw any) (ID, error) {
	s, ok := raw.(string)
	if !ok {
		return ID{}, &InvalidParamError{Param: raw, ParamName: "id", Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	if utf8.RuneCountInString(s) != IDLength {
		return ID{}, &InvalidParamError{
			Param:     raw,
			ParamName: "id",
			Reason:    ReasonBadStructure,
			Expected:  fmt.Sprintf("a string with exactly %d characters", IDLength),
		}
	}

	return ID{value: s}, nil
}

func (id ID) String() string { return id.value }

// newText applies the shared text protocol: primitive type, then length
// bounds (lower before upper), then charset. The order is a contract so that
// failure reasons are deterministic for a given input.
func newText(paramName string, raw any, minLen, maxLen int) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidParamError{Param: raw, ParamName: paramName, Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	length := utf8.RuneCountInString(s)
	if length < minLen {
		return "", &InvalidParamError{
			Param:     raw,
			ParamName: paramName,
			Reason:    ReasonTooShort,
			Expected:  fmt.Sprintf("a string with at least %d characters", minLen),
		}
	}

	if length > maxLen {
		return "", &InvalidParamError{
			Param:     raw,
			ParamName: paramName,
			Reason:    ReasonTooLong,
			Expected:  fmt.Sprintf("a string with at most %d characters", maxLen),
		}
	}

	if !textRegex.MatchString(s) {
		return "", &InvalidParamError{
			Param:     raw,
			ParamName: paramName,
			Reason:    ReasonInvalidCharacters,
			Expected:  "letters, digits, spaces and common punctuation",
		}
	}

	return s, nil
}

// Username wraps a validated username.
type Username struct {
	value string
}

// NewUsername validates raw as a username.
func NewUsername(raw any) (Username, error) {
	s, err := newText("username", raw, MinUsernameLength, MaxUsernameLength)
	if err != nil {
		return Username{}, err
	}

	return Username{value: s}, nil
}

func (u Username) String() string { return u.value }

// BankAccountName wraps a validated bank account name.
type BankAccountName struct {
	value string
}

// NewBankAccountName validates raw as a bank account name.
func NewBankAccountName(raw any) (BankAccountName, error) {
	s, err := newText("name", raw, MinBankAccountNameLength, MaxBankAccountNameLength)
	if err != nil {
		return BankAccountName{}, err
	}

	return BankAccountName{value: s}, nil
}

func (n BankAccountName) String() string { return n.value }

// TransactionTitle wraps a validated expense/income/transfer title.
type TransactionTitle struct {
	value string
}

// NewTransactionTitle validates raw as a transaction title.
func NewTransactionTitle(raw any) (TransactionTitle, error) {
	s, err := newText("title", raw, MinTransactionTitleLen, MaxTransactionTitleLen)
	if err != nil {
		return TransactionTitle{}, err
	}

	return TransactionTitle{value: s}, nil
}

func (t TransactionTitle) String() string { return t.value }

// URL wraps a validated http(s) URL.
type URL struct {
	value string
}

// NewURL validates raw as an absolute http or https URL.
func NewURL(raw any) (URL, error) {
	s, ok := raw.(string)
	if !ok {
		return URL{}, &InvalidParamError{Param: raw, ParamName: "url", Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	if utf8.RuneCountInString(s) > MaxURLLength {
		return URL{}, &InvalidParamError{
			Param:     raw,
			ParamName: "url",
			Reason:    ReasonTooLong,
			Expected:  fmt.Sprintf("a string with at most %d characters", MaxURLLength),
		}
	}

	if !urlRegex.MatchString(s) {
		return URL{}, &InvalidParamError{
			Param:     raw,
			ParamName: "url",
			Reason:    ReasonBadStructure,
			Expected:  "an absolute http(s) URL",
		}
	}

	return URL{value: s}, nil
}

func (u URL) String() string { return u.value }

// Password wraps a validated plain-text password. It exists only between the
// boundary and the hasher: entities never hold it.
type Password struct {
	value string
}

// NewPassword validates raw as a password: length bounds first, then the
// complexity requirement.
func NewPassword(raw any) (Password, error) {
	s, ok := raw.(string)
	if !ok {
		return Password{}, &InvalidParamError{Param: raw, ParamName: "password", Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	length := utf8.RuneCountInString(s)
	if length < MinPasswordLength {
		return Password{}, &InvalidParamError{
			Param:     "[redacted]",
			ParamName: "password",
			Reason:    ReasonTooShort,
			Expected:  fmt.Sprintf("a string with at least %d characters", MinPasswordLength),
		}
	}

	if length > MaxPasswordLength {
		return Password{}, &InvalidParamError{
			Param:     "[redacted]",
			ParamName: "password",
			Reason:    ReasonTooLong,
			Expected:  fmt.Sprintf("a string with at most %d characters", MaxPasswordLength),
		}
	}

	if !hasUpperRegex.MatchString(s) || !hasLowerRegex.MatchString(s) || !hasDigitRegex.MatchString(s) {
		return Password{}, &InvalidParamError{
			Param:     "[redacted]",
			ParamName: "password",
			Reason:    ReasonBadStructure,
			Expected:  "at least one uppercase letter, one lowercase letter and one digit",
		}
	}

	return Password{value: s}, nil
}

func (p Password) String() string { return p.value }

// Boolean wraps a validated boolean.
type Boolean struct {
	value bool
}

// NewBoolean validates raw as a boolean.
func NewBoolean(raw any) (Boolean, error) {
	b, ok := raw.(bool)
	if !ok {
		return Boolean{}, &InvalidParamError{Param: raw, ParamName: "boolean", Reason: ReasonTypeNotSupported, Expected: "boolean"}
	}

	return Boolean{value: b}, nil
}

func (b Boolean) Bool() bool { return b.value }

// AnyString wraps a string with no constraint beyond its primitive type.
type AnyString struct {
	value string
}

// NewAnyString validates raw as a string.
func NewAnyString(raw any) (AnyString, error) {
	s, ok := raw.(string)
	if !ok {
		return AnyString{}, &InvalidParamError{Param: raw, ParamName: "string", Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	return AnyString{value: s}, nil
}

func (s AnyString) String() string { return s.value }

// AnyNumber wraps a number with no constraint beyond safe representation.
type AnyNumber struct {
	value decimal.Decimal
}

// NewAnyNumber validates raw as a number.
func NewAnyNumber(raw any) (AnyNumber, error) {
	d, err := newDecimal("number", raw)
	if err != nil {
		return AnyNumber{}, err
	}

	return AnyNumber{value: d}, nil
}

func (n AnyNumber) Decimal() decimal.Decimal { return n.value }

// AnyObject wraps an object with no constraint beyond its primitive type.
type AnyObject struct {
	value map[string]any
}

// NewAnyObject validates raw as an object.
func NewAnyObject(raw any) (AnyObject, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return AnyObject{}, &InvalidParamError{Param: raw, ParamName: "object", Reason: ReasonTypeNotSupported, Expected: "object"}
	}

	return AnyObject{value: m}, nil
}

func (o AnyObject) Map() map[string]any { return o.value }
