package domain

import (
	"regexp"
	"strings"
)

// Email structure checks, applied in sequence: the first failing one
// determines the reported reason.
var (
	emailShapeRegex  = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
	emailLocalRegex  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+$`)
	emailDomainRegex = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)
)

// Email wraps a structurally validated email address.
type Email struct {
	value string
}

// NewEmail validates raw as an email address. Validation is structural only:
// a single @, RFC-ish local-part and domain character classes, and at least
// one domain label separator.
func NewEmail(raw any) (Email, error) {
	s, ok := raw.(string)
	if !ok {
		return Email{}, &InvalidParamError{Param: raw, ParamName: "email", Reason: ReasonTypeNotSupported, Expected: "string"}
	}

	if !emailShapeRegex.MatchString(s) {
		return Email{}, &InvalidParamError{
			Param:     raw,
			ParamName: "email",
			Reason:    ReasonBadStructure,
			Expected:  "a single @ separating local part and domain",
		}
	}

	at := strings.LastIndex(s, "@")
	local, domain := s[:at], s[at+1:]

	if !emailLocalRegex.MatchString(local) {
		return Email{}, &InvalidParamError{
			Param:     raw,
			ParamName: "email",
			Reason:    ReasonInvalidCharacters,
			Expected:  "letters, digits and . _ % + - in the local part",
		}
	}

	if !emailDomainRegex.MatchString(domain) {
		return Email{}, &InvalidParamError{
			Param:     raw,
			ParamName: "email",
			Reason:    ReasonBadStructure,
			Expected:  "a domain with at least two dot-separated labels",
		}
	}

	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }
