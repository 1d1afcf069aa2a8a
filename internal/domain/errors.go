package domain

import (
	"errors"
	"fmt"
)

// Stable error codes, part of the API contract.
const (
	CodeInvalidParam          = 100
	CodeMissingParam          = 101
	CodeNoEntity              = 102
	CodeEntityAlreadyExists   = 103
	CodeImpossibleCombination = 104
	CodeInternal              = 105
)

// Reason identifies why a value failed validation.
type Reason string

const (
	ReasonTypeNotSupported  Reason = "type-not-supported"
	ReasonTooShort          Reason = "too-short"
	ReasonTooLong           Reason = "too-long"
	ReasonBelowMinimum      Reason = "below-minimum"
	ReasonAboveMaximum      Reason = "above-maximum"
	ReasonBadStructure      Reason = "bad-structure"
	ReasonInvalidCharacters Reason = "invalid-characters"
	ReasonNotASafeNumber    Reason = "not-a-safe-number"
)

// Authentication errors. These sit outside the coded taxonomy below: they are
// boundary conditions translated from the token layer, never raised by the
// validation core itself.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// InvalidParamError reports a single value that failed validation.
type InvalidParamError struct {
	Param     any
	ParamName string
	Reason    Reason
	Expected  string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid param %q (%v): %s, expected %s", e.ParamName, e.Param, e.Reason, e.Expected)
}

func (e *InvalidParamError) Code() int    { return CodeInvalidParam }
func (e *InvalidParamError) Name() string { return "InvalidParam" }

// MissingParamError reports a required field that was absent from input.
type MissingParamError struct {
	ParamName string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing param %q", e.ParamName)
}

func (e *MissingParamError) Code() int    { return CodeMissingParam }
func (e *MissingParamError) Name() string { return "MissingParam" }

// NotFoundError reports a referenced entity that does not resolve, or that
// resolves to a record not owned by the caller.
type NotFoundError struct {
	Prop  string
	Value any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no entity with %s = %v", e.Prop, e.Value)
}

func (e *NotFoundError) Code() int    { return CodeNoEntity }
func (e *NotFoundError) Name() string { return "ThereIsNoEntityWithThisProp" }

// ConflictError reports a violated uniqueness constraint.
type ConflictError struct {
	Prop  string
	Value any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("there is already an entity with %s = %v", e.Prop, e.Value)
}

func (e *ConflictError) Code() int    { return CodeEntityAlreadyExists }
func (e *ConflictError) Name() string { return "ThereIsAlreadyEntityWithThisProp" }

// ImpossibleCombinationError reports two mutually exclusive field values
// supplied together.
type ImpossibleCombinationError struct {
	PropA string
	PropB string
}

func (e *ImpossibleCombinationError) Error() string {
	return fmt.Sprintf("impossible combination: %s and %s cannot hold the same value", e.PropA, e.PropB)
}

func (e *ImpossibleCombinationError) Code() int    { return CodeImpossibleCombination }
func (e *ImpossibleCombinationError) Name() string { return "ImpossibleCombination" }

// InternalError wraps an unexpected failure, such as a persisted record that
// no longer re-validates on read.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
func (e *InternalError) Code() int     { return CodeInternal }
func (e *InternalError) Name() string  { return "InternalError" }

// NewInternalError wraps err as an InternalError.
func NewInternalError(err error) *InternalError {
	return &InternalError{Err: err}
}

// AsParam relabels a validation failure under the referencing field's name.
// A bank account with a malformed userId must report "userId", not the id
// validator's default name.
func AsParam(err error, name string) error {
	var ipe *InvalidParamError
	if errors.As(err, &ipe) {
		relabeled := *ipe
		relabeled.ParamName = name
		return &relabeled
	}

	var mpe *MissingParamError
	if errors.As(err, &mpe) {
		return &MissingParamError{ParamName: name}
	}

	return err
}
