package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount bounds. They keep all ledger arithmetic inside the range every
// supported numeric representation can carry without precision loss.
var (
	MaxAmountValue = decimal.NewFromInt(999999999999)
	MinAmountValue = MaxAmountValue.Neg()
)

// maxSafeFloat is the largest float64 magnitude with integer precision.
const maxSafeFloat = float64(1 << 53)

// newDecimal coerces raw into a decimal, rejecting anything that is not a
// number or that cannot be represented without precision loss.
func newDecimal(paramName string, raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxSafeFloat {
			return decimal.Decimal{}, &InvalidParamError{
				Param:     raw,
				ParamName: paramName,
				Reason:    ReasonNotASafeNumber,
				Expected:  "a finite number representable without precision loss",
			}
		}

		return decimal.NewFromFloat(v), nil
	case float32:
		return newDecimal(paramName, float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, &InvalidParamError{
				Param:     raw,
				ParamName: paramName,
				Reason:    ReasonNotASafeNumber,
				Expected:  "a finite number representable without precision loss",
			}
		}

		return d, nil
	case decimal.Decimal:
		return v, nil
	default:
		return decimal.Decimal{}, &InvalidParamError{Param: raw, ParamName: paramName, Reason: ReasonTypeNotSupported, Expected: "number"}
	}
}

// Amount wraps a validated bounded signed amount. Used for bank account
// initial amounts, which may be negative to represent a starting debt.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates raw as a bounded amount. Checks run in a fixed order:
// type, safe representation, lower bound, upper bound.
func NewAmount(raw any) (Amount, error) {
	d, err := newDecimal("amount", raw)
	if err != nil {
		return Amount{}, err
	}

	if d.LessThan(MinAmountValue) {
		return Amount{}, &InvalidParamError{
			Param:     raw,
			ParamName: "amount",
			Reason:    ReasonBelowMinimum,
			Expected:  fmt.Sprintf("a number greater than or equal to %s", MinAmountValue),
		}
	}

	if d.GreaterThan(MaxAmountValue) {
		return Amount{}, &InvalidParamError{
			Param:     raw,
			ParamName: "amount",
			Reason:    ReasonAboveMaximum,
			Expected:  fmt.Sprintf("a number less than or equal to %s", MaxAmountValue),
		}
	}

	return Amount{value: d}, nil
}

func (a Amount) Decimal() decimal.Decimal { return a.value }

// NoNegativeAmount wraps a validated non-negative bounded amount. Used for
// expense, income and transfer values.
type NoNegativeAmount struct {
	value decimal.Decimal
}

// NewNoNegativeAmount validates raw as a non-negative bounded amount.
func NewNoNegativeAmount(raw any) (NoNegativeAmount, error) {
	d, err := newDecimal("amount", raw)
	if err != nil {
		return NoNegativeAmount{}, err
	}

	if d.IsNegative() {
		return NoNegativeAmount{}, &InvalidParamError{
			Param:     raw,
			ParamName: "amount",
			Reason:    ReasonBelowMinimum,
			Expected:  "a number greater than or equal to 0",
		}
	}

	if d.GreaterThan(MaxAmountValue) {
		return NoNegativeAmount{}, &InvalidParamError{
			Param:     raw,
			ParamName: "amount",
			Reason:    ReasonAboveMaximum,
			Expected:  fmt.Sprintf("a number less than or equal to %s", MaxAmountValue),
		}
	}

	return NoNegativeAmount{value: d}, nil
}

func (a NoNegativeAmount) Decimal() decimal.Decimal { return a.value }

// Timestamp wraps a validated creation timestamp in milliseconds.
type Timestamp struct {
	value int64
}

// NewTimestamp validates raw as a non-negative integer millisecond timestamp.
func NewTimestamp(raw any) (Timestamp, error) {
	d, err := newDecimal("timestamp", raw)
	if err != nil {
		return Timestamp{}, err
	}

	if !d.IsInteger() {
		return Timestamp{}, &InvalidParamError{
			Param:     raw,
			ParamName: "timestamp",
			Reason:    ReasonNotASafeNumber,
			Expected:  "an integer number of milliseconds",
		}
	}

	if d.IsNegative() {
		return Timestamp{}, &InvalidParamError{
			Param:     raw,
			ParamName: "timestamp",
			Reason:    ReasonBelowMinimum,
			Expected:  "a number greater than or equal to 0",
		}
	}

	return Timestamp{value: d.IntPart()}, nil
}

func (t Timestamp) Millis() int64 { return t.value }
