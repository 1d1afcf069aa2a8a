package domain

import "encoding/json"

// Optional is a tri-state field for partial updates. A field that is absent
// from the payload leaves the stored value unchanged; a field that is
// explicitly null clears it; a field with a value replaces it.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field was present in the payload at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool { return o.null }

// Value returns the carried value. Only meaningful when IsSet and not IsNull.
func (o Optional[T]) Value() T { return o.value }

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes the absent/null distinction observable.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true

	if string(b) == "null" {
		o.null = true
		return nil
	}

	return json.Unmarshal(b, &o.value)
}

// MarshalJSON round-trips the carried value; unset and null both encode as
// null since JSON cannot express absence at the value level.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}

	return json.Marshal(o.value)
}
