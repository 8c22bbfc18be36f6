// Package optional provides a generic Value type that models the presence or
// absence of a value explicitly, instead of relying on nil pointers or ad-hoc
// sentinel values. Container lookups use it as their absent indicator.
package optional

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/amp-labs/seqmaps/zero"
)

var errMissingValueField = errors.New("optional: missing 'value' field in JSON")

// Value holds either a value of type T or nothing.
// The zero Value is empty. Use Some to construct a present Value and None
// (or the zero Value) for an empty one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some returns a Value containing value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the contained value and whether it is present.
// When empty, the first return is the zero value of T.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// NonEmpty returns true if a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrElse returns the contained value, or defaultValue when empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// GetOrElseFunc returns the contained value, or the result of defaultFunc
// when empty. Prefer this over GetOrElse when the default is expensive to
// compute.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T {
	if o.isSet {
		return o.value
	}

	return defaultFunc()
}

// ForEach calls f with the contained value if one is present.
func (o Value[T]) ForEach(f func(T)) {
	if o.isSet {
		f(o.value)
	}
}

// Equals reports whether both Values are empty, or both are present and their
// values are equal according to eq.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" when present and "None" when empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the contained value, producing a Value of the result type.
// An empty input yields an empty output without calling f.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// MarshalJSON implements json.Marshaler.
// None marshals as null, Some(v) as {"value": v}.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": o.value})
}

// UnmarshalJSON implements json.Unmarshaler, accepting the MarshalJSON format.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.isSet = false
		o.value = zero.Value[T]()

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	value, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	o.value = value
	o.isSet = true

	return nil
}
