// Package zero provides helpers for obtaining zero values of generic types.
package zero

// Value returns the zero value for type T.
// It exists because `var v T; return v` is noisy at call sites that only need
// the zero value as an expression, e.g. when signaling an absent lookup result.
//
// Example:
//
//	return zero.Value[V](), false
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
