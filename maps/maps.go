// Package maps provides small associative containers backed by two parallel
// slices, one of keys and one of values: OrderedMap preserves insertion
// order, DescendingSortedMap keeps its entries sorted by descending value.
//
// Lookups are linear scans over the key slice, so these containers trade
// asymptotic performance for predictable ordering and a tiny footprint. They
// suit small collections where iteration order is part of the contract.
//
// Key equality is Go's == operator via the comparable constraint.
//
// Thread-safety: none of the containers in this package are safe for
// concurrent mutation. Callers must synchronize externally.
package maps

import (
	"iter"

	"github.com/amp-labs/seqmaps/optional"
)

// KeyValuePair is a single entry of a container in this package. It is the
// element type yielded by the Seq methods, paired with the entry's index in
// the container's stored order.
//
// Example:
//
//	for i, entry := range m.Seq() {
//	    fmt.Printf("Index: %d, Key: %v, Value: %v\n", i, entry.Key, entry.Value)
//	}
type KeyValuePair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is the read-only surface shared by OrderedMap and DescendingSortedMap.
// Mutating methods are not part of this interface because each concrete type
// returns itself for chaining and orders its entries differently.
//
// Absent keys are signaled with a zero value and found=false (or
// optional.None from GetOpt); no method returns an error or panics for a
// missing key.
type Map[K comparable, V any] interface {
	// Get retrieves the value stored under key.
	// Returns the zero value of V and found=false when the key is absent.
	Get(key K) (value V, found bool)

	// GetOpt retrieves the value stored under key as an optional.Value,
	// which is None when the key is absent.
	GetOpt(key K) optional.Value[V]

	// GetOrElse retrieves the value stored under key, or defaultValue when
	// the key is absent.
	GetOrElse(key K, defaultValue V) V

	// Has reports whether key is present.
	Has(key K) bool

	// Size returns the number of entries currently stored.
	Size() int

	// Seq returns an iterator over all entries in the container's stored
	// order, yielding (index, entry) pairs. Compatible with Go 1.23+
	// range-over-func syntax: for i, entry := range m.Seq() { ... }
	Seq() iter.Seq2[int, KeyValuePair[K, V]]

	// Keys returns a copy of the key slice in stored order.
	Keys() []K

	// Values returns a copy of the value slice in stored order.
	Values() []V
}

// indexOf returns the index of key in keys, or -1 when absent.
func indexOf[K comparable](keys []K, key K) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}

	return -1
}

// pairSeq adapts parallel key/value slices to an indexed entry iterator.
// keys and values must have equal length.
func pairSeq[K comparable, V any](keys []K, values []V) iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, k := range keys {
			if !yield(i, KeyValuePair[K, V]{Key: k, Value: values[i]}) {
				return
			}
		}
	}
}
