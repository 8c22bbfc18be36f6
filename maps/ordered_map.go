package maps

import (
	"iter"
	"slices"

	"github.com/amp-labs/seqmaps/optional"
	"github.com/amp-labs/seqmaps/zero"
)

// OrderedMap is an associative container that preserves the order in which
// keys were first inserted. Updating an existing key replaces its value in
// place without moving the key; new keys are appended to the end.
//
// Storage is a pair of parallel slices, so Get, Set, Has, and Upsert are all
// O(n); there is no hash index. Wrap access in your own locking if the map is
// shared between goroutines.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values []V
}

var _ Map[string, int] = (*OrderedMap[string, int])(nil)

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{}
}

// NewOrderedMapOf creates an OrderedMap seeded so that keys[i] maps to
// values[i]. Both slices are copied; the caller's slices stay untouched by
// later mutations of the map.
//
// Behavior is undefined when the slices differ in length or keys contains
// duplicates — neither condition is validated.
func NewOrderedMapOf[K comparable, V any](keys []K, values []V) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   slices.Clone(keys),
		values: slices.Clone(values),
	}
}

// Get retrieves the value stored under key.
// Returns the zero value of V and found=false when the key is absent.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i := indexOf(m.keys, key); i >= 0 {
		return m.values[i], true
	}

	return zero.Value[V](), false
}

// GetOpt retrieves the value stored under key as an optional.Value,
// which is None when the key is absent.
func (m *OrderedMap[K, V]) GetOpt(key K) optional.Value[V] {
	if i := indexOf(m.keys, key); i >= 0 {
		return optional.Some(m.values[i])
	}

	return optional.None[V]()
}

// GetOrElse retrieves the value stored under key, or defaultValue when the
// key is absent.
func (m *OrderedMap[K, V]) GetOrElse(key K, defaultValue V) V {
	return m.GetOpt(key).GetOrElse(defaultValue)
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	return indexOf(m.keys, key) >= 0
}

// Size returns the number of entries currently stored.
func (m *OrderedMap[K, V]) Size() int {
	return len(m.keys)
}

// Set inserts or updates the entry for key and returns the receiver for
// chaining. An existing key keeps its position; a new key is appended after
// all current entries.
func (m *OrderedMap[K, V]) Set(key K, value V) *OrderedMap[K, V] {
	if i := indexOf(m.keys, key); i >= 0 {
		// Equal keys can still be distinct representations (e.g. ±0.0),
		// so the stored key is replaced along with the value.
		m.keys[i] = key
		m.values[i] = value

		return m
	}

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)

	return m
}

// Upsert sets key to update(current), where current is Some(existing value)
// or None when the key is absent. Returns the receiver for chaining.
//
// The net effect is insert-or-transform in a single call:
//
//	counts.Upsert("requests", func(n optional.Value[int]) int {
//	    return n.GetOrElse(0) + 1
//	})
func (m *OrderedMap[K, V]) Upsert(key K, update func(current optional.Value[V]) V) *OrderedMap[K, V] {
	return m.Set(key, update(m.GetOpt(key)))
}

// Map returns a new OrderedMap with the same keys in the same order and each
// value replaced by f(key, value). The receiver is not modified. A panic in
// f propagates to the caller.
func (m *OrderedMap[K, V]) Map(f func(key K, value V) V) *OrderedMap[K, V] {
	mapped := make([]V, len(m.values))
	for i, k := range m.keys {
		mapped[i] = f(k, m.values[i])
	}

	return &OrderedMap[K, V]{
		keys:   slices.Clone(m.keys),
		values: mapped,
	}
}

// Clone returns a shallow copy of the map: entries and order are duplicated,
// keys and values themselves are referenced as-is.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys:   slices.Clone(m.keys),
		values: slices.Clone(m.values),
	}
}

// Seq returns an iterator over all entries in insertion order, yielding
// (index, entry) pairs: for i, entry := range m.Seq() { ... }
func (m *OrderedMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return pairSeq(m.keys, m.values)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns a copy of the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	return slices.Clone(m.values)
}

// MarshalJSON encodes the map as a JSON object whose members appear in
// insertion order. The exact byte layout is not a stable contract.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	return marshalPairs(m.keys, m.values)
}
