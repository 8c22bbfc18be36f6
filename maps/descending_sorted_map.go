package maps

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/seqmaps/optional"
	"github.com/amp-labs/seqmaps/zero"
)

// DescendingSortedMap is an associative container that keeps its entries
// ordered by value, highest first, at all times. It shares OrderedMap's
// parallel-slice storage and linear-scan lookups; only insertion differs.
//
// Entries with equal values appear in the order the insertion procedure
// produced them: a new entry lands after an existing run of equal values.
// Beyond that, tie order is not a contract.
//
// Not safe for unsynchronized concurrent mutation.
type DescendingSortedMap[K comparable, V cmp.Ordered] struct {
	keys   []K
	values []V
}

var _ Map[string, int] = (*DescendingSortedMap[string, int])(nil)

// NewDescendingSortedMap creates an empty DescendingSortedMap.
func NewDescendingSortedMap[K comparable, V cmp.Ordered]() *DescendingSortedMap[K, V] {
	return &DescendingSortedMap[K, V]{}
}

// NewDescendingSortedMapOf creates a DescendingSortedMap seeded so that
// keys[i] maps to values[i], reordered jointly so that values are
// non-increasing. Both slices are copied before sorting; the caller's slices
// stay untouched.
//
// Behavior is undefined when the slices differ in length or keys contains
// duplicates — neither condition is validated.
func NewDescendingSortedMapOf[K comparable, V cmp.Ordered](keys []K, values []V) *DescendingSortedMap[K, V] {
	m := &DescendingSortedMap[K, V]{
		keys:   slices.Clone(keys),
		values: slices.Clone(values),
	}
	sortPairsDescending(m.keys, m.values)

	return m
}

// NewDescendingSortedMapOfLegacy sorts a copy of the seed data and then
// discards it, returning an empty map. It mirrors the constructor behavior
// of an earlier revision of this container, where the sorted seed never
// reached the backing storage, and exists only so callers that grew to
// depend on that behavior keep working during migration.
//
// Deprecated: use NewDescendingSortedMapOf, which retains the seed entries.
func NewDescendingSortedMapOfLegacy[K comparable, V cmp.Ordered](keys []K, values []V) *DescendingSortedMap[K, V] {
	sortedKeys := slices.Clone(keys)
	sortedValues := slices.Clone(values)
	sortPairsDescending(sortedKeys, sortedValues)

	// The sorted result is intentionally dropped.
	return NewDescendingSortedMap[K, V]()
}

// sortPairsDescending reorders keys and values jointly so that values are
// non-increasing. Full pairwise comparison pass, O(n²); the relative order
// of entries with equal values is unspecified.
func sortPairsDescending[K comparable, V cmp.Ordered](keys []K, values []V) {
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] < values[j] {
				keys[i], keys[j] = keys[j], keys[i]
				values[i], values[j] = values[j], values[i]
			}
		}
	}
}

// Get retrieves the value stored under key.
// Returns the zero value of V and found=false when the key is absent.
func (m *DescendingSortedMap[K, V]) Get(key K) (V, bool) {
	if i := indexOf(m.keys, key); i >= 0 {
		return m.values[i], true
	}

	return zero.Value[V](), false
}

// GetOpt retrieves the value stored under key as an optional.Value,
// which is None when the key is absent.
func (m *DescendingSortedMap[K, V]) GetOpt(key K) optional.Value[V] {
	if i := indexOf(m.keys, key); i >= 0 {
		return optional.Some(m.values[i])
	}

	return optional.None[V]()
}

// GetOrElse retrieves the value stored under key, or defaultValue when the
// key is absent.
func (m *DescendingSortedMap[K, V]) GetOrElse(key K, defaultValue V) V {
	return m.GetOpt(key).GetOrElse(defaultValue)
}

// Has reports whether key is present.
func (m *DescendingSortedMap[K, V]) Has(key K) bool {
	return indexOf(m.keys, key) >= 0
}

// Size returns the number of entries currently stored.
func (m *DescendingSortedMap[K, V]) Size() int {
	return len(m.keys)
}

// Set inserts or updates the entry for key and returns the receiver for
// chaining. An existing entry for key is removed first, then (key, value) is
// placed at the position that keeps values non-increasing. A value equal to
// existing ones lands after the run of equal values, so earlier insertions
// stay in front.
func (m *DescendingSortedMap[K, V]) Set(key K, value V) *DescendingSortedMap[K, V] {
	if i := indexOf(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
		m.values = slices.Delete(m.values, i, i+1)
	}

	// Walk left from the end while the neighbor is strictly smaller.
	i := len(m.values)
	for i > 0 && m.values[i-1] < value {
		i--
	}

	m.keys = slices.Insert(m.keys, i, key)
	m.values = slices.Insert(m.values, i, value)

	return m
}

// Upsert sets key to update(current), where current is Some(existing value)
// or None when the key is absent, routing the write through the sorted Set
// so the descending order holds afterwards. Returns the receiver for
// chaining.
func (m *DescendingSortedMap[K, V]) Upsert(key K, update func(current optional.Value[V]) V) *DescendingSortedMap[K, V] {
	return m.Set(key, update(m.GetOpt(key)))
}

// Map returns a new DescendingSortedMap with the same keys and each value
// replaced by f(key, value), re-sorted so the descending order holds for the
// transformed values. The receiver is not modified. A panic in f propagates
// to the caller.
func (m *DescendingSortedMap[K, V]) Map(f func(key K, value V) V) *DescendingSortedMap[K, V] {
	mapped := make([]V, len(m.values))
	for i, k := range m.keys {
		mapped[i] = f(k, m.values[i])
	}

	return NewDescendingSortedMapOf(m.keys, mapped)
}

// Clone returns a shallow copy of the map: entries and order are duplicated,
// keys and values themselves are referenced as-is.
func (m *DescendingSortedMap[K, V]) Clone() *DescendingSortedMap[K, V] {
	return &DescendingSortedMap[K, V]{
		keys:   slices.Clone(m.keys),
		values: slices.Clone(m.values),
	}
}

// Seq returns an iterator over all entries in descending value order,
// yielding (index, entry) pairs.
func (m *DescendingSortedMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return pairSeq(m.keys, m.values)
}

// Keys returns a copy of the keys in descending value order.
func (m *DescendingSortedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns a copy of the values, highest first.
func (m *DescendingSortedMap[K, V]) Values() []V {
	return slices.Clone(m.values)
}

// MarshalJSON encodes the map as a JSON object whose members appear in
// descending value order. The exact byte layout is not a stable contract.
func (m *DescendingSortedMap[K, V]) MarshalJSON() ([]byte, error) {
	return marshalPairs(m.keys, m.values)
}
