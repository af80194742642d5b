package store

// Ordered is a keyed collection that preserves insertion order.
//
// It backs the recipe metadata table, where lookup is by key but display and
// iteration must follow the order in which entries were first added. An Ordered
// store is exclusively owned by a single consumer and performs no locking.
type Ordered[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{
		items: make(map[K]V),
	}
}

// Set inserts the value under the given key. A new key is appended at the end
// of the iteration order, an existing key keeps its position.
func (s *Ordered[K, V]) Set(key K, value V) {
	if _, ok := s.items[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.items[key] = value
}

// Get returns the value stored under key.
func (s *Ordered[K, V]) Get(key K) (V, bool) {
	value, ok := s.items[key]

	return value, ok
}

// Has reports whether key is present.
func (s *Ordered[K, V]) Has(key K) bool {
	_, ok := s.items[key]

	return ok
}

// Keys returns a copy of all keys in insertion order.
func (s *Ordered[K, V]) Keys() []K {
	keys := make([]K, len(s.keys))
	copy(keys, s.keys)

	return keys
}

// Values returns all values in insertion order.
func (s *Ordered[K, V]) Values() []V {
	values := make([]V, 0, len(s.keys))
	for _, key := range s.keys {
		values = append(values, s.items[key])
	}

	return values
}

// Len returns the number of entries.
func (s *Ordered[K, V]) Len() int {
	return len(s.keys)
}

// Clone returns a shallow copy of the store. Values are copied as-is, so
// pointer values remain shared with the original.
func (s *Ordered[K, V]) Clone() *Ordered[K, V] {
	clone := &Ordered[K, V]{
		keys:  make([]K, len(s.keys)),
		items: make(map[K]V, len(s.items)),
	}
	copy(clone.keys, s.keys)
	for key, value := range s.items {
		clone.items[key] = value
	}

	return clone
}
