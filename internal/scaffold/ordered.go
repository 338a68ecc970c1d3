package scaffold

// Pair is one key/value entry of an OrderedMap.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that iterates in insertion order.
// Setting an existing key replaces its value in place; the key keeps its
// original position.
type OrderedMap[K comparable, V any] struct {
	pairs []Pair[K, V]
	index map[K]int
}

// NewOrderedMap returns a map populated from pairs, applied in order.
func NewOrderedMap[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := &OrderedMap[K, V]{index: make(map[K]int, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set inserts or replaces the value for key.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair[K, V]{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.pairs[i].Value, true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Pairs returns a copy of the entries in insertion order.
func (m *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[K, V], len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Key
	}
	return out
}

// Values returns the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, len(m.pairs))
	for i, p := range m.pairs {
		out[i] = p.Value
	}
	return out
}

// TransferMap maps template identifiers (relative to a template root) to
// destination paths.
type TransferMap = OrderedMap[string, string]

// PlaceholderMap maps literal placeholder tokens to their replacements.
type PlaceholderMap = OrderedMap[string, string]

// NewTransferMap builds a TransferMap from alternating identifier/destination strings.
// It panics on an odd number of arguments; declarations are static.
func NewTransferMap(kv ...string) *TransferMap {
	return newStringMap(kv)
}

// NewPlaceholderMap builds a PlaceholderMap from alternating token/replacement strings.
// It panics on an odd number of arguments; declarations are static.
func NewPlaceholderMap(kv ...string) *PlaceholderMap {
	return newStringMap(kv)
}

func newStringMap(kv []string) *OrderedMap[string, string] {
	if len(kv)%2 != 0 {
		panic("scaffold: odd number of key/value arguments")
	}
	m := NewOrderedMap[string, string]()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}
