package hashmap

import (
	"bytes"
	"fmt"
	"iter"
	"strings"
)

// Map is an open addressing hash table from byte-string keys to V.
//
// The zero value and the result of New are uninitialized; Init must be called
// with a positive capacity before Insert or Get. A Map is not safe for
// concurrent use.
type Map[V any] struct {
	slots []*Pair[V]
	count int
	opts  Options
}

func New[V any](opts ...Option) *Map[V] {
	return &Map[V]{opts: NewOptions(opts...)}
}

// Init allocates initialCapacity empty slots.
func (m *Map[V]) Init(initialCapacity int) error {
	if m.slots != nil {
		return fmt.Errorf("%w: capacity %d", ErrAlreadyInitialized, len(m.slots))
	}
	if initialCapacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrZeroCapacity, initialCapacity)
	}
	m.slots = make([]*Pair[V], initialCapacity)
	m.count = 0
	return nil
}

// Len returns the number of occupied slots.
func (m *Map[V]) Len() int { return m.count }

// Cap returns the number of slots. It is zero until Init.
func (m *Map[V]) Cap() int { return len(m.slots) }

// Insert sets the value for key. A new key is copied into the map; for an
// existing key only the value is replaced.
//
// If the table has no empty slot left for a new key, it is doubled first.
func (m *Map[V]) Insert(key []byte, value V) error {
	if len(m.slots) == 0 {
		return ErrNotInitialized
	}

	index, found, full := probe(m.slots, key)
	if full {
		m.grow()
		// Cannot be full again: there are now more slots than pairs.
		index, found, _ = probe(m.slots, key)
	}

	if found {
		m.slots[index].Value = value
		return nil
	}
	m.slots[index] = &Pair[V]{Key: bytes.Clone(key), Value: value}
	m.count++
	return nil
}

// grow rehashes every pair into a table twice the size. Pairs are moved by
// pointer, so their keys are not copied.
func (m *Map[V]) grow() {
	old := m.slots
	slots := make([]*Pair[V], 2*len(old))
	for _, p := range old {
		if p == nil {
			continue
		}
		index, _, _ := probe(slots, p.Key)
		slots[index] = p
	}
	m.slots = slots

	if m.opts.Log != nil {
		m.opts.Log.Debugf("hashmap.grow: capacity %d -> %d, pairs %d", len(old), len(slots), m.count)
	}
}

// Get returns the value for key. A missing key is reported by ok=false and a
// nil error. Get never allocates or modifies the map.
func (m *Map[V]) Get(key []byte) (value V, ok bool, err error) {
	p, err := m.lookup(key)
	if err != nil || p == nil {
		return value, false, err
	}
	return p.Value, true, nil
}

// Ref returns a pointer to the stored value for key, for in place updates.
// Pairs are never reallocated, so the pointer stays valid across later
// Inserts, including ones that grow the table, until Free.
func (m *Map[V]) Ref(key []byte) (*V, bool, error) {
	p, err := m.lookup(key)
	if err != nil || p == nil {
		return nil, false, err
	}
	return &p.Value, true, nil
}

func (m *Map[V]) lookup(key []byte) (*Pair[V], error) {
	if len(m.slots) == 0 {
		return nil, ErrNotInitialized
	}
	index, found, _ := probe(m.slots, key)
	if !found {
		return nil, nil
	}
	return m.slots[index], nil
}

// All iterates the pairs in slot order. The key slices belong to the map and
// must not be modified.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for _, p := range m.slots {
			if p == nil {
				continue
			}
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// DebugString formats the pairs in slot order as
//
//	{ "k0" = v0; "k1" = v1; }
//
// using format for each value, for example "%d".
func (m *Map[V]) DebugString(format string) string {
	var b strings.Builder
	b.WriteByte('{')
	for key, value := range m.All() {
		fmt.Fprintf(&b, " %q = ", key)
		fmt.Fprintf(&b, format, value)
		b.WriteByte(';')
	}
	b.WriteString(" }")
	return b.String()
}

// Free drops every pair and the slot array. The map must be initialized
// again before reuse. Values are not inspected.
func (m *Map[V]) Free() {
	m.slots = nil
	m.count = 0
}
