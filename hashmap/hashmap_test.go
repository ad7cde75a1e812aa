package hashmap

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the occupancy count, key uniqueness and that every
// pair is reachable from its home slot without crossing an empty slot.
func checkInvariants[V any](t *testing.T, m *Map[V]) {
	t.Helper()

	occupied := 0
	seen := map[string]int{}
	for i, p := range m.slots {
		if p == nil {
			continue
		}
		occupied++

		prev, dup := seen[string(p.Key)]
		require.Falsef(t, dup, "key %q in slots %d and %d", p.Key, prev, i)
		seen[string(p.Key)] = i

		for j := homeSlot(p.Key, len(m.slots)); j != i; j = (j + 1) % len(m.slots) {
			require.NotNilf(t, m.slots[j], "empty slot %d cuts the run of %q (home %d, slot %d)",
				j, p.Key, homeSlot(p.Key, len(m.slots)), i)
		}
	}
	require.Equal(t, occupied, m.count)
	require.LessOrEqual(t, m.count, len(m.slots))
}

func newMap[V any](t *testing.T, capacity int, opts ...Option) *Map[V] {
	t.Helper()
	m := New[V](opts...)
	require.NoError(t, m.Init(capacity))
	return m
}

func TestInit(t *testing.T) {
	m := New[int]()
	require.Equal(t, 0, m.Cap())

	require.ErrorIs(t, m.Init(0), ErrZeroCapacity)
	require.ErrorIs(t, m.Init(-4), ErrZeroCapacity)
	require.Equal(t, 0, m.Cap())

	require.NoError(t, m.Init(3))
	require.Equal(t, 3, m.Cap())
	require.Equal(t, 0, m.Len())

	require.ErrorIs(t, m.Init(8), ErrAlreadyInitialized)
	require.Equal(t, 3, m.Cap())
}

func TestUninitialized(t *testing.T) {
	var m Map[int]

	require.ErrorIs(t, m.Insert([]byte("a"), 1), ErrNotInitialized)

	_, ok, err := m.Get([]byte("a"))
	require.ErrorIs(t, err, ErrNotInitialized)
	require.False(t, ok)

	p, ok, err := m.Ref([]byte("a"))
	require.ErrorIs(t, err, ErrNotInitialized)
	require.False(t, ok)
	require.Nil(t, p)
}

func TestInsert(t *testing.T) {
	t.Run("inserting a key-value pair", func(t *testing.T) {
		m := newMap[int](t, 2)
		require.NoError(t, m.Insert([]byte("a"), 1))

		v, ok, err := m.Get([]byte("a"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, v)
		checkInvariants(t, m)
	})

	t.Run("inserting with collision", func(t *testing.T) {
		require.Equal(t, Djb2([]byte("ab"))%2, Djb2([]byte("ba"))%2)

		m := newMap[int](t, 2)
		require.NoError(t, m.Insert([]byte("ab"), 1))
		require.NoError(t, m.Insert([]byte("ba"), 2))

		v, ok, err := m.Get([]byte("ab"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, v)

		v, ok, err = m.Get([]byte("ba"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2, v)

		require.Equal(t, 2, m.Cap())
		checkInvariants(t, m)
	})

	t.Run("inserting with overflow", func(t *testing.T) {
		m := newMap[int](t, 2)
		original := m.Cap()

		require.NoError(t, m.Insert([]byte("a"), 1))
		require.NoError(t, m.Insert([]byte("b"), 2))
		// Full, but not yet grown.
		require.Equal(t, original, m.Cap())
		require.NoError(t, m.Insert([]byte("c"), 3))

		require.Equal(t, original*2, m.Cap())
		require.Equal(t, 3, m.Len())
		for i, key := range []string{"a", "b", "c"} {
			v, ok, err := m.Get([]byte(key))
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, i+1, v)
		}
		checkInvariants(t, m)
	})

	t.Run("overriding existing value", func(t *testing.T) {
		m := newMap[int](t, 2)
		require.NoError(t, m.Insert([]byte("a"), 1))
		require.NoError(t, m.Insert([]byte("a"), 2))

		v, ok, err := m.Get([]byte("a"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2, v)
		require.Equal(t, 1, m.Len())
		checkInvariants(t, m)
	})
}

func TestInsertCopiesKey(t *testing.T) {
	m := newMap[int](t, 4)
	key := []byte("key")
	require.NoError(t, m.Insert(key, 1))

	key[0] = 'K'
	_, ok, err := m.Get([]byte("key"))
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = m.Get(key)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOverwriteKeepsStoredKey(t *testing.T) {
	m := newMap[int](t, 2)
	require.NoError(t, m.Insert([]byte("a"), 1))
	require.NoError(t, m.Insert([]byte("b"), 2))

	index, found, _ := probe(m.slots, []byte("a"))
	require.True(t, found)
	pair := m.slots[index]
	stored := pair.Key

	// Overwrite while the table is full: no resize, no new key copy.
	require.NoError(t, m.Insert([]byte("a"), 10))
	require.Equal(t, 2, m.Cap())
	require.Equal(t, 2, m.Len())
	require.Same(t, pair, m.slots[index])
	require.Same(t, &stored[0], &m.slots[index].Key[0])
	require.Equal(t, 10, pair.Value)
}

func TestGrowMovesPairs(t *testing.T) {
	m := newMap[string](t, 2)
	require.NoError(t, m.Insert([]byte("a"), "A"))
	require.NoError(t, m.Insert([]byte("b"), "B"))

	before := map[string]*Pair[string]{}
	for _, p := range m.slots {
		before[string(p.Key)] = p
	}

	require.NoError(t, m.Insert([]byte("c"), "C"))
	require.Equal(t, 4, m.Cap())

	for _, p := range m.slots {
		if p == nil {
			continue
		}
		if old, ok := before[string(p.Key)]; ok {
			require.Same(t, old, p)
		}
	}
	checkInvariants(t, m)
}

func TestGrowIsReactiveOnly(t *testing.T) {
	m := newMap[int](t, 16)
	for i := 0; i < 16; i++ {
		require.NoError(t, m.Insert([]byte(fmt.Sprintf("k%02d", i)), i))
		// No load factor: the table only grows once completely full.
		require.Equal(t, 16, m.Cap())
	}
	require.Equal(t, 16, m.Len())

	require.NoError(t, m.Insert([]byte("one more"), 16))
	require.Equal(t, 32, m.Cap())
	checkInvariants(t, m)
}

func TestGet(t *testing.T) {
	t.Run("returning value", func(t *testing.T) {
		m := newMap[int](t, 2)
		require.NoError(t, m.Insert([]byte("a"), 1))

		v, ok, err := m.Get([]byte("a"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, v)
	})

	t.Run("miss when nonexistent", func(t *testing.T) {
		m := newMap[int](t, 2)
		v, ok, err := m.Get([]byte("a"))
		require.NoError(t, err)
		require.False(t, ok)
		require.Zero(t, v)
	})

	t.Run("miss on a full table", func(t *testing.T) {
		m := newMap[int](t, 2)
		require.NoError(t, m.Insert([]byte("a"), 1))
		require.NoError(t, m.Insert([]byte("b"), 2))

		_, ok, err := m.Get([]byte("zz"))
		require.NoError(t, err)
		require.False(t, ok)
		// A miss never grows the table.
		require.Equal(t, 2, m.Cap())
	})

	t.Run("empty key", func(t *testing.T) {
		m := newMap[int](t, 3)
		require.NoError(t, m.Insert(nil, 7))
		v, ok, err := m.Get([]byte{})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 7, v)
	})
}

func TestRef(t *testing.T) {
	m := newMap[[]string](t, 4)
	require.NoError(t, m.Insert([]byte("list"), nil))

	p, ok, err := m.Ref([]byte("list"))
	require.NoError(t, err)
	require.True(t, ok)
	*p = append(*p, "x", "y")

	v, ok, err := m.Get([]byte("list"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, v)

	p, ok, err = m.Ref([]byte("missing"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, p)
}

func TestRefSurvivesGrow(t *testing.T) {
	m := newMap[int](t, 2)
	require.NoError(t, m.Insert([]byte("a"), 1))

	p, ok, err := m.Ref([]byte("a"))
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		require.NoError(t, m.Insert([]byte(fmt.Sprintf("k%d", i)), i))
	}
	require.Greater(t, m.Cap(), 2)

	*p = 42
	v, ok, err := m.Get([]byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestManyKeys(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		n        int
		wantCap  int
	}{
		{"capacity one", 1, 100, 128},
		{"capacity three", 3, 50, 96},
		{"no growth needed", 64, 64, 64},
		{"exactly one growth", 64, 65, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMap[int](t, tt.capacity)
			for i := 0; i < tt.n; i++ {
				require.NoError(t, m.Insert([]byte(fmt.Sprintf("key-%d", i)), i))
				checkInvariants(t, m)
			}
			require.Equal(t, tt.n, m.Len())
			require.Equal(t, tt.wantCap, m.Cap())

			for i := 0; i < tt.n; i++ {
				v, ok, err := m.Get([]byte(fmt.Sprintf("key-%d", i)))
				require.NoError(t, err)
				require.True(t, ok)
				require.Equal(t, i, v)
			}

			// Overwrite everything; nothing moves.
			for i := 0; i < tt.n; i++ {
				require.NoError(t, m.Insert([]byte(fmt.Sprintf("key-%d", i)), -i))
			}
			require.Equal(t, tt.n, m.Len())
			require.Equal(t, tt.wantCap, m.Cap())
			checkInvariants(t, m)
		})
	}
}

func TestAll(t *testing.T) {
	m := newMap[int](t, 8)
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		require.NoError(t, m.Insert([]byte(k), v))
	}

	got := map[string]int{}
	for k, v := range m.All() {
		got[string(k)] = v
	}
	assert.Equal(t, want, got)

	n := 0
	for range m.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)

	// Iterating an uninitialized map yields nothing.
	var empty Map[int]
	for range empty.All() {
		t.Fatal("unexpected pair")
	}
}

func TestDebugString(t *testing.T) {
	m := newMap[int](t, 2)
	require.Equal(t, "{ }", m.DebugString("%d"))

	require.NoError(t, m.Insert([]byte("a"), 1))
	require.NoError(t, m.Insert([]byte("b"), 2))
	// "a" hashes to slot 0 and "b" to slot 1.
	require.Equal(t, `{ "a" = 1; "b" = 2; }`, m.DebugString("%d"))
}

func TestFreeThenReuse(t *testing.T) {
	m := newMap[int](t, 2)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, m.Insert([]byte(k), 1))
	}
	m.Free()
	require.Equal(t, 0, m.Cap())
	require.Equal(t, 0, m.Len())
	require.ErrorIs(t, m.Insert([]byte("a"), 1), ErrNotInitialized)

	// Behaves exactly like a fresh map.
	require.NoError(t, m.Init(2))
	fresh := newMap[int](t, 2)
	for i, k := range []string{"x", "y", "z"} {
		require.NoError(t, m.Insert([]byte(k), i))
		require.NoError(t, fresh.Insert([]byte(k), i))
	}
	require.Equal(t, fresh.Cap(), m.Cap())
	require.Equal(t, fresh.Len(), m.Len())
	require.Equal(t, fresh.DebugString("%d"), m.DebugString("%d"))
	_, ok, err := m.Get([]byte("a"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWithLogger(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	m := newMap[int](t, 1, WithLogger(logger.Sugar.WithServiceName("TestWithLogger")))
	require.NotNil(t, m.opts.Log)
	require.NoError(t, m.Insert([]byte("a"), 1))
	require.NoError(t, m.Insert([]byte("b"), 2))
	require.Equal(t, 2, m.Cap())
}

func TestProbe(t *testing.T) {
	a := &Pair[int]{Key: []byte("a")}
	b := &Pair[int]{Key: []byte("b")}
	c := &Pair[int]{Key: []byte("c")}

	tests := []struct {
		name      string
		slots     []*Pair[int]
		key       string
		wantIndex int
		wantFound bool
		wantFull  bool
	}{
		// "a" and "c" are at home in slot 0 of a two slot table, "b" in slot 1.
		{"empty home slot", []*Pair[int]{nil, nil}, "a", 0, false, false},
		{"hit at home", []*Pair[int]{a, nil}, "a", 0, true, false},
		{"hit after a step", []*Pair[int]{a, c}, "c", 1, true, false},
		{"hit after wrapping", []*Pair[int]{b, a}, "b", 0, true, false},
		{"empty after wrapping", []*Pair[int]{nil, a}, "b", 0, false, false},
		{"full cycle", []*Pair[int]{a, b}, "c", 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found, full := probe(tt.slots, []byte(tt.key))
			require.Equal(t, tt.wantFull, full)
			require.Equal(t, tt.wantFound, found)
			if !full {
				require.Equal(t, tt.wantIndex, index)
			}
		})
	}
}

func TestKeysAreBytesNotStrings(t *testing.T) {
	m := newMap[int](t, 4)
	require.NoError(t, m.Insert([]byte{0, 1, 2}, 1))
	require.NoError(t, m.Insert([]byte{0, 1}, 2))

	for k, v := range m.All() {
		if bytes.Equal(k, []byte{0, 1, 2}) {
			require.Equal(t, 1, v)
		} else {
			require.Equal(t, 2, v)
		}
	}
}
