package selfcheck

import (
	"github.com/forestrie/go-crzds/harness"
	"github.com/forestrie/go-crzds/hashmap"
)

// HashMap checks insert, collision handling, reactive growth and lookup on
// hashmap.Map.
func HashMap(h *harness.Harness) {
	var m hashmap.Map[int]

	h.AfterEach(m.Free)

	expectValue := func(key string, want int) {
		got, ok, err := m.Get([]byte(key))
		if !h.Expectf(err == nil && ok && got == want, "%q = %d (ok %v, err %v), want %d", key, got, ok, err, want) {
			h.Log("table = %s", m.DebugString("%d"))
		}
	}
	mustInit := func(capacity int) bool {
		return h.Expectf(m.Init(capacity) == nil, "init %d", capacity)
	}
	insert := func(key string, value int) {
		err := m.Insert([]byte(key), value)
		h.Expectf(err == nil, "insert %q: %v", key, err)
	}

	h.Describe("Map.Insert", func() {
		h.Test("Inserting a key-value pair", func() {
			if !mustInit(2) {
				return
			}
			insert("a", 1)
			expectValue("a", 1)
		})

		h.Test("Properly inserting with collision", func() {
			// The two keys share a home slot.
			h.Expect(hashmap.Djb2([]byte("ab"))%2 == hashmap.Djb2([]byte("ba"))%2)
			if !mustInit(2) {
				return
			}
			insert("ab", 1)
			insert("ba", 2)
			expectValue("ab", 1)
			expectValue("ba", 2)
		})

		h.Test("Properly inserting with overflow", func() {
			if !mustInit(2) {
				return
			}
			original := m.Cap()
			insert("a", 1)
			insert("b", 2)
			insert("c", 3)
			expectValue("a", 1)
			expectValue("b", 2)
			expectValue("c", 3)
			h.Expectf(m.Cap() == original*2, "capacity %d, want %d", m.Cap(), original*2)
		})

		h.Test("Overriding existing value", func() {
			if !mustInit(2) {
				return
			}
			insert("a", 1)
			insert("a", 2)
			expectValue("a", 2)
			h.Expect(m.Len() == 1 && m.Cap() == 2)
		})

		h.Test("Rejecting an uninitialized map", func() {
			h.Expect(m.Insert([]byte("a"), 1) != nil)
		})
	})

	h.Describe("Map.Get", func() {
		h.Test("Returning value", func() {
			if !mustInit(2) {
				return
			}
			insert("a", 1)
			expectValue("a", 1)
		})

		h.Test("Returning a miss when nonexistent", func() {
			if !mustInit(2) {
				return
			}
			_, ok, err := m.Get([]byte("a"))
			h.Expect(err == nil && !ok)
		})
	})
}
