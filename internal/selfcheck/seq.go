package selfcheck

import (
	"github.com/forestrie/go-crzds/harness"
	"github.com/forestrie/go-crzds/seq"
)

// Sequence checks push, pop, bulk push and splice on seq.Sequence.
func Sequence(h *harness.Harness) {
	contents := []int{1, 2, 3}
	var a, b seq.Sequence[int]

	h.AfterEach(func() {
		a.Free()
		b.Free()
	})

	dump := func(name string, s *seq.Sequence[int]) {
		h.Log("%s = %s", name, s.DebugString("%d"))
	}
	expectContents := func(s *seq.Sequence[int], want []int) {
		if !h.Expectf(s.Len() == len(want), "length %d, want %d", s.Len(), len(want)) {
			dump("got", s)
			return
		}
		for i, w := range want {
			got, err := s.Get(i)
			h.Expectf(err == nil && got == w, "element %d is %d (%v), want %d", i, got, err, w)
		}
	}

	h.Describe("Sequence.Push", func() {
		h.Test("Pushing a single element", func() {
			a.Push(1)
			got, err := a.Get(0)
			h.Expect(err == nil && got == 1)
		})
	})

	h.Describe("Sequence.Pop", func() {
		h.Test("Removes and returns last element", func() {
			a.Push(1)
			got, err := a.Pop()
			h.Expect(err == nil && got == 1)
			h.Expect(a.Len() == 0)
		})
		h.Test("Rejects an empty sequence", func() {
			_, err := a.Pop()
			h.Expect(err != nil)
		})
	})

	h.Describe("Sequence.PushMany", func() {
		h.Test("Pushing the entirety of contents", func() {
			a.PushMany(contents...)
			expectContents(&a, contents)
		})
		h.Test("Pushing only part of contents", func() {
			a.PushMany(contents[:len(contents)-1]...)
			expectContents(&a, contents[:len(contents)-1])
		})
		h.Test("Pushing nothing", func() {
			a.PushMany()
			h.Expect(a.Len() == 0)
		})
	})

	h.Describe("Sequence.PushOther", func() {
		h.Test("Pushing to an empty sequence", func() {
			b.PushMany(1, 2, 3)
			a.PushOther(&b)
			expectContents(&a, b.Slice())
		})
		h.Test("Pushing to a prefilled sequence", func() {
			a.PushMany(4, 5, 6)
			b.PushMany(1, 2, 3)
			a.PushOther(&b)
			expectContents(&a, []int{4, 5, 6, 1, 2, 3})
		})
	})

	h.Describe("Sequence.Splice", func() {
		h.Test("Splicing as no-op", func() {
			h.Expect(a.Splice(0, 0) == nil)
			h.Expect(a.Len() == 0)
		})
		h.Test("Splicing as adding", func() {
			h.Expect(a.Splice(0, 0, contents...) == nil)
			expectContents(&a, contents)
		})
		h.Test("Splicing as removing", func() {
			a.PushMany(contents...)
			h.Expect(a.Splice(0, len(contents)) == nil)
			h.Expect(a.Len() == 0)
		})
		h.Test("Splicing as adding and removing", func() {
			a.PushMany(1, 2, 3)
			h.Expect(a.Splice(1, 1, 1, 2, 3) == nil)
			expectContents(&a, []int{1, 1, 2, 3, 3})
		})
		h.Test("Splicing out of range changes nothing", func() {
			a.PushMany(1, 2, 3)
			h.Expect(a.Splice(2, 2, 9) != nil)
			expectContents(&a, []int{1, 2, 3})
		})
	})

	h.Describe("Sequence.Free", func() {
		h.Test("Reuse after free", func() {
			a.PushMany(1, 2, 3, 4, 5, 6, 7, 8, 9)
			a.Free()
			h.Expect(a.Len() == 0 && a.Cap() == 0)
			a.Push(5)
			expectContents(&a, []int{5})
			h.Expectf(a.Cap() == seq.MinimumCapacity, "capacity %d", a.Cap())
		})
	})
}
