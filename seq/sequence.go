package seq

import (
	"fmt"
	"iter"
	"strings"
)

// Sequence is a growable contiguous buffer of T.
//
// The zero value is an empty sequence ready for use. Nothing is allocated
// until the first element is added.
type Sequence[T any] struct {
	// buf holds capacity slots; only buf[:length] is meaningful.
	buf    []T
	length int
	opts   Options
}

// New returns an empty sequence. It does not allocate a buffer.
func New[T any](opts ...Option) *Sequence[T] {
	return &Sequence[T]{opts: NewOptions(opts...)}
}

func (s *Sequence[T]) Len() int { return s.length }
func (s *Sequence[T]) Cap() int { return len(s.buf) }

func (s *Sequence[T]) minimum() int {
	if s.opts.MinimumCapacity < 1 {
		return MinimumCapacity
	}
	return s.opts.MinimumCapacity
}

// growTo ensures the buffer has at least required slots.
func (s *Sequence[T]) growTo(required int) {
	newCap := GrowCapacity(len(s.buf), s.minimum(), required)
	if newCap == len(s.buf) {
		return
	}
	buf := make([]T, newCap)
	copy(buf, s.buf[:s.length])
	s.buf = buf
}

// Reserve ensures there is room for n more elements without a further
// reallocation. n <= 0 is a no-op.
func (s *Sequence[T]) Reserve(n int) {
	if n <= 0 {
		return
	}
	s.growTo(s.length + n)
}

// Push appends item.
func (s *Sequence[T]) Push(item T) {
	s.growTo(s.length + 1)
	s.buf[s.length] = item
	s.length++
}

// PushMany appends items in order. Pushing nothing is a no-op.
func (s *Sequence[T]) PushMany(items ...T) {
	if len(items) == 0 {
		return
	}
	s.growTo(s.length + len(items))
	copy(s.buf[s.length:], items)
	s.length += len(items)
}

// PushOther appends every element of other. other may be s itself.
func (s *Sequence[T]) PushOther(other *Sequence[T]) {
	if other == nil {
		return
	}
	s.PushMany(other.buf[:other.length]...)
}

func (s *Sequence[T]) checkIndex(index int) error {
	if index < 0 || index >= s.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, s.length)
	}
	return nil
}

// Get returns the element at index.
func (s *Sequence[T]) Get(index int) (T, error) {
	if err := s.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[index], nil
}

// At returns a pointer to the element at index. The pointer is invalidated by
// any call that may grow the sequence.
func (s *Sequence[T]) At(index int) (*T, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.buf[index], nil
}

// Pop removes and returns the last element.
func (s *Sequence[T]) Pop() (T, error) {
	var zero T
	if s.length == 0 {
		return zero, ErrEmpty
	}
	s.length--
	item := s.buf[s.length]
	s.buf[s.length] = zero
	return item, nil
}

// Free drops the buffer and resets the sequence to empty. Elements are not
// inspected.
func (s *Sequence[T]) Free() {
	s.buf = nil
	s.length = 0
}

// Slice returns the live elements as a slice sharing the sequence's buffer.
// Its capacity is clipped to its length so appending to it never writes into
// the sequence.
func (s *Sequence[T]) Slice() []T {
	return s.buf[:s.length:s.length]
}

// All iterates index, element pairs in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// DebugString formats the elements as "[e0, e1, ...]" using format for each
// element, for example "%d".
func (s *Sequence[T]) DebugString(format string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < s.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, format, s.buf[i])
	}
	b.WriteByte(']')
	return b.String()
}
