package seq

import (
	"fmt"
	"slices"
)

// Splice removes removeCount elements starting at index and inserts items in
// their place.
//
// index+removeCount must not exceed Len. On error the sequence is unchanged.
// items may alias the sequence's own elements, for example s.Slice()[1:3].
func (s *Sequence[T]) Splice(index, removeCount int, items ...T) error {
	if removeCount < 0 {
		return fmt.Errorf("%w: remove count %d", ErrNegativeCount, removeCount)
	}
	if index < 0 || index+removeCount > s.length {
		return fmt.Errorf(
			"%w: index %d, remove count %d, length %d",
			ErrIndexOutOfRange, index, removeCount, s.length)
	}

	newLength := s.length + len(items) - removeCount
	s.growTo(newLength)

	// The buffer now has room for newLength, so Replace works in place. It
	// also handles items overlapping the moved tail, and zeroes the slots a
	// shrinking splice vacates.
	s.buf = slices.Replace(s.buf[:s.length], index, index+removeCount, items...)[:len(s.buf):len(s.buf)]
	s.length = newLength
	return nil
}

// Insert inserts items before the element at index. index may equal Len.
func (s *Sequence[T]) Insert(index int, items ...T) error {
	return s.Splice(index, 0, items...)
}

// Remove removes count elements starting at index.
func (s *Sequence[T]) Remove(index, count int) error {
	return s.Splice(index, count)
}
