package seq

import "errors"

// MinimumCapacity is the smallest capacity a non-empty sequence is given
// unless WithMinimumCapacity says otherwise.
const MinimumCapacity = 8

var (
	ErrIndexOutOfRange = errors.New("seq: index out of range")
	ErrNegativeCount   = errors.New("seq: negative count")
	ErrEmpty           = errors.New("seq: sequence is empty")
)
