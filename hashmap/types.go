package hashmap

import "errors"

var (
	ErrNotInitialized     = errors.New("hashmap: map not initialized")
	ErrAlreadyInitialized = errors.New("hashmap: map already initialized")
	ErrZeroCapacity       = errors.New("hashmap: capacity must be positive")
)

// Pair is one occupied slot. Key is the map's own copy of the inserted key
// and must not be modified.
type Pair[V any] struct {
	Key   []byte
	Value V
}
