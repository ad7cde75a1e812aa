package hashmap

import "bytes"

// probe walks the probe run for key, starting at its home slot and wrapping
// at the end of slots.
//
// It returns the index of the slot holding key (found=true) or of the first
// empty slot on the run (found=false). full is true when the walk came back
// to the home slot having seen neither; index is meaningless in that case.
//
// slots must not be empty.
func probe[V any](slots []*Pair[V], key []byte) (index int, found bool, full bool) {
	capacity := len(slots)
	home := homeSlot(key, capacity)

	index = home
	for {
		existing := slots[index]
		if existing == nil {
			return index, false, false
		}
		if bytes.Equal(existing.Key, key) {
			return index, true, false
		}

		index++
		if index == capacity {
			index = 0
		}
		if index == home {
			return 0, false, true
		}
	}
}
