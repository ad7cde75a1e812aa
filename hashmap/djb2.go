package hashmap

const djb2Seed = 5381

// Djb2 returns the djb2 hash of key: starting from 5381, each byte c is
// folded in as hash*33 + c. Arithmetic wraps at 64 bits.
func Djb2(key []byte) uint64 {
	hash := uint64(djb2Seed)
	for _, c := range key {
		hash = (hash << 5) + hash + uint64(c)
	}
	return hash
}

// homeSlot returns the first slot probed for key in a table of capacity slots.
func homeSlot(key []byte, capacity int) int {
	return int(Djb2(key) % uint64(capacity))
}
