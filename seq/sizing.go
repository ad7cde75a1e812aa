package seq

// GrowCapacity returns the capacity a buffer currently sized for capacity
// elements must have to hold required elements.
//
// If capacity already suffices it is returned unchanged. Otherwise the result
// is
//
//	max(2*capacity, minimum, required)
//
// so the result is never smaller than capacity.
func GrowCapacity(capacity, minimum, required int) int {
	if capacity >= required {
		return capacity
	}
	newCap := capacity * 2
	if newCap < minimum {
		newCap = minimum
	}
	if newCap < required {
		newCap = required
	}
	return newCap
}
