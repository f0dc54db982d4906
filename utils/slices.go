package utils

// FindIndex returns the position of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Last returns the final element of slice, if any.
func Last[T any](slice []T) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}
	return slice[len(slice)-1], true
}

// Pop removes the final element. Popping an empty slice returns it unchanged.
func Pop[T any](slice []T) ([]T, T, bool) {
	last, ok := Last(slice)
	if !ok {
		return slice, last, false
	}
	return slice[:len(slice)-1], last, true
}
