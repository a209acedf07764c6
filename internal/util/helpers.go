package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}
