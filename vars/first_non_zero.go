package vars

// FirstNonZero returns the first value that is not the zero value.
// Providers use it to layer flag, config file, and default values.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
