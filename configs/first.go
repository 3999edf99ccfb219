package configs

import (
	"errors"
)

// First returns the first definition of path across the config files,
// or the zero value when no file defines it. Malformed values panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
