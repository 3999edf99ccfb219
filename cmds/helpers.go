package cmds

// Var defines a command named name that sets a value of type T from the next
// argument, like "-max-depth 6". The command "name." resets the value to zero.
func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a boolean command, like "-safe". The command "!name" turns
// the switch back off.
func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines a command that appends one value per occurrence. The
// command "name." drops everything collected so far.
func Collect[T any](name string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}))
	// drop
	Define(name+".", Func(func() {
		value = nil
	}))
	return &value
}
