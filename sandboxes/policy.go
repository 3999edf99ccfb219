package sandboxes

import (
	starlarkjson "go.starlark.net/lib/json"
	starlarkmath "go.starlark.net/lib/math"
	starlarktime "go.starlark.net/lib/time"
	"go.starlark.net/starlarkstruct"
)

// CapabilityPolicy is the allow-list a sandbox is constructed with.
// Primitives are seeded into the namespace, LoadRoots name the modules
// load() accepts. Nothing widens the policy after construction.
type CapabilityPolicy struct {
	Primitives []string
	LoadRoots  []string
}

func (Module) CapabilityPolicy() CapabilityPolicy {
	return CapabilityPolicy{
		Primitives: []string{
			"pow",
			"round",
			"sum",
			"divmod",
		},
		LoadRoots: []string{
			"json",
			"math",
			"time",
		},
	}
}

var libModules = map[string]*starlarkstruct.Module{
	"json": starlarkjson.Module,
	"math": starlarkmath.Module,
	"time": starlarktime.Module,
}
