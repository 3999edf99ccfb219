package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is the mode the rlm binary runs under. Providers
// that ask for *testing.T get nil.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
