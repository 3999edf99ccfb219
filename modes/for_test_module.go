package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides the calling test's *testing.T and the
// development mode, which among other things skips proxy resolution.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
