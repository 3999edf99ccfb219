package sandboxes

import (
	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/vars"
)

var (
	maxOutputCharsFlag = cmds.Var[int]("-max-output-chars")
)

// MaxOutputChars caps observation size in bytes. Output beyond the cap
// is cut and marked truncated.
type MaxOutputChars int

var _ configs.Configurable = MaxOutputChars(0)

func (MaxOutputChars) StarlarkConfigurable() {}

func (Module) MaxOutputChars(
	loader configs.Loader,
) MaxOutputChars {
	return vars.FirstNonZero(
		MaxOutputChars(*maxOutputCharsFlag),
		configs.First[MaxOutputChars](loader, "max_output_chars"),
		MaxOutputChars(8000),
	)
}

var (
	maxExecutionStepsFlag = cmds.Var[int]("-max-execution-steps")
)

// MaxExecutionSteps bounds interpreter steps per executed block, so a
// runaway loop becomes an observation instead of a hang. Negative
// disables the bound.
type MaxExecutionSteps int

var _ configs.Configurable = MaxExecutionSteps(0)

func (MaxExecutionSteps) StarlarkConfigurable() {}

func (Module) MaxExecutionSteps(
	loader configs.Loader,
) MaxExecutionSteps {
	return vars.FirstNonZero(
		MaxExecutionSteps(*maxExecutionStepsFlag),
		configs.First[MaxExecutionSteps](loader, "max_execution_steps"),
		MaxExecutionSteps(10_000_000),
	)
}
