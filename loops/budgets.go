package loops

import (
	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/vars"
)

var (
	maxDepthFlag = cmds.Var[int]("-max-depth")
)

// MaxDepth bounds recursion. A task deeper than this gets the depth
// sentinel answer without a model call.
type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (MaxDepth) StarlarkConfigurable() {}

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return vars.FirstNonZero(
		MaxDepth(*maxDepthFlag),
		configs.First[MaxDepth](loader, "max_depth"),
		MaxDepth(4),
	)
}

var (
	maxIterationsFlag = cmds.Var[int]("-max-iterations")
)

// MaxIterations bounds the think / execute / observe turns of one
// invocation. Exhaustion yields the iteration sentinel answer.
type MaxIterations int

var _ configs.Configurable = MaxIterations(0)

func (MaxIterations) StarlarkConfigurable() {}

func (Module) MaxIterations(
	loader configs.Loader,
) MaxIterations {
	return vars.FirstNonZero(
		MaxIterations(*maxIterationsFlag),
		configs.First[MaxIterations](loader, "max_iterations"),
		MaxIterations(10),
	)
}
