package generators

import (
	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/vars"
)

var (
	maxTokensFlag = cmds.Var[int]("-max-tokens")
)

// DefaultMaxCompletionTokens applies to generators whose args carry no
// completion token cap of their own. Zero leaves the cap to the
// provider.
type DefaultMaxCompletionTokens int

var _ configs.Configurable = DefaultMaxCompletionTokens(0)

func (DefaultMaxCompletionTokens) StarlarkConfigurable() {}

func (Module) DefaultMaxCompletionTokens(
	loader configs.Loader,
) DefaultMaxCompletionTokens {
	return vars.FirstNonZero(
		DefaultMaxCompletionTokens(*maxTokensFlag),
		configs.First[DefaultMaxCompletionTokens](loader, "max_completion_tokens"),
	)
}
