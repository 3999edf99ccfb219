package loops

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/generators"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/sandboxes"
)

type Module struct {
	dscope.Module
	Configs    configs.Module
	Generators generators.Module
	Logs       logs.Module
	Sandboxes  sandboxes.Module
}
