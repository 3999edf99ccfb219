package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
