package sandboxes

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
