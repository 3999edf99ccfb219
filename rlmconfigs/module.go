package rlmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
