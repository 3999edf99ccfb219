package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rlm/loops"
	"github.com/reusee/rlm/rlmconfigs"
)

type Module struct {
	dscope.Module
	Loops   loops.Module
	Configs rlmconfigs.Module
}
