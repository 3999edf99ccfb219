package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "block-1 failed", map[string]any{
			"context": "task payload",
			"fib":     starlark.MakeInt(55),
		})
	})
}
