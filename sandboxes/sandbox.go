package sandboxes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrAbort tags errors that must escape Execute instead of being
// rendered into the observation. Seeded hooks join it onto failures
// that should kill the whole run, for example a completion error
// inside a recursive call.
var ErrAbort = errors.New("sandbox abort")

// NoOutput is the observation for a block that succeeds while printing
// nothing, so the model sees that the code ran.
const NoOutput = "[No output]"

const TruncationMarker = "\n...[output truncated]"

// Sandbox is a persistent Starlark namespace. Blocks executed in turn
// see the bindings of earlier blocks, including bindings made before a
// failure. All access beyond the namespace goes through the
// construction-time policy.
type Sandbox struct {
	policy  CapabilityPolicy
	globals starlark.StringDict
	limit   int
	steps   int
	logger  logs.Logger
	tap     debugs.Tap
	count   int
}

type New func(seeds map[string]any) *Sandbox

func (Module) New(
	policy CapabilityPolicy,
	limit MaxOutputChars,
	steps MaxExecutionSteps,
	logger logs.Logger,
	tap debugs.Tap,
) New {
	return func(seeds map[string]any) *Sandbox {
		globals := make(starlark.StringDict, len(policy.Primitives)+len(seeds))
		for _, name := range policy.Primitives {
			builtin, ok := primitives[name]
			if !ok {
				panic(fmt.Errorf("no such primitive: %s", name))
			}
			globals[name] = builtin
		}
		for name, value := range seeds {
			globals[name] = ToStarlark(name, value)
		}
		return &Sandbox{
			policy:  policy,
			globals: globals,
			limit:   int(limit),
			steps:   int(steps),
			logger:  logger,
			tap:     tap,
		}
	}
}

var tapSandbox = cmds.Switch("-tap-sandbox")

// Chunks are parsed like the REPL parses them, so top-level control
// flow, while, set and re-assignment all work the way generated code
// expects.
var fileOptions = &syntax.FileOptions{
	Set:               true,
	While:             true,
	TopLevelControl:   true,
	GlobalReassign:    true,
	LoadBindsGlobally: true,
	Recursion:         true,
}

// Execute runs one block against the namespace and returns the
// observation. Print output accumulates in order; on failure the
// backtrace is appended after whatever printed before it, and bindings
// made before the failure stay. The returned error is non-nil only for
// ErrAbort-tagged failures.
func (s *Sandbox) Execute(ctx context.Context, src string) (string, error) {
	s.count++
	name := fmt.Sprintf("block-%d", s.count)

	buf := new(bytes.Buffer)
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(buf, msg)
		},
		Load: s.load,
	}
	if s.steps > 0 {
		thread.SetMaxExecutionSteps(uint64(s.steps))
	}
	if ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()
	}

	if err := s.run(thread, name, src); err != nil {
		if errors.Is(err, ErrAbort) {
			return "", err
		}
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			fmt.Fprintln(buf, evalErr.Backtrace())
		} else {
			fmt.Fprintln(buf, err.Error())
		}
		s.logger.DebugContext(ctx, "block failed",
			"block", name,
			"error", err,
		)
		if *tapSandbox {
			globals := make(map[string]any, len(s.globals))
			for bound, value := range s.globals {
				globals[bound] = value
			}
			s.tap(ctx, name+" failed", globals)
		}
		return truncate(buf.String(), s.limit), nil
	}

	if buf.Len() == 0 {
		return NoOutput, nil
	}
	return truncate(buf.String(), s.limit), nil
}

func (s *Sandbox) run(thread *starlark.Thread, name, src string) error {
	f, err := fileOptions.Parse(name, src, 0)
	if err != nil {
		return err
	}
	return starlark.ExecREPLChunk(f, thread, s.globals)
}

func (s *Sandbox) load(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	if !slices.Contains(s.policy.LoadRoots, module) {
		return nil, fmt.Errorf("cannot load %q: allowed modules are %s",
			module, strings.Join(s.policy.LoadRoots, ", "))
	}
	mod, ok := libModules[module]
	if !ok {
		return nil, fmt.Errorf("cannot load %q: not provided", module)
	}
	dict := make(starlark.StringDict, len(mod.Members)+1)
	maps.Copy(dict, mod.Members)
	dict[mod.Name] = mod
	return dict, nil
}

func truncate(output string, limit int) string {
	if limit <= 0 || len(output) <= limit {
		return output
	}
	return output[:limit] + TruncationMarker
}
