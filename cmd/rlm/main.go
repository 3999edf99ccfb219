package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/loops"
	"github.com/reusee/rlm/modes"
	"github.com/reusee/rlm/rlmconfigs"
	"golang.org/x/term"
)

var (
	solveArgs       = cmds.Var[string]("solve")
	demoFlag        = cmds.Switch("demo")
	replFlag        = cmds.Switch("repl")
	instructionFlag = cmds.Var[string]("-instruction")
)

const demoTask = "Calculate the 10th Fibonacci number. " +
	"Then, use that number to calculate its square root."

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope, err := rlmconfigs.StarlarkFork(scope)
	ce(err)

	scope.Call(func(
		logger logs.Logger,
		solve loops.Solve,
		tap debugs.Tap,
	) {

		if *replFlag {
			ce(runREPL(ctx, solve, tap, logger))
			return
		}

		var parts []string
		if *demoFlag {
			parts = append(parts, demoTask)
		} else if *solveArgs != "" {
			parts = append(parts, *solveArgs)
		}

		if stdin := getStdinContent(); len(stdin) > 0 {
			parts = append(parts, string(stdin))
		}

		for _, path := range files {
			content, err := fileContent(path)
			ce(err)
			parts = append(parts, content)
			logger.Info("file",
				"path", path,
			)
		}

		task := strings.Join(parts, "\n")
		if task == "" {
			cmds.GlobalExecutor.PrintUsage()
			return
		}
		logger.InfoContext(ctx, "task", "len", len(task))

		answer, err := solve(ctx, loops.Task{
			Prompt:          task,
			RootInstruction: *instructionFlag,
		})
		ce(err)

		fmt.Println(answer)
	})

}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
