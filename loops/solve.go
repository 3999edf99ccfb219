package loops

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/extracts"
	"github.com/reusee/rlm/generators"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/sandboxes"
)

var safeFlag = cmds.Switch("-safe")

// Names bound into every sandbox namespace.
const (
	ContextName = "context"
	HookName    = "rlm_query"
)

type Solve func(ctx context.Context, task Task) (string, error)

func (Module) Solve(
	getGenerator generators.GetDefaultGenerator,
	newSandbox sandboxes.New,
	systemPrompt SystemPrompt,
	maxDepth MaxDepth,
	maxIterations MaxIterations,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Solve {

	var solve func(ctx context.Context, task Task) (string, error)
	solve = func(ctx context.Context, task Task) (string, error) {

		if task.Depth > int(maxDepth) {
			return DepthSentinel(int(maxDepth)), nil
		}

		generator, err := getGenerator()
		if err != nil {
			return "", err
		}

		ctx, _ = newSpan(ctx, "")
		logger.InfoContext(ctx, "solve",
			"depth", task.Depth,
			"model", generator.Args().Model,
		)

		// The namespace and the history below are owned by this
		// invocation alone. A recursive call builds both anew, so the
		// parent never sees the child's intermediate turns.
		sandbox := newSandbox(map[string]any{
			ContextName: task.Prompt,
			HookName: func(prompt string) (string, error) {
				answer, err := solve(ctx, Task{
					Prompt: prompt,
					Depth:  task.Depth + 1,
				})
				if err != nil {
					return "", errors.Join(err, sandboxes.ErrAbort)
				}
				return answer, nil
			},
		})

		instruction := TaskInstruction
		if task.Depth <= 1 && task.RootInstruction != "" {
			instruction = task.RootInstruction
		}
		history := []generators.Message{
			{
				Role: generators.RoleSystem,
				Text: string(systemPrompt),
			},
			{
				Role: generators.RoleUser,
				Text: instruction,
			},
		}

		for i := range int(maxIterations) {
			logger.InfoContext(ctx, "iteration",
				"i", i+1,
				"max", int(maxIterations),
				"depth", task.Depth,
			)
			if total, err := historyTokens(generator, history); err == nil {
				logger.DebugContext(ctx, "history",
					"messages", len(history),
					"tokens", total,
				)
			}

			reply, err := generator.Complete(ctx, history)
			if err != nil {
				return "", logs.WrapSpan(ctx, fmt.Errorf("completion: %w", err))
			}
			history = append(history, generators.Message{
				Role: generators.RoleAssistant,
				Text: reply,
			})

			if answer, ok := extracts.FinalAnswer(reply); ok {
				logger.InfoContext(ctx, "final answer",
					"depth", task.Depth,
				)
				return answer, nil
			}

			if code, ok := extracts.Code(reply); ok && code != "" {
				observation, err := sandbox.Execute(ctx, code)
				if err != nil {
					return "", err
				}
				history = append(history, generators.Message{
					Role: generators.RoleUser,
					Text: "Observation:\n" + observation,
				})
				continue
			}

			history = append(history, generators.Message{
				Role: generators.RoleUser,
				Text: NudgeMessage,
			})
		}

		return IterationsSentinel, nil
	}

	return func(ctx context.Context, task Task) (string, error) {
		if *safeFlag {
			if err := applyLandlock(logger); err != nil {
				return "", fmt.Errorf("apply landlock: %w", err)
			}
		}
		if task.Depth == 0 {
			task.Depth = 1
		}
		return solve(ctx, task)
	}
}

func historyTokens(generator generators.Generator, history []generators.Message) (int, error) {
	total := 0
	for _, message := range history {
		n, err := generator.CountTokens(message.Text)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
