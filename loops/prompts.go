package loops

import "fmt"

// TaskInstruction opens every conversation whose task carries no
// instruction of its own, which is always the case below the root. The
// payload itself is deliberately absent; the model has to read it from
// the sandbox.
const TaskInstruction = "Solve the task using Starlark execution.\n" +
	"The full task payload is available only in the REPL variable `context`.\n" +
	"Read `context`, compute what is needed, and end with `Final Answer:`."

// NudgeMessage is appended when a reply carries neither code nor a
// final answer.
const NudgeMessage = "I did not see any code or a 'Final Answer:'. " +
	"Use ```starlark``` (or ```repl```) code when needed, and " +
	"read task details from the REPL variable `context`."

// IterationsSentinel is the answer of an invocation that exhausted its
// iterations. It is an ordinary answer, not an error.
const IterationsSentinel = "Max iterations reached without a Final Answer."

// DepthSentinel is the answer of a task past the recursion bound.
func DepthSentinel(maxDepth int) string {
	return fmt.Sprintf("Max recursion depth (%d) reached.", maxDepth)
}
