package loops

import (
	"fmt"
	"strings"

	"github.com/reusee/rlm/sandboxes"
)

type SystemPrompt string

func (Module) SystemPrompt(
	policy sandboxes.CapabilityPolicy,
) SystemPrompt {
	var b strings.Builder
	b.WriteString("You are a Recursive Language Model (RLM).\n" +
		"You solve tasks by writing and executing Starlark code, a Python dialect.\n" +
		"You can recursively delegate with `rlm_query(subtask)`.\n" +
		"\n" +
		"Rules:\n" +
		"1. Wrap code in ```starlark ... ``` or ```repl ... ``` blocks. The output will be\n" +
		"   returned to you as an 'Observation'.\n" +
		"2. You have a helper: `rlm_query(prompt)`. It spawns a NEW\n" +
		"   RLM agent with a FRESH context to solve a sub-task and\n" +
		"   returns the answer as a string. Use it to decompose\n" +
		"   complex problems!\n" +
		"3. The task payload is in REPL variable `context` and may not appear in chat.\n" +
		"4. Use `print()` to see results. Variables persist between code blocks.\n")
	fmt.Fprintf(&b, "5. Importable modules: %s. Import like `load(\"math\", \"math\")`.\n",
		strings.Join(policy.LoadRoots, ", "))
	fmt.Fprintf(&b, "6. Besides the standard builtins you also have: %s.\n",
		strings.Join(policy.Primitives, ", "))
	b.WriteString("7. When you have the final answer, output it on its own line\n" +
		"   starting with 'Final Answer:'.\n")
	return SystemPrompt(b.String())
}
