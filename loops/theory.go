package loops

const Theory = `
# 1. Core Mission
RLM is a recursive agent runtime. It drives a language model through a
think / write-code / observe loop until the model commits to a final
answer, and it lets generated code spawn fresh sub-agents for
sub-problems. The target workload is tasks whose payload is too large or
too messy to reason about in one conversation: long documents, data
dumps, multi-part questions.

# 2. Design Philosophy
# 2.1 Context Isolation
Conversation history is a local of each invocation, never shared state.
A recursive call starts from two messages and an empty namespace, and
the parent receives exactly one string back. Intermediate turns, errors
and dead ends of a child never age the parent's context. This is the
mechanism against context rot: instead of one conversation accumulating
everything, many short conversations each see only what they need.

# 2.2 Payload Out Of Band
The task payload is bound to the sandbox variable context and stays out
of the chat. The model inspects it with code, a slice at a time. Token
spend follows what the model chooses to look at, not the payload size.

# 2.3 Code As The Only Actuator
The model acts exclusively by emitting Starlark. The runtime grants a
closed set of capabilities: policy primitives, allow-listed modules and
the recursion hook. There is no tool registry to grow; a new capability
is a new binding.

# 3. Strategic Constraints
# 3.1 Containment
Anything a script does wrong becomes an observation, never a crash. The
single exception is a fatal completion failure inside a recursive call,
which aborts the whole run; a half-working model is not something to
reason around.

# 3.2 Determinism
Completions run at temperature zero and the loop itself adds no
randomness, so a failing transcript replays meaningfully.

# 4. Implementation Details
# 4.1 The Loop
Completion, then in order: final answer check, code execution with the
output appended as an Observation message, or a corrective nudge. Depth
and iteration bounds return sentinel answers rather than errors; the
caller always gets a string.

# 4.2 Recursion
rlm_query(subtask) is an ordinary sandbox binding whose implementation
is the solve function itself at depth+1. The sub-task string becomes the
child's payload, the child's answer becomes the call's return value.

# 5. Success Metrics
A task over an arbitrarily large payload completes with root history
length bounded by the iteration budget, and the answer survives the
payload being orders of magnitude larger than the context window.
`
