package loops

// Task is one unit of work for the runtime.
//
// Prompt is the task payload. It never enters the conversation; the
// model reaches it only through the sandbox variable `context`. Depth 1
// is the root; the zero value is treated as root. RootInstruction, when
// non-empty, replaces the generic opening instruction at the root and
// is not inherited by children.
type Task struct {
	Prompt          string
	Depth           int
	RootInstruction string
}
