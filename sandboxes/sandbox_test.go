package sandboxes

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/modes"
)

func testNew(t *testing.T, defs ...any) New {
	t.Helper()
	loader := configs.NewLoader(nil, "")
	scope := dscope.New(
		modes.ForTest(t),
		&loader,
		new(Module),
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return dscope.Get[New](scope)
}

func TestExecutePrint(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `print("hello")`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello\n" {
		t.Fatalf("got %q", out)
	}
}

func TestNoOutput(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `x = 1`)
	if err != nil {
		t.Fatal(err)
	}
	if out != NoOutput {
		t.Fatalf("got %q", out)
	}
}

func TestNamespacePersistence(t *testing.T) {
	sandbox := testNew(t)(nil)
	if _, err := sandbox.Execute(t.Context(), `x = 40`); err != nil {
		t.Fatal(err)
	}
	out, err := sandbox.Execute(t.Context(), `print(x + 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestMutationAcrossBlocks(t *testing.T) {
	sandbox := testNew(t)(nil)
	if _, err := sandbox.Execute(t.Context(), `nums = [1]`); err != nil {
		t.Fatal(err)
	}
	if _, err := sandbox.Execute(t.Context(), `nums.append(2)`); err != nil {
		t.Fatal(err)
	}
	out, err := sandbox.Execute(t.Context(), `print(nums)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1, 2]\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDefAcrossBlocks(t *testing.T) {
	sandbox := testNew(t)(nil)
	if _, err := sandbox.Execute(t.Context(), "def double(n):\n    return n * 2\n"); err != nil {
		t.Fatal(err)
	}
	out, err := sandbox.Execute(t.Context(), `print(double(21))`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}
}

func TestErrorBecomesObservation(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), "print(\"before\")\ny = 1\nz = 1 // 0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "before\n") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "Traceback") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "division by zero") {
		t.Fatalf("got %q", out)
	}
	// bindings made before the failure survive
	out, err = sandbox.Execute(t.Context(), `print(y)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestUndefinedNameObservation(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `print(no_such_name)`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "no_such_name") {
		t.Fatalf("got %q", out)
	}
}

func TestSyntaxErrorObservation(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `def f(:`)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" || out == NoOutput {
		t.Fatalf("got %q", out)
	}
}

func TestLoadMath(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), "load(\"math\", \"sqrt\")\nprint(sqrt(16))")
	if err != nil {
		t.Fatal(err)
	}
	if out != "4.0\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLoadedModulePersists(t *testing.T) {
	sandbox := testNew(t)(nil)
	if _, err := sandbox.Execute(t.Context(), `load("math", "math")`); err != nil {
		t.Fatal(err)
	}
	out, err := sandbox.Execute(t.Context(), `print(math.sqrt(25))`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "5.0\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLoadJSON(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), "load(\"json\", \"json\")\nprint(json.encode({\"a\": 1}))")
	if err != nil {
		t.Fatal(err)
	}
	if out != "{\"a\":1}\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLoadBlocked(t *testing.T) {
	sandbox := testNew(t)(nil)
	out, err := sandbox.Execute(t.Context(), `load("os", "getenv")`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `cannot load "os"`) {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "json, math, time") {
		t.Fatalf("got %q", out)
	}
}

func TestSeededContext(t *testing.T) {
	sandbox := testNew(t)(map[string]any{
		"context": "the payload",
	})
	out, err := sandbox.Execute(t.Context(), `print(context)`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "the payload\n" {
		t.Fatalf("got %q", out)
	}
}

func TestSeededHook(t *testing.T) {
	var got string
	sandbox := testNew(t)(map[string]any{
		"ask": func(prompt string) (string, error) {
			got = prompt
			return "pong", nil
		},
	})
	out, err := sandbox.Execute(t.Context(), `print(ask("ping"))`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "pong\n" {
		t.Fatalf("got %q", out)
	}
	if got != "ping" {
		t.Fatalf("got %q", got)
	}
}

func TestHookAbort(t *testing.T) {
	sandbox := testNew(t)(map[string]any{
		"ask": func(string) (string, error) {
			return "", errors.Join(errors.New("boom"), ErrAbort)
		},
	})
	out, err := sandbox.Execute(t.Context(), `ask("ping")`)
	if err == nil {
		t.Fatal("should error")
	}
	if !errors.Is(err, ErrAbort) {
		t.Fatalf("got %v", err)
	}
	if out != "" {
		t.Fatalf("got %q", out)
	}
}

func TestHookErrorContained(t *testing.T) {
	sandbox := testNew(t)(map[string]any{
		"ask": func(string) (string, error) {
			return "", errors.New("boom")
		},
	})
	out, err := sandbox.Execute(t.Context(), `ask("ping")`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("got %q", out)
	}
}

func TestTruncation(t *testing.T) {
	sandbox := testNew(t,
		func() MaxOutputChars {
			return 10
		},
	)(nil)
	out, err := sandbox.Execute(t.Context(), `print("aaaaaaaaaaaaaaaaaaaa")`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "aaaaaaaaaa"+TruncationMarker {
		t.Fatalf("got %q", out)
	}
}

func TestOutputAtLimitNotTruncated(t *testing.T) {
	sandbox := testNew(t,
		func() MaxOutputChars {
			return 6
		},
	)(nil)
	// five characters plus the newline is exactly the limit
	out, err := sandbox.Execute(t.Context(), `print("aaaaa")`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "aaaaa\n" {
		t.Fatalf("got %q", out)
	}
}

func TestStepLimit(t *testing.T) {
	sandbox := testNew(t,
		func() MaxExecutionSteps {
			return 1000
		},
	)(nil)
	out, err := sandbox.Execute(t.Context(), "x = 0\nfor i in range(1000000):\n    x += 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "too many steps") {
		t.Fatalf("got %q", out)
	}
}
