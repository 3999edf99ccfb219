package extracts

import "testing"

func TestCode(t *testing.T) {
	code, ok := Code("thinking\n```starlark\nprint(1)\n```\ndone")
	if !ok {
		t.Fatal()
	}
	if code != "print(1)" {
		t.Fatalf("got %q", code)
	}
}

func TestCodeReplTag(t *testing.T) {
	code, ok := Code("```repl\nx = 42\nprint(x)\n```")
	if !ok {
		t.Fatal()
	}
	if code != "x = 42\nprint(x)" {
		t.Fatalf("got %q", code)
	}
}

func TestCodeFirstBlockWins(t *testing.T) {
	code, ok := Code("```starlark\nfirst\n```\ntext\n```starlark\nsecond\n```")
	if !ok {
		t.Fatal()
	}
	if code != "first" {
		t.Fatalf("got %q", code)
	}
}

func TestCodeOtherTagsIgnored(t *testing.T) {
	if _, ok := Code("```python\nprint(1)\n```"); ok {
		t.Fatal("python tag should not match")
	}
	if _, ok := Code("```\nprint(1)\n```"); ok {
		t.Fatal("untagged block should not match")
	}
}

func TestCodeNoBlock(t *testing.T) {
	if _, ok := Code("no code here"); ok {
		t.Fatal()
	}
}

func TestCodeUnterminatedFence(t *testing.T) {
	if _, ok := Code("```starlark\nprint(1)"); ok {
		t.Fatal("unterminated fence should not match")
	}
}
