package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
model?: string
load_roots?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var model string
	err := loader.AssignFirst("model", &model)
	if err != nil {
		t.Fatal(err)
	}
	if model != "ollama/qwen3:8b" {
		t.Fatalf("got %q", model)
	}

	var roots []string
	err = loader.AssignFirst("load_roots", &roots)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", roots); str != "[json math time]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &roots)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var models []string
	for value, err := range loader.IterCueValues("model") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		models = append(models, s)
	}
	if str := fmt.Sprintf("%v", models); str != "[ollama/qwen3:8b deepseek-chat]" {
		t.Fatalf("got %q", str)
	}

	models = models[:0]
	for model := range All[string](loader, "model") {
		models = append(models, model)
	}
	if str := fmt.Sprintf("%v", models); str != "[ollama/qwen3:8b deepseek-chat]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
