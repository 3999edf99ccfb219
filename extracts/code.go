package extracts

import (
	"regexp"
	"strings"
)

var codeBlockPattern = regexp.MustCompile("(?s)```(?:starlark|repl)\\s*(.*?)```")

// Code returns the first fenced block tagged starlark or repl,
// whitespace-trimmed. Later blocks and blocks with other tags are
// ignored.
func Code(text string) (string, bool) {
	match := codeBlockPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
