package extracts

import (
	"regexp"
	"strings"
)

var (
	// any fenced region, tagged or not, so string literals inside code
	// cannot end the loop
	fencedPattern      = regexp.MustCompile("(?s)```(?:starlark|repl)?\\s*.*?```")
	finalAnswerPattern = regexp.MustCompile(`(?im)^\s*final answer:\s*(.+)$`)
)

// FinalAnswer scans a reply for a line starting with "Final Answer:",
// case-insensitively, after removing all fenced regions. It returns the
// trimmed remainder of the first such line.
func FinalAnswer(text string) (string, bool) {
	text = fencedPattern.ReplaceAllString(text, "")
	match := finalAnswerPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
