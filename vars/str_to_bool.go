package vars

import "strings"

// StrToBool parses common true and false spellings. Anything
// unrecognized is false.
func StrToBool(str string) bool {
	str = strings.ToLower(str)
	switch str {
	case "true", "t", "yes", "y", "1":
		return true
	case "false", "f", "no", "n", "0":
		return false
	}
	return false
}
