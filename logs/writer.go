package logs

import (
	"io"
	"os"
)

// Writer is the log output destination. Stderr in production, tests
// fork the provider to capture records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
