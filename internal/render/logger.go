package render

import (
	"fmt"
	"io"
)

// Logger receives progress lines. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type writerLogger struct{ w io.Writer }

func (l writerLogger) Printf(format string, args ...any) {
	fmt.Fprintf(l.w, format, args...)
}

// NewLogger prints to w without prefixes or timestamps.
func NewLogger(w io.Writer) Logger {
	return writerLogger{w: w}
}

// Discard drops everything.
var Discard Logger = writerLogger{w: io.Discard}
