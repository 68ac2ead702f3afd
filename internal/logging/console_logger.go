package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

const (
	verbosePrefix = "[VERBOSE] "
	errorPrefix   = "[ERROR] "
)

// ConsoleLogger writes one line per message. Writes are serialized so lines
// from the retry callback and the HTTP middleware never interleave.
type ConsoleLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
}

// NewConsoleLogger logs to stderr, keeping stdout free for command output.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{out: w, verbose: verbose}
}

func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if l.verbose {
		l.printf(verbosePrefix, format, args)
	}
}

func (l *ConsoleLogger) Info(format string, args ...any) {
	l.printf("", format, args)
}

func (l *ConsoleLogger) Error(format string, args ...any) {
	l.printf(errorPrefix, format, args)
}

// printf treats format literally when there are no args, so a message
// containing '%' (a URL with escapes, say) is printed unchanged.
func (l *ConsoleLogger) printf(prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, prefix+msg)
}

var _ namesetl.Logger = (*ConsoleLogger)(nil)
