package namesetl

// Logger receives progress and diagnostics from the pipeline and the HTTP
// server. Implementations must be safe for concurrent use.
type Logger interface {
	// Verbose is dropped unless the caller asked for verbose output.
	Verbose(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}
