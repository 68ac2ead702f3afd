package namesetl

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error kinds using errors.Is().
//
// Example usage:
//
//	err := store.Create(ctx, path, rec)
//	if errors.Is(err, namesetl.ErrConstraint) {
//	    // id already present
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrFetch matches every *FetchError.
	ErrFetch = errors.New("fetch failed")

	// ErrLoad matches every *LoadError.
	ErrLoad = errors.New("load failed")

	// ErrStore matches every *StoreError.
	ErrStore = errors.New("store error")

	// ErrConstraint matches *ConstraintError and constraint-kind *LoadError values.
	ErrConstraint = errors.New("constraint violation")

	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("decode failed")

	// ErrNotFound indicates a keyed lookup matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecord indicates a record the store cannot hold faithfully.
	ErrInvalidRecord = errors.New("invalid record")
)

// FetchErrorKind classifies why a fetch failed.
type FetchErrorKind string

const (
	FetchTransport FetchErrorKind = "transport" // DNS, connect, timeout, body read
	FetchStatus    FetchErrorKind = "status"    // non-2xx response
	FetchDecode    FetchErrorKind = "decode"    // body is not valid UTF-8 text
	FetchWrite     FetchErrorKind = "write"     // destination could not be written
)

// FetchError is returned by the fetcher.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	Path       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchStatus:
		return fmt.Sprintf("fetch %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	case FetchWrite:
		return fmt.Sprintf("fetch %s: write %s: %v", e.URL, e.Path, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Retryable reports whether the failure is likely transient.
// Transport failures and 408/429/5xx responses qualify; decode and write
// failures never do.
func (e *FetchError) Retryable() bool {
	switch e.Kind {
	case FetchTransport:
		return true
	case FetchStatus:
		return e.StatusCode == http.StatusTooManyRequests ||
			e.StatusCode == http.StatusRequestTimeout ||
			(e.StatusCode >= 500 && e.StatusCode <= 599)
	}
	return false
}

// LoadErrorKind classifies why a load failed.
type LoadErrorKind string

const (
	LoadOpen       LoadErrorKind = "open"       // CSV file missing or unreadable
	LoadCSV        LoadErrorKind = "csv"        // malformed CSV structure or wrong column count
	LoadParse      LoadErrorKind = "parse"      // a field could not be coerced to its type
	LoadConstraint LoadErrorKind = "constraint" // duplicate id
	LoadStore      LoadErrorKind = "store"      // store open, schema, or insert failure
)

// LoadError is returned by the loader. Record and Line are 1-based and
// zero when the failure is not tied to a record.
type LoadError struct {
	Kind   LoadErrorKind
	Path   string
	Record int
	Line   int
	Field  string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %s", e.Path)
	if e.Record > 0 {
		fmt.Fprintf(&b, ": record %d (line %d)", e.Record, e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %s", e.Field)
	}
	fmt.Fprintf(&b, ": %s: %v", e.Kind, e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool {
	return target == ErrLoad || (e.Kind == LoadConstraint && target == ErrConstraint)
}

// StoreError is returned when the store cannot be opened or a statement fails.
type StoreError struct {
	Op   string
	Path string
	ID   int64 // only meaningful for keyed operations
	Err  error
}

func (e *StoreError) Error() string {
	switch e.Op {
	case "create", "get", "update", "delete":
		return fmt.Sprintf("store %s %s id=%d: %v", e.Path, e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("store %s %s: %v", e.Path, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

// ConstraintError is returned by create when the id already exists.
type ConstraintError struct {
	ID  int64
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("record id=%d already exists: %v", e.ID, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// DecodeError is returned when a stored column cannot be read back as its
// typed form. Row is the 1-based position within the scan.
type DecodeError struct {
	Row    int
	Column string
	Value  any
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode row %d column %s (value %v): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// usagePatterns are the prefixes cobra uses for command-line misuse.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Load wraps constraint violations, so it is checked first.
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrFetch):
		return ExitFetchFailed
	case errors.Is(err, ErrLoad):
		return ExitLoadFailed
	case errors.Is(err, ErrConstraint):
		return ExitConstraintError
	case errors.Is(err, ErrDecode):
		return ExitDecodeError
	case errors.Is(err, ErrStore):
		return ExitStoreError
	case errors.Is(err, ErrInvalidRecord):
		return ExitUsageError
	}

	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
