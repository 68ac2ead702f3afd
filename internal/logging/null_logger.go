package logging

import "github.com/vvka-141/namesetl/pkg/namesetl"

// NullLogger drops everything. Tests and library callers that want silence use it.
type NullLogger struct{}

func NewNullLogger() NullLogger { return NullLogger{} }

func (NullLogger) Verbose(string, ...any) {}
func (NullLogger) Info(string, ...any)    {}
func (NullLogger) Error(string, ...any)   {}

var _ namesetl.Logger = NullLogger{}
