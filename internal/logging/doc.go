// Package logging implements namesetl.Logger.
//
// ConsoleLogger prints to stderr (or any io.Writer) with [VERBOSE] and
// [ERROR] prefixes; NullLogger prints nothing.
package logging
