package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Mode says whether a person is watching the terminal.
type Mode int

const (
	ModeNonInteractive Mode = iota
	ModeInteractive
)

// NonInteractiveEnv forces plain output and disables prompts when set to a
// true value ("1", "true", ...).
const NonInteractiveEnv = "NAMESETL_NON_INTERACTIVE"

// environment is what mode detection reads. Tests substitute it.
type environment struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
	fds        []int
}

func processEnvironment() environment {
	return environment{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
		// Prompts read stdin; spinners and prompts draw on stderr.
		fds: []int{int(os.Stdin.Fd()), int(os.Stderr.Fd())},
	}
}

func (e environment) mode() Mode {
	if forced, err := strconv.ParseBool(e.getenv(NonInteractiveEnv)); err == nil && forced {
		return ModeNonInteractive
	}
	if e.getenv("CI") != "" || e.getenv("NO_COLOR") != "" || e.getenv("TERM") == "dumb" {
		return ModeNonInteractive
	}
	for _, fd := range e.fds {
		if !e.isTerminal(fd) {
			return ModeNonInteractive
		}
	}
	return ModeInteractive
}

// DetectMode inspects the process environment and standard streams.
func DetectMode() Mode {
	return processEnvironment().mode()
}

// IsInteractive reports whether spinners and confirmation prompts may be used.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
