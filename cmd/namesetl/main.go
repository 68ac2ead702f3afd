package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/namesetl/internal/cli"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func main() {
	os.Exit(run())
}

// run converts the command's outcome, or a panic, into an exit code.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = namesetl.ExitPanic
		}
	}()

	if os.Getenv("NAMESETL_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}
	return namesetl.ExitCodeForError(cli.Execute())
}
