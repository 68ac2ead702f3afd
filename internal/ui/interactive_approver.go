package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F39C12"))

// InteractiveApprover asks the operator to retype the store's file name
// before an overwrite. Only the base name is expected, so a long path does
// not have to be typed out.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

func NewInteractiveApprover(verbose bool) namesetl.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

func (a *InteractiveApprover) RequestApproval(ctx context.Context, storePath string) (bool, error) {
	want := filepath.Base(storePath)

	fmt.Fprintln(a.output)
	fmt.Fprintln(a.output, warningStyle.Render("WARNING: "+describeStore(storePath)+" is about to be deleted and rebuilt"))
	fmt.Fprintln(a.output, "Every record in it will be lost; this cannot be undone.")
	fmt.Fprintf(a.output, "Type '%s' to permanently delete all records and continue: ", want)

	got, err := readLine(ctx, a.input)
	if err != nil {
		return false, err
	}
	if got != want {
		fmt.Fprintf(a.output, "✗ '%s' does not match '%s'; store left untouched.\n", got, want)
		return false, nil
	}
	fmt.Fprintln(a.output, "✓ Confirmed.")
	return true, nil
}

// readLine returns one trimmed line from r, or ctx's error if it ends first.
// The reading goroutine may outlive a cancelled call; stdin cannot be
// interrupted portably.
func readLine(ctx context.Context, r io.Reader) (string, error) {
	type line struct {
		text string
		err  error
	}
	ch := make(chan line, 1)
	go func() {
		text, err := bufio.NewReader(r).ReadString('\n')
		if text != "" {
			err = nil
		}
		ch <- line{strings.TrimSpace(text), err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-ch:
		if l.err != nil {
			return "", fmt.Errorf("failed to read confirmation: %w", l.err)
		}
		return l.text, nil
	}
}

var _ namesetl.Approver = (*InteractiveApprover)(nil)
