package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var dangerBox = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#C0392B")).
	Padding(0, 2)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose   bool
	output    io.Writer
	sleepFn   func(time.Duration)
	countdown time.Duration
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) namesetl.Approver {
	return &ForcedApprover{
		verbose:   verbose,
		output:    os.Stderr,
		sleepFn:   time.Sleep,
		countdown: namesetl.DefaultForceApprovalCountdown,
	}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, storePath string) (bool, error) {
	countdown := a.countdown
	if countdown == 0 {
		countdown = namesetl.DefaultForceApprovalCountdown
	}

	fmt.Fprintln(a.output)
	fmt.Fprintln(a.output, dangerBox.Render("DANGER: store "+describeStore(storePath)+" will be deleted and rebuilt"))
	fmt.Fprintln(a.output)

	for i := int(countdown.Seconds()); i > 0; i-- {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(a.output)
			return false, err
		}
		fmt.Fprintf(a.output, "\rRemoving in: %d seconds... (Press Ctrl+C to cancel)", i)
		a.sleepFn(time.Second)
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with store overwrite...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ namesetl.Approver = (*ForcedApprover)(nil)
