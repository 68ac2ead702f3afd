package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func TestRequireRecordID(t *testing.T) {
	cmd := &cobra.Command{
		Use: "delete <id>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireRecordID(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <id>") {
			t.Errorf("expected error to contain 'missing required argument: <id>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireRecordID(cmd, []string{"42"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireRecordID(cmd, []string{"1", "2"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})

	t.Run("returns error when id is not an integer", func(t *testing.T) {
		err := RequireRecordID(cmd, []string{"abc"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), `invalid argument "abc"`) {
			t.Errorf("unexpected error: %s", err.Error())
		}
	})

	t.Run("all failures are usage errors", func(t *testing.T) {
		for _, args := range [][]string{{}, {"1", "2"}, {"1.5"}} {
			err := RequireRecordID(cmd, args)
			if code := namesetl.ExitCodeForError(err); code != namesetl.ExitUsageError {
				t.Errorf("args %v: expected exit code %d, got %d (%v)", args, namesetl.ExitUsageError, code, err)
			}
		}
	})
}

func TestParseRecordID(t *testing.T) {
	id, err := parseRecordID("-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != -7 {
		t.Errorf("expected -7, got %d", id)
	}
}
