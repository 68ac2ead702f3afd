package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// RequireRecordID validates that exactly one integer <id> argument is provided.
// Returns a helpful error message with usage and examples if missing or malformed.
func RequireRecordID(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <id>

Usage: %s

Example:
  %s 42`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	if _, err := parseRecordID(args[0]); err != nil {
		return err
	}
	return nil
}

func parseRecordID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q for <id>: must be an integer", raw)
	}
	return id, nil
}
