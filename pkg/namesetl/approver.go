package namesetl

import "context"

// Approver handles user interaction for approval workflows,
// particularly for destructive operations like deleting the store file.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the store path for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before the store at storePath
	// is removed. It returns false without error when the user declines.
	RequestApproval(ctx context.Context, storePath string) (bool, error)
}
