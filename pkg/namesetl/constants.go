package namesetl

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitFetchFailed     = 11 // Remote dataset could not be fetched
	ExitApprovalDenied  = 12 // User denied overwrite approval
	ExitLoadFailed      = 13 // CSV could not be loaded into the store
	ExitStoreError      = 14 // Store could not be opened or queried
	ExitDecodeError     = 15 // A stored row could not be decoded
	ExitConstraintError = 16 // Duplicate id on create
)

const (
	// TableName is the single table holding NameRecord rows.
	TableName = "unisex_names"

	// DefaultSourceURL is the published unisex-names dataset.
	DefaultSourceURL = "https://github.com/fivethirtyeight/data/raw/refs/heads/master/unisex-names/unisex_names_table.csv"

	// DefaultCSVPath is where the fetched dataset is written when no path is given.
	DefaultCSVPath = "unisex_names_table.csv"

	// DefaultStorePath is the SQLite file used when no path is given.
	DefaultStorePath = "unisexDB.db"

	// DefaultFetchTimeout bounds a single HTTP GET.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultPipelineTimeout is the catastrophic-failure guard for a full run.
	DefaultPipelineTimeout = 2 * time.Minute

	// DefaultForceApprovalCountdown is the countdown duration before force approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 500 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultServerAddr is the listen address of the HTTP API.
	DefaultServerAddr = ":8080"

	// FieldCount is the number of positional columns in a dataset record.
	FieldCount = 6
)
