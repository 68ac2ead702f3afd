package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "namesetl",
	Short: "Fetch, load and edit the unisex names dataset",
	Long: `namesetl downloads a CSV dataset over HTTP, loads it into a local SQLite
file, and offers create, list, update and delete on the loaded records.

Typical session:
  namesetl run --overwrite        # fetch and load the published dataset
  namesetl list                   # show what was loaded
  namesetl serve                  # expose the records over HTTP

Configuration precedence (highest first):
  command-line flags > NAMESETL_* environment (.env honoured) > namesetl.yaml > defaults

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Fetch failed
  12 - User denied overwrite approval
  13 - Load failed
  14 - Store error
  15 - Stored row could not be decoded
  16 - Record id already exists`,
	SilenceUsage: true,
}

type globalFlagValues struct {
	configPath string
	storePath  string
}

var globalFlags globalFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for namesetl")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globalFlags.configPath, "config", "",
		"Path to a namesetl.yaml file (default: ./namesetl.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.storePath, "db", "",
		"SQLite store file\n"+
			"Precedence: --db > $NAMESETL_DB > store_path in namesetl.yaml > unisexDB.db")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
