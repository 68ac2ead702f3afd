package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/fetch"
	"github.com/vvka-141/namesetl/internal/tui"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download the CSV dataset to a local file",
	Long: `Fetch issues one HTTP GET and writes the response body to a local file,
replacing it if present. The file is written atomically: a failed download
never leaves a truncated file behind.

Non-2xx responses and bodies that are not UTF-8 text are errors. Fetch does
not retry; use 'namesetl run --retries N' for that.

Examples:
  # Download the default dataset to unisex_names_table.csv
  namesetl fetch

  # Download another copy
  namesetl fetch https://example.com/names.csv --out names.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

type fetchFlagValues struct {
	out string
}

var fetchFlags fetchFlagValues

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchFlags.out, "out", "o", "",
		"Destination file (default: csv_path from config, or unisex_names_table.csv)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	url := settings.SourceURL
	if len(args) > 0 {
		url = args[0]
	}
	dest := settings.CSVPath
	if fetchFlags.out != "" {
		dest = fetchFlags.out
	}

	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	interactive := tui.IsInteractive() && !verbose
	return tui.RunWithSpinner(ctx, os.Stderr, interactive, "Fetching "+url, func(ctx context.Context) (string, error) {
		res, err := fetch.Extract(ctx, url, dest)
		if err != nil {
			return "", err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] sha256 %s (content %s)\n", res.Checksum, res.ContentChecksum)
		}
		return fmt.Sprintf("Wrote %d bytes to %s", res.Bytes, res.Path), nil
	})
}
