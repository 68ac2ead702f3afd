package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/loader"
	"github.com/vvka-141/namesetl/internal/tui"
)

var loadCmd = &cobra.Command{
	Use:   "load [csv_path]",
	Short: "Load a local CSV file into the store",
	Long: `Load reads a CSV file with the columns

  id, name, total, male_share, female_share, gap

and inserts every record into the SQLite store, creating the file and table
when missing. The load is all-or-nothing: a malformed record, an unparsable
field, or an id that already exists rolls back every row of the load.

Examples:
  # Load a headerless file into the default store
  namesetl load names.csv

  # Load the published dataset (it has a header row) into a fresh table
  namesetl load unisex_names_table.csv --skip-header --replace --db names.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

type loadFlagValues struct {
	skipHeader bool
	replace    bool
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&loadFlags.skipHeader, "skip-header", false,
		"Treat the first CSV record as a header and skip it")
	loadCmd.Flags().BoolVar(&loadFlags.replace, "replace", false,
		"Delete existing rows in the same transaction before inserting")
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	csvPath := settings.CSVPath
	if len(args) > 0 {
		csvPath = args[0]
	}

	var opts []loader.Option
	if resolveSkipHeader(cmd, loadFlags.skipHeader, settings) {
		opts = append(opts, loader.WithSkipHeader())
	}
	if loadFlags.replace {
		opts = append(opts, loader.WithReplace())
	}

	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	interactive := tui.IsInteractive() && !verbose
	message := fmt.Sprintf("Loading %s into %s", csvPath, settings.StorePath)
	return tui.RunWithSpinner(ctx, os.Stderr, interactive, message, func(ctx context.Context) (string, error) {
		res, err := loader.Load(ctx, csvPath, settings.StorePath, opts...)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Loaded %d records", res.Rows), nil
	})
}
