package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/fetch"
	"github.com/vvka-141/namesetl/internal/loader"
	"github.com/vvka-141/namesetl/internal/logging"
	"github.com/vvka-141/namesetl/internal/services"
	"github.com/vvka-141/namesetl/internal/ui"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch the dataset and load it into the store",
	Long: `Run performs the whole pipeline: fetch the CSV to a local file, then load
it into the SQLite store. If the fetch fails nothing is loaded.

The published dataset starts with a header row, so --skip-header defaults
to true here (unlike 'namesetl load').

Overwrite:
  --overwrite deletes an existing store file before loading. You are asked
  to type the file name to confirm, unless --force is given, in which case
  a short countdown runs instead.

Retries:
  Transport failures and HTTP 408/429/5xx responses are retried up to
  --retries extra times with exponential backoff. Other failures stop the
  run immediately.

Examples:
  # Rebuild the default store from the published dataset
  namesetl run --overwrite

  # Non-interactive rebuild with retries (CI)
  namesetl run --overwrite --force --retries 3 --timeout 5m`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

type runFlagValues struct {
	url, csv         string
	overwrite, force bool
	skipHeader       bool
	replace          bool
	retries          int
	timeout          time.Duration
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runFlags.url, "url", "", "Source URL (default: source_url from config, or the published dataset)")
	runCmd.Flags().StringVar(&runFlags.csv, "csv", "", "Where to write the fetched CSV (default: unisex_names_table.csv)")
	runCmd.Flags().BoolVar(&runFlags.overwrite, "overwrite", false,
		"Delete the existing store file before loading\n"+
			"Requires interactive confirmation unless --force is used")
	runCmd.Flags().BoolVar(&runFlags.force, "force", false,
		"Skip interactive approval prompt for --overwrite\n"+
			"Use with --overwrite for CI/CD pipelines")
	runCmd.Flags().BoolVar(&runFlags.skipHeader, "skip-header", true, "Skip the first CSV record")
	runCmd.Flags().BoolVar(&runFlags.replace, "replace", false,
		"Delete existing rows in the load transaction instead of failing on duplicate ids")
	runCmd.Flags().IntVar(&runFlags.retries, "retries", 0, "Extra fetch attempts on transient failures")
	runCmd.Flags().DurationVar(&runFlags.timeout, "timeout", namesetl.DefaultPipelineTimeout,
		"Upper bound for the whole run\n"+
			"Examples: 30s, 5m")
}

// buildPipelineConfig builds a PipelineConfig from flags and settings.
func buildPipelineConfig(cmd *cobra.Command, verbose bool) (namesetl.PipelineConfig, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return namesetl.PipelineConfig{}, err
	}

	cfg := namesetl.PipelineConfig{
		SourceURL:  settings.SourceURL,
		CSVPath:    settings.CSVPath,
		StorePath:  settings.StorePath,
		SkipHeader: resolveSkipHeader(cmd, runFlags.skipHeader, settings),
		Replace:    runFlags.replace,
		Overwrite:  runFlags.overwrite,
		Force:      runFlags.force,
		Retries:    settings.Retries,
		Timeout:    resolveDuration(cmd, "timeout", runFlags.timeout, settings.Timeout),
		Verbose:    verbose,
	}
	if runFlags.url != "" {
		cfg.SourceURL = runFlags.url
	}
	if runFlags.csv != "" {
		cfg.CSVPath = runFlags.csv
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries = runFlags.retries
	}

	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildPipelineConfig(cmd, verbose)
	if err != nil {
		return err
	}

	// Select approver implementation based on --force flag
	var approver namesetl.Approver
	if cfg.Force {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}
	logger := logging.NewConsoleLogger(verbose)

	pipeline := services.NewPipelineService(fetch.Extract, loader.Load, approver, logger)

	// Timeout is applied by the pipeline itself.
	ctx, cancel := signalContext(0)
	defer cancel()

	report, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d records loaded into %s (%d bytes fetched, %d attempt(s))\n",
		report.RowsLoaded, cfg.StorePath, report.BytesFetched, report.Attempts)
	return nil
}
