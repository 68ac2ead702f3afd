package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/records"
	"github.com/vvka-141/namesetl/internal/store"
	"github.com/vvka-141/namesetl/internal/tui"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// outputFormats are the values accepted by list --format.
var outputFormats = []string{"table", "csv", "json"}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every stored record",
	Long: `List prints every record in the store. Order is the store's natural row
order and is not guaranteed.

Formats:
  table  aligned table for humans (default)
  csv    the dataset's column layout with a header row
  json   one JSON array with snake_case keys

Examples:
  namesetl list
  namesetl list --format csv > export.csv`,
	Args: cobra.NoArgs,
	RunE: runList,
}

type listFlagValues struct {
	format string
}

var listFlags listFlagValues

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFlags.format, "format", "f", "table", "Output format: table|csv|json")
	_ = listCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

func runList(cmd *cobra.Command, args []string) error {
	var write func(io.Writer, []namesetl.NameRecord) error
	switch listFlags.format {
	case "table":
		write = writeTable
	case "csv":
		write = writeCSV
	case "json":
		write = writeJSON
	default:
		return fmt.Errorf("invalid argument %q for --format: must be one of table, csv, json", listFlags.format)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	recs := []namesetl.NameRecord{}
	for rec, err := range store.ReadAll(ctx, settings.StorePath) {
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	return write(cmd.OutOrStdout(), recs)
}

func writeTable(w io.Writer, recs []namesetl.NameRecord) error {
	_, err := fmt.Fprintln(w, tui.RenderTable(recs))
	return err
}

func writeCSV(w io.Writer, recs []namesetl.NameRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(records.Columns); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, recs []namesetl.NameRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}
