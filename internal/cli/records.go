package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/store"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Insert one record",
	Long: `Create inserts a single record. The id must not exist yet; a duplicate id
fails with exit code 16 and leaves the stored record untouched.

Example:
  namesetl create --id 1 --name Alex --total 100 --male-share 0.5 --female-share 0.5 --gap 0`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the fields of one record",
	Long: `Update replaces name, total, male_share, female_share and gap of the record
with the given id. Gap is stored as given; it is not recomputed from the
shares. When no record has that id nothing changes and "not found" is
printed.

Example:
  namesetl update 1 --name Alex --total 120 --male-share 0.6 --female-share 0.4 --gap 0.2`,
	Args: RequireRecordID,
	RunE: runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one record",
	Long: `Delete removes the record with the given id. When no record has that id
nothing changes and "not found" is printed.

Example:
  namesetl delete 1`,
	Args: RequireRecordID,
	RunE: runDelete,
}

type recordFlagValues struct {
	id          int64
	name        string
	total       int64
	maleShare   float64
	femaleShare float64
	gap         float64
}

var (
	createFlags recordFlagValues
	updateFlags recordFlagValues
)

func init() {
	rootCmd.AddCommand(createCmd, updateCmd, deleteCmd)

	createCmd.Flags().Int64Var(&createFlags.id, "id", 0, "Record id (unique)")
	bindRecordFields(createCmd, &createFlags)
	_ = createCmd.MarkFlagRequired("id")

	bindRecordFields(updateCmd, &updateFlags)
}

// bindRecordFields registers the five non-key field flags; all are required.
func bindRecordFields(cmd *cobra.Command, v *recordFlagValues) {
	cmd.Flags().StringVar(&v.name, "name", "", "Name")
	cmd.Flags().Int64Var(&v.total, "total", 0, "Total number of people with the name")
	cmd.Flags().Float64Var(&v.maleShare, "male-share", 0, "Share of males, stored as given")
	cmd.Flags().Float64Var(&v.femaleShare, "female-share", 0, "Share of females, stored as given")
	cmd.Flags().Float64Var(&v.gap, "gap", 0, "Gap between the shares, stored as given")
	for _, name := range []string{"name", "total", "male-share", "female-share", "gap"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (v recordFlagValues) record(id int64) namesetl.NameRecord {
	return namesetl.NameRecord{
		ID:          id,
		Name:        v.name,
		Total:       v.total,
		MaleShare:   v.maleShare,
		FemaleShare: v.femaleShare,
		Gap:         v.gap,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	rec := createFlags.record(createFlags.id)
	if err := store.Create(ctx, settings.StorePath, rec); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created record %d\n", rec.ID)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	n, err := store.Update(ctx, settings.StorePath, updateFlags.record(id))
	if err != nil {
		return err
	}
	reportAffected(cmd, "updated", id, n)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(settings.Timeout)
	defer cancel()

	n, err := store.Delete(ctx, settings.StorePath, id)
	if err != nil {
		return err
	}
	reportAffected(cmd, "deleted", id, n)
	return nil
}

func reportAffected(cmd *cobra.Command, verb string, id, n int64) {
	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "record %d not found\n", id)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s record %d\n", verb, id)
}
