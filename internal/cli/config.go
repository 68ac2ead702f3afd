package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/namesetl/internal/config"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect namesetl.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a namesetl.yaml with the built-in defaults",
	Long: `Init writes namesetl.yaml into dir (default: current directory) populated
with the built-in defaults. An existing file is kept unless --force is given.

Examples:
  namesetl config init
  namesetl config init ./project --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Show prints the settings after merging defaults, namesetl.yaml,
NAMESETL_* environment variables and the global --db flag.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

type configInitFlagValues struct {
	force bool
}

var configInitFlags configInitFlagValues

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitFlags.force, "force", false, "Overwrite an existing namesetl.yaml")
	configInitCmd.ValidArgsFunction = completeDirectories
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	info, err := os.Stat(targetDir)
	if err != nil {
		return fmt.Errorf("directory %s: %w", targetDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", targetDir)
	}

	_, err = config.Load(targetDir)
	switch {
	case err == nil && !configInitFlags.force:
		return fmt.Errorf("%s already exists in %s (use --force to overwrite): %w",
			config.ConfigFileName, targetDir, namesetl.ErrInvalidConfig)
	case err != nil && !errors.Is(err, config.ErrConfigNotFound) && !configInitFlags.force:
		return fmt.Errorf("existing %s is unreadable (use --force to overwrite): %w: %w",
			config.ConfigFileName, err, namesetl.ErrInvalidConfig)
	}

	if err := config.Save(targetDir, defaultProjectConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", filepath.Join(targetDir, config.ConfigFileName))
	return nil
}

func defaultProjectConfig() *config.ProjectConfig {
	d := config.Defaults()
	skip := true
	retries := d.Retries
	return &config.ProjectConfig{
		SourceURL:  d.SourceURL,
		CSVPath:    d.CSVPath,
		StorePath:  d.StorePath,
		SkipHeader: &skip,
		Timeout:    d.Timeout.String(),
		Retries:    &retries,
		Server:     config.ServerConfig{Addr: d.Addr},
	}
}

// effectiveSettings is the YAML view printed by config show.
type effectiveSettings struct {
	SourceURL  string `yaml:"source_url"`
	CSVPath    string `yaml:"csv_path"`
	StorePath  string `yaml:"store_path"`
	SkipHeader *bool  `yaml:"skip_header"`
	Timeout    string `yaml:"timeout"`
	Retries    int    `yaml:"retries"`
	Addr       string `yaml:"addr"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(effectiveSettings{
		SourceURL:  s.SourceURL,
		CSVPath:    s.CSVPath,
		StorePath:  s.StorePath,
		SkipHeader: s.SkipHeader,
		Timeout:    s.Timeout.String(),
		Retries:    s.Retries,
		Addr:       s.Addr,
	}); err != nil {
		return err
	}
	return enc.Close()
}
