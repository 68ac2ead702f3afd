package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/namesetl/internal/config"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// loadProjectConfig reads --config, or ./namesetl.yaml when it exists.
// Returns nil config if no file is configured or present (not an error).
func loadProjectConfig() (*config.ProjectConfig, error) {
	if globalFlags.configPath != "" {
		cfg, err := config.LoadFile(globalFlags.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w: %w", globalFlags.configPath, err, namesetl.ErrInvalidConfig)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, err, namesetl.ErrInvalidConfig)
	}
	return cfg, nil
}

// loadSettings merges defaults, namesetl.yaml and NAMESETL_* variables, then
// applies the global --db flag.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return config.Settings{}, fmt.Errorf("%w: %w", err, namesetl.ErrInvalidConfig)
	}

	projectCfg, err := loadProjectConfig()
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Merge(projectCfg, envCfg)
	if err != nil {
		return config.Settings{}, fmt.Errorf("%w: %w", err, namesetl.ErrInvalidConfig)
	}

	if globalFlags.storePath != "" {
		settings.StorePath = globalFlags.storePath
	}

	if getVerboseFlag(cmd) {
		logSettingsVerbose(settings)
	}
	return settings, nil
}

// resolveSkipHeader returns the --skip-header flag when set, then the
// configured value, then the command's default.
func resolveSkipHeader(cmd *cobra.Command, flagValue bool, settings config.Settings) bool {
	if cmd.Flags().Changed("skip-header") || settings.SkipHeader == nil {
		return flagValue
	}
	return *settings.SkipHeader
}

// resolveDuration returns the flag value when set, otherwise fallback.
func resolveDuration(cmd *cobra.Command, name string, flagValue, fallback time.Duration) time.Duration {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return fallback
}

func logSettingsVerbose(s config.Settings) {
	fmt.Fprintf(os.Stderr, "[VERBOSE] Settings resolved:\n")
	fmt.Fprintf(os.Stderr, "  Source URL: %s\n", s.SourceURL)
	fmt.Fprintf(os.Stderr, "  CSV Path: %s\n", s.CSVPath)
	fmt.Fprintf(os.Stderr, "  Store Path: %s\n", s.StorePath)
	fmt.Fprintf(os.Stderr, "  Timeout: %s\n", s.Timeout)
	fmt.Fprintf(os.Stderr, "  Retries: %d\n", s.Retries)
}

// signalContext returns a context cancelled by Ctrl+C, SIGTERM, or after
// timeout when timeout is positive.
func signalContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
