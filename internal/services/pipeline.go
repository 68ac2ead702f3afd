package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/namesetl/internal/db"
	"github.com/vvka-141/namesetl/internal/fetch"
	"github.com/vvka-141/namesetl/internal/loader"
	"github.com/vvka-141/namesetl/internal/retry"
	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// FetchFunc matches fetch.Extract.
type FetchFunc func(ctx context.Context, url, destinationPath string) (fetch.Result, error)

// LoadFunc matches loader.Load.
type LoadFunc func(ctx context.Context, csvPath, storePath string, opts ...loader.Option) (loader.Result, error)

// PipelineService implements the Pipeline interface.
// Thread-Safety: NOT safe for concurrent Run() calls against the same paths.
type PipelineService struct {
	fetch       FetchFunc
	load        LoadFunc
	approver    namesetl.Approver
	logger      namesetl.Logger
	removeStore func(path string) error
	backoffOpts []retry.BackoffOption
}

// NewPipelineService creates a PipelineService with all dependencies injected.
// Panics on nil dependencies; those are programmer errors, not runtime conditions.
func NewPipelineService(
	fetchFn FetchFunc,
	loadFn LoadFunc,
	approver namesetl.Approver,
	logger namesetl.Logger,
) *PipelineService {
	if fetchFn == nil {
		panic("fetchFn cannot be nil")
	}
	if loadFn == nil {
		panic("loadFn cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &PipelineService{
		fetch:       fetchFn,
		load:        loadFn,
		approver:    approver,
		logger:      logger,
		removeStore: db.Remove,
	}
}

// WithBackoffOptions returns a copy whose fetch retries use opts.
func (s *PipelineService) WithBackoffOptions(opts ...retry.BackoffOption) *PipelineService {
	clone := *s
	clone.backoffOpts = append([]retry.BackoffOption(nil), opts...)
	return &clone
}

// Run validates config, handles overwrite, fetches and loads.
func (s *PipelineService) Run(ctx context.Context, config namesetl.PipelineConfig) (namesetl.PipelineReport, error) {
	var report namesetl.PipelineReport

	if err := config.Validate(); err != nil {
		return report, err
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	// Approval is asked up front; the store is only removed once the new
	// data is on disk, so a failed fetch leaves it intact.
	removeExisting := false
	if config.Overwrite {
		approved, err := s.approveOverwrite(ctx, config)
		if err != nil {
			return report, fmt.Errorf("overwrite workflow failed: %w", err)
		}
		removeExisting = approved
	}

	fetched, attempts, err := s.fetchWithRetry(ctx, config)
	report.Attempts = attempts
	if err != nil {
		return report, err
	}
	report.BytesFetched = fetched.Bytes
	report.Checksum = fetched.Checksum
	s.logger.Info("✓ Fetched %d bytes into %s", fetched.Bytes, fetched.Path)
	s.logger.Verbose("sha256 %s (content %s)", fetched.Checksum, fetched.ContentChecksum)

	if removeExisting {
		if err := s.removeStore(config.StorePath); err != nil {
			return report, fmt.Errorf("overwrite workflow failed: %w", err)
		}
		s.logger.Verbose("removed store %s", config.StorePath)
	}

	var opts []loader.Option
	if config.SkipHeader {
		opts = append(opts, loader.WithSkipHeader())
	}
	if config.Replace {
		opts = append(opts, loader.WithReplace())
	}

	start := time.Now()
	loaded, err := s.load(ctx, config.CSVPath, config.StorePath, opts...)
	if err != nil {
		return report, err
	}
	report.RowsLoaded = loaded.Rows
	s.logger.Verbose("load took %s", time.Since(start).Round(time.Millisecond))
	s.logger.Info("✓ Loaded %d records into %s", loaded.Rows, config.StorePath)

	return report, nil
}

// approveOverwrite reports whether an existing store should be removed.
// A missing store needs no approval.
func (s *PipelineService) approveOverwrite(ctx context.Context, config namesetl.PipelineConfig) (bool, error) {
	exists, err := db.Exists(config.StorePath)
	if err != nil {
		return false, err
	}
	if !exists {
		s.logger.Verbose("store %s does not exist, nothing to overwrite", config.StorePath)
		return false, nil
	}

	approved, err := s.approver.RequestApproval(ctx, config.StorePath)
	if err != nil {
		return false, fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return false, fmt.Errorf("overwrite of %s: %w", config.StorePath, namesetl.ErrApprovalDenied)
	}
	return true, nil
}

func (s *PipelineService) fetchWithRetry(ctx context.Context, config namesetl.PipelineConfig) (fetch.Result, int, error) {
	executor := retry.NewExecutor(
		retry.NewFetchErrorClassifier(),
		retry.NewExponentialBackoff(config.Retries, s.backoffOpts...),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		s.logger.Info("Fetch attempt %d failed: %v (retrying in %s)", attempt+1, err, delay.Round(time.Millisecond))
	})

	var (
		result   fetch.Result
		attempts int
	)
	err := executor.Execute(ctx, func(ctx context.Context) error {
		attempts++
		s.logger.Verbose("GET %s (attempt %d)", config.SourceURL, attempts)
		var err error
		result, err = s.fetch(ctx, config.SourceURL, config.CSVPath)
		return err
	})
	return result, attempts, err
}

// Verify PipelineService implements the Pipeline interface at compile time
var _ namesetl.Pipeline = (*PipelineService)(nil)
