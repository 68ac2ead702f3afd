package namesetl

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// NameRecord is one row of the unisex names table.
//
// Shares and gap are stored exactly as given. Nothing in this module
// validates that they fall in [0,1] or recomputes gap from the shares.
type NameRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Total       int64   `json:"total"`
	MaleShare   float64 `json:"male_share"`
	FemaleShare float64 `json:"female_share"`
	Gap         float64 `json:"gap"`
}

// Fields returns the record's values as CSV columns in dataset order.
func (r NameRecord) Fields() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		strconv.FormatInt(r.Total, 10),
		strconv.FormatFloat(r.MaleShare, 'f', -1, 64),
		strconv.FormatFloat(r.FemaleShare, 'f', -1, 64),
		strconv.FormatFloat(r.Gap, 'f', -1, 64),
	}
}

// Validate rejects NaN in the real columns. SQLite stores NaN as NULL, and
// a NULL real cannot be read back as a float64.
func (r NameRecord) Validate() error {
	for _, f := range []struct {
		column string
		value  float64
	}{
		{"male_share", r.MaleShare},
		{"female_share", r.FemaleShare},
		{"gap", r.Gap},
	} {
		if math.IsNaN(f.value) {
			return fmt.Errorf("id %d: %s is NaN: %w", r.ID, f.column, ErrInvalidRecord)
		}
	}
	return nil
}

// PipelineConfig contains all parameters needed for a fetch → load run.
type PipelineConfig struct {
	// SourceURL is the remote CSV location
	SourceURL string

	// CSVPath is where the fetched body is written
	CSVPath string

	// StorePath is the SQLite file receiving the rows
	StorePath string

	// SkipHeader drops the first CSV record before parsing
	SkipHeader bool

	// Replace deletes existing rows inside the load transaction
	Replace bool

	// Overwrite removes the store file before loading
	Overwrite bool

	// Force bypasses interactive approval when used with Overwrite
	Force bool

	// Retries is the number of extra fetch attempts on transient failures
	Retries int

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the PipelineConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PipelineConfig) Validate() error {
	var errs []error

	if c.SourceURL == "" {
		errs = append(errs, fmt.Errorf("SourceURL is required: %w", ErrInvalidConfig))
	}

	if c.CSVPath == "" {
		errs = append(errs, fmt.Errorf("CSVPath is required: %w", ErrInvalidConfig))
	}

	if c.StorePath == "" {
		errs = append(errs, fmt.Errorf("StorePath is required: %w", ErrInvalidConfig))
	}

	if c.CSVPath != "" && c.CSVPath == c.StorePath {
		errs = append(errs, fmt.Errorf("CSVPath and StorePath must differ: %w", ErrInvalidConfig))
	}

	// Force requires Overwrite to be set
	if c.Force && !c.Overwrite {
		errs = append(errs, fmt.Errorf("force flag requires overwrite to be enabled: %w", ErrInvalidConfig))
	}

	if c.Retries < 0 {
		errs = append(errs, fmt.Errorf("retries cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// PipelineReport summarizes a completed run.
type PipelineReport struct {
	BytesFetched int64
	Checksum     string
	RowsLoaded   int
	Attempts     int
}
