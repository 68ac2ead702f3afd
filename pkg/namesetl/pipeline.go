package namesetl

import "context"

// Pipeline runs the fetch → load sequence.
type Pipeline interface {
	// Run fetches the source, then loads it into the store. A failed stage
	// stops the run; later stages are not attempted.
	Run(ctx context.Context, config PipelineConfig) (PipelineReport, error)
}
