// Package retry repeats the fetch stage of a pipeline run when it fails for
// a transient reason.
//
// Only the orchestrator retries. The fetcher, loader and record store make
// exactly one attempt each; the pipeline wraps the fetch in an Executor when
// the operator asks for extra attempts with --retries.
//
//	executor := retry.NewExecutor(retry.NewFetchErrorClassifier(), retry.NewExponentialBackoff(2))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    _, err := fetch.Extract(ctx, url, path)
//	    return err
//	})
//
// FetchErrorClassifier retries transport failures and HTTP 408, 429 and 5xx
// responses, and stops as soon as the caller's context is done.
package retry
