package retry

import (
	"context"
	"errors"
	"time"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// Executor re-runs a fetch while its classifier calls the failure transient
// and its backoff strategy allows another attempt. Execute is safe for
// concurrent use.
type Executor struct {
	classifier namesetl.ErrorClassifier
	strategy   namesetl.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor panics on a nil classifier or strategy.
func NewExecutor(classifier namesetl.ErrorClassifier, strategy namesetl.BackoffStrategy) *Executor {
	switch {
	case classifier == nil:
		panic("retry: nil classifier")
	case strategy == nil:
		panic("retry: nil backoff strategy")
	}
	return &Executor{classifier: classifier, strategy: strategy}
}

// WithOnRetry returns a copy of e that calls fn before each backoff wait.
func (e *Executor) WithOnRetry(fn func(attempt int, err error, delay time.Duration)) *Executor {
	c := *e
	c.onRetry = fn
	return &c
}

// Execute calls op until it succeeds, fails fatally, or the retry budget is
// spent; a negative MaxAttempts never runs out. When ctx ends first the
// result joins the last attempt's error with ctx.Err(), so callers still see
// what the fetch was failing with.
func (e *Executor) Execute(ctx context.Context, op func(ctx context.Context) error) error {
	budget := e.strategy.MaxAttempts()

	for retry := 0; ; retry++ {
		err := op(ctx)
		if err == nil || !e.classifier.IsTransient(err) {
			return err
		}
		if budget >= 0 && retry >= budget {
			return err
		}
		if ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}

		delay := e.strategy.NextDelay(retry)
		if e.onRetry != nil {
			e.onRetry(retry, err, delay)
		}
		if !sleep(ctx, delay) {
			return errors.Join(err, ctx.Err())
		}
	}
}

// sleep reports false if ctx ends before d elapses.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
