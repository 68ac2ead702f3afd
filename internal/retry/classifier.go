package retry

import (
	"context"
	"errors"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// FetchErrorClassifier implements ErrorClassifier for fetch failures.
type FetchErrorClassifier struct{}

// NewFetchErrorClassifier creates a new fetch error classifier.
func NewFetchErrorClassifier() *FetchErrorClassifier {
	return &FetchErrorClassifier{}
}

// IsTransient reports whether err is a retryable *namesetl.FetchError.
// Cancellation is never transient. A per-request client timeout is; the
// executor itself stops once the run's own deadline passes.
func (c *FetchErrorClassifier) IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var fetchErr *namesetl.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Retryable()
	}
	return false
}

var _ namesetl.ErrorClassifier = (*FetchErrorClassifier)(nil)
