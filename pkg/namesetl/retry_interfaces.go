package namesetl

import "time"

// ErrorClassifier decides whether a failed fetch attempt is worth repeating.
type ErrorClassifier interface {
	IsTransient(err error) bool
}

// BackoffStrategy paces repeated fetch attempts.
//
// NextDelay is called with a zero-based retry index. MaxAttempts counts
// retries after the first attempt; 0 disables retrying and a negative value
// retries until success or cancellation.
type BackoffStrategy interface {
	NextDelay(retry int) time.Duration
	MaxAttempts() int
}
