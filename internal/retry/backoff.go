package retry

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

// ExponentialBackoff spaces fetch retries as initial * multiplier^n, capped
// at maxDelay, then spread by ±jitter so parallel runs against the same
// host do not retry in lockstep.
type ExponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	maxAttempts  int     // retries after the first attempt; negative is unlimited
	jitter       float64 // fraction, 0.1 is ±10%
	random       func() float64
}

type BackoffOption func(*ExponentialBackoff)

func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.initialDelay = d }
}

func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.maxDelay = d }
}

func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.multiplier = m }
}

// WithJitter sets the spread as a fraction of the delay. Zero disables it.
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.jitter = j }
}

// WithJitterFunc replaces the [0,1) random source. Tests pin it.
func WithJitterFunc(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.random = f }
}

// NewExponentialBackoff allows maxAttempts retries, starting at
// namesetl.DefaultRetryInitialDelay, doubling, and capped at
// namesetl.DefaultRetryMaxDelay.
//
//	backoff := retry.NewExponentialBackoff(3,
//	    retry.WithInitialDelay(200*time.Millisecond),
//	    retry.WithJitter(0.2),
//	)
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initialDelay: namesetl.DefaultRetryInitialDelay,
		maxDelay:     namesetl.DefaultRetryMaxDelay,
		multiplier:   2,
		maxAttempts:  maxAttempts,
		jitter:       0.1,
		random:       rand.Float64,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns the wait before retry number n (zero-based). Jitter is
// applied after the cap, so a delay can exceed maxDelay by at most jitter.
func (b *ExponentialBackoff) NextDelay(n int) time.Duration {
	d := float64(b.initialDelay) * math.Pow(b.multiplier, float64(n))
	d = math.Min(d, float64(b.maxDelay))

	if b.jitter > 0 && b.random != nil {
		spread := 2*b.random() - 1 // [-1, 1)
		d += d * b.jitter * spread
	}
	return time.Duration(d).Round(time.Millisecond)
}

func (b *ExponentialBackoff) MaxAttempts() int { return b.maxAttempts }

func (b *ExponentialBackoff) InitialDelay() time.Duration { return b.initialDelay }

func (b *ExponentialBackoff) MaxDelay() time.Duration { return b.maxDelay }

var _ namesetl.BackoffStrategy = (*ExponentialBackoff)(nil)
