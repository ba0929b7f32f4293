// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// Exponential backoff is used by default. Callers can switch to a fixed delay and restrict
// which errors are retried.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// With custom options:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(250*time.Millisecond),
//	    retry.WithRetryIf(func(err error) bool { return errors.Is(err, ErrNotFound) }),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	//
	// The context allows for cancellation and timeout control. If the context
	// is canceled or times out, the operation stops retrying and the context
	// error is returned.
	//
	// Execute returns nil if the operation succeeds within the configured
	// number of attempts, or an error if all attempts fail, the error is not
	// retryable, or the context is done.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint                          // maximum number of attempts, including the first one
	delay       time.Duration                 // base delay between attempts
	maxDelay    time.Duration                 // cap applied to the backoff delay
	fixedDelay  bool                          // use a constant delay instead of exponential backoff
	lastErrOnly bool                          // whether to return only the last error
	retryIf     func(error) bool              // decides whether an error is worth retrying
	onRetry     func(attempt uint, err error) // called after every failed attempt that will be retried
}

// Option defines a functional option for configuring the retry mechanism.
// Options are applied in the order they are provided to New().
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - backoff:     exponential
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
//
// The operation is first attempted immediately. Failed attempts are retried
// after the configured delay until the attempt budget is exhausted.
//
// Example:
//
//	r := retry.New(retry.WithAttempts(4))
//	var tx Transaction
//	err := r.Execute(ctx, func() error {
//	    var err error
//	    tx, err = chain.GetTransaction(ctx, signature)
//	    return err
//	})
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 3 (1 initial attempt + 2 retries).
//
// Example:
//
//	// 1 initial attempt + 3 retries
//	retry.New(retry.WithAttempts(4))
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// With exponential backoff, subsequent delays grow from this value.
// Default: 1 second.
//
// Example:
//
//	retry.New(retry.WithDelay(500 * time.Millisecond))
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
// Default: 5 seconds.
//
// Example:
//
//	retry.New(retry.WithMaxDelay(4 * time.Second))
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay makes every retry wait exactly the base delay.
//
// Example:
//
//	// wait 2 seconds before every retry
//	retry.New(retry.WithDelay(2*time.Second), retry.WithFixedDelay())
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, all errors from all attempts are combined.
// Default: true.
//
// Example:
//
//	retry.New(retry.WithLastErrorOnly(false))
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which f returns true. Any other
// error stops the loop and is returned immediately.
//
// Example:
//
//	// only retry while the node has not indexed the transaction
//	retry.New(retry.WithRetryIf(func(err error) bool {
//	    return errors.Is(err, activitywatch.ErrNotFound)
//	}))
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry registers a callback invoked after each failed attempt that is
// going to be retried. Attempts are numbered from zero.
//
// Example:
//
//	retry.New(retry.WithOnRetry(func(attempt uint, err error) {
//	    logger.Debug(ctx, "retrying", "attempt", attempt, "error", err)
//	}))
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
