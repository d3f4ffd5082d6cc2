// Package retry runs remote calls that may transiently fail, retrying with
// pure exponential backoff while the failure reports HTTP 503.
//
// 503 is how inference backends say "model is loading, try again". Every
// other failure (4xx auth errors in particular) is returned on the first
// attempt without sleeping.
package retry

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 5 * time.Second
)

// StatusCoder is implemented by errors that carry the HTTP status of the failed call.
type StatusCoder interface {
	HTTPStatus() int
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config controls a single Do invocation. The zero value uses the defaults.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	Sleep        SleepFunc
}

func (c Config) withDefaults() Config {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	} else if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.Sleep == nil {
		c.Sleep = Sleep
	}
	return c
}

// NoRetries is a Config that never retries.
var NoRetries = Config{MaxRetries: -1}

// Do invokes op and retries it while it fails with a 503 and retries remain.
// The delay starts at InitialDelay and doubles after every wait. The last
// error is returned unchanged.
func Do[T any](ctx context.Context, cfg Config, op func(ctx context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	retriesLeft := cfg.MaxRetries
	delay := cfg.InitialDelay

	for {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if !IsServiceUnavailable(err) || retriesLeft <= 0 {
			return result, err
		}

		if sleepErr := cfg.Sleep(ctx, delay); sleepErr != nil {
			var zero T
			return zero, sleepErr
		}

		retriesLeft--
		delay *= 2
	}
}

// IsServiceUnavailable reports whether err carries HTTP status 503.
func IsServiceUnavailable(err error) bool {
	var sc StatusCoder
	if !errors.As(err, &sc) {
		return false
	}
	return sc.HTTPStatus() == http.StatusServiceUnavailable
}

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TotalDelay returns the sum of all waits Do performs when every attempt fails with 503.
func TotalDelay(cfg Config) time.Duration {
	cfg = cfg.withDefaults()
	var total time.Duration
	delay := cfg.InitialDelay
	for i := 0; i < cfg.MaxRetries; i++ {
		total += delay
		delay *= 2
	}
	return total
}
