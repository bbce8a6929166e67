// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"time"
)

// retryPolicy bounds how often and how long a transient store failure is
// retried. The delay doubles after each attempt up to maxDelay.
type retryPolicy struct {
	attempts int
	delay    time.Duration
	maxDelay time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		attempts: 3,
		delay:    100 * time.Millisecond,
		maxDelay: 2 * time.Second,
	}
}

// run invokes op until it succeeds, the attempts are spent, or ctx is done.
// The last error is returned unwrapped so callers can inspect it.
func (p retryPolicy) run(ctx context.Context, op func(ctx context.Context) error) error {
	delay := p.delay
	var err error
	for attempt := 0; ; attempt++ {
		err = op(ctx)
		if err == nil || attempt >= p.attempts {
			return err
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > p.maxDelay {
			delay = p.maxDelay
		}
	}
}
