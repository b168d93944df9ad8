// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// RetryConfig configures transport-level retries for unary requests.
// The zero value disables retries; so does a nil *RetryConfig.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier.
	Multiplier float64

	// Retryable decides which errors trigger another attempt. When nil,
	// IsRetryableError is used.
	Retryable func(error) bool
}

// DefaultRetryConfig returns a retry configuration with three attempts and
// exponential backoff from one second.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Retryable:    IsRetryableError,
	}
}

// withRetry executes fn with retry logic. A non-retryable error, a retryable
// error on the last attempt, or context cancellation ends the loop.
func withRetry(ctx context.Context, config *RetryConfig, operation string, fn func(context.Context) error) error {
	if config == nil || config.MaxAttempts <= 0 {
		return fn(ctx)
	}

	retryable := config.Retryable
	if retryable == nil {
		retryable = IsRetryableError
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
		if attempt == config.MaxAttempts-1 {
			break
		}

		// 10% jitter keeps concurrent clients from retrying in lockstep.
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.1)

		select {
		case <-time.After(delay + jitter):
		case <-ctx.Done():
			return ctx.Err()
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return fmt.Errorf("operation %s failed after %d attempts: %w", operation, config.MaxAttempts, lastErr)
}
