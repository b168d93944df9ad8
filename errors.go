// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Validation and terminal-state errors. The validation errors are raised
// synchronously, before any I/O.
var (
	// ErrMissingAPIKey is returned by New when no API key is configured
	// and mock mode is disabled.
	ErrMissingAPIKey = errors.New("API key is required when not in mock mode")

	// ErrEmptyPrompt is returned when a prompt is empty or whitespace-only.
	ErrEmptyPrompt = errors.New("prompt must be a non-empty string")

	// ErrEmptyTaskID is returned when a task ID is empty or whitespace-only.
	ErrEmptyTaskID = errors.New("task ID must be a non-empty string")

	// ErrPollTimeout is returned when the polling attempt budget is
	// exhausted while the task remained processing.
	ErrPollTimeout = errors.New("task did not complete within the expected time")

	// ErrStreamClosed is returned when reading from a closed stream.
	ErrStreamClosed = errors.New("stream is closed")
)

// apiErrorBodyFallback replaces the response body text when it cannot be read.
const apiErrorBodyFallback = "Failed to read error message from response body"

// APIError is a non-success HTTP response from the service.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Message is the best-effort response body text.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// TaskFailedError reports that the remote task itself finished in the failed
// state. Message carries the task's own error text, or "Unknown error" when
// the status omitted it.
type TaskFailedError struct {
	Message string
}

// Error implements the error interface.
func (e *TaskFailedError) Error() string {
	return "task failed: " + e.Message
}

// DecodeError reports a payload that was not valid JSON or did not match the
// expected status shape. During streaming it is yielded per offending line
// without ending the stream.
type DecodeError struct {
	// Line is the offending stream line, when decoding stream data.
	Line string

	// Err is the underlying decode failure.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode task status: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is a network-level failure communicating with the service.
type TransportError struct {
	// Op describes the operation that failed, e.g. "GET /status/t1".
	Op string

	// Err is the underlying network error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout implements net.Error.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// IsRetryableError determines whether an error should trigger a retry at the
// transport layer. Validation, decode, and task failures are never retried.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}

	return false
}
