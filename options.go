// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*options) error

// options holds all configuration for a Client. It is assembled once by New
// and threaded explicitly into the transport and the polling loop; there is
// no ambient or global state.
type options struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	mockMode   bool
	httpClient *http.Client
	logger     *slog.Logger

	pollInterval    time.Duration
	maxPollAttempts int

	retryConfig *RetryConfig
}

// defaultOptions returns default client options.
func defaultOptions() *options {
	return &options{
		baseURL:         DefaultBaseURL,
		timeout:         DefaultTimeout,
		pollInterval:    DefaultPollInterval,
		maxPollAttempts: DefaultMaxPollAttempts,
		logger:          slog.Default(),
	}
}

// WithAPIKey sets the API key attached to every request.
func WithAPIKey(key string) Option {
	return func(o *options) error {
		o.apiKey = key
		return nil
	}
}

// WithBaseURL overrides the API endpoint. A trailing slash is trimmed.
func WithBaseURL(url string) Option {
	return func(o *options) error {
		if url == "" {
			return &configError{field: "baseURL", message: "base URL cannot be empty"}
		}
		o.baseURL = url
		return nil
	}
}

// WithTimeout sets the timeout for a single request/response exchange.
// It does not bound streaming connections.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &configError{field: "timeout", message: "timeout must be positive"}
		}
		o.timeout = timeout
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for unary requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &configError{field: "httpClient", message: "HTTP client cannot be nil"}
		}
		o.httpClient = client
		return nil
	}
}

// WithMockMode switches the client to the simulated transport: no network
// traffic, fixture responses for every operation.
func WithMockMode(enable bool) Option {
	return func(o *options) error {
		o.mockMode = enable
		return nil
	}
}

// WithPollInterval sets the delay between status queries in WaitForCompletion.
func WithPollInterval(interval time.Duration) Option {
	return func(o *options) error {
		if interval <= 0 {
			return &configError{field: "pollInterval", message: "poll interval must be positive"}
		}
		o.pollInterval = interval
		return nil
	}
}

// WithMaxPollAttempts sets the status query budget for WaitForCompletion.
func WithMaxPollAttempts(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return &configError{field: "maxPollAttempts", message: "max poll attempts must be positive"}
		}
		o.maxPollAttempts = n
		return nil
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &configError{field: "logger", message: "logger cannot be nil"}
		}
		o.logger = logger
		return nil
	}
}

// WithRetryConfig enables transport-level retries for unary requests.
// Retries never apply to polling itself: a status query that fails after the
// configured transport attempts still aborts the polling loop.
func WithRetryConfig(config *RetryConfig) Option {
	return func(o *options) error {
		if config == nil {
			return &configError{field: "retryConfig", message: "retry config cannot be nil"}
		}
		if config.MaxAttempts < 0 {
			return &configError{field: "retryConfig.MaxAttempts", message: "max attempts must be non-negative"}
		}
		o.retryConfig = config
		return nil
	}
}

// configError reports an invalid Option value.
type configError struct {
	field   string
	message string
}

// Error implements the error interface.
func (e *configError) Error() string {
	return "invalid configuration for " + e.field + ": " + e.message
}
