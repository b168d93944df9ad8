// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
)

// transport is the boundary between the client and the service. The variant
// is selected once at construction: liveTransport speaks HTTP, mockTransport
// serves fixtures without touching the network.
type transport interface {
	// do performs a JSON request/response exchange. body and out may be nil.
	do(ctx context.Context, method, path string, body, out any) error

	// raw performs a non-JSON exchange and returns the response bytes.
	raw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error)

	// stream opens a chunked event-stream response for the given path.
	stream(ctx context.Context, path string) (io.ReadCloser, error)
}

// liveTransport talks to the real service over HTTP.
type liveTransport struct {
	baseURL string
	apiKey  string
	logger  *slog.Logger
	retry   *RetryConfig

	// httpClient bounds unary exchanges with the configured timeout.
	// streamClient has no overall timeout; a streaming connection lives
	// until the server closes it or the caller cancels.
	httpClient   *http.Client
	streamClient *http.Client
}

func newLiveTransport(o *options) *liveTransport {
	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: o.timeout}
	}
	return &liveTransport{
		baseURL:      o.baseURL,
		apiKey:       o.apiKey,
		logger:       o.logger,
		retry:        o.retryConfig,
		httpClient:   hc,
		streamClient: &http.Client{Transport: hc.Transport},
	}
}

// setHeaders attaches the static credential and SDK identification headers.
func (t *liveTransport) setHeaders(req *http.Request) {
	if t.apiKey != "" {
		req.Header.Set("x-api-key", t.apiKey)
	}
	req.Header.Set("X-SDK-Language", "go")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func (t *liveTransport) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &DecodeError{Err: err}
		}
	}

	var respBody []byte
	attempt := func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		t.setHeaders(req)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := t.httpClient.Do(req)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		t.logger.DebugContext(ctx, "request completed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			msg := apiErrorBodyFallback
			if b, rerr := io.ReadAll(resp.Body); rerr == nil {
				msg = string(b)
			}
			return &APIError{StatusCode: resp.StatusCode, Message: msg}
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		return nil
	}

	if err := withRetry(ctx, t.retry, op, attempt); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (t *liveTransport) raw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	op := method + " " + path

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	t.setHeaders(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := apiErrorBodyFallback
		if b, rerr := io.ReadAll(resp.Body); rerr == nil {
			msg = string(b)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return data, nil
}

func (t *liveTransport) stream(ctx context.Context, path string) (io.ReadCloser, error) {
	op := "GET " + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "text/event-stream")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.streamClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		msg := apiErrorBodyFallback
		if b, rerr := io.ReadAll(resp.Body); rerr == nil {
			msg = string(b)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	t.logger.DebugContext(ctx, "stream opened", "path", path)
	return resp.Body, nil
}
