// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-json-experiment/json"
)

// MockTaskID is the identifier every mock-mode submission returns.
const MockTaskID = "mock-task-123"

// mockResultText is the canned result carried by mock-mode statuses.
const mockResultText = "This is a mock response. Configure your API key to get real results."

// mockTransport serves fixture responses without contacting the network.
// It is selected by WithMockMode at construction.
type mockTransport struct{}

func mockStatus() TaskStatus {
	result := mockResultText
	return TaskStatus{
		TaskID: MockTaskID,
		Status: StatusCompleted,
		Result: &result,
	}
}

func (mockTransport) do(ctx context.Context, method, path string, body, out any) error {
	var fixture any
	switch {
	case method == http.MethodPost && path == "/run":
		fixture = SubmitTaskResponse{TaskID: MockTaskID}
	case strings.HasPrefix(path, "/status/"):
		fixture = mockStatus()
	default:
		fixture = map[string]any{"status": "ok"}
	}

	if out == nil {
		return nil
	}
	data, err := json.Marshal(fixture)
	if err != nil {
		return &DecodeError{Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

func (mockTransport) raw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	return json.Marshal(map[string]any{"status": "ok"})
}

// stream yields exactly one synthetic completed status, framed the same way
// the live service frames events so it flows through the real parser.
func (mockTransport) stream(ctx context.Context, path string) (io.ReadCloser, error) {
	data, err := json.Marshal(mockStatus())
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return io.NopCloser(strings.NewReader("data: " + string(data) + "\n")), nil
}
