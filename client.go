// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"context"
	"net/http"
	"strings"
)

// Client is a TaskForce AI API client. It is safe for concurrent use;
// every in-flight operation carries its own state.
type Client struct {
	opts *options
	tr   transport
}

// New creates a Client with the given options. An API key is required unless
// mock mode is enabled.
func New(opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if !o.mockMode && o.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	o.baseURL = strings.TrimRight(o.baseURL, "/")

	c := &Client{opts: o}
	if o.mockMode {
		c.tr = mockTransport{}
	} else {
		c.tr = newLiveTransport(o)
	}
	return c, nil
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.opts.baseURL
}

// SubmitTask submits a prompt for asynchronous execution and returns the
// identifier of the created task.
func (c *Client) SubmitTask(ctx context.Context, prompt string, opts *TaskSubmissionOptions) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	req := submitTaskRequest{
		Prompt:  prompt,
		Options: opts,
	}
	if opts != nil && len(opts.Images) > 0 {
		req.Attachments = opts.Images
	}

	var resp SubmitTaskResponse
	if err := c.tr.do(ctx, http.MethodPost, "/run", req, &resp); err != nil {
		return "", err
	}
	return resp.TaskID, nil
}

// GetTaskStatus queries the current status of a task. One call, one snapshot.
func (c *Client) GetTaskStatus(ctx context.Context, taskID string) (*TaskStatus, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}

	var status TaskStatus
	if err := c.tr.do(ctx, http.MethodGet, "/status/"+taskID, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RunTask submits a prompt and polls until the task reaches a terminal state.
// See WaitForCompletion for the polling contract.
func (c *Client) RunTask(ctx context.Context, prompt string, opts *TaskSubmissionOptions) (*TaskStatus, error) {
	taskID, err := c.SubmitTask(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}
	return c.WaitForCompletion(ctx, taskID)
}

// RunTaskStream submits a prompt and opens the event stream for the
// resulting task.
func (c *Client) RunTaskStream(ctx context.Context, prompt string, opts *TaskSubmissionOptions) (*StatusStream, error) {
	taskID, err := c.SubmitTask(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}
	return c.StreamTaskStatus(ctx, taskID)
}
