// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Thread is a conversation thread.
type Thread struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	CreatedAt UnixTime `json:"created_at"`
	UpdatedAt UnixTime `json:"updated_at"`
}

// ThreadMessage is one message within a thread. Role is "user" or
// "assistant".
type ThreadMessage struct {
	ID        int64    `json:"id"`
	ThreadID  int64    `json:"thread_id"`
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	CreatedAt UnixTime `json:"created_at"`
}

// CreateThreadOptions carries optional parameters for CreateThread.
type CreateThreadOptions struct {
	Title    string          `json:"title,omitempty"`
	Messages []ThreadMessage `json:"messages,omitempty"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// ThreadListResponse is one page of threads.
type ThreadListResponse struct {
	Threads []Thread `json:"threads"`
	Total   int64    `json:"total"`
}

// ThreadMessagesResponse is one page of messages from a thread.
type ThreadMessagesResponse struct {
	Messages []ThreadMessage `json:"messages"`
	Total    int64           `json:"total"`
}

// ThreadRunOptions carries the prompt and parameters for RunInThread.
type ThreadRunOptions struct {
	Prompt  string         `json:"prompt"`
	ModelID string         `json:"model_id,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// ThreadRunResponse identifies the task created by RunInThread and the
// message recording the prompt.
type ThreadRunResponse struct {
	TaskID    string `json:"task_id"`
	ThreadID  int64  `json:"thread_id"`
	MessageID int64  `json:"message_id"`
}

// CreateThread creates a new conversation thread.
func (c *Client) CreateThread(ctx context.Context, opts *CreateThreadOptions) (*Thread, error) {
	var body any = map[string]any{}
	if opts != nil {
		body = opts
	}

	var thread Thread
	if err := c.tr.do(ctx, http.MethodPost, "/threads", body, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// ListThreads retrieves one page of threads.
func (c *Client) ListThreads(ctx context.Context, limit, offset int) (*ThreadListResponse, error) {
	var resp ThreadListResponse
	path := fmt.Sprintf("/threads?limit=%d&offset=%d", limit, offset)
	if err := c.tr.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetThread retrieves one thread by ID.
func (c *Client) GetThread(ctx context.Context, threadID int64) (*Thread, error) {
	var thread Thread
	path := fmt.Sprintf("/threads/%d", threadID)
	if err := c.tr.do(ctx, http.MethodGet, path, nil, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// DeleteThread deletes a thread by ID.
func (c *Client) DeleteThread(ctx context.Context, threadID int64) error {
	return c.tr.do(ctx, http.MethodDelete, fmt.Sprintf("/threads/%d", threadID), nil, nil)
}

// GetThreadMessages retrieves one page of messages from a thread.
func (c *Client) GetThreadMessages(ctx context.Context, threadID int64, limit, offset int) (*ThreadMessagesResponse, error) {
	var resp ThreadMessagesResponse
	path := fmt.Sprintf("/threads/%d/messages?limit=%d&offset=%d", threadID, limit, offset)
	if err := c.tr.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RunInThread submits a prompt within a thread's conversation context. The
// returned task ID can be polled or streamed like any other task.
func (c *Client) RunInThread(ctx context.Context, threadID int64, opts ThreadRunOptions) (*ThreadRunResponse, error) {
	if strings.TrimSpace(opts.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	var resp ThreadRunResponse
	path := fmt.Sprintf("/threads/%d/runs", threadID)
	if err := c.tr.do(ctx, http.MethodPost, path, opts, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
