// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package taskforce provides a Go client for the TaskForce AI developer API.
package taskforce

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-json-experiment/json"
)

// Default client configuration. Each value can be overridden with the
// corresponding Option at construction.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://taskforceai.chat/api/developer"

	// DefaultTimeout bounds a single request/response exchange.
	DefaultTimeout = 30 * time.Second

	// DefaultPollInterval is the delay between status queries while a task
	// is still processing.
	DefaultPollInterval = 1000 * time.Millisecond

	// DefaultMaxPollAttempts bounds the number of status queries issued by
	// WaitForCompletion before it gives up.
	DefaultMaxPollAttempts = 60
)

// StatusValue represents the lifecycle state of a task.
type StatusValue string

const (
	// StatusProcessing indicates the task is still being worked on.
	StatusProcessing StatusValue = "processing"

	// StatusCompleted indicates the task finished successfully.
	StatusCompleted StatusValue = "completed"

	// StatusFailed indicates the task finished with an error.
	StatusFailed StatusValue = "failed"
)

// Terminal reports whether no further progress is expected for this state.
func (s StatusValue) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// UnmarshalJSON validates that the wire value is one of the known states.
// The enumeration is closed: any other tag is a decode error.
func (s *StatusValue) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := StatusValue(raw); v {
	case StatusProcessing, StatusCompleted, StatusFailed:
		*s = v
		return nil
	default:
		return fmt.Errorf("unrecognized task status %q", raw)
	}
}

// TaskStatus is the snapshot of one task at one instant, as returned by a
// status query or carried by a stream event. Values are never mutated after
// decoding; each decode produces a fresh TaskStatus.
type TaskStatus struct {
	// TaskID is the opaque identifier assigned at submission.
	TaskID string `json:"taskId"`

	// Status is the task's lifecycle state.
	Status StatusValue `json:"status"`

	// Result carries the task output. Present only when Status is
	// StatusCompleted.
	Result *string `json:"result,omitempty"`

	// Error carries the failure text. Present only when Status is
	// StatusFailed; WaitForCompletion substitutes "Unknown error" when a
	// failed task omits it.
	Error *string `json:"error,omitempty"`

	// Warnings are advisory messages that do not affect the lifecycle.
	Warnings []string `json:"warnings,omitempty"`

	// Metadata is an opaque key/value passthrough, never interpreted by
	// the client.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SubmitTaskResponse is the server's reply to a task submission.
type SubmitTaskResponse struct {
	TaskID string `json:"taskId"`
}

// ImageAttachment is a base64-encoded image included with a task prompt.
type ImageAttachment struct {
	// Data is the base64-encoded image content.
	Data string `json:"data"`

	// MIMEType identifies the image format, e.g. "image/png".
	MIMEType string `json:"mime_type"`

	// Name is an optional filename.
	Name string `json:"name,omitempty"`
}

// TaskSubmissionOptions carries optional parameters for SubmitTask.
type TaskSubmissionOptions struct {
	ModelID     string         `json:"modelId,omitempty"`
	Silent      bool           `json:"silent,omitzero"`
	Mock        bool           `json:"mock,omitzero"`
	VercelAIKey string         `json:"vercelAiKey,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	// Images are hoisted into the top-level "attachments" field of the
	// submission body rather than serialized inline.
	Images []ImageAttachment `json:"-"`
}

// submitTaskRequest is the body of POST /run.
type submitTaskRequest struct {
	Prompt      string                 `json:"prompt"`
	Options     *TaskSubmissionOptions `json:"options,omitempty"`
	Attachments []ImageAttachment      `json:"attachments,omitempty"`
}

// UnixTime is a time.Time that travels as integer Unix seconds on the wire.
type UnixTime struct {
	time.Time
}

// MarshalJSON implements json.Marshaler.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse unix timestamp: %w", err)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}
