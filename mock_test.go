// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/taskforceai/taskforce-go"
)

func newMockClient(t *testing.T) *taskforce.Client {
	t.Helper()
	client, err := taskforce.New(taskforce.WithMockMode(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestMockMode_NoAPIKeyRequired(t *testing.T) {
	if _, err := taskforce.New(taskforce.WithMockMode(true)); err != nil {
		t.Fatalf("mock mode must not require an API key, got %v", err)
	}
}

func TestMockMode_SubmitTask(t *testing.T) {
	client := newMockClient(t)
	taskID, err := client.SubmitTask(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("SubmitTask: %v", err)
	}
	if taskID != taskforce.MockTaskID {
		t.Errorf("expected %q, got %q", taskforce.MockTaskID, taskID)
	}
}

func TestMockMode_RunTask(t *testing.T) {
	client := newMockClient(t)
	status, err := client.RunTask(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("RunTask: %v", err)
	}
	if status.TaskID != taskforce.MockTaskID {
		t.Errorf("expected task ID %q, got %q", taskforce.MockTaskID, status.TaskID)
	}
	if status.Status != taskforce.StatusCompleted {
		t.Errorf("expected completed, got %s", status.Status)
	}
	if status.Result == nil || !strings.Contains(*status.Result, "mock response") {
		t.Errorf("expected canned mock result, got %v", status.Result)
	}
}

func TestMockMode_Stream(t *testing.T) {
	client := newMockClient(t)
	stream, err := client.StreamTaskStatus(context.Background(), taskforce.MockTaskID)
	if err != nil {
		t.Fatalf("StreamTaskStatus: %v", err)
	}
	defer stream.Close()

	status, err := stream.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if status.Status != taskforce.StatusCompleted {
		t.Errorf("expected completed, got %s", status.Status)
	}

	if _, err := stream.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after single mock event, got %v", err)
	}
}

func TestMockMode_InputValidationStillApplies(t *testing.T) {
	client := newMockClient(t)
	if _, err := client.SubmitTask(context.Background(), "   ", nil); err != taskforce.ErrEmptyPrompt {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
	if _, err := client.GetTaskStatus(context.Background(), ""); err != taskforce.ErrEmptyTaskID {
		t.Errorf("expected ErrEmptyTaskID, got %v", err)
	}
}
