// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/taskforceai/taskforce-go"
)

// pollServer serves /status/{id} responses from a script, one per request,
// repeating the last entry once the script runs out.
func pollServer(t *testing.T, requests *atomic.Int32, responses ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(requests.Add(1))
		if n > len(responses) {
			n = len(responses)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responses[n-1]))
	}))
}

func newPollClient(t *testing.T, baseURL string, attempts int) *taskforce.Client {
	t.Helper()
	client, err := taskforce.New(
		taskforce.WithAPIKey("test-key"),
		taskforce.WithBaseURL(baseURL),
		taskforce.WithPollInterval(time.Millisecond),
		taskforce.WithMaxPollAttempts(attempts),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestWaitForCompletion_Completed(t *testing.T) {
	var requests atomic.Int32
	srv := pollServer(t, &requests,
		`{"taskId":"t1","status":"processing"}`,
		`{"taskId":"t1","status":"processing"}`,
		`{"taskId":"t1","status":"completed","result":"42"}`,
	)
	defer srv.Close()

	client := newPollClient(t, srv.URL, 60)
	status, err := client.WaitForCompletion(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &taskforce.TaskStatus{
		TaskID: "t1",
		Status: taskforce.StatusCompleted,
		Result: strPtr("42"),
	}
	if diff := cmp.Diff(want, status); diff != "" {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
	if got := requests.Load(); got != 3 {
		t.Errorf("expected 3 status queries, got %d", got)
	}
}

func TestWaitForCompletion_AttemptBudget(t *testing.T) {
	var requests atomic.Int32
	srv := pollServer(t, &requests, `{"taskId":"t1","status":"processing"}`)
	defer srv.Close()

	client := newPollClient(t, srv.URL, 2)
	_, err := client.WaitForCompletion(context.Background(), "t1")
	if !errors.Is(err, taskforce.ErrPollTimeout) {
		t.Fatalf("expected ErrPollTimeout, got %v", err)
	}
	if got := requests.Load(); got != 2 {
		t.Errorf("expected exactly 2 status queries, got %d", got)
	}
}

func TestWaitForCompletion_Failed(t *testing.T) {
	tests := map[string]struct {
		body    string
		wantMsg string
	}{
		"with error text": {
			body:    `{"taskId":"t1","status":"failed","error":"model unavailable"}`,
			wantMsg: "model unavailable",
		},
		"without error text": {
			body:    `{"taskId":"t1","status":"failed"}`,
			wantMsg: "Unknown error",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var requests atomic.Int32
			srv := pollServer(t, &requests, tc.body)
			defer srv.Close()

			client := newPollClient(t, srv.URL, 60)
			_, err := client.WaitForCompletion(context.Background(), "t1")

			var failedErr *taskforce.TaskFailedError
			if !errors.As(err, &failedErr) {
				t.Fatalf("expected *TaskFailedError, got %v", err)
			}
			if failedErr.Message != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, failedErr.Message)
			}
			if got := requests.Load(); got != 1 {
				t.Errorf("expected 1 status query, got %d", got)
			}
		})
	}
}

func TestWaitForCompletion_QueryErrorAborts(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "task not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newPollClient(t, srv.URL, 60)
	_, err := client.WaitForCompletion(context.Background(), "missing")

	var apiErr *taskforce.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected polling to stop after first failure, got %d queries", got)
	}
}

func TestWaitForCompletion_EmptyTaskID(t *testing.T) {
	var requests atomic.Int32
	srv := pollServer(t, &requests, `{"taskId":"t1","status":"completed"}`)
	defer srv.Close()

	client := newPollClient(t, srv.URL, 60)
	if _, err := client.WaitForCompletion(context.Background(), "  "); !errors.Is(err, taskforce.ErrEmptyTaskID) {
		t.Fatalf("expected ErrEmptyTaskID, got %v", err)
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("expected no requests, got %d", got)
	}
}

func TestWaitForCompletion_ContextCanceled(t *testing.T) {
	var requests atomic.Int32
	srv := pollServer(t, &requests, `{"taskId":"t1","status":"processing"}`)
	defer srv.Close()

	client, err := taskforce.New(
		taskforce.WithAPIKey("test-key"),
		taskforce.WithBaseURL(srv.URL),
		taskforce.WithPollInterval(time.Hour),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = client.WaitForCompletion(ctx, "t1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunTask(t *testing.T) {
	var statusRequests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/run":
			w.Write([]byte(`{"taskId":"t9"}`))
		case r.URL.Path == "/status/t9":
			if statusRequests.Add(1) == 1 {
				w.Write([]byte(`{"taskId":"t9","status":"processing"}`))
				return
			}
			w.Write([]byte(`{"taskId":"t9","status":"completed","result":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := newPollClient(t, srv.URL, 60)
	status, err := client.RunTask(context.Background(), "do the thing", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.TaskID != "t9" || status.Status != taskforce.StatusCompleted {
		t.Errorf("unexpected final status: %+v", status)
	}
}
