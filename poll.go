// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package taskforce

import (
	"context"
	"strings"
	"time"
)

// WaitForCompletion polls a task until it reaches a terminal state.
//
// Queries are strictly sequential, spaced by the configured poll interval and
// bounded by the configured attempt budget. A completed task returns its
// final snapshot. A failed task returns a *TaskFailedError carrying the
// task's own error text, or "Unknown error" when the status omits it. An
// exhausted budget returns ErrPollTimeout. Any query failure - transport,
// API, or decode - aborts the loop immediately and is not retried here.
func (c *Client) WaitForCompletion(ctx context.Context, taskID string) (*TaskStatus, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrEmptyTaskID
	}

	for attempt := 0; attempt < c.opts.maxPollAttempts; attempt++ {
		status, err := c.GetTaskStatus(ctx, taskID)
		if err != nil {
			return nil, err
		}

		c.opts.logger.DebugContext(ctx, "polled task",
			"task_id", taskID,
			"attempt", attempt+1,
			"status", status.Status,
		)

		switch status.Status {
		case StatusCompleted:
			return status, nil
		case StatusFailed:
			msg := "Unknown error"
			if status.Error != nil {
				msg = *status.Error
			}
			return nil, &TaskFailedError{Message: msg}
		}

		// Still processing. The wait suspends only this operation.
		timer := time.NewTimer(c.opts.pollInterval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	return nil, ErrPollTimeout
}
