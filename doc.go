// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package taskforce is the official Go SDK for the TaskForce AI developer
// API. It submits long-running tasks and observes their outcome either by
// polling or by consuming an incremental event stream, and wraps the
// service's file and thread endpoints.
//
// # Basic Usage
//
//	client, err := taskforce.New(
//		taskforce.WithAPIKey(os.Getenv("TASKFORCE_API_KEY")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	status, err := client.RunTask(ctx, "Summarize this quarter's results", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(*status.Result)
//
// RunTask submits the prompt and polls until the task completes or fails.
// Submission and observation can also be driven separately:
//
//	taskID, err := client.SubmitTask(ctx, prompt, nil)
//	...
//	status, err := client.WaitForCompletion(ctx, taskID)
//
// # Streaming
//
// StreamTaskStatus opens a long-lived connection over which the server
// pushes successive status snapshots. The stream is a pull-based iterator:
//
//	stream, err := client.RunTaskStream(ctx, prompt, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for {
//		status, err := stream.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(status.Status)
//	}
//
// # Error Handling
//
// Every failure path is a distinguishable kind: sentinel errors for
// validation and timeout (ErrEmptyPrompt, ErrEmptyTaskID, ErrPollTimeout),
// and typed errors for the rest (*APIError, *TaskFailedError, *DecodeError,
// *TransportError). Branch with errors.Is and errors.As.
//
// # Mock Mode
//
// WithMockMode(true) swaps the HTTP transport for an offline one that
// serves fixtures, for testing integrations without credentials.
package taskforce
