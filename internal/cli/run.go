// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	taskforce "github.com/taskforceai/taskforce-go"
)

var (
	runStream bool
	runModel  string
	runSilent bool
)

var runCmd = &cobra.Command{
	Use:   "run <prompt>",
	Short: "Submit a task and wait for its result",
	Long: `Submit a prompt for asynchronous execution and wait for the outcome.

By default the task is polled until it reaches a terminal state. With
--stream, the live event stream is followed instead and every status
update is printed as it arrives.

Examples:
  taskforce run "Summarize the attached report"
  taskforce run --stream "Generate a weekly digest"
  taskforce run --model gpt-4o "Translate this to French"`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runStream, "stream", false, "Follow the event stream instead of polling")
	runCmd.Flags().StringVar(&runModel, "model", "", "Model ID to run the task with")
	runCmd.Flags().BoolVar(&runSilent, "silent", false, "Ask the service to suppress notifications")
}

func runRun(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var opts *taskforce.TaskSubmissionOptions
	if runModel != "" || runSilent {
		opts = &taskforce.TaskSubmissionOptions{
			ModelID: runModel,
			Silent:  runSilent,
		}
	}

	ctx := cmd.Context()

	if runStream {
		stream, err := client.RunTaskStream(ctx, args[0], opts)
		if err != nil {
			return err
		}
		defer stream.Close()
		return followStream(stream)
	}

	status, err := client.RunTask(ctx, args[0], opts)
	if err != nil {
		return err
	}
	printStatus(status)
	return nil
}

// followStream prints every event until the server closes the connection.
func followStream(stream *taskforce.StatusStream) error {
	for {
		status, err := stream.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		printStatus(status)
	}
}

func printStatus(status *taskforce.TaskStatus) {
	fmt.Printf("%s  %s\n", status.TaskID, colorStatus(status.Status))
	for _, w := range status.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	if status.Result != nil {
		fmt.Println(*status.Result)
	}
	if status.Error != nil {
		fmt.Printf("  error: %s\n", *status.Error)
	}
}
