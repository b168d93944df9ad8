// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	taskforce "github.com/taskforceai/taskforce-go"
)

var (
	threadsLimit  int
	threadsOffset int
	threadsTitle  string
	threadsModel  string
)

var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Manage conversation threads",
}

var threadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List threads",
	RunE:  runThreadsList,
}

var threadsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a thread",
	RunE:  runThreadsCreate,
}

var threadsDeleteCmd = &cobra.Command{
	Use:   "delete <thread-id>",
	Short: "Delete a thread",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadsDelete,
}

var threadsMessagesCmd = &cobra.Command{
	Use:   "messages <thread-id>",
	Short: "Show messages in a thread",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadsMessages,
}

var threadsRunCmd = &cobra.Command{
	Use:   "run <thread-id> <prompt>",
	Short: "Submit a prompt within a thread and wait for its result",
	Args:  cobra.ExactArgs(2),
	RunE:  runThreadsRun,
}

func init() {
	rootCmd.AddCommand(threadsCmd)
	threadsCmd.AddCommand(threadsListCmd, threadsCreateCmd, threadsDeleteCmd, threadsMessagesCmd, threadsRunCmd)

	threadsListCmd.Flags().IntVar(&threadsLimit, "limit", 20, "Maximum number of threads to return")
	threadsListCmd.Flags().IntVar(&threadsOffset, "offset", 0, "Offset into the thread list")
	threadsCreateCmd.Flags().StringVar(&threadsTitle, "title", "", "Thread title")
	threadsRunCmd.Flags().StringVar(&threadsModel, "model", "", "Model ID to run the prompt with")
}

func parseThreadID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid thread ID %q", arg)
	}
	return id, nil
}

func runThreadsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.ListThreads(cmd.Context(), threadsLimit, threadsOffset)
	if err != nil {
		return err
	}

	for _, t := range resp.Threads {
		fmt.Printf("%6d  %-40s  %s\n", t.ID, t.Title, t.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d of %d threads\n", len(resp.Threads), resp.Total)
	return nil
}

func runThreadsCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var opts *taskforce.CreateThreadOptions
	if threadsTitle != "" {
		opts = &taskforce.CreateThreadOptions{Title: threadsTitle}
	}

	thread, err := client.CreateThread(cmd.Context(), opts)
	if err != nil {
		return err
	}
	fmt.Printf("created thread %d\n", thread.ID)
	return nil
}

func runThreadsDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := parseThreadID(args[0])
	if err != nil {
		return err
	}
	if err := client.DeleteThread(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("deleted thread %d\n", id)
	return nil
}

func runThreadsMessages(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := parseThreadID(args[0])
	if err != nil {
		return err
	}
	resp, err := client.GetThreadMessages(cmd.Context(), id, 50, 0)
	if err != nil {
		return err
	}

	for _, m := range resp.Messages {
		fmt.Printf("[%s] %s\n", m.Role, m.Content)
	}
	return nil
}

func runThreadsRun(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := parseThreadID(args[0])
	if err != nil {
		return err
	}

	resp, err := client.RunInThread(cmd.Context(), id, taskforce.ThreadRunOptions{
		Prompt:  args[1],
		ModelID: threadsModel,
	})
	if err != nil {
		return err
	}

	status, err := client.WaitForCompletion(cmd.Context(), resp.TaskID)
	if err != nil {
		return err
	}
	printStatus(status)
	return nil
}
