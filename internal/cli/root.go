// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line interface for taskforce.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	taskforce "github.com/taskforceai/taskforce-go"
	"github.com/taskforceai/taskforce-go/internal/config"
)

// Version information - set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagMock    bool
)

var rootCmd = &cobra.Command{
	Use:   "taskforce",
	Short: "Submit and observe TaskForce AI tasks",
	Long: `taskforce submits prompts to the TaskForce AI developer API and
observes the resulting tasks, either by polling until completion or by
following the live event stream.

Credentials are read from the --api-key flag, the TASKFORCE_API_KEY
environment variable, or a taskforce.yaml config file.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskforce %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (overrides TASKFORCE_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API endpoint (overrides TASKFORCE_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "Use the offline mock transport")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagMock {
		cfg.MockMode = true
	}
	return cfg, nil
}

// newClient builds an SDK client from the resolved configuration.
func newClient() (*taskforce.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.NewClient()
}

// colorStatus renders a lifecycle state for terminal output.
func colorStatus(s taskforce.StatusValue) string {
	switch s {
	case taskforce.StatusCompleted:
		return color.GreenString(string(s))
	case taskforce.StatusProcessing:
		return color.YellowString(string(s))
	case taskforce.StatusFailed:
		return color.RedString(string(s))
	default:
		return string(s)
	}
}
