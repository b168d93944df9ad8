// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the taskforce CLI.
package main

import (
	"os"

	"github.com/taskforceai/taskforce-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
