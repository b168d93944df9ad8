// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	taskforce "github.com/taskforceai/taskforce-go"
)

// isolate keeps the test away from any real config file or environment.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFORCE_API_KEY", "")
	t.Setenv("TASKFORCE_BASE_URL", "")
	t.Setenv("TASKFORCE_MOCK_MODE", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != taskforce.DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != taskforce.DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
	if cfg.PollInterval != taskforce.DefaultPollInterval {
		t.Errorf("expected default poll interval, got %v", cfg.PollInterval)
	}
	if cfg.MaxPollAttempts != taskforce.DefaultMaxPollAttempts {
		t.Errorf("expected default attempt budget, got %d", cfg.MaxPollAttempts)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.APIKey)
	}
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("TASKFORCE_API_KEY", "env-key")
	t.Setenv("TASKFORCE_BASE_URL", "https://example.com/api")
	t.Setenv("TASKFORCE_MOCK_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected env-key, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://example.com/api" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
	if !cfg.MockMode {
		t.Error("expected mock mode enabled")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)

	contents := "api_key: file-key\npoll_interval: 2s\n"
	if err := os.WriteFile(filepath.Join(".", "taskforce.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("expected file-key, got %q", cfg.APIKey)
	}
	if cfg.PollInterval != 2*time.Second {
		t.Errorf("expected 2s poll interval, got %v", cfg.PollInterval)
	}
	// Environment still outranks the file.
	t.Setenv("TASKFORCE_API_KEY", "env-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected environment to override file, got %q", cfg.APIKey)
	}
}

func TestConfig_NewClient(t *testing.T) {
	isolate(t)
	t.Setenv("TASKFORCE_MOCK_MODE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	client, err := cfg.NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.BaseURL() != taskforce.DefaultBaseURL {
		t.Errorf("unexpected base URL %q", client.BaseURL())
	}
}

func TestConfig_NewClient_RequiresKey(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.NewClient(); err != taskforce.ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
