// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

// Package config resolves CLI configuration from flags, environment
// variables, and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	taskforce "github.com/taskforceai/taskforce-go"
)

// Config is the resolved CLI configuration. Precedence: flags, then
// TASKFORCE_* environment variables, then the config file, then defaults.
type Config struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	MockMode        bool
	PollInterval    time.Duration
	MaxPollAttempts int

	v *viper.Viper
}

// Load reads configuration from the environment and, when present, from
// taskforce.yaml in the working directory or ~/.config/taskforce.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("taskforce")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "taskforce"))
	}

	v.SetEnvPrefix("TASKFORCE")
	v.AutomaticEnv()

	v.SetDefault("base_url", taskforce.DefaultBaseURL)
	v.SetDefault("timeout", taskforce.DefaultTimeout)
	v.SetDefault("poll_interval", taskforce.DefaultPollInterval)
	v.SetDefault("max_poll_attempts", taskforce.DefaultMaxPollAttempts)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		APIKey:          v.GetString("api_key"),
		BaseURL:         v.GetString("base_url"),
		Timeout:         v.GetDuration("timeout"),
		MockMode:        v.GetBool("mock_mode"),
		PollInterval:    v.GetDuration("poll_interval"),
		MaxPollAttempts: v.GetInt("max_poll_attempts"),
		v:               v,
	}, nil
}

// NewClient builds a taskforce.Client from the resolved configuration.
func (c *Config) NewClient() (*taskforce.Client, error) {
	opts := []taskforce.Option{
		taskforce.WithBaseURL(c.BaseURL),
		taskforce.WithTimeout(c.Timeout),
		taskforce.WithPollInterval(c.PollInterval),
		taskforce.WithMaxPollAttempts(c.MaxPollAttempts),
		taskforce.WithMockMode(c.MockMode),
	}
	if c.APIKey != "" {
		opts = append(opts, taskforce.WithAPIKey(c.APIKey))
	}
	return taskforce.New(opts...)
}
