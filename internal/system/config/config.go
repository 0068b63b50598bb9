/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing gate configurations.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const (
	// DefaultBackendTimeout is the timeout applied to identity provider calls.
	DefaultBackendTimeout = 30 * time.Second
	// DefaultNotificationDismissAfter is how long a notification banner stays visible.
	DefaultNotificationDismissAfter = 5 * time.Second
	// DefaultEmailConfirmationRedirectDelay is the wait before the email confirmation page redirects.
	DefaultEmailConfirmationRedirectDelay = 5 * time.Second
	// DefaultSubmitLabel is the label restored on a submit control when none is given.
	DefaultSubmitLabel = "Submit"
)

// BackendConfig holds the identity provider backend details.
type BackendConfig struct {
	BaseURL            string        `yaml:"base_url" env:"GATE_BACKEND_URL"`
	Timeout            time.Duration `yaml:"timeout" env:"GATE_BACKEND_TIMEOUT"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify" env:"GATE_BACKEND_INSECURE_SKIP_VERIFY"`
}

// NotificationConfig holds the notification banner details.
type NotificationConfig struct {
	DismissAfter time.Duration `yaml:"dismiss_after" env:"GATE_NOTIFICATION_DISMISS_AFTER"`
}

// EmailConfirmationConfig holds the email confirmation page details.
type EmailConfirmationConfig struct {
	RedirectDelay time.Duration `yaml:"redirect_delay" env:"GATE_REDIRECT_DELAY"`
}

// SubmitConfig holds the submit control details.
type SubmitConfig struct {
	DefaultLabel string `yaml:"default_label" env:"GATE_SUBMIT_DEFAULT_LABEL"`
}

// Config holds the complete configuration details of the gate.
type Config struct {
	Backend           BackendConfig           `yaml:"backend"`
	Notification      NotificationConfig      `yaml:"notification"`
	EmailConfirmation EmailConfirmationConfig `yaml:"email_confirmation"`
	Submit            SubmitConfig            `yaml:"submit"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Timeout: DefaultBackendTimeout,
		},
		Notification: NotificationConfig{
			DismissAfter: DefaultNotificationDismissAfter,
		},
		EmailConfirmation: EmailConfirmationConfig{
			RedirectDelay: DefaultEmailConfirmationRedirectDelay,
		},
		Submit: SubmitConfig{
			DefaultLabel: DefaultSubmitLabel,
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file on top of the defaults
// and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// ApplyEnvOverrides overwrites configuration values with any GATE_* environment variables that are set.
func ApplyEnvOverrides(cfg *Config) error {
	return env.Parse(cfg)
}

// fillDefaults restores defaults for values explicitly zeroed in the file.
func (c *Config) fillDefaults() {
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = DefaultBackendTimeout
	}
	if c.Notification.DismissAfter <= 0 {
		c.Notification.DismissAfter = DefaultNotificationDismissAfter
	}
	if c.EmailConfirmation.RedirectDelay < 0 {
		c.EmailConfirmation.RedirectDelay = DefaultEmailConfirmationRedirectDelay
	}
	if c.Submit.DefaultLabel == "" {
		c.Submit.DefaultLabel = DefaultSubmitLabel
	}
}
