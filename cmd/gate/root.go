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

package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/asgardeo/thunder-gate/internal/system/config"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const defaultConfigPath = "repository/conf/gate.yaml"

// newRootCmd builds the command tree of the gate CLI.
func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "gate",
		Short:        "Headless driver for the hosted login, consent and account pages",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the gate configuration file")

	rootCmd.AddCommand(newDriveCmd(&configPath))
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newPasswordCmd())
	return rootCmd
}

// loadConfig reads the configuration file. A missing file falls back to the defaults with
// environment overrides applied.
func loadConfig(path string) (*config.Config, error) {
	logger := log.GetLogger()

	cfg, err := config.LoadConfig(path)
	if err == nil {
		logger.Debug("Loaded configuration", log.String("path", path))
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	logger.Debug("Configuration file not found, using defaults", log.String("path", path))
	cfg = config.DefaultConfig()
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
