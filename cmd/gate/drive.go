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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asgardeo/thunder-gate/internal/dom/memdom"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/managers"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/internal/system/config"
	syshttp "github.com/asgardeo/thunder-gate/internal/system/http"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

// driveOptions holds the interactions applied to the page, in order: fields, checks, clicks.
type driveOptions struct {
	backend string
	fields  []string
	checks  []string
	clicks  []string
}

func newDriveCmd(configPath *string) *cobra.Command {
	opts := &driveOptions{}

	cmd := &cobra.Command{
		Use:   "drive <page-url>",
		Short: "Load a hosted page, fill it in and submit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return drive(cmd.OutOrStdout(), cfg, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.backend, "backend", "", "Identity provider base URL (defaults to the configured one, then the page origin)")
	flags.StringArrayVar(&opts.fields, "field", nil, "Value typed into a control, as id=value")
	flags.StringArrayVar(&opts.checks, "check", nil, "Id of a checkbox to tick")
	flags.StringArrayVar(&opts.clicks, "click", nil, "Id of a control to click")
	return cmd
}

func drive(out io.Writer, cfg *config.Config, pageURL string, opts *driveOptions) error {
	logger := log.GetLogger()

	location, err := url.Parse(pageURL)
	if err != nil || !location.IsAbs() {
		return fmt.Errorf("page url must be absolute: %q", pageURL)
	}

	httpClient := syshttp.NewHTTPClientWithOptions(cfg.Backend.Timeout, cfg.Backend.InsecureSkipVerify)
	doc, err := fetchPage(httpClient, location.String())
	if err != nil {
		return err
	}

	backend := backendURL(cfg, opts.backend, location)
	client, err := idpclient.NewIdPClient(backend, httpClient)
	if err != nil {
		return fmt.Errorf("invalid backend url: %w", err)
	}
	logger.Debug("Driving page", log.String("page", location.Path), log.String("backend", backend))

	window := memdom.NewWindow(location)
	runner := submission.NewRunner()
	pm, err := managers.NewPageManager(cfg, doc, window, client, runner)
	if err != nil {
		return err
	}

	route := pm.Start()
	if err := interact(doc, pm, opts); err != nil {
		return err
	}
	pm.Wait()

	fmt.Fprintf(out, "route: %s\n", route)
	if target, ok := window.LastNavigation(); ok {
		fmt.Fprintf(out, "navigate: %s\n", target)
	}
	if n, ok := pm.LastNotification(); ok {
		fmt.Fprintf(out, "notification [%s]: %s\n", n.Kind, n.Message)
	}
	return nil
}

// fetchPage downloads and parses the server rendered page.
func fetchPage(client syshttp.HTTPClientInterface, pageURL string) (*memdom.Document, error) {
	resp, err := client.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page: %s", resp.Status)
	}
	return memdom.Parse(resp.Body)
}

// backendURL picks the identity provider base URL: flag, then configuration, then page origin.
func backendURL(cfg *config.Config, flagValue string, location *url.URL) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Backend.BaseURL != "" {
		return cfg.Backend.BaseURL
	}
	return (&url.URL{Scheme: location.Scheme, Host: location.Host}).String()
}

// interact applies the requested interactions. Each click waits for the submission it starts.
func interact(doc *memdom.Document, pm managers.PageManagerInterface, opts *driveOptions) error {
	for _, field := range opts.fields {
		id, value, ok := strings.Cut(field, "=")
		if !ok || id == "" {
			return fmt.Errorf("invalid field %q, expected id=value", field)
		}
		if err := doc.Fill(id, value); err != nil {
			return fmt.Errorf("field %q: %w", id, err)
		}
	}
	for _, id := range opts.checks {
		if err := doc.Check(id, true); err != nil {
			return fmt.Errorf("check %q: %w", id, err)
		}
	}
	for _, id := range opts.clicks {
		if err := doc.Click(id); err != nil {
			return fmt.Errorf("click %q: %w", id, err)
		}
		pm.Wait()
	}
	return nil
}
