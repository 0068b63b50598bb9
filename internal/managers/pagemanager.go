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

// Package managers assembles the hosted page handlers and starts the one owning the current page.
package managers

import (
	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/flowcontext"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/page"
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/internal/system/config"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const loggerComponentName = "PageManager"

// PageManagerInterface starts the handler of the current page.
type PageManagerInterface interface {
	Start() string
	Wait()
	LastNotification() (submission.Notification, bool)
}

// PageManager is the default implementation of PageManagerInterface.
type PageManager struct {
	window     dom.Window
	runner     submission.RunnerInterface
	notifier   *submission.BannerNotifier
	dispatcher *router.Dispatcher
}

// NewPageManager creates a new instance of PageManager and registers every page handler.
func NewPageManager(cfg *config.Config, doc dom.Document, window dom.Window,
	client idpclient.IdPClientInterface, runner submission.RunnerInterface) (PageManagerInterface, error) {
	notifier := submission.NewBannerNotifier(doc, page.ElementNotification, cfg.Notification.DismissAfter)
	deps := page.Dependencies{
		Document:      doc,
		Window:        window,
		Flow:          flowcontext.Read(window.Location()),
		Client:        client,
		Notifier:      notifier,
		Controller:    submission.NewController(cfg.Submit.DefaultLabel),
		Runner:        runner,
		RedirectDelay: cfg.EmailConfirmation.RedirectDelay,
	}

	dispatcher, err := router.NewDispatcher(page.NewErrorPage(deps), registerPages(deps)...)
	if err != nil {
		return nil, err
	}

	return &PageManager{
		window:     window,
		runner:     runner,
		notifier:   notifier,
		dispatcher: dispatcher,
	}, nil
}

// registerPages returns the handler of every known route.
func registerPages(deps page.Dependencies) []router.HandlerInterface {
	return []router.HandlerInterface{
		page.NewLoginPage(deps),
		page.NewConsentPage(deps),
		page.NewRegistrationPage(deps),
		page.NewUpdatePage(deps),
		page.NewPasswordResetStep1Page(deps),
		page.NewPasswordResetStep2Page(deps),
		page.NewEmailConfirmationPage(deps),
	}
}

// Start activates the handler owning the current page path and returns its route.
func (pm *PageManager) Start() string {
	path := pm.window.Location().Path
	route := pm.dispatcher.Dispatch(path)

	log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
		Info("Page started", log.String(log.LoggerKeyRoute, route))
	return route
}

// Wait blocks until every pending submission and scheduled redirect has finished.
func (pm *PageManager) Wait() {
	pm.runner.Wait()
}

// LastNotification returns the most recent notification shown on the page.
func (pm *PageManager) LastNotification() (submission.Notification, bool) {
	return pm.notifier.Last()
}
