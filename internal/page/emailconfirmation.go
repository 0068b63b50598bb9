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

package page

import (
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const (
	emailConfirmationLoggerComponentName = "EmailConfirmationPage"
	errorPageLoggerComponentName         = "ErrorPage"
)

// emailConfirmationPage forwards the user to the server supplied link after a delay.
type emailConfirmationPage struct {
	base
}

// NewEmailConfirmationPage creates the email confirmation page handler.
func NewEmailConfirmationPage(deps Dependencies) router.HandlerInterface {
	return &emailConfirmationPage{
		base: newBase(deps, router.RouteEmailConfirmation, emailConfirmationLoggerComponentName),
	}
}

// Activate schedules the redirect when the page carries a link.
func (p *emailConfirmationPage) Activate() {
	link := p.value(ElementRedirectTo)
	if link == "" {
		return
	}
	p.logger.Debug("Scheduling email confirmation redirect", log.Duration("delay", p.deps.RedirectDelay))
	p.deps.Runner.After(p.deps.RedirectDelay, func() {
		p.navigate(link)
	})
}

// errorPage is activated for paths that match no known route.
type errorPage struct {
	base
}

// NewErrorPage creates the handler of the error pseudo-route.
func NewErrorPage(deps Dependencies) router.HandlerInterface {
	return &errorPage{base: newBase(deps, router.RouteError, errorPageLoggerComponentName)}
}

// Activate reveals the error block of the page and reports the unknown page.
func (p *errorPage) Activate() {
	if el, ok := p.deps.Document.ElementByID(ElementError); ok {
		el.SetHidden(false)
	}
	p.reject(&ErrorPageNotFound)
}
