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

// Package page implements the hosted page handlers. Each handler owns one route, wires the
// page controls to client-side validation and submits the flow to the identity provider.
package page

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/flowcontext"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/passwordpolicy"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/internal/system/error/serviceerror"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

// Dependencies bundles the capabilities injected into every page handler.
type Dependencies struct {
	Document      dom.Document
	Window        dom.Window
	Flow          flowcontext.FlowContext
	Client        idpclient.IdPClientInterface
	Notifier      submission.NotificationSinkInterface
	Controller    submission.ControllerInterface
	Runner        submission.RunnerInterface
	RedirectDelay time.Duration
}

// outcome describes what happens after a successful submission.
type outcome struct {
	redirectTo string
	notice     string
}

// base carries the behaviour shared by all page handlers.
type base struct {
	deps   Dependencies
	route  string
	logger *log.Logger
}

func newBase(deps Dependencies, route, component string) base {
	return base{
		deps:  deps,
		route: route,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, component),
			log.String(log.LoggerKeyRoute, route)),
	}
}

// Route returns the route the handler owns.
func (b *base) Route() string {
	return b.route
}

// value returns the value of the element with the given id, or an empty string.
func (b *base) value(id string) string {
	el, ok := b.deps.Document.ElementByID(id)
	if !ok {
		return ""
	}
	return el.Value()
}

// checked reports whether the element with the given id is checked.
func (b *base) checked(id string) bool {
	el, ok := b.deps.Document.ElementByID(id)
	if !ok {
		return false
	}
	return el.Checked()
}

// onClick attaches a submit listener to the control.
func (b *base) onClick(id string, listener func(control dom.Element)) {
	control, ok := b.deps.Document.ElementByID(id)
	if !ok {
		b.logger.Warn("Submit control not found on page", log.String("elementId", id))
		return
	}
	control.OnClick(func() {
		listener(control)
	})
}

// reject reports a validation failure. Nothing is sent to the identity provider.
func (b *base) reject(svcErr *serviceerror.ServiceError) {
	b.logger.Debug("Submission rejected by client-side validation", log.String("errorCode", svcErr.Code))
	submission.NotifyError(b.deps.Notifier, svcErr.ErrorDescription)
}

// passwordPolicy loads the policy rendered into the page.
func (b *base) passwordPolicy() *passwordpolicy.PasswordPolicy {
	return passwordpolicy.LoadFromDocument(b.deps.Document)
}

// navigate moves the browser away from the page.
func (b *base) navigate(target string) {
	b.logger.Debug("Navigating away from page")
	b.deps.Window.Navigate(target)
}

// submit brackets one identity provider call with the submitting state of the control.
// The call runs asynchronously. Failures restore the control and surface as a notification.
// A click on a control whose request is still in flight is ignored.
func (b *base) submit(control dom.Element, label string, call func(ctx context.Context) (outcome, error)) {
	if !b.deps.Controller.Begin(control) {
		b.logger.Debug("Submission already in flight")
		return
	}
	b.deps.Runner.Go(func() {
		result, err := call(context.Background())
		b.deps.Controller.End(control, label)
		if err != nil {
			submission.NotifyError(b.deps.Notifier, b.failureMessage(err))
			return
		}
		if result.notice != "" {
			submission.NotifySuccess(b.deps.Notifier, result.notice)
		}
		if result.redirectTo != "" {
			b.navigate(result.redirectTo)
		}
	})
}

// failureMessage converts a submission failure into the text shown to the user.
func (b *base) failureMessage(err error) string {
	var respErr *idpclient.ResponseError
	if errors.As(err, &respErr) {
		b.logger.Debug("Identity provider rejected submission", log.Int("status", respErr.StatusCode))
		return respErr.Message()
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		b.logger.Error("Identity provider unreachable", log.Error(err))
		return ErrorServerUnreachable.ErrorDescription
	}

	b.logger.Error("Unexpected identity provider response", log.Error(err))
	return ErrorUnexpectedResponse.ErrorDescription
}
