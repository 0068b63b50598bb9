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
	"context"

	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/submission"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const loginLoggerComponentName = "LoginPage"

// loginPage handles the login form.
type loginPage struct {
	base
}

// NewLoginPage creates the login page handler.
func NewLoginPage(deps Dependencies) router.HandlerInterface {
	return &loginPage{base: newBase(deps, router.RouteLogin, loginLoggerComponentName)}
}

// Activate prefills the form from the flow context and wires the submit control.
func (p *loginPage) Activate() {
	if username := p.deps.Flow.Username(); username != "" {
		if el, ok := p.deps.Document.ElementByID(ElementLoginUsername); ok {
			el.SetValue(username)
		}
	}
	if p.deps.Flow.FirstLogin() {
		submission.NotifySuccess(p.deps.Notifier, NoticeFirstLogin)
	}
	p.onClick(ElementLoginSubmit, p.handleSubmit)
}

func (p *loginPage) handleSubmit(control dom.Element) {
	request := idpclient.LoginRequest{
		Username:  p.value(ElementLoginUsername),
		Password:  p.value(ElementLoginPassword),
		Remember:  p.checked(ElementLoginRemember),
		Challenge: p.deps.Flow.LoginChallenge(),
	}

	switch {
	case request.Username == "":
		p.reject(&ErrorUsernameMissing)
		return
	case request.Password == "":
		p.reject(&ErrorPasswordMissing)
		return
	case request.Challenge == "":
		p.reject(&ErrorChallengeMissing)
		return
	}

	p.logger.Debug("Submitting login", log.String("challenge", log.MaskString(request.Challenge)),
		log.Bool("remember", request.Remember))
	p.submit(control, "", func(ctx context.Context) (outcome, error) {
		resp, err := p.deps.Client.Login(ctx, request)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redirectTo: resp.RedirectTo}, nil
	})
}
