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
	"net/url"

	"github.com/asgardeo/thunder-gate/internal/dom"
	"github.com/asgardeo/thunder-gate/internal/flowcontext"
	"github.com/asgardeo/thunder-gate/internal/idpclient"
	"github.com/asgardeo/thunder-gate/internal/passwordpolicy"
	"github.com/asgardeo/thunder-gate/internal/router"
	"github.com/asgardeo/thunder-gate/internal/system/log"
)

const registrationLoggerComponentName = "RegistrationPage"

// registrationPage handles the registration form.
type registrationPage struct {
	base
}

// NewRegistrationPage creates the registration page handler.
func NewRegistrationPage(deps Dependencies) router.HandlerInterface {
	return &registrationPage{base: newBase(deps, router.RouteRegistration, registrationLoggerComponentName)}
}

// Activate wires the submit control.
func (p *registrationPage) Activate() {
	p.onClick(ElementRegistrationSubmit, p.handleSubmit)
}

func (p *registrationPage) handleSubmit(control dom.Element) {
	request := idpclient.RegistrationRequest{
		Username:             p.value(ElementRegistrationUsername),
		Email:                p.value(ElementRegistrationEmail),
		Password:             p.value(ElementRegistrationPassword),
		PasswordConfirmation: p.value(ElementRegistrationPasswordConfirmation),
		Challenge:            p.challenge(),
	}

	switch {
	case request.Username == "":
		p.reject(&ErrorUsernameMissing)
		return
	case request.Email == "":
		p.reject(&ErrorEmailMissing)
		return
	case request.Password == "":
		p.reject(&ErrorPasswordMissing)
		return
	case request.Challenge == "":
		p.reject(&ErrorChallengeMissing)
		return
	case request.Password != request.PasswordConfirmation:
		p.reject(&ErrorPasswordConfirmationMismatch)
		return
	}

	if svcErr := passwordpolicy.Validate(request.Password, request.Username, request.Email,
		p.passwordPolicy()); svcErr != nil {
		p.reject(svcErr)
		return
	}

	p.logger.Debug("Submitting registration", log.String("challenge", log.MaskString(request.Challenge)))
	p.submit(control, "", func(ctx context.Context) (outcome, error) {
		if err := p.deps.Client.Register(ctx, request); err != nil {
			return outcome{}, err
		}
		return outcome{redirectTo: firstLoginURL(request.Username, request.Challenge)}, nil
	})
}

// challenge returns the login challenge of the URL, falling back to the one rendered into the page.
func (p *registrationPage) challenge() string {
	if challenge := p.deps.Flow.LoginChallenge(); challenge != "" {
		return challenge
	}
	return p.value(ElementLoginChallenge)
}

// firstLoginURL builds the login page URL shown right after a registration.
func firstLoginURL(username, challenge string) string {
	return router.Path(router.RouteLogin) +
		"?" + flowcontext.ParamFirstLogin + "=true" +
		"&" + flowcontext.ParamUsername + "=" + url.QueryEscape(username) +
		"&" + flowcontext.ParamLoginChallenge + "=" + url.QueryEscape(challenge)
}
