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
	"github.com/asgardeo/thunder-gate/internal/passwordpolicy"
	"github.com/asgardeo/thunder-gate/internal/router"
)

const (
	resetStep1LoggerComponentName = "PasswordResetStep1Page"
	resetStep2LoggerComponentName = "PasswordResetStep2Page"
)

// resetRequestPage handles the first password reset step: asking for a reset email.
type resetRequestPage struct {
	base
}

// NewPasswordResetStep1Page creates the handler of the first password reset step.
func NewPasswordResetStep1Page(deps Dependencies) router.HandlerInterface {
	return &resetRequestPage{base: newBase(deps, router.RouteChangePasswordStep1, resetStep1LoggerComponentName)}
}

// Activate wires the submit control.
func (p *resetRequestPage) Activate() {
	p.onClick(ElementResetSubmit, p.handleSubmit)
}

func (p *resetRequestPage) handleSubmit(control dom.Element) {
	request := idpclient.PasswordResetRequest{
		Email:      p.value(ElementResetEmail),
		RedirectTo: p.deps.Flow.RedirectTo(),
	}
	if request.Email == "" {
		p.reject(&ErrorEmailMissing)
		return
	}

	token := p.deps.Flow.Token()
	p.submit(control, "", func(ctx context.Context) (outcome, error) {
		if err := p.deps.Client.RequestPasswordReset(ctx, token, request); err != nil {
			return outcome{}, err
		}
		return outcome{notice: NoticeCheckInbox}, nil
	})
}

// resetConfirmPage handles the second password reset step: choosing the new password.
type resetConfirmPage struct {
	base
}

// NewPasswordResetStep2Page creates the handler of the second password reset step.
func NewPasswordResetStep2Page(deps Dependencies) router.HandlerInterface {
	return &resetConfirmPage{base: newBase(deps, router.RouteChangePasswordStep2, resetStep2LoggerComponentName)}
}

// Activate wires the submit control.
func (p *resetConfirmPage) Activate() {
	p.onClick(ElementResetSubmit, p.handleSubmit)
}

func (p *resetConfirmPage) handleSubmit(control dom.Element) {
	request := idpclient.PasswordResetConfirmRequest{
		Token:                   p.deps.Flow.Token(),
		NewPassword:             p.value(ElementResetNewPassword),
		NewPasswordConfirmation: p.value(ElementResetNewPasswordConfirmation),
	}

	switch {
	case request.NewPassword == "":
		p.reject(&ErrorInvalidNewPassword)
		return
	case request.Token == "":
		p.reject(&ErrorTokenMissing)
		return
	case request.NewPassword != request.NewPasswordConfirmation:
		p.reject(&ErrorPasswordConfirmationMismatch)
		return
	}

	if svcErr := passwordpolicy.Validate(request.NewPassword, p.value(ElementResetUsername),
		p.value(ElementResetEmail), p.passwordPolicy()); svcErr != nil {
		p.reject(svcErr)
		return
	}

	p.submit(control, "", func(ctx context.Context) (outcome, error) {
		resp, err := p.deps.Client.ResetPassword(ctx, request)
		if err != nil {
			return outcome{}, err
		}
		return outcome{redirectTo: resp.RedirectTo}, nil
	})
}
