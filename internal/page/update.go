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

const updateLoggerComponentName = "CredentialUpdatePage"

// updatePage handles the credential update form of an authenticated user.
type updatePage struct {
	base
}

// NewUpdatePage creates the credential update page handler.
func NewUpdatePage(deps Dependencies) router.HandlerInterface {
	return &updatePage{base: newBase(deps, router.RouteSecureUpdate, updateLoggerComponentName)}
}

// Activate wires the submit control.
func (p *updatePage) Activate() {
	p.onClick(ElementUpdateSubmit, p.handleSubmit)
}

func (p *updatePage) handleSubmit(control dom.Element) {
	request := idpclient.UpdateCredentialsRequest{
		Email:                   p.value(ElementUpdateEmail),
		NewPassword:             p.value(ElementUpdateNewPassword),
		NewPasswordConfirmation: p.value(ElementUpdateNewPasswordConfirmation),
		OldPassword:             p.value(ElementUpdateOldPassword),
	}
	token := p.deps.Flow.Token()

	switch {
	case request.Email == "":
		p.reject(&ErrorEmailMissing)
		return
	case request.NewPassword == "":
		p.reject(&ErrorInvalidNewPassword)
		return
	case request.OldPassword == "":
		p.reject(&ErrorInvalidOldPassword)
		return
	case token == "":
		p.reject(&ErrorTokenMissing)
		return
	case request.OldPassword == request.NewPassword:
		p.reject(&ErrorPasswordUnchanged)
		return
	case request.NewPassword != request.NewPasswordConfirmation:
		p.reject(&ErrorPasswordConfirmationMismatch)
		return
	}

	username := p.value(ElementUpdateUsername)
	if svcErr := passwordpolicy.Validate(request.NewPassword, username, request.Email,
		p.passwordPolicy()); svcErr != nil {
		p.reject(svcErr)
		return
	}

	redirectTo := p.deps.Flow.RedirectTo()
	p.submit(control, "", func(ctx context.Context) (outcome, error) {
		if err := p.deps.Client.UpdateCredentials(ctx, token, request); err != nil {
			return outcome{}, err
		}
		if redirectTo == "" {
			return outcome{notice: NoticeCredentialsUpdated}, nil
		}
		return outcome{redirectTo: redirectTo}, nil
	})
}
