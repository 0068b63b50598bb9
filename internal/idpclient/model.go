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

package idpclient

// Backend endpoints of the hosted flows.
const (
	EndpointLogin          = "/login"
	EndpointConsent        = "/consent"
	EndpointRegistration   = "/registration"
	EndpointSecureUpdate   = "/secure/update"
	EndpointChangePassword = "/change-password"
)

// LoginRequest is the body of a login submission.
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Remember  bool   `json:"remember"`
	Challenge string `json:"challenge"`
}

// ConsentRequest is the body of a consent answer.
type ConsentRequest struct {
	Accept     bool     `json:"accept"`
	Challenge  string   `json:"challenge"`
	GrantScope []string `json:"grantScope"`
	Remember   bool     `json:"remember"`
}

// RegistrationRequest is the body of a registration submission.
type RegistrationRequest struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
	Challenge            string `json:"challenge"`
}

// UpdateCredentialsRequest is the body of a credential update.
type UpdateCredentialsRequest struct {
	Email                   string `json:"email"`
	NewPassword             string `json:"newPassword"`
	NewPasswordConfirmation string `json:"newPasswordConfirmation"`
	OldPassword             string `json:"oldPassword"`
}

// PasswordResetRequest is the body of the first password reset step.
type PasswordResetRequest struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to"`
}

// PasswordResetConfirmRequest is the body of the second password reset step.
type PasswordResetConfirmRequest struct {
	Token                   string `json:"token"`
	NewPassword             string `json:"newPassword"`
	NewPasswordConfirmation string `json:"newPasswordConfirmation"`
}

// RedirectResponse is the success body of flows that continue elsewhere.
type RedirectResponse struct {
	RedirectTo string `json:"redirect_to"`
}
