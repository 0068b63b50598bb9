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

// Element ids of the shared page furniture.
const (
	ElementNotification = "notification"
	ElementError        = "error"
)

// Element ids of the login page.
const (
	ElementLoginUsername = "login-username"
	ElementLoginPassword = "login-password"
	ElementLoginRemember = "login-remember"
	ElementLoginSubmit   = "login-submit"
)

// Element ids and classes of the consent page.
const (
	ElementConsentAllow    = "consent-allow"
	ElementConsentDeny     = "consent-deny"
	ClassConsentGrantScope = "consent-grant-scope"
)

// Element ids of the registration page.
const (
	ElementRegistrationUsername             = "registration-username"
	ElementRegistrationEmail                = "registration-email"
	ElementRegistrationPassword             = "registration-password"
	ElementRegistrationPasswordConfirmation = "registration-password-confirmation"
	ElementRegistrationSubmit               = "registration-submit"
	ElementLoginChallenge                   = "login-challenge"
)

// Element ids of the credential update page.
const (
	ElementUpdateUsername                = "update-username"
	ElementUpdateEmail                   = "update-email"
	ElementUpdateNewPassword             = "update-new-password"
	ElementUpdateNewPasswordConfirmation = "update-new-password-confirmation"
	ElementUpdateOldPassword             = "update-old-password"
	ElementUpdateSubmit                  = "update-submit"
)

// Element ids of the password reset pages.
const (
	ElementResetEmail                   = "email"
	ElementResetUsername                = "username"
	ElementResetNewPassword             = "new-password"
	ElementResetNewPasswordConfirmation = "new-password-confirmation"
	ElementResetSubmit                  = "submit"
)

// ElementRedirectTo holds the link the email confirmation page forwards to.
const ElementRedirectTo = "redirect-to"

// Labels restored on controls after a submission.
const (
	LabelAllow = "Allow"
	LabelDeny  = "Deny"
)

// Success notices.
const (
	NoticeFirstLogin         = "Account created successfully!"
	NoticeCheckInbox         = "Check the inbox of your email."
	NoticeCredentialsUpdated = "Your credentials were updated."
)
