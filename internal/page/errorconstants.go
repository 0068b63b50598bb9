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

import "github.com/asgardeo/thunder-gate/internal/system/error/serviceerror"

// Client errors detected on the hosted pages before anything is submitted.
var (
	// ErrorUsernameMissing is the error when the username field is empty.
	ErrorUsernameMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1001",
		Error:            "Missing field",
		ErrorDescription: "Username is missing",
	}
	// ErrorPasswordMissing is the error when the password field is empty.
	ErrorPasswordMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1002",
		Error:            "Missing field",
		ErrorDescription: "Password is missing",
	}
	// ErrorChallengeMissing is the error when the page carries no OAuth2 challenge.
	ErrorChallengeMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1003",
		Error:            "Missing field",
		ErrorDescription: "Challenge is missing",
	}
	// ErrorEmailMissing is the error when the email field is empty.
	ErrorEmailMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1004",
		Error:            "Missing field",
		ErrorDescription: "Email is missing",
	}
	// ErrorGrantScopesMissing is the error when no scope is selected on the consent page.
	ErrorGrantScopesMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1005",
		Error:            "Missing field",
		ErrorDescription: "Grant Scopes are missing",
	}
	// ErrorInvalidNewPassword is the error when the new password field is empty.
	ErrorInvalidNewPassword = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1006",
		Error:            "Missing field",
		ErrorDescription: "Invalid new password",
	}
	// ErrorInvalidOldPassword is the error when the old password field is empty.
	ErrorInvalidOldPassword = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1007",
		Error:            "Missing field",
		ErrorDescription: "Invalid old password",
	}
	// ErrorTokenMissing is the error when the page carries no bearer token.
	ErrorTokenMissing = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1008",
		Error:            "Missing field",
		ErrorDescription: "Token is missing",
	}
	// ErrorPasswordUnchanged is the error when the new password equals the old one.
	ErrorPasswordUnchanged = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1009",
		Error:            "Confirmation mismatch",
		ErrorDescription: "New password cannot be the same as the old",
	}
	// ErrorPasswordConfirmationMismatch is the error when the confirmation differs from the password.
	ErrorPasswordConfirmationMismatch = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1010",
		Error:            "Confirmation mismatch",
		ErrorDescription: "Invalid password confirmation",
	}
	// ErrorPageNotFound is the error when the page path matches no known route.
	ErrorPageNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-1011",
		Error:            "Unknown page",
		ErrorDescription: "Page not found",
	}
)

// Server errors surfaced after a submission.
var (
	// ErrorServerUnreachable is the error when the identity provider could not be reached.
	ErrorServerUnreachable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "GATE-5001",
		Error:            "Server unreachable",
		ErrorDescription: "Unable to reach the server. Please try again.",
	}
	// ErrorUnexpectedResponse is the error when a successful response cannot be followed.
	ErrorUnexpectedResponse = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "GATE-5002",
		Error:            "Unexpected response",
		ErrorDescription: "The server returned an unexpected response",
	}
)
