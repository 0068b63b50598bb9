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

package passwordpolicy

import "github.com/asgardeo/thunder-gate/internal/system/error/serviceerror"

// Client errors for password policy validation.
var (
	// ErrorPolicyUnavailable is the error when the page carries no readable policy.
	ErrorPolicyUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2001",
		Error:            "Policy unavailable",
		ErrorDescription: "Unable to load password policy",
	}
	// ErrorPasswordTooShort is the error when the password is below the minimum length.
	ErrorPasswordTooShort = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2002",
		Error:            "Password too short",
		ErrorDescription: "Your password is too short",
	}
	// ErrorPasswordTooLong is the error when the password is above the maximum length.
	ErrorPasswordTooLong = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2003",
		Error:            "Password too long",
		ErrorDescription: "Your password is too long",
	}
	// ErrorPasswordSimilarToUsername is the error when the password and username contain each other.
	ErrorPasswordSimilarToUsername = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2004",
		Error:            "Password too similar",
		ErrorDescription: "Your password is too similar to your username",
	}
	// ErrorPasswordSimilarToEmail is the error when the password and email contain each other.
	ErrorPasswordSimilarToEmail = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2005",
		Error:            "Password too similar",
		ErrorDescription: "Your password is too similar to your email",
	}
	// ErrorTooFewUniqueCharacters is the error when the password repeats too many characters.
	ErrorTooFewUniqueCharacters = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-2006",
		Error:            "Too few unique characters",
		ErrorDescription: "Your password does not have enough unique characters",
	}
)
