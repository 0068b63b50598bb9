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

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/asgardeo/thunder-gate/internal/system/error/serviceerror"
)

// Validate checks a candidate password against the policy and the identity it belongs to.
// A nil policy means the page policy could not be loaded. Checks short-circuit on the first
// failure and a nil result means the password passed. Passing here does not guarantee the
// identity provider accepts the password.
func Validate(password, username, email string, policy *PasswordPolicy) *serviceerror.ServiceError {
	if policy == nil {
		return &ErrorPolicyUnavailable
	}

	length := utf8.RuneCountInString(password)
	if length < policy.MinLength {
		return serviceerror.CustomServiceError(ErrorPasswordTooShort,
			fmt.Sprintf("Your password should have at least %d characters", policy.MinLength))
	}
	if length > policy.MaxLength {
		return serviceerror.CustomServiceError(ErrorPasswordTooLong,
			fmt.Sprintf("Your password should have at most %d characters", policy.MaxLength))
	}

	lower := cases.Lower(language.Und)
	pass := lower.String(password)
	if similar(pass, lower.String(username)) {
		return &ErrorPasswordSimilarToUsername
	}
	if similar(pass, lower.String(email)) {
		return &ErrorPasswordSimilarToEmail
	}

	if CountUniqueCharacters(password) < policy.MinUniqueChars {
		return serviceerror.CustomServiceError(ErrorTooFewUniqueCharacters,
			fmt.Sprintf("Your password should have at least %d unique characters", policy.MinUniqueChars))
	}
	return nil
}

// similar reports whether either value contains the other. An empty identity is never similar,
// although a plain containment test would match it against every password.
func similar(password, identity string) bool {
	if identity == "" {
		return false
	}
	return strings.Contains(password, identity) || strings.Contains(identity, password)
}

// CountUniqueCharacters returns the number of distinct characters in s. The count is case-sensitive.
func CountUniqueCharacters(s string) int {
	seen := make(map[rune]struct{}, len(s))
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}
