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

// Package passwordpolicy loads the password policy rendered into a hosted page and checks
// candidate passwords against it before they are submitted.
package passwordpolicy

import (
	"strconv"
	"strings"

	"github.com/asgardeo/thunder-gate/internal/dom"
)

// Element ids of the hidden inputs the server renders the policy limits into.
const (
	ElementMinCharacters       = "password-min-characters"
	ElementMaxCharacters       = "password-max-characters"
	ElementMinUniqueCharacters = "password-min-unique-characters"
)

// PasswordPolicy holds the numeric limits a new password must satisfy.
type PasswordPolicy struct {
	MinLength      int
	MaxLength      int
	MinUniqueChars int
}

// Parse builds a policy from the raw limit values. It reports false when any limit is not an integer.
func Parse(minLength, maxLength, minUniqueChars string) (*PasswordPolicy, bool) {
	values := make([]int, 0, 3)
	for _, raw := range []string{minLength, maxLength, minUniqueChars} {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return &PasswordPolicy{
		MinLength:      values[0],
		MaxLength:      values[1],
		MinUniqueChars: values[2],
	}, true
}

// LoadFromDocument reads the policy limits from the page. It returns nil when the policy
// elements are missing or do not hold integers.
func LoadFromDocument(doc dom.Document) *PasswordPolicy {
	raw := make([]string, 0, 3)
	for _, id := range []string{ElementMinCharacters, ElementMaxCharacters, ElementMinUniqueCharacters} {
		el, ok := doc.ElementByID(id)
		if !ok {
			return nil
		}
		raw = append(raw, el.Value())
	}
	policy, ok := Parse(raw[0], raw[1], raw[2])
	if !ok {
		return nil
	}
	return policy
}
