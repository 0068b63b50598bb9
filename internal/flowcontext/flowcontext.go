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

// Package flowcontext reads the OAuth2 flow parameters carried by a hosted page URL.
package flowcontext

import (
	"net/url"
	"strconv"
)

// Query parameter names recognized on hosted pages.
const (
	ParamUsername         = "username"
	ParamFirstLogin       = "first_login"
	ParamLoginChallenge   = "login_challenge"
	ParamConsentChallenge = "consent_challenge"
	ParamToken            = "token"
	ParamRedirectTo       = "redirect_to"
)

// FlowContext is an immutable snapshot of the flow parameters of one page load.
type FlowContext struct {
	username         string
	firstLogin       bool
	loginChallenge   string
	consentChallenge string
	token            string
	redirectTo       string
}

// Read extracts the flow parameters from the given URL. Unknown keys are ignored and
// missing keys yield empty values.
func Read(u *url.URL) FlowContext {
	if u == nil {
		return FlowContext{}
	}
	return FromQuery(u.Query())
}

// FromQuery builds a FlowContext from already parsed query values.
func FromQuery(query url.Values) FlowContext {
	return FlowContext{
		username:         query.Get(ParamUsername),
		firstLogin:       parseFlag(query.Get(ParamFirstLogin)),
		loginChallenge:   query.Get(ParamLoginChallenge),
		consentChallenge: query.Get(ParamConsentChallenge),
		token:            query.Get(ParamToken),
		redirectTo:       query.Get(ParamRedirectTo),
	}
}

// parseFlag treats any boolean-true spelling as set; everything else, including a bare key, is unset.
func parseFlag(value string) bool {
	set, err := strconv.ParseBool(value)
	return err == nil && set
}

// Username returns the username to prefill, if any.
func (c FlowContext) Username() string { return c.username }

// FirstLogin reports whether the page was reached right after a registration.
func (c FlowContext) FirstLogin() bool { return c.firstLogin }

// LoginChallenge returns the login challenge issued by the identity provider.
func (c FlowContext) LoginChallenge() string { return c.loginChallenge }

// ConsentChallenge returns the consent challenge issued by the identity provider.
func (c FlowContext) ConsentChallenge() string { return c.consentChallenge }

// Token returns the bearer token for authenticated actions.
func (c FlowContext) Token() string { return c.token }

// RedirectTo returns the URL to navigate to after a successful action.
func (c FlowContext) RedirectTo() string { return c.redirectTo }
