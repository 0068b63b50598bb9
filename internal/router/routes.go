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

package router

// Routes recognized by the dispatcher, as page paths with the leading slash stripped.
const (
	RouteLogin               = "login"
	RouteConsent             = "consent"
	RouteRegistration        = "registration"
	RouteSecureUpdate        = "secure/update"
	RouteChangePasswordStep1 = "change-password/step-1"
	RouteChangePasswordStep2 = "change-password/step-2"
	RouteEmailConfirmation   = "email-confirmation"
	// RouteError is the pseudo-route activated when a path matches no known route.
	RouteError = "error"
)

// KnownRoutes returns the recognized page routes.
func KnownRoutes() []string {
	return []string{
		RouteLogin,
		RouteConsent,
		RouteRegistration,
		RouteSecureUpdate,
		RouteChangePasswordStep1,
		RouteChangePasswordStep2,
		RouteEmailConfirmation,
	}
}

// Path returns the absolute page path of a route.
func Path(route string) string {
	return "/" + route
}
