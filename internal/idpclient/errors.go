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

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingRedirect is returned when a flow that must continue elsewhere got no redirect target.
var ErrMissingRedirect = errors.New("response carries no redirect target")

// ResponseError is a non-2xx answer from the identity provider.
type ResponseError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("identity provider responded with status %d: %s", e.StatusCode, e.Body)
}

// Message returns the text to show the user: the response body verbatim, or the status text
// when the body is empty.
func (e *ResponseError) Message() string {
	if e.Body != "" {
		return e.Body
	}
	return http.StatusText(e.StatusCode)
}
