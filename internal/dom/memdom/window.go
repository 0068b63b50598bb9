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

package memdom

import (
	"net/url"
	"sync"

	"github.com/asgardeo/thunder-gate/internal/dom"
)

// Window is an in-memory dom.Window that records navigations instead of performing them.
type Window struct {
	mu          sync.Mutex
	location    url.URL
	navigations []string
}

var _ dom.Window = (*Window)(nil)

// NewWindow creates a window positioned at the given location.
func NewWindow(location *url.URL) *Window {
	w := &Window{}
	if location != nil {
		w.location = *location
	}
	return w
}

// Location returns a copy of the current page URL.
func (w *Window) Location() *url.URL {
	w.mu.Lock()
	defer w.mu.Unlock()
	loc := w.location
	return &loc
}

// Navigate records a navigation to the given target.
func (w *Window) Navigate(target string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.navigations = append(w.navigations, target)
}

// Navigations returns every navigation requested so far.
func (w *Window) Navigations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.navigations...)
}

// LastNavigation returns the most recent navigation target, if any.
func (w *Window) LastNavigation() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.navigations) == 0 {
		return "", false
	}
	return w.navigations[len(w.navigations)-1], true
}
