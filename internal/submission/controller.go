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

// Package submission manages the submitting state of page controls, the notification banner
// and the scheduling of asynchronous work triggered by page events.
package submission

import (
	"sync"

	"github.com/asgardeo/thunder-gate/internal/dom"
)

// BusyIndicatorHTML replaces the label of a control while its request is in flight.
const BusyIndicatorHTML = `<span class="spinner-border spinner-border-sm" role="status" aria-hidden="true"></span>`

// SubmissionState is the state of a single submit control.
type SubmissionState string

const (
	// StateIdle means the control is enabled and shows its label.
	StateIdle SubmissionState = "IDLE"
	// StateSubmitting means the control is disabled while its request is in flight.
	StateSubmitting SubmissionState = "SUBMITTING"
)

// ControllerInterface brackets one network call on a control.
type ControllerInterface interface {
	// Begin moves the control to StateSubmitting. It reports false, leaving the control
	// untouched, when a request of the same control is already in flight.
	Begin(control dom.Element) bool
	End(control dom.Element, restoreLabel string)
}

// Controller is the default implementation of ControllerInterface.
type Controller struct {
	mu           sync.Mutex
	defaultLabel string
	states       map[dom.Element]SubmissionState
}

// NewController creates a controller restoring the given label when none is passed to End.
func NewController(defaultLabel string) *Controller {
	return &Controller{
		defaultLabel: defaultLabel,
		states:       make(map[dom.Element]SubmissionState),
	}
}

// Begin disables the control and swaps its label for the busy indicator.
func (c *Controller) Begin(control dom.Element) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stateLocked(control) == StateSubmitting {
		return false
	}
	c.states[control] = StateSubmitting
	control.SetDisabled(true)
	control.SetHTML(BusyIndicatorHTML)
	return true
}

// End re-enables the control and restores the given label, or the default one. It is safe
// to call without a matching Begin.
func (c *Controller) End(control dom.Element, restoreLabel string) {
	if restoreLabel == "" {
		restoreLabel = c.defaultLabel
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, control)
	control.SetDisabled(false)
	control.SetHTML(restoreLabel)
}

func (c *Controller) stateLocked(control dom.Element) SubmissionState {
	if state, ok := c.states[control]; ok {
		return state
	}
	return StateIdle
}
