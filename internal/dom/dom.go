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

// Package dom defines the page capabilities the gate controller depends on. Implementations
// bind them to the browser (jsdom) or to a parsed server-rendered page (memdom).
package dom

import "net/url"

// Element is a single page control.
type Element interface {
	// ID returns the id attribute of the element.
	ID() string
	// Type returns the lower-cased type attribute of an input, or an empty string.
	Type() string
	// Value returns the current value of a form control.
	Value() string
	// SetValue replaces the current value of a form control.
	SetValue(value string)
	// Checked reports whether a checkbox or radio control is checked.
	Checked() bool
	// Disabled reports whether the control is disabled.
	Disabled() bool
	// SetDisabled enables or disables the control.
	SetDisabled(disabled bool)
	// HTML returns the inner HTML of the element.
	HTML() string
	// SetHTML replaces the inner HTML of the element.
	SetHTML(html string)
	// Hidden reports whether the hidden attribute is set.
	Hidden() bool
	// SetHidden sets or clears the hidden attribute.
	SetHidden(hidden bool)
	// SetClass replaces the class attribute.
	SetClass(class string)
	// OnClick registers a click listener. The default action of the event is prevented.
	OnClick(listener func())
}

// Document gives access to the elements of the current page.
type Document interface {
	// ElementByID returns the element with the given id.
	ElementByID(id string) (Element, bool)
	// ElementsByClass returns the elements carrying the given class, in document order.
	ElementsByClass(class string) []Element
}

// Window exposes the location of the current page and navigation away from it.
type Window interface {
	// Location returns the URL of the current page.
	Location() *url.URL
	// Navigate moves the browser to the given target.
	Navigate(target string)
}

// IsCheckable reports whether the element is a checkbox or a radio control.
func IsCheckable(el Element) bool {
	t := el.Type()
	return t == "checkbox" || t == "radio"
}
