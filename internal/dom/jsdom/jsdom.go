//go:build js && wasm

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

// Package jsdom binds the gate page capabilities to the browser DOM through syscall/js.
package jsdom

import (
	"net/url"
	"strings"
	"syscall/js"

	"github.com/asgardeo/thunder-gate/internal/dom"
)

// Document is the browser document.
type Document struct {
	document js.Value
}

var _ dom.Document = (*Document)(nil)

// NewDocument returns the document of the current browser window.
func NewDocument() *Document {
	return &Document{document: js.Global().Get("document")}
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	v := d.document.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &Element{value: v}, true
}

// ElementsByClass returns the elements carrying the given class, in document order.
func (d *Document) ElementsByClass(class string) []dom.Element {
	list := d.document.Call("getElementsByClassName", class)
	n := list.Length()
	elements := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		elements = append(elements, &Element{value: list.Index(i)})
	}
	return elements
}

// Element wraps a browser DOM element.
type Element struct {
	value js.Value
	// funcs keeps listener callbacks alive for the lifetime of the page.
	funcs []js.Func
}

var _ dom.Element = (*Element)(nil)

// ID returns the id attribute of the element.
func (e *Element) ID() string { return e.value.Get("id").String() }

// Type returns the lower-cased type attribute of the element.
func (e *Element) Type() string {
	t := e.value.Get("type")
	if t.IsUndefined() || t.IsNull() {
		return ""
	}
	return strings.ToLower(t.String())
}

// Value returns the current value of the control.
func (e *Element) Value() string {
	v := e.value.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// SetValue replaces the current value of the control.
func (e *Element) SetValue(value string) { e.value.Set("value", value) }

// Checked reports whether the control is checked.
func (e *Element) Checked() bool { return e.value.Get("checked").Truthy() }

// Disabled reports whether the control is disabled.
func (e *Element) Disabled() bool { return e.value.Get("disabled").Truthy() }

// SetDisabled enables or disables the control.
func (e *Element) SetDisabled(disabled bool) { e.value.Set("disabled", disabled) }

// HTML returns the inner HTML of the element.
func (e *Element) HTML() string { return e.value.Get("innerHTML").String() }

// SetHTML replaces the inner HTML of the element.
func (e *Element) SetHTML(html string) { e.value.Set("innerHTML", html) }

// Hidden reports whether the hidden attribute is set.
func (e *Element) Hidden() bool { return e.value.Get("hidden").Truthy() }

// SetHidden sets or clears the hidden attribute.
func (e *Element) SetHidden(hidden bool) { e.value.Set("hidden", hidden) }

// SetClass replaces the class attribute.
func (e *Element) SetClass(class string) { e.value.Set("className", class) }

// OnClick registers a click listener. Listeners run on a new goroutine so that
// blocking network calls never stall the browser event loop.
func (e *Element) OnClick(listener func()) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go listener()
		return nil
	})
	e.funcs = append(e.funcs, fn)
	e.value.Call("addEventListener", "click", fn)
}

// Window is the browser window.
type Window struct {
	window js.Value
}

var _ dom.Window = (*Window)(nil)

// NewWindow returns the current browser window.
func NewWindow() *Window {
	return &Window{window: js.Global()}
}

// Location returns the URL of the current page.
func (w *Window) Location() *url.URL {
	href := w.window.Get("location").Get("href").String()
	u, err := url.Parse(href)
	if err != nil {
		return &url.URL{}
	}
	return u
}

// Navigate moves the browser to the given target.
func (w *Window) Navigate(target string) {
	w.window.Get("location").Set("href", target)
}
