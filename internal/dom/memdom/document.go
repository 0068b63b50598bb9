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

// Package memdom provides an in-memory page model built from server-rendered HTML. It lets the
// gate controller run headless with the same semantics it has in a browser.
package memdom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/asgardeo/thunder-gate/internal/dom"
)

var (
	// ErrElementNotFound is returned when no element carries the requested id.
	ErrElementNotFound = errors.New("element not found")
	// ErrElementDisabled is returned when a disabled control is clicked.
	ErrElementDisabled = errors.New("element is disabled")
)

// Document is an in-memory dom.Document. It is safe for concurrent use.
type Document struct {
	mu       sync.Mutex
	byID     map[string]*Element
	elements []*Element
}

var _ dom.Document = (*Document)(nil)

// Parse builds a document from an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	doc := &Document{byID: make(map[string]*Element)}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			doc.index(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

// ParseString builds a document from an HTML string.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// index records an element that can be addressed by id or class.
func (d *Document) index(n *html.Node) {
	id := attr(n, "id")
	class := attr(n, "class")
	if id == "" && class == "" {
		return
	}

	el := &Element{
		doc:      d,
		id:       id,
		tag:      n.DataAtom,
		typ:      strings.ToLower(attr(n, "type")),
		class:    class,
		value:    initialValue(n),
		checked:  hasAttr(n, "checked"),
		disabled: hasAttr(n, "disabled"),
		hidden:   hasAttr(n, "hidden"),
		html:     innerHTML(n),
	}
	d.elements = append(d.elements, el)
	if id != "" {
		if _, exists := d.byID[id]; !exists {
			d.byID[id] = el
		}
	}
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// ElementsByClass returns the elements carrying the given class, in document order.
func (d *Document) ElementsByClass(class string) []dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []dom.Element
	for _, el := range d.elements {
		for _, c := range strings.Fields(el.class) {
			if c == class {
				matched = append(matched, el)
				break
			}
		}
	}
	return matched
}

// Fill sets the value of the control with the given id, as a user typing into it would.
func (d *Document) Fill(id, value string) error {
	el, err := d.lookup(id)
	if err != nil {
		return err
	}
	el.SetValue(value)
	return nil
}

// Check sets the checked state of the checkbox or radio control with the given id.
func (d *Document) Check(id string, checked bool) error {
	el, err := d.lookup(id)
	if err != nil {
		return err
	}
	d.mu.Lock()
	el.checked = checked
	d.mu.Unlock()
	return nil
}

// Click dispatches a click to the control with the given id. Disabled controls ignore clicks.
func (d *Document) Click(id string) error {
	el, err := d.lookup(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	if el.disabled {
		d.mu.Unlock()
		return ErrElementDisabled
	}
	listeners := append([]func(){}, el.listeners...)
	d.mu.Unlock()

	for _, listener := range listeners {
		listener()
	}
	return nil
}

func (d *Document) lookup(id string) (*Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	return el, nil
}

// Element is an in-memory dom.Element.
type Element struct {
	doc       *Document
	id        string
	tag       atom.Atom
	typ       string
	class     string
	value     string
	checked   bool
	disabled  bool
	hidden    bool
	html      string
	listeners []func()
}

var _ dom.Element = (*Element)(nil)

// ID returns the id attribute of the element.
func (e *Element) ID() string { return e.id }

// Type returns the lower-cased type attribute of the element.
func (e *Element) Type() string { return e.typ }

// Value returns the current value of the control.
func (e *Element) Value() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.value
}

// SetValue replaces the current value of the control.
func (e *Element) SetValue(value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.value = value
}

// Checked reports whether the control is checked.
func (e *Element) Checked() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.checked
}

// Disabled reports whether the control is disabled.
func (e *Element) Disabled() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.disabled
}

// SetDisabled enables or disables the control.
func (e *Element) SetDisabled(disabled bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.disabled = disabled
}

// HTML returns the inner HTML of the element.
func (e *Element) HTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.html
}

// SetHTML replaces the inner HTML of the element.
func (e *Element) SetHTML(content string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.html = content
}

// Text returns the inner HTML of the element with markup stripped.
func (e *Element) Text() string {
	return textOf(e.HTML())
}

// Hidden reports whether the hidden attribute is set.
func (e *Element) Hidden() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.hidden
}

// SetHidden sets or clears the hidden attribute.
func (e *Element) SetHidden(hidden bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.hidden = hidden
}

// Class returns the class attribute.
func (e *Element) Class() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.class
}

// SetClass replaces the class attribute.
func (e *Element) SetClass(class string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.class = class
}

// OnClick registers a click listener.
func (e *Element) OnClick(listener func()) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// ListenerCount returns the number of click listeners attached to the element.
func (e *Element) ListenerCount() int {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return len(e.listeners)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// initialValue mirrors what a browser reports as the value of a freshly loaded control.
func initialValue(n *html.Node) string {
	switch n.DataAtom {
	case atom.Textarea:
		return textContent(n)
	case atom.Select:
		first := ""
		found := false
		var walk func(c *html.Node) string
		walk = func(c *html.Node) string {
			for o := c.FirstChild; o != nil; o = o.NextSibling {
				if o.Type == html.ElementNode && o.DataAtom == atom.Option {
					v := optionValue(o)
					if !found {
						first, found = v, true
					}
					if hasAttr(o, "selected") {
						return v
					}
				}
				if v := walk(o); v != "" {
					return v
				}
			}
			return ""
		}
		if selected := walk(n); selected != "" {
			return selected
		}
		return first
	default:
		return attr(n, "value")
	}
}

func optionValue(o *html.Node) string {
	if hasAttr(o, "value") {
		return attr(o, "value")
	}
	return strings.TrimSpace(textContent(o))
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return buf.String()
}

func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// textOf strips markup from an HTML fragment.
func textOf(fragment string) string {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return fragment
	}
	var buf strings.Builder
	for _, n := range nodes {
		buf.WriteString(textContent(n))
	}
	return strings.TrimSpace(buf.String())
}
