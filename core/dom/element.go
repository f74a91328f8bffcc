/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Raytools Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dom is a small in-process document model for the widgets: an
// element tree with classes, attributes, dataset and inline style, event
// listeners with bubbling, select-control state and HTML serialization.
package dom

import (
	"sort"
	"strings"
)

// NodeType distinguishes element nodes from text nodes.
type NodeType int

const (
	// ElementNode is a tag with attributes and children.
	ElementNode NodeType = iota
	// TextNode carries literal text and has no children.
	TextNode
)

// Element is a node of the document tree.
type Element struct {
	Type NodeType
	Tag  string
	Text string

	parent    *Element
	children  []*Element
	classes   []string
	attrs     map[string]string
	dataset   map[string]string
	style     map[string]string
	listeners map[string][]Listener

	// selectedIndex is only meaningful for select elements; -1 means the
	// browser default (first option).
	selectedIndex int
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		Type:          ElementNode,
		Tag:           strings.ToLower(tag),
		selectedIndex: -1,
	}
}

// NewText creates a detached text node.
func NewText(text string) *Element {
	return &Element{Type: TextNode, Text: text, selectedIndex: -1}
}

// Parent returns the parent element, nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child nodes. The slice must not be modified.
func (e *Element) Children() []*Element {
	return e.children
}

// AppendChild adds c as the last child, detaching it from any previous parent.
func (e *Element) AppendChild(c *Element) *Element {
	if c.parent != nil {
		c.Remove()
	}
	c.parent = e
	e.children = append(e.children, c)
	return c
}

// ReplaceChildren drops all current children and appends cs in order.
func (e *Element) ReplaceChildren(cs ...*Element) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.selectedIndex = -1
	for _, c := range cs {
		e.AppendChild(c)
	}
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	e.ReplaceChildren(NewText(text))
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	if e.Type == TextNode {
		return e.Text
	}
	var sb strings.Builder
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// AddClass adds each non-empty name to the class list once, in order.
func (e *Element) AddClass(names ...string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || e.HasClass(name) {
			continue
		}
		e.classes = append(e.classes, name)
	}
}

// SetClassName replaces the class list with the space separated names.
func (e *Element) SetClassName(names string) {
	e.classes = nil
	e.AddClass(strings.Fields(names)...)
}

// HasClass reports whether name is on the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return append([]string(nil), e.classes...)
}

// SetAttr sets an attribute. "class" and "data-*" names are routed to the
// class list and dataset.
func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	switch {
	case name == "class":
		e.SetClassName(value)
	case strings.HasPrefix(name, "data-"):
		e.SetData(strings.TrimPrefix(name, "data-"), value)
	default:
		if e.attrs == nil {
			e.attrs = make(map[string]string)
		}
		e.attrs[name] = value
	}
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// SetData sets a dataset entry, rendered as data-<key>.
func (e *Element) SetData(key, value string) {
	if e.dataset == nil {
		e.dataset = make(map[string]string)
	}
	e.dataset[key] = value
}

// Data returns a dataset entry.
func (e *Element) Data(key string) (string, bool) {
	v, ok := e.dataset[key]
	return v, ok
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(property, value string) {
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[property] = value
}

// Style returns an inline style property, "" when unset.
func (e *Element) Style(property string) string {
	return e.style[property]
}

func (e *Element) styleString() string {
	if len(e.style) == 0 {
		return ""
	}
	props := make([]string, 0, len(e.style))
	for p := range e.style {
		props = append(props, p)
	}
	sort.Strings(props)
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p+": "+e.style[p])
	}
	return strings.Join(parts, "; ")
}

// Find returns every descendant of e, in document order, for which match
// returns true. e itself is not considered.
func (e *Element) Find(match func(*Element) bool) []*Element {
	var out []*Element
	var walk func(n *Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			if c.Type == ElementNode && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// FindFirst returns the first descendant matching match, or nil.
func (e *Element) FindFirst(match func(*Element) bool) *Element {
	for _, c := range e.children {
		if c.Type != ElementNode {
			continue
		}
		if match(c) {
			return c
		}
		if found := c.FindFirst(match); found != nil {
			return found
		}
	}
	return nil
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) func(*Element) bool {
	tag = strings.ToLower(tag)
	return func(e *Element) bool { return e.Tag == tag }
}

// ByClass matches elements carrying the given class.
func ByClass(name string) func(*Element) bool {
	return func(e *Element) bool { return e.HasClass(name) }
}

// ByData matches elements whose dataset entry key equals value.
func ByData(key, value string) func(*Element) bool {
	return func(e *Element) bool {
		v, ok := e.dataset[key]
		return ok && v == value
	}
}
