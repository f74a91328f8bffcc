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

package dom

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node converts e and its subtree into an x/net/html node tree.
func (e *Element) Node() *html.Node {
	return e.node(false)
}

func (e *Element) node(selected bool) *html.Node {
	if e.Type == TextNode {
		return &html.Node{Type: html.TextNode, Data: e.Text}
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
		Attr:     e.htmlAttrs(),
	}
	if selected {
		n.Attr = append(n.Attr, html.Attribute{Key: "selected", Val: "selected"})
	}

	chosen := -1
	if e.Tag == "select" && e.selectedIndex >= 0 {
		chosen = e.SelectedIndex()
	}
	optIdx := 0
	for _, c := range e.children {
		isOption := c.Type == ElementNode && c.Tag == "option"
		n.AppendChild(c.node(isOption && optIdx == chosen))
		if isOption {
			optIdx++
		}
	}
	return n
}

// htmlAttrs emits class, then plain attributes, then data-*, then style,
// each group in sorted order so output is deterministic.
func (e *Element) htmlAttrs() []html.Attribute {
	var attrs []html.Attribute
	if len(e.classes) > 0 {
		attrs = append(attrs, html.Attribute{Key: "class", Val: strings.Join(e.classes, " ")})
	}
	for _, k := range sortedKeys(e.attrs) {
		attrs = append(attrs, html.Attribute{Key: k, Val: e.attrs[k]})
	}
	for _, k := range sortedKeys(e.dataset) {
		attrs = append(attrs, html.Attribute{Key: "data-" + k, Val: e.dataset[k]})
	}
	if s := e.styleString(); s != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: s})
	}
	return attrs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render writes the HTML serialization of e to w.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.Node())
}

// InnerHTML renders the children of e.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for _, c := range e.children {
		if err := c.Render(&buf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// OuterHTML renders e itself. Rendering errors produce an empty string.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
