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

// Options returns the option children of a select element.
func (e *Element) Options() []*Element {
	var opts []*Element
	for _, c := range e.children {
		if c.Type == ElementNode && c.Tag == "option" {
			opts = append(opts, c)
		}
	}
	return opts
}

// SelectedIndex returns the index of the selected option of a select
// element: the explicitly chosen one, else the first, else -1.
func (e *Element) SelectedIndex() int {
	n := len(e.Options())
	if n == 0 {
		return -1
	}
	if e.selectedIndex >= 0 && e.selectedIndex < n {
		return e.selectedIndex
	}
	return 0
}

// SetSelectedIndex selects an option without firing a change event.
// Out-of-range indices restore the default selection.
func (e *Element) SetSelectedIndex(i int) {
	if i < 0 || i >= len(e.Options()) {
		e.selectedIndex = -1
		return
	}
	e.selectedIndex = i
}

// Choose selects option i the way a user would and dispatches a change
// event when the selection moves. It returns the dispatched event or nil.
func (e *Element) Choose(i int) *Event {
	if i < 0 || i >= len(e.Options()) {
		return nil
	}
	prev := e.SelectedIndex()
	e.selectedIndex = i
	if prev == i {
		return nil
	}
	return e.Dispatch(NewEvent(EventChange))
}

// Value returns the current value of a form control: the selected option's
// value for a select, the value attribute or text for an option, and the
// value attribute otherwise.
func (e *Element) Value() string {
	switch e.Tag {
	case "select":
		opts := e.Options()
		idx := e.SelectedIndex()
		if idx < 0 {
			return ""
		}
		return opts[idx].Value()
	case "option":
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return e.TextContent()
	default:
		v, _ := e.Attr("value")
		return v
	}
}
