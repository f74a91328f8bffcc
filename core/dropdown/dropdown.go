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

// Package dropdown binds a record sequence to a select element.
package dropdown

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/strutil"
)

// ErrNotSelect is returned by New when the element is missing or is not a
// select control.
var ErrNotSelect = errors.New("dropdown: a select element is required")

// ChangeHandler receives the change event and the record at the newly
// selected index, nil when the index has no record.
type ChangeHandler func(ev *dom.Event, item any)

// Options configures a Dropdown.
type Options struct {
	KeyField      string // field used as the option value
	DisplayField  string // field used as the option label
	ChangeHandler ChangeHandler
}

// Dropdown projects a sequence of records into the options of a select
// element and exposes the current selection.
type Dropdown struct {
	elem         *dom.Element
	keyField     string
	displayField string
	onChange     ChangeHandler

	raw   any
	items []any
}

// New wraps elem. It fails when elem is nil or not a select element.
func New(elem *dom.Element, opts Options) (*Dropdown, error) {
	if elem == nil || elem.Tag != "select" {
		return nil, ErrNotSelect
	}
	d := &Dropdown{
		elem:         elem,
		keyField:     opts.KeyField,
		displayField: opts.DisplayField,
		onChange:     opts.ChangeHandler,
	}
	elem.AddEventListener(dom.EventChange, d.doChangeSelection)
	return d, nil
}

// Element returns the wrapped select element.
func (d *Dropdown) Element() *dom.Element {
	return d.elem
}

// Data returns the value last passed to SetData.
func (d *Dropdown) Data() any {
	return d.raw
}

// Items returns the bound records.
func (d *Dropdown) Items() []any {
	return d.items
}

// SetData binds a slice or array of records and rebuilds the options.
// Any other value is logged and binds an empty list.
func (d *Dropdown) SetData(data any) {
	d.raw = data
	items, ok := toItems(data)
	if !ok {
		logging.Debug("bound data is not a sequence of records", "type", fmt.Sprintf("%T", data))
	}
	d.items = items
	d.render()
}

// SelectedValue returns the value of the selected option.
func (d *Dropdown) SelectedValue() string {
	return d.elem.Value()
}

// SelectedIndex returns the index of the selected option, -1 when empty.
func (d *Dropdown) SelectedIndex() int {
	return d.elem.SelectedIndex()
}

// SelectedItem returns the record whose key field matches the selected
// value, nil when none does.
func (d *Dropdown) SelectedItem() any {
	if d.elem.SelectedIndex() < 0 {
		return nil
	}
	value := d.elem.Value()
	for _, item := range d.items {
		if key, ok := fieldOf(item, d.keyField); ok && strutil.Stringify(key) == value {
			return item
		}
	}
	return nil
}

// Select moves the selection to the option with the given value the way a
// user would, firing the change handler. It reports whether such an
// option exists.
func (d *Dropdown) Select(value string) bool {
	for i, opt := range d.elem.Options() {
		if opt.Value() == value {
			d.elem.Choose(i)
			return true
		}
	}
	return false
}

func (d *Dropdown) render() {
	d.elem.ReplaceChildren()

	useIndex := strutil.IsBlank(d.keyField)
	useFirst := strutil.IsBlank(d.displayField)
	primitives := useIndex && useFirst

	for idx, item := range d.items {
		var value, label string
		switch {
		case primitives:
			value = strutil.Stringify(item)
			label = value
		default:
			if useIndex {
				value = strconv.Itoa(idx)
			} else {
				v, _ := fieldOf(item, d.keyField)
				value = strutil.Stringify(v)
			}
			if useFirst {
				label = strutil.Stringify(firstOf(item))
			} else {
				v, _ := fieldOf(item, d.displayField)
				label = strutil.Stringify(v)
			}
		}

		opt := d.elem.AppendChild(dom.NewElement("option"))
		opt.SetAttr("value", value)
		opt.SetText(label)
	}
}

func (d *Dropdown) doChangeSelection(ev *dom.Event) {
	if d.onChange == nil {
		return
	}
	var item any
	if idx := d.elem.SelectedIndex(); idx >= 0 && idx < len(d.items) {
		item = d.items[idx]
	}
	d.onChange(ev, item)
}

// toItems flattens a slice or array into a []any.
func toItems(data any) ([]any, bool) {
	if items, ok := data.([]any); ok {
		return items, true
	}
	v := reflect.ValueOf(data)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, v.Len())
	for i := range items {
		items[i] = v.Index(i).Interface()
	}
	return items, true
}

// fieldOf reads a named field from a map-like record or an exported struct
// field.
func fieldOf(item any, field string) (any, bool) {
	if field == "" {
		return nil, false
	}
	v := reflect.ValueOf(item)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(field).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		fv := v.FieldByName(field)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

// firstOf returns the first positional property of a record: element 0 of
// a slice or array, the "0" key of a map or else the value under its
// smallest key, and the first field of a struct.
func firstOf(item any) any {
	v := reflect.ValueOf(item)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return nil
		}
		return v.Index(0).Interface()
	case reflect.Map:
		if val, ok := fieldOf(item, "0"); ok {
			return val
		}
		keys := v.MapKeys()
		if len(keys) == 0 || v.Type().Key().Kind() != reflect.String {
			return nil
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		return v.MapIndex(keys[0]).Interface()
	case reflect.Struct:
		if v.NumField() == 0 || !v.Field(0).CanInterface() {
			return nil
		}
		return v.Field(0).Interface()
	}
	return item
}
