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

package dropdown

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/records"
)

func newSelect(t *testing.T, opts Options) (*Dropdown, *dom.Element) {
	t.Helper()
	sel := dom.NewElement("select")
	d, err := New(sel, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d, sel
}

func optionPairs(sel *dom.Element) (values, labels []string) {
	for _, opt := range sel.Options() {
		values = append(values, opt.Value())
		labels = append(labels, opt.TextContent())
	}
	return values, labels
}

func TestNewRequiresSelect(t *testing.T) {
	if _, err := New(nil, Options{}); !errors.Is(err, ErrNotSelect) {
		t.Errorf("Expected ErrNotSelect for nil element, got %v", err)
	}
	if _, err := New(dom.NewElement("div"), Options{}); !errors.Is(err, ErrNotSelect) {
		t.Errorf("Expected ErrNotSelect for div, got %v", err)
	}
}

func TestKeyAndDisplayFields(t *testing.T) {
	var changed any
	d, sel := newSelect(t, Options{
		KeyField:      "id",
		DisplayField:  "name",
		ChangeHandler: func(ev *dom.Event, item any) { changed = item },
	})
	d.SetData([]records.Record{{"id": 1, "name": "A"}, {"id": 2, "name": "B"}})

	values, labels := optionPairs(sel)
	if strings.Join(values, ",") != "1,2" || strings.Join(labels, ",") != "A,B" {
		t.Fatalf("Unexpected options %v / %v", values, labels)
	}
	if d.SelectedValue() != "1" {
		t.Errorf("Expected first option selected by default, got %q", d.SelectedValue())
	}

	sel.Choose(1)
	item, ok := d.SelectedItem().(records.Record)
	if !ok || item["id"] != 2 || item["name"] != "B" {
		t.Errorf("Expected {id:2 name:B}, got %v", d.SelectedItem())
	}
	if rec, ok := changed.(records.Record); !ok || rec["id"] != 2 {
		t.Errorf("Expected change handler to receive record 2, got %v", changed)
	}
	if d.SelectedIndex() != 1 || d.SelectedValue() != "2" {
		t.Errorf("Expected index 1 value 2, got %d %q", d.SelectedIndex(), d.SelectedValue())
	}
}

func TestPrimitives(t *testing.T) {
	d, sel := newSelect(t, Options{})
	d.SetData([]string{"red", "green"})
	values, labels := optionPairs(sel)
	if strings.Join(values, ",") != "red,green" || strings.Join(labels, ",") != "red,green" {
		t.Errorf("Unexpected options %v / %v", values, labels)
	}

	d.SetData([]int{10, 20, 30})
	values, _ = optionPairs(sel)
	if strings.Join(values, ",") != "10,20,30" {
		t.Errorf("Expected options to be replaced, got %v", values)
	}
}

func TestIndexValueFallback(t *testing.T) {
	d, sel := newSelect(t, Options{DisplayField: "name"})
	d.SetData([]map[string]any{{"name": "x"}, {"name": "y"}})
	values, labels := optionPairs(sel)
	if strings.Join(values, ",") != "0,1" || strings.Join(labels, ",") != "x,y" {
		t.Errorf("Unexpected options %v / %v", values, labels)
	}
	// no key field means no record can match the value
	if d.SelectedItem() != nil {
		t.Errorf("Expected no selected item without a key field")
	}
}

func TestFirstPropertyLabelFallback(t *testing.T) {
	d, sel := newSelect(t, Options{KeyField: "code"})
	d.SetData([]records.Record{
		{"code": "b", "alpha": "Bee"},
		{"code": "c", "alpha": "Sea"},
	})
	_, labels := optionPairs(sel)
	if strings.Join(labels, ",") != "Bee,Sea" {
		t.Errorf("Expected labels from the first property, got %v", labels)
	}

	d.SetData([][]string{{"one", "1"}, {"two", "2"}})
	_, labels = optionPairs(sel)
	if strings.Join(labels, ",") != "one,two" {
		t.Errorf("Expected labels from element 0, got %v", labels)
	}
}

func TestStructRecords(t *testing.T) {
	type country struct {
		Code string
		Name string
	}
	d, sel := newSelect(t, Options{KeyField: "Code", DisplayField: "Name"})
	d.SetData([]country{{"fr", "France"}, {"de", "Germany"}})

	if !d.Select("de") {
		t.Fatalf("Expected option de to exist")
	}
	if got, ok := d.SelectedItem().(country); !ok || got.Name != "Germany" {
		t.Errorf("Expected Germany, got %v", d.SelectedItem())
	}
	if d.Select("xx") {
		t.Errorf("Expected unknown value to be rejected")
	}
	if _, labels := optionPairs(sel); labels[0] != "France" {
		t.Errorf("Unexpected labels %v", labels)
	}
}

func TestNonSequenceIsLoggedAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	logging.SetLevel(slog.LevelDebug)
	defer logging.SetOutput(os.Stderr)
	defer logging.SetLevel(slog.LevelInfo)

	d, sel := newSelect(t, Options{KeyField: "id"})
	d.SetData([]records.Record{{"id": 1}})
	d.SetData(42)

	if len(sel.Options()) != 0 {
		t.Errorf("Expected empty option list, got %d options", len(sel.Options()))
	}
	if d.Data() != 42 {
		t.Errorf("Expected Data to return the bound value")
	}
	if !strings.Contains(buf.String(), "not a sequence") {
		t.Errorf("Expected a debug log entry, got %q", buf.String())
	}
	if d.SelectedItem() != nil || d.SelectedValue() != "" {
		t.Errorf("Expected no selection on an empty list")
	}
}

func TestChangeWithoutHandler(t *testing.T) {
	d, sel := newSelect(t, Options{KeyField: "id", DisplayField: "id"})
	d.SetData([]records.Record{{"id": "a"}, {"id": "b"}})
	if ev := sel.Choose(1); ev == nil {
		t.Fatalf("Expected a change event")
	}
	if d.SelectedValue() != "b" {
		t.Errorf("Expected value b, got %q", d.SelectedValue())
	}
}
