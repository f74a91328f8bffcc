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
	"strings"
	"testing"
)

func TestAppendAndReplaceChildren(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("span"))
	b := parent.AppendChild(NewElement("span"))
	if len(parent.Children()) != 2 || a.Parent() != parent || b.Parent() != parent {
		t.Fatalf("Expected two attached children")
	}

	other := NewElement("div")
	other.AppendChild(a)
	if len(parent.Children()) != 1 || a.Parent() != other {
		t.Errorf("Expected AppendChild to move the node to the new parent")
	}

	table := NewElement("table")
	parent.ReplaceChildren(table)
	if len(parent.Children()) != 1 || parent.Children()[0] != table {
		t.Errorf("Expected ReplaceChildren to leave only the table, got %d children", len(parent.Children()))
	}
	if b.Parent() != nil {
		t.Errorf("Expected replaced child to be detached")
	}
}

func TestClassesAreAddedOnce(t *testing.T) {
	e := NewElement("i")
	e.AddClass("bi-pencil", "me-1", "", "me-1")
	got := e.Classes()
	if len(got) != 2 || got[0] != "bi-pencil" || got[1] != "me-1" {
		t.Errorf("Expected [bi-pencil me-1], got %v", got)
	}
	e.SetClassName("page-item  active")
	if !e.HasClass("active") || e.HasClass("me-1") {
		t.Errorf("Expected SetClassName to replace the class list, got %v", e.Classes())
	}
}

func TestSetAttrRoutesClassAndData(t *testing.T) {
	e := NewElement("tr")
	e.SetAttr("data-key", "42")
	e.SetAttr("class", "row odd")
	e.SetAttr("title", "x")
	if v, ok := e.Data("key"); !ok || v != "42" {
		t.Errorf("Expected data-key to land in the dataset, got %q", v)
	}
	if !e.HasClass("odd") {
		t.Errorf("Expected class attribute to set classes")
	}
	if v, _ := e.Attr("title"); v != "x" {
		t.Errorf("Expected title attribute, got %q", v)
	}
}

func TestEventBubbling(t *testing.T) {
	row := NewElement("tr")
	cell := row.AppendChild(NewElement("td"))
	icon := cell.AppendChild(NewElement("i"))

	var order []string
	row.AddEventListener(EventClick, func(ev *Event) {
		order = append(order, "row")
		if ev.Target != icon || ev.CurrentTarget != row {
			t.Errorf("Unexpected target/currentTarget on row listener")
		}
	})
	icon.AddEventListener(EventClick, func(ev *Event) { order = append(order, "icon") })

	icon.Click()
	if strings.Join(order, ",") != "icon,row" {
		t.Errorf("Expected icon then row, got %v", order)
	}
}

func TestStopPropagation(t *testing.T) {
	row := NewElement("tr")
	icon := row.AppendChild(NewElement("i"))

	rowClicks := 0
	iconClicks := 0
	row.AddEventListener(EventClick, func(ev *Event) { rowClicks++ })
	icon.AddEventListener(EventClick, func(ev *Event) {
		ev.StopPropagation()
		iconClicks++
	})
	// A second listener on the same node still runs.
	icon.AddEventListener(EventClick, func(ev *Event) { iconClicks++ })

	ev := icon.Click()
	if !ev.PropagationStopped() {
		t.Errorf("Expected propagation to be stopped")
	}
	if iconClicks != 2 || rowClicks != 0 {
		t.Errorf("Expected 2 icon and 0 row clicks, got %d and %d", iconClicks, rowClicks)
	}
}

func TestDispatchPathSurvivesRebuild(t *testing.T) {
	container := NewElement("div")
	table := container.AppendChild(NewElement("table"))
	link := table.AppendChild(NewElement("a"))

	reached := false
	container.AddEventListener(EventClick, func(ev *Event) { reached = true })
	link.AddEventListener(EventClick, func(ev *Event) {
		container.ReplaceChildren(NewElement("table"))
	})

	link.Click()
	if !reached {
		t.Errorf("Expected the event to bubble to the container after the rebuild")
	}
}

func TestFind(t *testing.T) {
	root := NewElement("div")
	ul := root.AppendChild(NewElement("ul"))
	for _, p := range []string{"0", "1", "2"} {
		li := ul.AppendChild(NewElement("li"))
		a := li.AppendChild(NewElement("a"))
		a.SetData("page", p)
	}
	if links := root.Find(ByTag("a")); len(links) != 3 {
		t.Errorf("Expected 3 links, got %d", len(links))
	}
	if a := root.FindFirst(ByData("page", "2")); a == nil {
		t.Errorf("Expected to find page 2 link")
	}
	if a := root.FindFirst(ByData("page", "9")); a != nil {
		t.Errorf("Expected no page 9 link")
	}
	if got := root.Find(ByTag("div")); len(got) != 0 {
		t.Errorf("Expected Find to skip the root itself, got %d", len(got))
	}
}

func TestSelectState(t *testing.T) {
	sel := NewElement("select")
	if sel.SelectedIndex() != -1 || sel.Value() != "" {
		t.Errorf("Expected empty select to have no selection")
	}
	for _, v := range []string{"1", "2"} {
		opt := sel.AppendChild(NewElement("option"))
		opt.SetAttr("value", v)
		opt.SetText("label " + v)
	}
	if sel.SelectedIndex() != 0 || sel.Value() != "1" {
		t.Errorf("Expected default selection of first option, got %d/%q", sel.SelectedIndex(), sel.Value())
	}

	changes := 0
	sel.AddEventListener(EventChange, func(ev *Event) { changes++ })
	if ev := sel.Choose(1); ev == nil || ev.Type != EventChange {
		t.Fatalf("Expected a change event")
	}
	if sel.Value() != "2" || changes != 1 {
		t.Errorf("Expected value 2 after one change, got %q after %d", sel.Value(), changes)
	}
	if ev := sel.Choose(1); ev != nil || changes != 1 {
		t.Errorf("Expected no change event when choosing the selected option")
	}
	if ev := sel.Choose(5); ev != nil {
		t.Errorf("Expected out-of-range choice to be ignored")
	}

	sel.SetSelectedIndex(0)
	if sel.Value() != "1" || changes != 1 {
		t.Errorf("Expected programmatic selection without change event")
	}
}

func TestRender(t *testing.T) {
	td := NewElement("td")
	td.AddClass("text-end")
	td.SetData("key", "7")
	td.SetStyle("width", "50px")
	td.AppendChild(NewElement("span")).SetText(`<b>&"`)

	got := td.OuterHTML()
	want := `<td class="text-end" data-key="7" style="width: 50px"><span>&lt;b&gt;&amp;&#34;</span></td>`
	if got != want {
		t.Errorf("OuterHTML mismatch\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderSelectedOption(t *testing.T) {
	sel := NewElement("select")
	for _, v := range []string{"a", "b"} {
		opt := sel.AppendChild(NewElement("option"))
		opt.SetAttr("value", v)
		opt.SetText(v)
	}
	if html := sel.OuterHTML(); strings.Contains(html, "selected") {
		t.Errorf("Expected no selected attribute by default, got %s", html)
	}
	sel.SetSelectedIndex(1)
	want := `<select><option value="a">a</option><option value="b" selected="selected">b</option></select>`
	if got := sel.OuterHTML(); got != want {
		t.Errorf("OuterHTML mismatch\n got: %s\nwant: %s", got, want)
	}
	inner, err := sel.InnerHTML()
	if err != nil || !strings.HasPrefix(inner, `<option value="a">`) {
		t.Errorf("Unexpected InnerHTML %q (err %v)", inner, err)
	}
}
