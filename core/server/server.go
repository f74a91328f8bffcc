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

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/dropdown"
	"github.com/google/raytools/core/grid"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/query"
	"github.com/google/raytools/core/records"
	"github.com/google/raytools/core/rendering"
	"github.com/google/raytools/core/strutil"
	"github.com/google/safehtml"
)

// View is a named grid served by the host.
type View struct {
	Name   string
	Title  string
	Config grid.Config
	Data   []records.Record
}

// Server hosts one grid per view and a dropdown to switch between them.
// Requests replay widget clicks on the element tree, so the widgets behave
// the same as they would in a page.
type Server struct {
	// mu serializes all widget access, requests and reloads alike.
	mu sync.Mutex

	renderer *rendering.PageRenderer
	path     string
	views    []*View
	byName   map[string]*View
	grids    map[string]*grid.Grid
	selector *dropdown.Dropdown
	current  string
}

// HandlerResult represents the result of handling a request. A nil result
// means the page was written.
type HandlerResult struct {
	Error      error
	StatusCode int
	Message    string
	Location   string // redirect target for 3xx results
}

// NewServer creates a server for views. The first view is shown by default.
func NewServer(views []*View) (*Server, error) {
	if len(views) == 0 {
		return nil, errors.New("at least one view is required")
	}
	renderer, err := rendering.NewPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s := &Server{
		renderer: renderer,
		path:     "/",
		views:    views,
		byName:   make(map[string]*View),
		grids:    make(map[string]*grid.Grid),
		current:  views[0].Name,
	}

	for _, v := range views {
		if _, dup := s.byName[v.Name]; dup {
			return nil, fmt.Errorf("duplicate view %q", v.Name)
		}
		s.byName[v.Name] = v

		g, err := grid.New(dom.NewElement("div"), s.linkedConfig(v))
		if err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Name, err)
		}
		g.SetData(v.Data)
		s.grids[v.Name] = g
	}

	sel := dom.NewElement("select")
	sel.SetAttr("name", "view")
	sel.AddClass("form-select", "form-select-sm")
	s.selector, err = dropdown.New(sel, dropdown.Options{
		KeyField:     "Name",
		DisplayField: "Title",
		ChangeHandler: func(ev *dom.Event, item any) {
			if v, ok := item.(*View); ok {
				logging.Debug("view changed", "view", v.Name)
				s.current = v.Name
			}
		},
	})
	if err != nil {
		return nil, err
	}
	s.selector.SetData(views)

	return s, nil
}

// linkedConfig copies the view's grid configuration and points its links
// at action URLs of this server.
func (s *Server) linkedConfig(v *View) grid.Config {
	cfg := v.Config
	base := &query.Query{Path: s.path, View: v.Name, Page: -1, Row: -1, Column: -1, Icon: -1}
	cfg.PageHref = func(page int) string { return base.WithPage(page).String() }
	cfg.SortHref = func(field string) string { return base.WithSort(field).String() }
	cfg.RowHref = func(index int) string { return base.WithRow(index).String() }
	cfg.IconHref = func(index, column, icon int) string { return base.WithIcon(index, column, icon).String() }
	return cfg
}

// Current returns the name of the view selected in the dropdown.
func (s *Server) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Grid returns the grid of a view.
func (s *Server) Grid(name string) (*grid.Grid, bool) {
	g, ok := s.grids[name]
	return g, ok
}

// Reload replaces the data of a view and orders it by the view's active
// sort, if any.
func (s *Server) Reload(name string, data []records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.grids[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	g.SetData(data)
	g.ApplySort()
	logging.Logger().Info("view reloaded", "view", name, "records", len(data))
	return nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != s.path {
		http.NotFound(w, r)
		return
	}

	res := s.HandleRequest(w, r.URL, w.Header().Set)
	if res == nil {
		return
	}
	switch {
	case res.Error != nil:
		// The template may already have written part of the page.
		logging.Logger().Error("page rendering failed", "error", res.Error)
	case res.Location != "":
		http.Redirect(w, r, res.Location, res.StatusCode)
	default:
		http.Error(w, res.Message, res.StatusCode)
	}
}

// HandleRequest processes a page request and writes the response.
// Requests carrying an action replay it and return a redirect to the plain
// view URL; other requests render the page.
func (s *Server) HandleRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *HandlerResult {
	q := query.NewQuery(requestURL)

	s.mu.Lock()
	defer s.mu.Unlock()

	if q.View == "" {
		q.View = s.current
	}
	view, ok := s.byName[q.View]
	if !ok {
		return &HandlerResult{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("View '%s' not found", q.View)}
	}
	s.selector.Select(view.Name)

	g := s.grids[view.Name]
	g.Render()

	if q.Action != query.ActionNone {
		if err := s.replay(g, q); err != nil {
			return &HandlerResult{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
		return &HandlerResult{StatusCode: http.StatusSeeOther, Location: q.ViewURL().String()}
	}

	vm := rendering.PageViewModel{
		Title:      view.Title,
		FormAction: safehtml.URLSanitized(s.path),
		ViewSelect: rendering.ElementHTML(s.selector.Element()),
		GridHTML:   rendering.ElementHTML(g.Container()),
		Selected:   selectedFields(g.Selected()),
		Records:    len(g.Data()),
		Views:      len(s.views),
	}
	if vm.Title == "" {
		vm.Title = view.Name
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, vm); err != nil {
		return &HandlerResult{Error: err}
	}
	return nil
}

// replay clicks the element of the rendered grid that the action names.
func (s *Server) replay(g *grid.Grid, q *query.Query) error {
	container := g.Container()

	var target *dom.Element
	switch q.Action {
	case query.ActionSort:
		if th := container.FindFirst(dom.ByData("field", q.Field)); th != nil {
			target = th.FindFirst(dom.ByTag("i"))
		}
	case query.ActionPage:
		target = container.FindFirst(dom.ByData("page", strconv.Itoa(q.Page)))
	case query.ActionRow:
		target = findRow(container, q.Row)
	case query.ActionIcon:
		if tr := findRow(container, q.Row); tr != nil {
			target = tr.FindFirst(dom.ByData("icon", grid.IconID(q.Column, q.Icon)))
		}
	default:
		return fmt.Errorf("unknown action %q", q.Action)
	}
	if target == nil {
		return fmt.Errorf("no target for action %q on the current page", q.Action)
	}

	logging.Debug("replaying click", "view", q.View, "action", q.Action)
	target.Click()
	return nil
}

// findRow returns the rendered row of record index row, nil when it is not
// on the current page.
func findRow(container *dom.Element, row int) *dom.Element {
	return container.FindFirst(func(e *dom.Element) bool {
		idx, ok := e.Data("index")
		return ok && e.Tag == "tr" && idx == strconv.Itoa(row)
	})
}

// selectedFields lists the fields of a record by name.
func selectedFields(r records.Record) []rendering.Field {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]rendering.Field, len(names))
	for i, name := range names {
		fields[i] = rendering.Field{Name: name, Value: strutil.Stringify(r[name])}
	}
	return fields
}
