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

package query

import (
	"net/url"
	"strconv"

	"github.com/google/safehtml"
)

// Action is a widget interaction carried by a request URL.
type Action string

const (
	ActionNone Action = ""
	ActionSort Action = "sort" // click the sort icon of Field
	ActionPage Action = "page" // click the pager link of Page
	ActionRow  Action = "row"  // click the table row of Row
	ActionIcon Action = "icon" // click icon Icon of column Column in the row of Row
)

// Query represents the parsed state of a grid page URL
type Query struct {
	// Base path (e.g., "/")
	Path string

	View   string // the view being shown
	Action Action // interaction to replay before rendering
	Field  string // sort field for ActionSort
	Page   int    // page index for ActionPage
	Row    int    // record index for ActionRow and ActionIcon
	Column int    // column position for ActionIcon
	Icon   int    // icon position within the column for ActionIcon
}

// NewQuery creates a Query from a URL
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path: u.Path,
		Page:   -1,
		Row:    -1,
		Column: -1,
		Icon:   -1,
	}
	if state.Path == "" {
		state.Path = "/"
	}

	q := u.Query()
	state.View = q.Get("view")
	state.Action = Action(q.Get("action"))
	state.Field = q.Get("field")

	if pageStr := q.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			state.Page = page
		}
	}
	if rowStr := q.Get("row"); rowStr != "" {
		if row, err := strconv.Atoi(rowStr); err == nil {
			state.Row = row
		}
	}
	if colStr := q.Get("col"); colStr != "" {
		if col, err := strconv.Atoi(colStr); err == nil {
			state.Column = col
		}
	}
	if iconStr := q.Get("icon"); iconStr != "" {
		if icon, err := strconv.Atoi(iconStr); err == nil {
			state.Icon = icon
		}
	}

	return state
}

// Clone creates a copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

// withoutAction returns a copy that only carries the view.
func (s *Query) withoutAction() *Query {
	return &Query{Path: s.Path, View: s.View, Page: -1, Row: -1, Column: -1, Icon: -1}
}

// ViewURL returns the URL of the current view without any action.
func (s *Query) ViewURL() safehtml.URL {
	return s.withoutAction().ToSafeURL()
}

// WithView returns the URL of another view.
func (s *Query) WithView(view string) safehtml.URL {
	newState := s.withoutAction()
	newState.View = view
	return newState.ToSafeURL()
}

// WithSort returns the URL that clicks the sort icon of field.
func (s *Query) WithSort(field string) safehtml.URL {
	newState := s.withoutAction()
	newState.Action = ActionSort
	newState.Field = field
	return newState.ToSafeURL()
}

// WithPage returns the URL that clicks the pager link of page.
func (s *Query) WithPage(page int) safehtml.URL {
	newState := s.withoutAction()
	newState.Action = ActionPage
	newState.Page = page
	return newState.ToSafeURL()
}

// WithRow returns the URL that clicks the row of record index row.
func (s *Query) WithRow(row int) safehtml.URL {
	newState := s.withoutAction()
	newState.Action = ActionRow
	newState.Row = row
	return newState.ToSafeURL()
}

// WithIcon returns the URL that clicks icon icon of column column in the
// row of record index row.
func (s *Query) WithIcon(row, column, icon int) safehtml.URL {
	newState := s.withoutAction()
	newState.Action = ActionIcon
	newState.Row = row
	newState.Column = column
	newState.Icon = icon
	return newState.ToSafeURL()
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()
	if s.View != "" {
		q.Set("view", s.View)
	}
	if s.Action != ActionNone {
		q.Set("action", string(s.Action))
	}
	if s.Field != "" {
		q.Set("field", s.Field)
	}
	if s.Page >= 0 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.Row >= 0 {
		q.Set("row", strconv.Itoa(s.Row))
	}
	if s.Column >= 0 {
		q.Set("col", strconv.Itoa(s.Column))
	}
	if s.Icon >= 0 {
		q.Set("icon", strconv.Itoa(s.Icon))
	}

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(s.ToURL())
}
