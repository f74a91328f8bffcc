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

// Package grid implements a paginated, sortable data grid that renders a
// record set into a dom.Element container and reacts to clicks on its sort
// icons, pager links, rows and cell icons.
package grid

import (
	"errors"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/records"
)

// Defaults applied by New when the configuration leaves a value unset.
const (
	DefaultPageSize       = 25
	DefaultMaxPageButtons = 2
	DefaultNoDataLabel    = "no data"
	DefaultRowNumberTitle = "Row"
	DefaultSortAscIcon    = "sort-numeric-down"
	DefaultSortDescIcon   = "sort-numeric-up-alt"
)

var (
	// ErrNoContainer is returned by New when no container element is given.
	ErrNoContainer = errors.New("grid: a container element is required")
	// ErrNoColumns is returned by New when the configuration has no columns.
	ErrNoColumns = errors.New("grid: at least one column is required")
)

// RowContext identifies the row an event originated from.
type RowContext struct {
	RowIndex int    // zero-based index into the full record set
	RowKey   string // key field value, "" when no key field is configured
}

// IconContext is passed to icon handlers.
type IconContext struct {
	RowContext
	Value any // the record's value for the icon's Data field
}

// RowClickHandler is invoked after a row becomes the current selection.
type RowClickHandler func(ev *dom.Event, ctx RowContext)

// IconHandler is invoked when a cell icon is clicked.
type IconHandler func(ev *dom.Event, ctx IconContext)

// Icon is a clickable glyph rendered in front of a cell's value.
type Icon struct {
	Glyph   string
	Handler IconHandler
	Data    string // field whose value is handed to Handler
}

// Column describes how one column is rendered and whether it sorts.
type Column struct {
	Field    string
	Title    string
	Sort     bool
	Width    string
	Icons    []Icon
	RenderIf func(records.Record) bool
	Format   func(records.Record) string
}

// RowNumbers configures the synthetic row number column.
type RowNumbers struct {
	Visible      bool
	Title        string
	StyleClasses []string
}

// SortIcons overrides the glyphs of the sort header icons.
type SortIcons struct {
	Asc  string
	Desc string
}

// Config holds the construction options of a Grid.
type Config struct {
	Columns         []Column
	RowNumbers      RowNumbers
	KeyField        string
	RowClickHandler RowClickHandler
	NoDataLabel     string
	PageSize        int
	MaxPageButtons  int
	SortIcons       *SortIcons
	StyleClasses    []string

	// PageHref and SortHref give pager and sort links a target. Links
	// point at "#" when they are nil.
	PageHref func(page int) string
	SortHref func(field string) string
	// RowHref, when set, is stored as the data-href of each row.
	RowHref func(index int) string
	// IconHref, when set, wraps icons that have a handler in a link. column
	// and icon are positions in Columns and Column.Icons.
	IconHref func(index, column, icon int) string
}

// Direction of an active sort.
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortState is the field and direction of the active sort.
type SortState struct {
	Field     string
	Direction Direction
}

// Grid owns the record set, its paging, sorting and selection state, and
// the elements rendered into its container. A Grid is not safe for
// concurrent use; callers serialize access the way an event loop would.
type Grid struct {
	container *dom.Element

	columns        []Column
	rowNumbers     RowNumbers
	keyField       string
	onRowClick     RowClickHandler
	noDataLabel    string
	pageSize       int
	maxPageButtons int
	sortAscIcon    string
	sortDescIcon   string
	styleClasses   []string
	pageHref       func(int) string
	sortHref       func(string) string
	rowHref        func(int) string
	iconHref       func(int, int, int) string

	data             []records.Record
	currentPageIndex int
	sort             *SortState
	selection        records.Record
}

// New creates a grid bound to container. Nothing is rendered until Render
// is called.
func New(container *dom.Element, cfg Config) (*Grid, error) {
	if container == nil {
		return nil, ErrNoContainer
	}
	if len(cfg.Columns) == 0 {
		return nil, ErrNoColumns
	}

	g := &Grid{
		container:      container,
		columns:        append([]Column(nil), cfg.Columns...),
		rowNumbers:     cfg.RowNumbers,
		keyField:       cfg.KeyField,
		onRowClick:     cfg.RowClickHandler,
		noDataLabel:    cfg.NoDataLabel,
		pageSize:       cfg.PageSize,
		maxPageButtons: cfg.MaxPageButtons,
		sortAscIcon:    DefaultSortAscIcon,
		sortDescIcon:   DefaultSortDescIcon,
		styleClasses:   append([]string(nil), cfg.StyleClasses...),
		pageHref:       cfg.PageHref,
		sortHref:       cfg.SortHref,
		rowHref:        cfg.RowHref,
		iconHref:       cfg.IconHref,
	}
	if g.noDataLabel == "" {
		g.noDataLabel = DefaultNoDataLabel
	}
	if g.pageSize <= 0 {
		g.pageSize = DefaultPageSize
	}
	if g.maxPageButtons <= 0 {
		g.maxPageButtons = DefaultMaxPageButtons
	}
	if g.rowNumbers.Title == "" {
		g.rowNumbers.Title = DefaultRowNumberTitle
	}
	if cfg.SortIcons != nil {
		if cfg.SortIcons.Asc != "" {
			g.sortAscIcon = cfg.SortIcons.Asc
		}
		if cfg.SortIcons.Desc != "" {
			g.sortDescIcon = cfg.SortIcons.Desc
		}
	}
	return g, nil
}

// Container returns the element the grid renders into.
func (g *Grid) Container() *dom.Element {
	return g.container
}

// Columns returns the column definitions in rendering order.
func (g *Grid) Columns() []Column {
	return g.columns
}

// Data returns the live record set.
func (g *Grid) Data() []records.Record {
	return g.data
}

// SetData replaces the record set and re-clamps the page index. It does not
// render, so callers can transform the data before painting.
func (g *Grid) SetData(data []records.Record) {
	g.data = data
	if g.currentPageIndex > g.MaxPages()-1 {
		g.currentPageIndex = g.MaxPages() - 1
	}
}

// Selected returns the last clicked record, nil when nothing was clicked.
func (g *Grid) Selected() records.Record {
	return g.selection
}

// PageIndex returns the zero-based index of the current page.
func (g *Grid) PageIndex() int {
	return g.currentPageIndex
}

// SetPageIndex moves to page. Negative pages become 0 and pages past the
// end fall back to 0 as well, not to the last page.
func (g *Grid) SetPageIndex(page int) {
	if page < 0 {
		page = 0
	}
	if page >= g.MaxPages() {
		page = 0
	}
	g.currentPageIndex = page
}

// PageSize returns the number of records shown per page.
func (g *Grid) PageSize() int {
	return g.pageSize
}

// MaxPages returns the number of pages needed for the record set. An empty
// record set still has one (empty) page.
func (g *Grid) MaxPages() int {
	pages := (len(g.data) + g.pageSize - 1) / g.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// SortState returns the active sort, if any.
func (g *Grid) SortState() (SortState, bool) {
	if g.sort == nil {
		return SortState{}, false
	}
	return *g.sort, true
}

// pageBounds returns the [start, end) slice of the current page.
func (g *Grid) pageBounds() (int, int) {
	start := g.currentPageIndex * g.pageSize
	if start > len(g.data) {
		start = len(g.data)
	}
	end := start + g.pageSize
	if end > len(g.data) {
		end = len(g.data)
	}
	return start, end
}
