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

package grid

import (
	"sort"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/records"
)

// doSortColumn handles a click on a sort icon. A new field sorts
// ascending; the active field flips direction. The record set is sorted in
// place and paging restarts at the first page.
func (g *Grid) doSortColumn(ev *dom.Event, field string) {
	if g.sort == nil || g.sort.Field != field {
		g.sort = &SortState{Field: field, Direction: Ascending}
	} else {
		g.sort.Direction = -g.sort.Direction
	}
	logging.Debug("grid sort", "field", field, "direction", g.sort.Direction)

	sortRecords(g.data, *g.sort)
	g.currentPageIndex = 0
	g.Render()
}

// ApplySort orders the current record set by the active sort without
// rendering. Without an active sort it does nothing.
func (g *Grid) ApplySort() {
	if g.sort == nil {
		return
	}
	sortRecords(g.data, *g.sort)
}

// sortRecords orders data by the sort field. The sort is stable: records
// with equal values keep their relative order.
func sortRecords(data []records.Record, s SortState) {
	dir := int(s.Direction)
	sort.SliceStable(data, func(i, j int) bool {
		return records.CompareField(data[i], data[j], s.Field)*dir < 0
	})
}

// doChangePage handles a click on a pager link.
func (g *Grid) doChangePage(ev *dom.Event, page int) {
	if page < 0 || page >= g.MaxPages() {
		logging.Debug("grid page out of range", "page", page, "maxPages", g.MaxPages())
		return
	}
	g.currentPageIndex = page
	g.Render()
}

// doRowClick records the clicked row as the selection and forwards the
// event to the row click handler.
func (g *Grid) doRowClick(ev *dom.Event, ctx RowContext) {
	if ctx.RowIndex >= 0 && ctx.RowIndex < len(g.data) {
		g.selection = g.data[ctx.RowIndex]
	}
	if g.onRowClick != nil {
		g.onRowClick(ev, ctx)
	}
}
