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
	"fmt"
	"strconv"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/records"
	"github.com/google/raytools/core/strutil"
)

const (
	firstPageText = "«"
	lastPageText  = "»"

	activeSortColor   = "#000"
	inactiveSortColor = "#999"
)

// Render rebuilds the table and footer from the current state and replaces
// the container's children with them. It may be called any number of times.
func (g *Grid) Render() {
	table := dom.NewElement("table")
	table.SetClassName("table")
	table.AddClass(g.styleClasses...)
	table.AppendChild(g.renderHeader())
	table.AppendChild(g.renderBody())

	var footer *dom.Element
	if len(g.data) < 1 {
		footer = g.renderNoData()
	} else {
		footer = g.renderFooter()
	}

	g.container.ReplaceChildren(table, footer)
}

func (g *Grid) renderHeader() *dom.Element {
	thead := dom.NewElement("thead")
	tr := thead.AppendChild(dom.NewElement("tr"))

	if g.rowNumbers.Visible {
		th := tr.AppendChild(dom.NewElement("th"))
		th.SetText(g.rowNumbers.Title)
	}

	for _, col := range g.columns {
		th := tr.AppendChild(dom.NewElement("th"))
		th.AppendChild(dom.NewElement("span")).SetText(col.Title)
		if col.Width != "" {
			th.SetStyle("width", col.Width)
		}
		if col.Sort && col.Field != "" {
			th.SetData("field", col.Field)
			th.AppendChild(g.renderSortIcon(col.Field))
		}
	}
	return thead
}

// renderSortIcon builds the clickable sort glyph of a header. The active
// field shows the current direction in a dark colour; other sortable
// fields show the ascending glyph greyed out.
func (g *Grid) renderSortIcon(field string) *dom.Element {
	active := g.sort != nil && g.sort.Field == field

	glyph := g.sortAscIcon
	color := inactiveSortColor
	if active {
		color = activeSortColor
		if g.sort.Direction == Descending {
			glyph = g.sortDescIcon
		}
	}

	icon := dom.NewElement("i")
	icon.AddClass("bi-"+glyph, "ms-1")
	icon.SetStyle("color", color)
	icon.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		g.doSortColumn(ev, field)
	})

	if g.sortHref == nil {
		return icon
	}
	link := dom.NewElement("a")
	link.SetAttr("href", g.sortHref(field))
	link.AppendChild(icon)
	return link
}

func (g *Grid) renderBody() *dom.Element {
	tbody := dom.NewElement("tbody")
	start, end := g.pageBounds()

	for dataIdx := start; dataIdx < end; dataIdx++ {
		row := g.data[dataIdx]
		rowKey := g.rowKey(row)
		ctx := RowContext{RowIndex: dataIdx, RowKey: rowKey}

		tr := tbody.AppendChild(dom.NewElement("tr"))
		tr.SetData("index", strconv.Itoa(dataIdx))
		if !strutil.IsBlank(rowKey) {
			tr.SetData("key", rowKey)
		}
		if g.rowHref != nil {
			tr.SetData("href", g.rowHref(dataIdx))
		}

		if g.rowNumbers.Visible {
			td := tr.AppendChild(dom.NewElement("td"))
			td.AddClass(g.rowNumbers.StyleClasses...)
			td.SetText(strconv.Itoa(dataIdx + 1))
		}

		for colIdx, col := range g.columns {
			tr.AppendChild(g.renderCell(row, col, colIdx, ctx))
		}

		tr.AddEventListener(dom.EventClick, func(ev *dom.Event) {
			g.doRowClick(ev, ctx)
		})
	}
	return tbody
}

func (g *Grid) renderCell(row records.Record, col Column, colIdx int, ctx RowContext) *dom.Element {
	td := dom.NewElement("td")

	if col.RenderIf != nil && !col.RenderIf(row) {
		td.SetText(strutil.NBSP)
		return td
	}

	for iconIdx, icon := range col.Icons {
		td.AppendChild(g.renderIcon(row, icon, ctx, colIdx, iconIdx))
	}

	td.AppendChild(dom.NewElement("span")).SetText(g.cellValue(row, col))
	return td
}

// IconID identifies the icon at position icon of column column, as stored
// in the data-icon attribute of linked icons.
func IconID(column, icon int) string {
	return strconv.Itoa(column) + "." + strconv.Itoa(icon)
}

func (g *Grid) renderIcon(row records.Record, icon Icon, ctx RowContext, colIdx, iconIdx int) *dom.Element {
	img := dom.NewElement("i")
	img.AddClass("bi-"+icon.Glyph, "me-1")
	if icon.Handler == nil {
		return img
	}

	value, _ := row.Lookup(icon.Data)
	ictx := IconContext{RowContext: ctx, Value: value}
	handler := icon.Handler
	img.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		// the row handler must not see icon clicks
		ev.StopPropagation()
		handler(ev, ictx)
	})

	if g.iconHref == nil {
		return img
	}
	img.SetData("icon", IconID(colIdx, iconIdx))
	link := dom.NewElement("a")
	link.SetAttr("href", g.iconHref(ctx.RowIndex, colIdx, iconIdx))
	link.AppendChild(img)
	return link
}

// cellValue returns the display text of col for row. A column whose field
// is missing from the record, and any blank result, yields the NBSP
// placeholder.
func (g *Grid) cellValue(row records.Record, col Column) string {
	if col.Field != "" && !row.Has(col.Field) {
		return strutil.NBSP
	}

	var text string
	switch {
	case col.Format != nil:
		text = col.Format(row)
	case col.Field != "":
		text = row.String(col.Field)
	}

	if strutil.IsBlank(text) {
		return strutil.NBSP
	}
	return text
}

// rowKey returns the key field value of row as text, "" when unavailable.
func (g *Grid) rowKey(row records.Record) string {
	if strutil.IsBlank(g.keyField) {
		return ""
	}
	return row.String(g.keyField)
}

func (g *Grid) renderFooter() *dom.Element {
	footer := dom.NewElement("div")
	footer.AddClass("d-flex", "justify-content-center")

	nav := footer.AppendChild(dom.NewElement("nav"))
	nav.AddClass("align-items-start", "me-auto")
	pager := nav.AppendChild(dom.NewElement("ul"))
	pager.SetClassName("pagination")

	pager.AppendChild(g.renderPageLink(firstPageText, 0, false))
	for _, page := range g.PagerWindow() {
		pager.AppendChild(g.renderPageLink(strconv.Itoa(page+1), page, page == g.currentPageIndex))
	}
	pager.AppendChild(g.renderPageLink(lastPageText, g.MaxPages()-1, false))

	footer.AppendChild(dom.NewElement("div")).SetText(g.summary())
	return footer
}

// summary returns the "start - end of total items" footer text.
func (g *Grid) summary() string {
	start, end := g.pageBounds()
	return fmt.Sprintf("%d - %d of %d items", start+1, end, len(g.data))
}

func (g *Grid) renderNoData() *dom.Element {
	div := dom.NewElement("div")
	div.AddClass("d-flex", "justify-content-center")
	div.AppendChild(dom.NewElement("span")).SetText(g.noDataLabel)
	return div
}

func (g *Grid) renderPageLink(text string, page int, active bool) *dom.Element {
	li := dom.NewElement("li")
	li.SetClassName("page-item")
	if active {
		li.AddClass("active")
	}

	href := "#"
	if g.pageHref != nil {
		href = g.pageHref(page)
	}

	link := li.AppendChild(dom.NewElement("a"))
	link.SetClassName("page-link")
	link.SetAttr("href", href)
	link.SetData("page", strconv.Itoa(page))
	link.SetText(text)
	link.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		ev.PreventDefault()
		g.doChangePage(ev, page)
	})
	return li
}
