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
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/google/raytools/core/strutil"
)

// ToASCII returns the current page as a bordered text table followed by
// either the pager and summary or the no-data label.
func (g *Grid) ToASCII() string {
	var headers []string
	if g.rowNumbers.Visible {
		headers = append(headers, g.rowNumbers.Title)
	}
	for _, col := range g.columns {
		headers = append(headers, g.asciiHeader(col))
	}

	start, end := g.pageBounds()
	rows := make([][]string, 0, end-start)
	for dataIdx := start; dataIdx < end; dataIdx++ {
		row := g.data[dataIdx]
		var cells []string
		if g.rowNumbers.Visible {
			cells = append(cells, strconv.Itoa(dataIdx+1))
		}
		for _, col := range g.columns {
			if col.RenderIf != nil && !col.RenderIf(row) {
				cells = append(cells, "")
				continue
			}
			var sb strings.Builder
			for _, icon := range col.Icons {
				sb.WriteString("[" + icon.Glyph + "] ")
			}
			sb.WriteString(strings.ReplaceAll(g.cellValue(row, col), strutil.NBSP, " "))
			cells = append(cells, strings.TrimRight(sb.String(), " "))
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	var sb strings.Builder
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	if len(g.data) < 1 {
		sb.WriteString(g.noDataLabel)
	} else {
		sb.WriteString(g.asciiPager())
		sb.WriteString("  ")
		sb.WriteString(g.summary())
	}
	sb.WriteString("\n")
	return sb.String()
}

func (g *Grid) asciiHeader(col Column) string {
	if g.sort == nil || !col.Sort || g.sort.Field != col.Field {
		return col.Title
	}
	if g.sort.Direction == Descending {
		return col.Title + " v"
	}
	return col.Title + " ^"
}

// asciiPager renders the pager window with the current page bracketed.
func (g *Grid) asciiPager() string {
	parts := []string{firstPageText}
	for _, page := range g.PagerWindow() {
		label := strconv.Itoa(page + 1)
		if page == g.currentPageIndex {
			label = fmt.Sprintf("[%s]", label)
		}
		parts = append(parts, label)
	}
	parts = append(parts, lastPageText)
	return strings.Join(parts, " ")
}
