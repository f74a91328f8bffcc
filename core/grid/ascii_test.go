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
	"strings"
	"testing"

	"github.com/google/raytools/core/records"
)

func TestToASCII(t *testing.T) {
	cols := []Column{
		{Field: "id", Title: "ID", Sort: true},
		{Field: "name", Title: "Name", Icons: []Icon{{Glyph: "pencil"}}},
		{Field: "note", Title: "Note"},
	}
	g, container := newTestGrid(t, Config{
		Columns:        cols,
		PageSize:       2,
		MaxPageButtons: 3,
		RowNumbers:     RowNumbers{Visible: true, Title: "#"},
	})
	g.SetData([]records.Record{
		{"id": 1, "name": "alpha", "note": ""},
		{"id": 2, "name": "beta"},
		{"id": 3, "name": "gamma"},
	})
	g.Render()
	sortIcon(t, container, "id").Click()
	sortIcon(t, container, "id").Click()

	out := g.ToASCII()
	for _, want := range []string{"#", "ID v", "Name", "[pencil] gamma", "[pencil] beta", "« [1] 2 »", "1 - 2 of 3 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected ASCII output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "alpha") {
		t.Errorf("Expected only the first page in ASCII output, got:\n%s", out)
	}
}

func TestToASCIINoData(t *testing.T) {
	g, _ := newTestGrid(t, Config{NoDataLabel: "empty"})
	out := g.ToASCII()
	if !strings.Contains(out, "Name") || !strings.HasSuffix(out, "empty\n") {
		t.Errorf("Expected headers and no-data label, got:\n%s", out)
	}
	if strings.Contains(out, "items") {
		t.Errorf("Expected no summary without data, got:\n%s", out)
	}
}
