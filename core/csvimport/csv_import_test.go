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

package csvimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImportBasicCSV(t *testing.T) {
	csvData := `name,age,city
Alice,30,New York
Bob,25,Los Angeles
Charlie,35,Chicago`

	recs, fields, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}

	if len(recs) != 3 {
		t.Errorf("expected 3 rows, got %d", len(recs))
	}
	if len(fields) != 3 || fields[0] != "name" || fields[2] != "city" {
		t.Errorf("unexpected fields %v", fields)
	}
	if recs[0]["name"] != "Alice" {
		t.Errorf("expected 'Alice', got '%v'", recs[0]["name"])
	}
	// age is detected as an integer column
	if recs[0]["age"] != int64(30) {
		t.Errorf("expected int64 30, got %#v", recs[0]["age"])
	}
}

func TestImportWithoutHeader(t *testing.T) {
	csvData := `Alice,30,New York
Bob,25,Los Angeles`

	options := DefaultOptions()
	options.HasHeader = false

	recs, fields, err := ImportFromReader(strings.NewReader(csvData), options)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 rows, got %d", len(recs))
	}
	if fields[0] != "column_1" || recs[0]["column_1"] != "Alice" {
		t.Errorf("expected column_1=Alice, got %v", recs[0])
	}
}

func TestTypeDetection(t *testing.T) {
	csvData := `id,price,active,code,note
1,9.5,yes,A1,
2,10,no,B2,
3,,true,C3,`

	recs, _, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}

	if recs[1]["id"] != int64(2) {
		t.Errorf("expected int64 id, got %#v", recs[1]["id"])
	}
	if recs[1]["price"] != 10.0 {
		t.Errorf("expected float64 price, got %#v", recs[1]["price"])
	}
	if v, ok := recs[2]["price"]; !ok || v != nil {
		t.Errorf("expected present nil price for empty cell, got %#v", v)
	}
	if recs[0]["active"] != true || recs[1]["active"] != false {
		t.Errorf("expected bool active, got %#v / %#v", recs[0]["active"], recs[1]["active"])
	}
	if recs[0]["code"] != "A1" {
		t.Errorf("expected string code, got %#v", recs[0]["code"])
	}
	if recs[0]["note"] != nil {
		t.Errorf("expected nil note, got %#v", recs[0]["note"])
	}
}

func TestColumnSources(t *testing.T) {
	csvData := `zip,Amount
01234,5
98765,x`

	options := DefaultOptions()
	options.ColumnSources["zip"] = CsvColumnSource{Type: CsvColumnTypeString}
	options.ColumnSources["Amount"] = CsvColumnSource{Name: "amount", Type: CsvColumnTypeInt64}

	recs, fields, err := ImportFromReader(strings.NewReader(csvData), options)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if recs[0]["zip"] != "01234" {
		t.Errorf("expected zip kept as string, got %#v", recs[0]["zip"])
	}
	if fields[1] != "amount" || recs[0]["amount"] != int64(5) {
		t.Errorf("expected renamed int64 amount, got %v %#v", fields, recs[0])
	}
	// unparsable values fall back to their text
	if recs[1]["amount"] != "x" {
		t.Errorf("expected fallback to text, got %#v", recs[1]["amount"])
	}
}

func TestCustomDelimiterAndShortRows(t *testing.T) {
	csvData := "a;b;c\n1;2\n"
	options := DefaultOptions()
	options.Delimiter = ';'

	recs, _, err := ImportFromReader(strings.NewReader(csvData), options)
	if err != nil {
		t.Fatalf("failed to import CSV: %v", err)
	}
	if recs[0]["b"] != int64(2) || recs[0]["c"] != nil {
		t.Errorf("unexpected record %#v", recs[0])
	}
}

func TestImportErrors(t *testing.T) {
	if _, _, err := ImportFromReader(strings.NewReader(""), DefaultOptions()); err == nil {
		t.Errorf("expected error for empty CSV")
	}
	if _, _, err := ImportFromFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions()); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("name\nx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs, _, err := ImportFromFile(path, DefaultOptions())
	if err != nil || len(recs) != 1 || recs[0]["name"] != "x" {
		t.Errorf("unexpected import result %v %v", recs, err)
	}
}

func TestHeaderOnly(t *testing.T) {
	recs, fields, err := ImportFromReader(strings.NewReader("a,b\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("expected header-only CSV to import, got %v", err)
	}
	if len(recs) != 0 || len(fields) != 2 {
		t.Errorf("expected no records and two fields, got %d / %v", len(recs), fields)
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "YES", "y", "1"} {
		if b, err := ParseBool(in); err != nil || !b {
			t.Errorf("ParseBool(%q) = %v, %v", in, b, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Errorf("expected error for maybe")
	}
}

func TestParseColumnType(t *testing.T) {
	tests := map[string]CsvColumnType{
		"":        CsvColumnTypeAuto,
		"auto":    CsvColumnTypeAuto,
		"String":  CsvColumnTypeString,
		"int":     CsvColumnTypeInt64,
		"int64":   CsvColumnTypeInt64,
		"float64": CsvColumnTypeFloat64,
		" bool ":  CsvColumnTypeBool,
	}
	for name, want := range tests {
		if got, err := ParseColumnType(name); err != nil || got != want {
			t.Errorf("ParseColumnType(%q) = %v, %v; expected %v", name, got, err, want)
		}
	}
	if _, err := ParseColumnType("decimal"); err == nil {
		t.Errorf("expected error for decimal")
	}
}
