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

// Package csvimport loads CSV data into records for the widgets.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/raytools/core/records"
)

// CsvColumnType specifies the data type for a column
type CsvColumnType int

const (
	// CsvColumnTypeAuto auto-detects type from data (default)
	CsvColumnTypeAuto CsvColumnType = iota
	// CsvColumnTypeString forces string type
	CsvColumnTypeString
	// CsvColumnTypeInt64 forces int64 type
	CsvColumnTypeInt64
	// CsvColumnTypeFloat64 forces float64 type
	CsvColumnTypeFloat64
	// CsvColumnTypeBool forces bool type
	CsvColumnTypeBool
)

// String returns the name of the column type.
func (t CsvColumnType) String() string {
	switch t {
	case CsvColumnTypeString:
		return "string"
	case CsvColumnTypeInt64:
		return "int64"
	case CsvColumnTypeFloat64:
		return "float64"
	case CsvColumnTypeBool:
		return "bool"
	default:
		return "auto"
	}
}

// ParseColumnType returns the column type with the given name. The empty
// name is auto.
func ParseColumnType(name string) (CsvColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return CsvColumnTypeAuto, nil
	case "string":
		return CsvColumnTypeString, nil
	case "int", "int64":
		return CsvColumnTypeInt64, nil
	case "float", "float64":
		return CsvColumnTypeFloat64, nil
	case "bool":
		return CsvColumnTypeBool, nil
	}
	return CsvColumnTypeAuto, fmt.Errorf("unknown column type %q", name)
}

// CsvColumnSource defines how a CSV column is imported
type CsvColumnSource struct {
	// Name is the record field name (defaults to the header name)
	Name string
	// Type specifies the data type for this column (default: auto-detect)
	Type CsvColumnType
}

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// ColumnSources provides configuration for specific columns by header name
	ColumnSources map[string]CsvColumnSource
	// SampleSize is the number of rows to sample for type detection (default: 100)
	SampleSize int
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]CsvColumnSource),
		SampleSize:    100,
	}
}

// ImportFromFile imports a CSV file and returns its records and field names
func ImportFromFile(filepath string, options ImportOptions) ([]records.Record, []string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ImportFromReader(file, options)
}

// ImportFromReader imports CSV data from an io.Reader. Empty cells become
// nil values; cells that fail to parse as their column type are kept as
// strings.
func ImportFromReader(reader io.Reader, options ImportOptions) ([]records.Record, []string, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	csvReader.FieldsPerRecord = -1

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}

	// Extract headers
	var headers []string
	var dataRows [][]string

	if options.HasHeader {
		headers = rows[0]
		dataRows = rows[1:]
	} else {
		// Generate column names if no header
		numCols := len(rows[0])
		headers = make([]string, numCols)
		for i := 0; i < numCols; i++ {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
		dataRows = rows
	}

	sampleSize := options.SampleSize
	if sampleSize <= 0 {
		sampleSize = 100
	}
	columnTypes := detectColumnTypes(headers, dataRows, sampleSize, options.ColumnSources)

	fields := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		fields[i] = header
		if config := getColumnSource(header, options.ColumnSources); config.Name != "" {
			fields[i] = config.Name
		}
	}

	out := make([]records.Record, 0, len(dataRows))
	for _, row := range dataRows {
		rec := make(records.Record, len(fields))
		for i, field := range fields {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			rec[field] = parseValue(value, columnTypes[i])
		}
		out = append(out, rec)
	}

	return out, fields, nil
}

// parseValue converts a cell to the column type, nil for empty cells.
func parseValue(value string, colType CsvColumnType) any {
	if value == "" {
		return nil
	}
	switch colType {
	case CsvColumnTypeInt64:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case CsvColumnTypeFloat64:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case CsvColumnTypeBool:
		if b, err := ParseBool(value); err == nil {
			return b
		}
	}
	return value
}

// ParseBool accepts true/false, yes/no, y/n and 1/0 in any case.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

// detectColumnTypes samples data to pick the narrowest type that parses
// every non-empty sampled value: int64, then float64, then bool, else string.
func detectColumnTypes(headers []string, dataRows [][]string, sampleSize int, configs map[string]CsvColumnSource) []CsvColumnType {
	types := make([]CsvColumnType, len(headers))

	// Sample rows for type detection
	rowsToSample := sampleSize
	if rowsToSample > len(dataRows) {
		rowsToSample = len(dataRows)
	}

	for i, header := range headers {
		// Check if type is explicitly set
		if config := getColumnSource(strings.TrimSpace(header), configs); config.Type != CsvColumnTypeAuto {
			types[i] = config.Type
			continue
		}

		isInt, isFloat, isBool := true, true, true
		hasNonEmpty := false

		for j := 0; j < rowsToSample; j++ {
			if i >= len(dataRows[j]) {
				continue
			}

			value := strings.TrimSpace(dataRows[j][i])
			if value == "" {
				continue
			}
			hasNonEmpty = true

			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				isInt = false
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				isFloat = false
			}
			if _, err := ParseBool(value); err != nil {
				isBool = false
			}
		}

		switch {
		case !hasNonEmpty:
			types[i] = CsvColumnTypeString
		case isInt:
			types[i] = CsvColumnTypeInt64
		case isFloat:
			types[i] = CsvColumnTypeFloat64
		case isBool:
			types[i] = CsvColumnTypeBool
		default:
			types[i] = CsvColumnTypeString
		}
	}

	return types
}

// getColumnSource returns the config for a column, or an empty config if not specified
func getColumnSource(header string, configs map[string]CsvColumnSource) CsvColumnSource {
	if configs == nil {
		return CsvColumnSource{}
	}
	if config, ok := configs[header]; ok {
		return config
	}
	return CsvColumnSource{}
}
