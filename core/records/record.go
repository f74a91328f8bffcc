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

// Package records defines the schema-less row type bound to the widgets.
package records

import (
	"github.com/google/raytools/core/strutil"
)

// Record is one row of bound data. Its shape is defined by the caller.
type Record map[string]any

// Lookup returns the value stored under field and whether the field is
// present. A present field may hold nil.
func (r Record) Lookup(field string) (any, bool) {
	if r == nil || field == "" {
		return nil, false
	}
	v, ok := r[field]
	return v, ok
}

// Has reports whether field is present on the record.
func (r Record) Has(field string) bool {
	_, ok := r.Lookup(field)
	return ok
}

// String returns the display text of field, "" when absent or nil.
func (r Record) String(field string) string {
	v, _ := r.Lookup(field)
	return strutil.Stringify(v)
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// FromMaps converts generic maps (as decoded from JSON or YAML) to records.
func FromMaps(rows []map[string]any) []Record {
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record(row)
	}
	return out
}
