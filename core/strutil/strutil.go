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

// Package strutil holds the small string helpers shared by the widgets.
package strutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// NBSP is the placeholder written into cells that would otherwise be empty,
// so that no cell collapses visually.
const NBSP = "\u00a0"

// IsBlank reports whether s is empty or consists only of whitespace,
// including non-breaking spaces.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Stringify renders a bound value as display text. nil renders as "".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// OrDefault returns s, or def when s is blank.
func OrDefault(s, def string) string {
	if IsBlank(s) {
		return def
	}
	return s
}
