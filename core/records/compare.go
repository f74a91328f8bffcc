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

package records

import (
	"math"
	"strings"
	"time"

	"github.com/google/raytools/core/strutil"
)

// valueKind orders values of different kinds against each other:
// nil first, then bools, numbers, times and finally strings.
type valueKind int

const (
	kindNil valueKind = iota
	kindBool
	kindNumber
	kindTime
	kindString
)

// Compare orders two field values. Returns -1 if a < b, 0 if equal, 1 if a > b.
// Numbers compare numerically across integer and float types, strings
// lexically, bools with false < true and times chronologically. Values of
// different kinds order by kind; anything else compares by its display text.
func Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch ka {
	case kindNil:
		return 0
	case kindBool:
		return compareBools(a.(bool), b.(bool))
	case kindNumber:
		return compareNumbers(a, b)
	case kindTime:
		return compareTimes(a.(time.Time), b.(time.Time))
	default:
		return strings.Compare(strutil.Stringify(a), strutil.Stringify(b))
	}
}

// CompareField orders two records by the value of one field.
func CompareField(a, b Record, field string) int {
	va, _ := a.Lookup(field)
	vb, _ := b.Lookup(field)
	return Compare(va, vb)
}

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case time.Time:
		return kindTime
	}
	if _, ok := toFloat64(v); ok {
		return kindNumber
	}
	return kindString
}

// compareNumbers compares integers exactly in their own width and only
// falls back to float64 when a float is involved.
func compareNumbers(a, b any) int {
	ia, aSigned := toInt64(a)
	ib, bSigned := toInt64(b)
	ua, aUnsigned := toUint64(a)
	ub, bUnsigned := toUint64(b)

	switch {
	case aSigned && bSigned:
		return compareInt64s(ia, ib)
	case aUnsigned && bUnsigned:
		return compareUint64s(ua, ub)
	case aSigned && bUnsigned:
		if ia < 0 {
			return -1
		}
		return compareUint64s(uint64(ia), ub)
	case aUnsigned && bSigned:
		if ib < 0 {
			return 1
		}
		return compareUint64s(ua, uint64(ib))
	}

	fa, _ := toFloat64(a)
	fb, _ := toFloat64(b)
	return compareFloat64s(fa, fb)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// compareTimes compares two time.Time values
func compareTimes(a, b time.Time) int {
	if a.Before(b) {
		return -1
	}
	if a.After(b) {
		return 1
	}
	return 0
}

// compareBools compares two bool values (false < true)
func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

// compareInt64s compares two int64 values
func compareInt64s(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// compareUint64s compares two uint64 values
func compareUint64s(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// compareFloat64s compares two float64 values with NaN handling.
// NaN values are considered greater than all other values (sort to end).
func compareFloat64s(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)

	if aNaN && bNaN {
		return 0
	}
	if aNaN {
		return 1
	}
	if bNaN {
		return -1
	}

	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
