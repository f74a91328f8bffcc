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

package gridconfig

import (
	"fmt"
	"time"

	"github.com/Knetic/govaluate"

	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/records"
	"github.com/google/raytools/core/strutil"
)

// Expression is a compiled render_if or format expression evaluated
// against a record's fields, e.g. `status != 'archived'` or
// `first + ' ' + last`.
type Expression struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// Compile parses src.
func Compile(src string) (*Expression, error) {
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", src, err)
	}
	return &Expression{src: src, expr: expr}, nil
}

// String returns the source text.
func (e *Expression) String() string {
	return e.src
}

// Evaluate runs the expression with the record's fields as parameters.
func (e *Expression) Evaluate(r records.Record) (any, error) {
	return e.expr.Evaluate(parameters(r))
}

// Predicate adapts the expression to a column render_if. Evaluation errors
// and non-boolean results count as false.
func (e *Expression) Predicate() func(records.Record) bool {
	return func(r records.Record) bool {
		result, err := e.Evaluate(r)
		if err != nil {
			logging.Debug("render_if evaluation failed", "expr", e.src, "error", err)
			return false
		}
		b, ok := result.(bool)
		return ok && b
	}
}

// Formatter adapts the expression to a column format. Evaluation errors
// yield an empty string, which the grid renders as a placeholder.
func (e *Expression) Formatter() func(records.Record) string {
	return func(r records.Record) string {
		result, err := e.Evaluate(r)
		if err != nil {
			logging.Debug("format evaluation failed", "expr", e.src, "error", err)
			return ""
		}
		return strutil.Stringify(result)
	}
}

// parameters converts record values to the types the evaluator works
// with: every number becomes a float64 and times become RFC 3339 strings.
func parameters(r records.Record) map[string]interface{} {
	params := make(map[string]interface{}, len(r))
	for k, v := range r {
		switch n := v.(type) {
		case int:
			params[k] = float64(n)
		case int8:
			params[k] = float64(n)
		case int16:
			params[k] = float64(n)
		case int32:
			params[k] = float64(n)
		case int64:
			params[k] = float64(n)
		case uint:
			params[k] = float64(n)
		case uint8:
			params[k] = float64(n)
		case uint16:
			params[k] = float64(n)
		case uint32:
			params[k] = float64(n)
		case uint64:
			params[k] = float64(n)
		case float32:
			params[k] = float64(n)
		case time.Time:
			params[k] = n.Format(time.RFC3339)
		default:
			params[k] = v
		}
	}
	return params
}
