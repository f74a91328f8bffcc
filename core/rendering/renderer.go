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

package rendering

import (
	"embed"
	"io"

	"github.com/google/raytools/core/dom"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

//go:embed templates/*
var templateFS embed.FS

// Field is one name/value line of the selected record panel.
type Field struct {
	Name  string
	Value string
}

// PageViewModel contains everything the page template needs.
type PageViewModel struct {
	Title      string
	FormAction safehtml.URL
	ViewSelect safehtml.HTML // the views select control
	GridHTML   safehtml.HTML // the grid container
	Selected   []Field       // the last clicked record, if any
	Records    int
	Views      int
}

// PageRenderer handles rendering of page view models to HTML
type PageRenderer struct {
	pageTemplate *template.Template
}

// NewPageRenderer creates a new page renderer
func NewPageRenderer() (*PageRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	pageTemplate, err := template.New("page.html").ParseFS(trustedFS, "templates/page.html")
	if err != nil {
		return nil, err
	}

	return &PageRenderer{
		pageTemplate: pageTemplate,
	}, nil
}

// Render renders a PageViewModel to the provided writer
func (r *PageRenderer) Render(w io.Writer, vm PageViewModel) error {
	return r.pageTemplate.Execute(w, vm)
}

// ElementHTML converts a widget element to safe HTML. Element text and
// attributes are escaped by the serializer, so the result needs no further
// sanitizing.
func ElementHTML(e *dom.Element) safehtml.HTML {
	if e == nil {
		return safehtml.HTML{}
	}
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(e.OuterHTML())
}
