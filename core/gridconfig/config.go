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

// Package gridconfig loads declarative grid definitions ("views") from
// YAML or TOML files and turns them into grid configurations.
package gridconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/google/raytools/core/csvimport"
	"github.com/google/raytools/core/grid"
)

// Format is the syntax of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File is the root of a configuration file.
type File struct {
	Views []View `yaml:"views" toml:"views"`
}

// View declares one grid and the data bound to it.
type View struct {
	Name           string         `yaml:"name" toml:"name"`
	Title          string         `yaml:"title" toml:"title"`
	Data           string         `yaml:"data" toml:"data"` // CSV path, relative to the config file
	KeyField       string         `yaml:"key_field" toml:"key_field"`
	PageSize       int            `yaml:"page_size" toml:"page_size"`
	MaxPageButtons int            `yaml:"max_page_buttons" toml:"max_page_buttons"`
	NoDataLabel    string         `yaml:"no_data_label" toml:"no_data_label"`
	StyleClasses   []string       `yaml:"style_classes" toml:"style_classes"`
	RowNumbers     RowNumbersSpec `yaml:"row_numbers" toml:"row_numbers"`
	SortIcons      *SortIconsSpec `yaml:"sort_icons" toml:"sort_icons"`
	Columns        []ColumnSpec   `yaml:"columns" toml:"columns"`

	// Types forces CSV column types by header name (string, int64, float64,
	// bool); other columns are detected.
	Types map[string]string `yaml:"types" toml:"types"`
}

// RowNumbersSpec mirrors grid.RowNumbers.
type RowNumbersSpec struct {
	Visible      bool     `yaml:"visible" toml:"visible"`
	Title        string   `yaml:"title" toml:"title"`
	StyleClasses []string `yaml:"style_classes" toml:"style_classes"`
}

// SortIconsSpec mirrors grid.SortIcons.
type SortIconsSpec struct {
	Asc  string `yaml:"asc" toml:"asc"`
	Desc string `yaml:"desc" toml:"desc"`
}

// ColumnSpec declares a column. RenderIf and Format are expressions over
// the record's fields.
type ColumnSpec struct {
	Field    string     `yaml:"field" toml:"field"`
	Title    string     `yaml:"title" toml:"title"`
	Sort     bool       `yaml:"sort" toml:"sort"`
	Width    string     `yaml:"width" toml:"width"`
	RenderIf string     `yaml:"render_if" toml:"render_if"`
	Format   string     `yaml:"format" toml:"format"`
	Icons    []IconSpec `yaml:"icons" toml:"icons"`
}

// IconSpec declares a cell icon. Action names a handler supplied when the
// grid configuration is built.
type IconSpec struct {
	Glyph  string `yaml:"glyph" toml:"glyph"`
	Data   string `yaml:"data" toml:"data"`
	Action string `yaml:"action" toml:"action"`
}

// FormatFromPath picks the format from a file extension; anything other
// than .toml is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads and validates a configuration file. Relative data paths are
// resolved against the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	for i := range f.Views {
		if d := f.Views[i].Data; d != "" && !filepath.IsAbs(d) {
			f.Views[i].Data = filepath.Join(baseDir, d)
		}
	}
	return f, nil
}

// Parse decodes and validates configuration data.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(f); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks that views are named uniquely, have columns and carry
// well-formed expressions.
func (f *File) Validate() error {
	if len(f.Views) == 0 {
		return fmt.Errorf("no views defined")
	}
	seen := make(map[string]bool)
	for _, v := range f.Views {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("view without a name")
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate view %q", v.Name)
		}
		seen[v.Name] = true
		if len(v.Columns) == 0 {
			return fmt.Errorf("view %q: at least one column is required", v.Name)
		}
		if _, err := v.ImportOptions(); err != nil {
			return fmt.Errorf("view %q: %w", v.Name, err)
		}
		for i, c := range v.Columns {
			for _, src := range []string{c.RenderIf, c.Format} {
				if src == "" {
					continue
				}
				if _, err := Compile(src); err != nil {
					return fmt.Errorf("view %q column %d: %w", v.Name, i, err)
				}
			}
		}
	}
	return nil
}

// View returns the view with the given name.
func (f *File) View(name string) (*View, bool) {
	for i := range f.Views {
		if f.Views[i].Name == name {
			return &f.Views[i], true
		}
	}
	return nil, false
}

// DisplayTitle returns the title, falling back to the name.
func (v *View) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return v.Name
}

// ImportOptions returns the CSV import options of the view's data file.
func (v *View) ImportOptions() (csvimport.ImportOptions, error) {
	opts := csvimport.DefaultOptions()
	for header, name := range v.Types {
		t, err := csvimport.ParseColumnType(name)
		if err != nil {
			return opts, fmt.Errorf("column %q: %w", header, err)
		}
		opts.ColumnSources[header] = csvimport.CsvColumnSource{Type: t}
	}
	return opts, nil
}

// GridConfig builds the grid configuration of the view. Icon actions are
// looked up in actions; an icon without an action renders without a
// handler, an unknown action is an error.
func (v *View) GridConfig(actions map[string]grid.IconHandler) (grid.Config, error) {
	cfg := grid.Config{
		KeyField:       v.KeyField,
		NoDataLabel:    v.NoDataLabel,
		PageSize:       v.PageSize,
		MaxPageButtons: v.MaxPageButtons,
		StyleClasses:   v.StyleClasses,
		RowNumbers: grid.RowNumbers{
			Visible:      v.RowNumbers.Visible,
			Title:        v.RowNumbers.Title,
			StyleClasses: v.RowNumbers.StyleClasses,
		},
	}
	if v.SortIcons != nil {
		cfg.SortIcons = &grid.SortIcons{Asc: v.SortIcons.Asc, Desc: v.SortIcons.Desc}
	}

	for _, spec := range v.Columns {
		col := grid.Column{
			Field: spec.Field,
			Title: spec.Title,
			Sort:  spec.Sort,
			Width: spec.Width,
		}
		if col.Title == "" {
			col.Title = spec.Field
		}
		if spec.RenderIf != "" {
			expr, err := Compile(spec.RenderIf)
			if err != nil {
				return grid.Config{}, err
			}
			col.RenderIf = expr.Predicate()
		}
		if spec.Format != "" {
			expr, err := Compile(spec.Format)
			if err != nil {
				return grid.Config{}, err
			}
			col.Format = expr.Formatter()
		}
		for _, is := range spec.Icons {
			icon := grid.Icon{Glyph: is.Glyph, Data: is.Data}
			if is.Action != "" {
				handler, ok := actions[is.Action]
				if !ok {
					return grid.Config{}, fmt.Errorf("view %q: unknown icon action %q", v.Name, is.Action)
				}
				icon.Handler = handler
			}
			col.Icons = append(col.Icons, icon)
		}
		cfg.Columns = append(cfg.Columns, col)
	}
	return cfg, nil
}
