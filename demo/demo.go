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

package demo

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/google/raytools/core/csvimport"
	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/grid"
	"github.com/google/raytools/core/gridconfig"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/records"
	"github.com/google/raytools/core/server"
)

//go:embed views.yaml data/*.csv
var files embed.FS

// Opener opens the data file of a view.
type Opener func(path string) (io.ReadCloser, error)

// EmbeddedConfig returns the built-in sample views.
func EmbeddedConfig() (*gridconfig.File, error) {
	data, err := files.ReadFile("views.yaml")
	if err != nil {
		return nil, err
	}
	return gridconfig.Parse(data, gridconfig.FormatYAML)
}

// OpenEmbedded opens a data file of the built-in sample views.
func OpenEmbedded(path string) (io.ReadCloser, error) {
	return files.Open(path)
}

// OpenFile opens a data file from disk.
func OpenFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Actions returns the icon actions available to configured views.
func Actions() map[string]grid.IconHandler {
	return map[string]grid.IconHandler{
		"log": func(ev *dom.Event, ctx grid.IconContext) {
			logging.Logger().Info("icon clicked", "row", ctx.RowIndex, "key", ctx.RowKey, "value", ctx.Value)
		},
	}
}

// CSVLoader returns a loader reading CSV data files with opts.
func CSVLoader(opts csvimport.ImportOptions) server.Loader {
	return func(path string) ([]records.Record, error) {
		data, _, err := csvimport.ImportFromFile(path, opts)
		return data, err
	}
}

// BuildViews turns configured views into server views, reading each view's
// data through open. Views without a data file start empty.
func BuildViews(f *gridconfig.File, open Opener) ([]*server.View, error) {
	views := make([]*server.View, 0, len(f.Views))
	for i := range f.Views {
		v := &f.Views[i]
		cfg, err := v.GridConfig(Actions())
		if err != nil {
			return nil, err
		}

		opts, err := v.ImportOptions()
		if err != nil {
			return nil, err
		}

		var data []records.Record
		if v.Data != "" {
			data, err = readCSV(v.Data, open, opts)
			if err != nil {
				return nil, fmt.Errorf("view %q: %w", v.Name, err)
			}
		}
		logging.Debug("view loaded", "view", v.Name, "records", len(data))

		views = append(views, &server.View{
			Name:   v.Name,
			Title:  v.DisplayTitle(),
			Config: cfg,
			Data:   data,
		})
	}
	return views, nil
}

func readCSV(path string, open Opener, opts csvimport.ImportOptions) ([]records.Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer rc.Close()

	data, _, err := csvimport.ImportFromReader(rc, opts)
	return data, err
}
