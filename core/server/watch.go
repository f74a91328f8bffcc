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

package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/records"
)

// Loader reads the records of a data file.
type Loader func(path string) ([]records.Record, error)

// Watch reloads a view's data whenever the file at path is written or
// recreated. It blocks until ctx is done or the watcher fails. Load errors
// are logged and keep the previous data.
func (s *Server) Watch(ctx context.Context, view, path string, load Loader) error {
	if _, ok := s.grids[view]; !ok {
		return fmt.Errorf("view %q not found", view)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so files replaced by rename are still seen.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	logging.Logger().Info("watching data file", "view", view, "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			data, err := load(target)
			if err != nil {
				logging.Logger().Warn("reload failed", "view", view, "path", path, "error", err)
				continue
			}
			if err := s.Reload(view, data); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				logging.Logger().Warn("file watcher overflow", "path", path)
				continue
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}
