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

// Command raytools serves and prints data grids declared in a view
// configuration file.
//
// Usage:
//
//	raytools serve [--config views.yaml] [--addr :8080] [--watch]
//	raytools print [--config views.yaml] --view orders [--page 2]
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/google/raytools/core/dom"
	"github.com/google/raytools/core/grid"
	"github.com/google/raytools/core/gridconfig"
	"github.com/google/raytools/core/logging"
	"github.com/google/raytools/core/server"
	"github.com/google/raytools/demo"
)

// Global flags
var (
	configFile string
	logLevel   string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "raytools",
		Short:         "Paginated, sortable data grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLevel(logging.ParseLevel(logLevel))
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "View configuration file (.yaml or .toml); built-in sample views when empty")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(serveCmd(), printCmd())
	return root
}

// loadViews reads the configured views and their data.
func loadViews() (*gridconfig.File, []*server.View, error) {
	if configFile == "" {
		f, err := demo.EmbeddedConfig()
		if err != nil {
			return nil, nil, err
		}
		views, err := demo.BuildViews(f, demo.OpenEmbedded)
		return f, views, err
	}

	f, err := gridconfig.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	views, err := demo.BuildViews(f, demo.OpenFile)
	return f, views, err
}

func serveCmd() *cobra.Command {
	var addr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the views over HTTP",
		Long: `Starts an HTTP server that renders one view at a time.

Sorting, paging and row selection are links; a select control switches
between views. With --watch, data files are reloaded when they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, views, err := loadViews()
			if err != nil {
				return err
			}
			srv, err := server.NewServer(views)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				startWatchers(ctx, srv, f)
			}
			return listen(ctx, addr, srv)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8097", "Address to listen on")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload data files when they change")

	return cmd
}

func startWatchers(ctx context.Context, srv *server.Server, f *gridconfig.File) {
	if configFile == "" {
		logging.Logger().Warn("built-in views cannot be watched; pass --config")
		return
	}
	for i := range f.Views {
		v := &f.Views[i]
		if v.Data == "" {
			continue
		}
		opts, err := v.ImportOptions()
		if err != nil {
			logging.Logger().Error("cannot watch view", "view", v.Name, "error", err)
			continue
		}
		go func(name, path string) {
			if err := srv.Watch(ctx, name, path, demo.CSVLoader(opts)); err != nil {
				logging.Logger().Error("watch stopped", "view", name, "error", err)
			}
		}(v.Name, v.Data)
	}
}

// listen serves until ctx is done, then shuts the server down.
func listen(ctx context.Context, addr string, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logging.Logger().Info("server starting", "addr", "http://"+addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printCmd() *cobra.Command {
	var viewName string
	var page int

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print one page of a view as a text table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, views, err := loadViews()
			if err != nil {
				return err
			}

			view := views[0]
			if viewName != "" {
				view = nil
				for _, v := range views {
					if v.Name == viewName {
						view = v
						break
					}
				}
				if view == nil {
					return fmt.Errorf("view %q not found", viewName)
				}
			}

			g, err := grid.New(dom.NewElement("div"), view.Config)
			if err != nil {
				return err
			}
			g.SetData(view.Data)
			if page < 1 || page > g.MaxPages() {
				return fmt.Errorf("page %d out of range: view %q has %d pages", page, view.Name, g.MaxPages())
			}
			g.SetPageIndex(page - 1)

			fmt.Fprintln(cmd.OutOrStdout(), view.Title)
			fmt.Fprintln(cmd.OutOrStdout(), g.ToASCII())
			return nil
		},
	}

	cmd.Flags().StringVarP(&viewName, "view", "v", "", "View to print; the first view when empty")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to print, starting at 1")

	return cmd
}
