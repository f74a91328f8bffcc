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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configFile, logLevel = "", "info"

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintEmbeddedView(t *testing.T) {
	out, err := runCLI(t, "print", "--view", "regions")
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	for _, want := range []string{"Regions", "Northport", "1 - 4 of 4 items"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintPage(t *testing.T) {
	out, err := runCLI(t, "print", "--page", "3")
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !strings.Contains(out, "21 - 30 of 30 items") {
		t.Errorf("Expected the third page of orders, got:\n%s", out)
	}
}

func TestPrintConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := "[[views]]\nname = \"parts\"\ndata = \"parts.csv\"\n\n  [[views.columns]]\n  field = \"part\"\n  sort = true\n"
	if err := os.WriteFile(filepath.Join(dir, "views.toml"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "parts.csv"), []byte("part\nbolt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "print", "--config", filepath.Join(dir, "views.toml"))
	if err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if !strings.Contains(out, "bolt") {
		t.Errorf("Expected output to contain the CSV data, got:\n%s", out)
	}
}

func TestPrintUnknownView(t *testing.T) {
	if _, err := runCLI(t, "print", "--view", "missing"); err == nil {
		t.Errorf("Expected an error for an unknown view")
	}
}

func TestPrintPageOutOfRange(t *testing.T) {
	for _, page := range []string{"0", "4"} {
		t.Run(page, func(t *testing.T) {
			_, err := runCLI(t, "print", "--page", page)
			if err == nil || !strings.Contains(err.Error(), "out of range") {
				t.Errorf("Expected an out of range error for page %s, got %v", page, err)
			}
		})
	}
}
