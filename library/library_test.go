/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package library_test

import (
	"errors"
	"path/filepath"
	"testing"

	"dirpx.dev/modx/library"
	"dirpx.dev/modx/sample"
)

func TestIsModuleFile(t *testing.T) {
	cases := []struct {
		filename string
		marker   string
		want     bool
	}{
		{"sample.module.so", ".module", true},
		{"libchem.module.so", ".module", true},
		{"sample.module.so.1", ".module", true},
		{"sample.so", ".module", false},
		{"sample.module", ".module", false},
		{"sample.module.txt", ".module", false},
		{"sample.plugin.so", ".plugin", true},
		{"sample.module.so", "", false},
	}
	for _, tc := range cases {
		if got := library.IsModuleFile(tc.filename, tc.marker); got != tc.want {
			t.Errorf("IsModuleFile(%q, %q) = %v, want %v", tc.filename, tc.marker, got, tc.want)
		}
	}
}

func TestSuffix(t *testing.T) {
	if got := library.Suffix(); got != ".so" {
		t.Fatalf("Suffix() = %q, want .so", got)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.module.so")
	if _, err := library.Open(path); !errors.Is(err, library.ErrLoadFailure) {
		t.Fatalf("Open(%q): error = %v, want ErrLoadFailure", path, err)
	}
}

func TestFromPlugin_NilHandle(t *testing.T) {
	if _, err := library.FromPlugin(nil); !errors.Is(err, library.ErrLoadFailure) {
		t.Fatalf("FromPlugin(nil): error = %v, want ErrLoadFailure", err)
	}
}

func TestInProcess(t *testing.T) {
	lib := library.InProcess(sample.Factory()...)

	if lib.Mapped() {
		t.Fatal("Mapped() = true for an in-process unit")
	}
	if got := lib.Path(); got != "" {
		t.Fatalf("Path() = %q, want empty", got)
	}
	mods := lib.Modules()
	if len(mods) != 1 || mods[0].Name() != sample.ModuleName {
		t.Fatalf("Modules() = %v, want the single sample module", mods)
	}

	// Modules hands out a copy; mutating it must not reach the unit.
	mods[0] = nil
	if again := lib.Modules(); again[0] == nil {
		t.Fatal("Modules() exposed internal state")
	}
}
