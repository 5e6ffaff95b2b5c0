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

package manager

import (
	"os"
	"path/filepath"

	"dirpx.dev/modx/library"
)

// adjacentDirNames are the conventional sibling-directory names scanned
// next to the executable's directory.
var adjacentDirNames = []string{"module", "modules", "lib"}

// Discover scans the module-search directories once and loads, best
// effort, every file matching the module-file naming convention.
//
// The search order is: the directory containing the running executable,
// the conventional sibling directories adjacent to it, any configured
// extra search paths, and finally every directory named in the configured
// environment variable (split on the platform's path-list separator).
//
// Discovery never fails: an unreadable directory is skipped, and a
// candidate that fails to load — malformed file, missing entry point, or a
// module name that is already registered — is logged at debug level and
// skipped.
func (m *Manager) Discover() {
	for _, dir := range m.searchDirs() {
		m.scanDir(dir)
	}
}

// searchDirs assembles the candidate directories in search order.
// Directories are not checked for existence here; scanDir tolerates
// missing ones.
func (m *Manager) searchDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if resolved, rerr := filepath.EvalSymlinks(exe); rerr == nil {
			exe = resolved
		}
		exeDir := filepath.Dir(exe)
		dirs = append(dirs, exeDir)
		parent := filepath.Dir(exeDir)
		for _, name := range adjacentDirNames {
			dirs = append(dirs, filepath.Join(parent, name))
		}
	}
	dirs = append(dirs, m.cfg.SearchPaths...)
	if m.cfg.EnvVar != "" {
		for _, p := range filepath.SplitList(os.Getenv(m.cfg.EnvVar)) {
			if p != "" {
				dirs = append(dirs, p)
			}
		}
	}
	return dirs
}

// scanDir attempts to load every module-file candidate in dir.
func (m *Manager) scanDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	log := m.logger()
	for _, e := range entries {
		if e.IsDir() || !library.IsModuleFile(e.Name(), m.cfg.Marker) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := m.Load(path); err != nil {
			log.Debug("modx: skipped module candidate", "path", path, "error", err)
			continue
		}
		log.Debug("modx: discovered module library", "path", path)
	}
}
