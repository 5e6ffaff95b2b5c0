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

// Package manager tracks loaded module libraries and answers capability
// queries across them.
//
// A Manager is an insertion-ordered, append-only collection of library
// units. Units are never removed or replaced: a loaded library stays
// mapped, and its modules stay registered, until the process exits.
//
// The Manager holds its unit list without internal synchronization and is
// not safe for concurrent use; callers that share one across goroutines
// must serialize all access themselves.
package manager

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/handle"
	"dirpx.dev/modx/library"
)

var (
	// ErrNilModule is returned when a nil module is loaded.
	ErrNilModule = errors.New("modx(manager): nil module provided")
	// ErrNilLibrary is returned when a nil library unit is loaded.
	ErrNilLibrary = errors.New("modx(manager): nil library provided")
	// ErrDuplicateModule indicates a load attempt for a module name that
	// is already registered.
	ErrDuplicateModule = errors.New("modx(manager): module name already registered")
	// ErrNoModels is returned by predicate retrieval when the interface
	// has no registered models at all.
	ErrNoModels = errors.New("modx(manager): no models of this interface are registered")
	// ErrNoMatch is returned by predicate retrieval when no model
	// satisfies the predicate.
	ErrNoMatch = errors.New("modx(manager): no model satisfies the predicate")
)

// anyFilter is the module-name filter sentinel meaning "search all
// modules", compared case-insensitively.
const anyFilter = "any"

// New constructs a Manager for cfg. When cfg.Discover is set, filesystem
// discovery runs once, here, before New returns.
func New(cfg apis.Config) *Manager {
	m := &Manager{cfg: cfg}
	if cfg.Discover {
		m.Discover()
	}
	return m
}

// Manager is the registry of loaded module libraries.
type Manager struct {
	// cfg is the discovery and filtering configuration.
	cfg apis.Config
	// sources lists the library units in registration order, append-only.
	sources []*library.Library
}

// logger returns the configured logger, falling back to slog.Default.
func (m *Manager) logger() *slog.Logger {
	if m.cfg.Logger != nil {
		return m.cfg.Logger
	}
	return slog.Default()
}

// Load maps the library at path and registers the modules it provides.
// Load failures and duplicate module names are reported, never swallowed.
func (m *Manager) Load(path string) error {
	lib, err := library.Open(path)
	if err != nil {
		return err
	}
	return m.LoadLibrary(lib)
}

// LoadModule registers a module supplied directly in-process, without any
// library mapping.
func (m *Manager) LoadModule(mod apis.Module) error {
	if mod == nil {
		return ErrNilModule
	}
	return m.LoadLibrary(library.InProcess(mod))
}

// LoadLibrary registers a pre-built library unit.
//
// Every module name the unit contains is checked against all already
// registered names (case-sensitive exact match); on any collision the whole
// unit is rejected with ErrDuplicateModule and nothing is registered.
func (m *Manager) LoadLibrary(lib *library.Library) error {
	if lib == nil {
		return ErrNilLibrary
	}
	mods := lib.Modules()
	for _, mod := range mods {
		if mod == nil {
			return ErrNilModule
		}
		if m.ModuleLoaded(mod.Name()) {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, mod.Name())
		}
	}
	m.sources = append(m.sources, lib)

	names := make([]string, 0, len(mods))
	for _, mod := range mods {
		names = append(names, mod.Name())
	}
	m.logger().Debug("modx: registered module library", "path", lib.Path(), "modules", names)
	return nil
}

// ModuleNames returns the names of all registered modules in registration
// order.
func (m *Manager) ModuleNames() []string {
	var names []string
	for _, src := range m.sources {
		for _, mod := range src.Modules() {
			names = append(names, mod.Name())
		}
	}
	return names
}

// ModuleLoaded reports whether a module with exactly this name is
// registered.
func (m *Manager) ModuleLoaded(name string) bool {
	for _, src := range m.sources {
		for _, mod := range src.Modules() {
			if mod.Name() == name {
				return true
			}
		}
	}
	return false
}

// Interfaces returns the deduplicated, lexicographically sorted union of
// every registered module's announced interfaces.
func (m *Manager) Interfaces() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, src := range m.sources {
		for _, mod := range src.Modules() {
			for _, iface := range mod.Interfaces() {
				if _, ok := seen[iface]; ok {
					continue
				}
				seen[iface] = struct{}{}
				out = append(out, iface)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Models returns every registered module's announced models for iface,
// concatenated in registration order. Duplicates across modules are kept.
func (m *Manager) Models(iface string) []string {
	var out []string
	for _, src := range m.sources {
		for _, mod := range src.Modules() {
			out = append(out, mod.Models(iface)...)
		}
	}
	return out
}

// Has reports whether some registered module supplies the given model of
// the given interface. A non-empty module filter (other than the "any"
// sentinel) restricts the search to modules it matches; see matchesFilter.
func (m *Manager) Has(iface, model, module string) bool {
	for _, mod := range m.candidates(module) {
		if mod.Has(iface, model) {
			return true
		}
	}
	return false
}

// Get returns a handle from the first module, in registration order, that
// reports Has for the given identifiers, honoring the same module filter
// as Has. When no module matches it returns apis.ErrNotImplemented; it
// never returns an empty handle silently.
func (m *Manager) Get(iface, model, module string) (handle.Handle, error) {
	for _, mod := range m.candidates(module) {
		if mod.Has(iface, model) {
			return mod.Get(iface, model)
		}
	}
	return handle.Handle{}, apis.ErrNotImplemented
}

// GetAll gathers handles for every model of iface.
//
// With a module filter it restricts to the first module the filter matches
// and returns all of that module's models; without one it concatenates, in
// registration order, every model every module reports. The result may be
// empty; the handles in it are never empty.
func (m *Manager) GetAll(iface, module string) []handle.Handle {
	var out []handle.Handle
	filtered := !searchAll(module)
	for _, mod := range m.candidates(module) {
		for _, model := range mod.Models(iface) {
			h, err := mod.Get(iface, model)
			if err != nil || h.IsZero() {
				// A module whose Get rejects an announced model violates
				// the Module contract; tolerate it rather than corrupt
				// the gathered set.
				continue
			}
			out = append(out, h)
		}
		if filtered {
			return out
		}
	}
	return out
}

// searchAll reports whether the filter means "all modules".
func searchAll(module string) bool {
	return module == "" || strings.EqualFold(module, anyFilter)
}

// matchesFilter reports whether a module name matches the filter, either
// literally or with the conventional suffix appended to the filter, both
// case-insensitively: with suffix "module", the filter "Sample" matches a
// module named "SampleModule".
func (m *Manager) matchesFilter(name, module string) bool {
	return strings.EqualFold(name, module) ||
		(m.cfg.FilterSuffix != "" && strings.EqualFold(name, module+m.cfg.FilterSuffix))
}

// candidates returns the modules a query visits, in registration order,
// restricted by the module-name filter.
func (m *Manager) candidates(module string) []apis.Module {
	all := searchAll(module)
	var out []apis.Module
	for _, src := range m.sources {
		for _, mod := range src.Modules() {
			if all || m.matchesFilter(mod.Name(), module) {
				out = append(out, mod)
			}
		}
	}
	return out
}
