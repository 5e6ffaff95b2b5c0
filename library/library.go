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

// Package library couples one mapped dynamically-loadable library to the
// modules its factory entry point produced.
//
// A Library exclusively owns the mapping; the modules, and every model
// instance created through them, borrow code living inside it (itables,
// factory-constructed values). The Go plugin runtime never unmaps a loaded
// plugin, so the mapping outlives every borrower structurally and no
// handle can dangle. There is no unload operation.
package library

import (
	"errors"
	"fmt"
	"plugin"
	"strings"

	"dirpx.dev/modx/apis"
)

// FactorySymbol is the fixed name of the exported entry point every module
// library must provide: a nullary function (or a variable of type
// apis.Factory) returning the constructed Module instances.
const FactorySymbol = "ModuleFactory"

// ErrLoadFailure is returned for every way a library can fail to load:
// missing file, mapping error, or a missing or mistyped factory entry
// point. The underlying detail is attached to the returned error.
var ErrLoadFailure = errors.New("modx(library): module library failed to load")

// Suffix returns the dynamic-library filename suffix of the platforms the
// Go plugin runtime supports.
func Suffix() string {
	return ".so"
}

// IsModuleFile reports whether filename matches the module-file naming
// convention: it contains the marker token immediately followed by the
// platform suffix (e.g. "foo.module.so" for marker ".module").
func IsModuleFile(filename, marker string) bool {
	if marker == "" {
		return false
	}
	return strings.Contains(filename, marker+Suffix())
}

// Library is one loaded library together with the modules its factory
// produced. The in-process variant carries no mapping.
type Library struct {
	// path is the filesystem path the library was mapped from, empty for
	// pre-mapped and in-process units.
	path string
	// plug keeps the mapping reachable for the life of the unit.
	plug *plugin.Plugin
	// modules is the factory output, in factory order.
	modules []apis.Module
}

// Open maps the library at path, resolves the factory entry point, and
// invokes it exactly once. A path without the platform suffix is retried
// with the suffix appended, so "/usr/lib/sample.module" and
// "/usr/lib/sample.module.so" both work.
//
// Any failure yields ErrLoadFailure; a Library is never returned partially
// constructed.
func Open(path string) (*Library, error) {
	p, err := plugin.Open(path)
	if err != nil && !strings.HasSuffix(path, Suffix()) {
		decorated := path + Suffix()
		if dp, derr := plugin.Open(decorated); derr == nil {
			p, err, path = dp, nil, decorated
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailure, path, err)
	}
	lib, err := FromPlugin(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lib.path = path
	return lib, nil
}

// FromPlugin constructs the unit from an already-mapped plugin handle.
func FromPlugin(p *plugin.Plugin) (*Library, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil plugin handle", ErrLoadFailure)
	}
	sym, err := p.Lookup(FactorySymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: no %s entry point: %v", ErrLoadFailure, FactorySymbol, err)
	}
	var factory apis.Factory
	switch f := sym.(type) {
	case func() []apis.Module:
		factory = f
	case apis.Factory:
		factory = f
	case *apis.Factory:
		factory = *f
	case *func() []apis.Module:
		factory = *f
	default:
		return nil, fmt.Errorf("%w: %s has type %T, want %T", ErrLoadFailure, FactorySymbol, sym, factory)
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: %s is nil", ErrLoadFailure, FactorySymbol)
	}
	return &Library{plug: p, modules: factory()}, nil
}

// InProcess constructs the unit directly from already-instantiated modules
// without mapping any library.
func InProcess(mods ...apis.Module) *Library {
	return &Library{modules: append([]apis.Module(nil), mods...)}
}

// Modules returns the modules this unit provides, in factory order.
func (l *Library) Modules() []apis.Module {
	return append([]apis.Module(nil), l.modules...)
}

// Path returns the filesystem path the library was mapped from. It is
// empty for in-process units and units built from a pre-mapped handle.
func (l *Library) Path() string {
	return l.path
}

// Mapped reports whether the unit owns a library mapping.
func (l *Library) Mapped() bool {
	return l.plug != nil
}
