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

package modx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/config"
	"dirpx.dev/modx/handle"
	"dirpx.dev/modx/manager"
	"dirpx.dev/modx/resolver"
)

var (
	// defaultMu serializes initialization and replacement of the default
	// manager so a snapshot is never published half-built.
	defaultMu sync.Mutex
	// def is the process-wide default manager, published atomically.
	def atomic.Pointer[manager.Manager]
)

// Default returns the process-wide default manager, constructing it — with
// filesystem discovery enabled — on first access. The instance lives for
// the remainder of the process.
//
// Default itself is safe to call from multiple goroutines, but the
// returned Manager is not internally synchronized; see the manager package
// for the required caller-side discipline.
func Default() *manager.Manager {
	if m := def.Load(); m != nil {
		return m
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if m := def.Load(); m != nil {
		return m
	}
	m := manager.New(config.NewConfig(config.WithDiscovery(true)))
	def.Store(m)
	return m
}

// SetDefault replaces the process-wide default manager. A nil manager is
// ignored. This is the injection point for tests and for hosts that build
// their manager explicitly.
func SetDefault(m *manager.Manager) {
	if m == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	def.Store(m)
}

// Load loads the module library at path into the default manager.
// This is a convenience wrapper around the default manager.
func Load(path string) error {
	return Default().Load(path)
}

// LoadModule registers an in-process module with the default manager.
// This is a convenience wrapper around the default manager.
func LoadModule(mod apis.Module) error {
	return Default().LoadModule(mod)
}

// ModuleNames lists all registered module names in registration order.
// This is a convenience wrapper around the default manager.
func ModuleNames() []string {
	return Default().ModuleNames()
}

// ModuleLoaded reports whether a module with exactly this name is
// registered with the default manager.
func ModuleLoaded(name string) bool {
	return Default().ModuleLoaded(name)
}

// Interfaces lists the sorted, deduplicated union of all announced
// interfaces. This is a convenience wrapper around the default manager.
func Interfaces() []string {
	return Default().Interfaces()
}

// Models lists all announced models of iface in registration order.
// This is a convenience wrapper around the default manager.
func Models(iface string) []string {
	return Default().Models(iface)
}

// Has reports whether some registered module supplies the model. Pass
// module "" to search all modules.
// This is a convenience wrapper around the default manager.
func Has(iface, model, module string) bool {
	return Default().Has(iface, model, module)
}

// Get returns a type-erased handle to the requested model.
// This is a convenience wrapper around the default manager.
func Get(iface, model, module string) (handle.Handle, error) {
	return Default().Get(iface, model, module)
}

// GetAll gathers handles for every model of iface.
// This is a convenience wrapper around the default manager.
func GetAll(iface, module string) []handle.Handle {
	return Default().GetAll(iface, module)
}

// Resolve retrieves the requested model from the default manager and
// recovers it as I.
func Resolve[I any](iface, model, module string) (I, error) {
	return resolver.Resolve[I](Default(), iface, model, module)
}

// Find returns the first model of iface registered with the default
// manager for which pred holds.
func Find[I any](iface string, pred func(I) bool, module string) (I, error) {
	return resolver.Find[I](Default(), iface, pred, module)
}
