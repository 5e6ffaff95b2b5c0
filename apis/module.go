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

package apis

import (
	"dirpx.dev/modx/handle"
)

// Module is the capability-advertisement contract a loadable library must
// satisfy. It is deliberately double-blind: neither side of the contract
// needs compile-time knowledge of the capability interfaces or of the
// concrete model types — everything is keyed by interface and model tags,
// compared case-insensitively.
//
// Most authors do not implement Module by hand; the registrar package
// generates one from a declarative interface→models table.
type Module interface {
	// Name returns the module's self-reported, process-unique name.
	Name() string

	// Has reports whether the module supplies the given model of the given
	// interface. It is side-effect free, never panics, and is safe to call
	// with arbitrary unknown identifiers.
	Has(iface, model string) bool

	// Get constructs a model of an interface and returns it as a
	// type-erased handle wrapped for that interface. For identifiers Has
	// rejects it returns ErrNotImplemented; it never returns an empty
	// handle together with a nil error.
	Get(iface, model string) (handle.Handle, error)

	// Interfaces returns the tags of all interfaces for which the module
	// supplies at least one model, in declaration order.
	Interfaces() []string

	// Models returns the tags of all models the module supplies for the
	// given interface, in declaration order. Unknown interfaces yield an
	// empty list, never an error.
	Models(iface string) []string
}

// Factory is the signature of the entry point a loadable module library
// exports under library.FactorySymbol: a nullary function returning all
// Module instances the library provides, constructed fresh on each call.
type Factory func() []Module
