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

// Package sample is the reference module implementation for module
// authors, and the fixture the core's own tests register.
//
// It shows the full authoring surface: a capability interface with an
// interface tag, two models carrying model tags, a registrar declaration
// binding them, and a factory in the entry-point shape. A library meant
// for dynamic loading additionally exports the factory from its main
// package under the fixed symbol name:
//
//	package main
//
//	import (
//		"dirpx.dev/modx/apis"
//		"dirpx.dev/modx/sample"
//	)
//
//	func ModuleFactory() []apis.Module { return sample.Factory() }
//
// built with -buildmode=plugin into a file matching the module naming
// convention, e.g. "sample.module.so".
package sample

import (
	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/registrar"
)

// InterfaceTag identifies the dummy capability process-wide.
const InterfaceTag = "dummy_interface"

// ModuleName is the sample module's self-reported name.
const ModuleName = "SampleModule"

// DummyInterface is a minimal capability contract: models identify
// themselves by name.
type DummyInterface interface {
	Name() string
}

// DummyA is the first model of DummyInterface.
type DummyA struct{}

// Name returns the value identifying this implementation.
func (DummyA) Name() string { return "DummyA" }

// ModelTag returns the tag identifying DummyA within DummyInterface.
func (DummyA) ModelTag() string { return "dummy_a" }

// DummyB is the second model of DummyInterface.
type DummyB struct{}

// Name returns the value identifying this implementation.
func (DummyB) Name() string { return "DummyB" }

// ModelTag returns the tag identifying DummyB within DummyInterface.
func (DummyB) ModelTag() string { return "dummy_b" }

// NewModule builds the sample module. DummyA is declared with an explicit
// tag, DummyB's tag is derived from its ModelTag method; both forms are
// equivalent.
func NewModule() apis.Module {
	return registrar.MustNew(ModuleName,
		registrar.Provide[DummyInterface](InterfaceTag,
			registrar.Model[DummyInterface]{Tag: "dummy_a", New: func() DummyInterface { return DummyA{} }},
			registrar.Model[DummyInterface]{New: func() DummyInterface { return DummyB{} }},
		),
	)
}

// Factory constructs the modules this package provides, in the factory
// entry-point shape.
func Factory() []apis.Module {
	return []apis.Module{NewModule()}
}
