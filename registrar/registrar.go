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

// Package registrar generates the Module contract from a declarative
// interface→models table.
//
// A module author declares, once, which model types satisfy which
// capability interfaces; the registrar derives the four query operations
// (Has, Get, Interfaces, Models) from that declaration by case-insensitive
// tag matching, so no per-type branching is ever written by hand:
//
//	mod := registrar.MustNew("SampleModule",
//		registrar.Provide[DummyInterface]("dummy_interface",
//			registrar.Model[DummyInterface]{Tag: "dummy_a", New: NewDummyA},
//			registrar.Model[DummyInterface]{Tag: "dummy_b", New: NewDummyB},
//		),
//	)
//
// The declaration is validated once, when it is built: an empty model list
// or a duplicate tag rejects the whole declaration, loudly, before the
// module can ever be registered. MustNew in a package init makes a
// malformed declaration fail the module at initialization time, the
// closest runtime analog of a build-time structural assertion.
package registrar

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/handle"
	"dirpx.dev/modx/tags"
)

var (
	// ErrEmptyName is returned when a declaration has no module name.
	ErrEmptyName = errors.New("modx(registrar): empty module name")
	// ErrEmptyTag is returned when an interface or model is declared
	// without a tag and none can be derived.
	ErrEmptyTag = errors.New("modx(registrar): empty tag")
	// ErrNilFactory is returned when a model is declared without a
	// constructor.
	ErrNilFactory = errors.New("modx(registrar): nil model factory")
	// ErrNoModels is returned when an interface is declared with an empty
	// model list.
	ErrNoModels = errors.New("modx(registrar): interface declared without models")
	// ErrDuplicateInterface is returned when one declaration lists the
	// same interface tag twice.
	ErrDuplicateInterface = errors.New("modx(registrar): duplicate interface tag")
	// ErrDuplicateModel is returned when one interface's model list
	// contains the same model tag twice.
	ErrDuplicateModel = errors.New("modx(registrar): duplicate model tag")
)

// Model declares one concrete implementation of the capability interface I.
//
// Tag identifies the model within its interface. It may be left empty when
// the value New constructs implements tags.Model; the tag is then derived
// from the constructed value.
type Model[I any] struct {
	// Tag is the model tag, unique per interface under case-insensitive
	// comparison.
	Tag string
	// New constructs a fresh instance of the model.
	New func() I
}

// Interface is one entry of a module declaration: an interface tag together
// with the ordered list of models implementing it. Build it with Provide.
type Interface struct {
	tag    string
	models []modelEntry
}

// modelEntry is a Model with its type parameter erased: the factory already
// upcasts to the declared interface and wraps the result.
type modelEntry struct {
	tag  string
	make func() handle.Handle
}

// Provide declares the models implementing the interface tagged tag.
//
// The model order is preserved and is the order Models reports. Each
// model's constructor is captured so that Get builds a fresh instance per
// call, upcast to I and wrapped as a handle for tag.
func Provide[I any](tag string, models ...Model[I]) Interface {
	decl := Interface{tag: tag}
	for _, m := range models {
		mk := m.New
		if mk == nil {
			decl.models = append(decl.models, modelEntry{tag: m.Tag})
			continue
		}
		mtag := m.Tag
		if mtag == "" {
			mtag, _ = tags.ModelTagOf(mk())
		}
		decl.models = append(decl.models, modelEntry{
			tag:  mtag,
			make: func() handle.Handle { return handle.Wrap[I](tag, mk()) },
		})
	}
	return decl
}

// New builds an apis.Module named name from the declared interfaces.
//
// The whole declaration is validated structurally before anything is
// returned: a module name must be present, every interface needs a tag and
// a non-empty model list, every model needs a tag and a constructor, and no
// tag may repeat within its scope (case-insensitively, matching lookup
// semantics). Modules may declare zero interfaces.
func New(name string, ifaces ...Interface) (apis.Module, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	for i, decl := range ifaces {
		if decl.tag == "" {
			return nil, fmt.Errorf("%w: interface #%d of module %q", ErrEmptyTag, i, name)
		}
		if len(decl.models) == 0 {
			return nil, fmt.Errorf("%w: interface %q of module %q", ErrNoModels, decl.tag, name)
		}
		for _, prev := range ifaces[:i] {
			if strings.EqualFold(prev.tag, decl.tag) {
				return nil, fmt.Errorf("%w: %q in module %q", ErrDuplicateInterface, decl.tag, name)
			}
		}
		for j, m := range decl.models {
			if m.make == nil {
				return nil, fmt.Errorf("%w: model %q of interface %q", ErrNilFactory, m.tag, decl.tag)
			}
			if m.tag == "" {
				return nil, fmt.Errorf("%w: model #%d of interface %q", ErrEmptyTag, j, decl.tag)
			}
			for _, prev := range decl.models[:j] {
				if strings.EqualFold(prev.tag, m.tag) {
					return nil, fmt.Errorf("%w: %q in interface %q", ErrDuplicateModel, m.tag, decl.tag)
				}
			}
		}
	}
	return &declared{name: name, ifaces: ifaces}, nil
}

// MustNew is New, panicking on a malformed declaration. Intended for use in
// package init functions so that a structural violation prevents the module
// from initializing at all.
func MustNew(name string, ifaces ...Interface) apis.Module {
	mod, err := New(name, ifaces...)
	if err != nil {
		panic(err)
	}
	return mod
}
