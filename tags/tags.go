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

// Package tags records the identifier conventions the modx core depends on.
//
// # Overview
//
// Every abstract capability ("interface") is identified process-wide by an
// interface tag; every concrete implementation ("model") is identified
// within one interface by a model tag. The core dispatches exclusively on
// these two strings and never on the capability's actual method set.
//
// The contracts in this package are optional: the registrar accepts tags as
// plain string arguments, and a module author never has to implement them.
// Implementing Model on a model type lets the author omit the tag from the
// declaration and keep it next to the type instead, which is the
// recommended layout for models shared between several modules.
//
// # Naming guidelines
//
// A tag value is expected to be:
//
//   - Stable across program executions (MUST).
//   - Unique within its scope — process-wide for interface tags, per
//     interface for model tags (MUST).
//   - Compared case-insensitively by the core; two tags differing only in
//     case are the same identifier (MUST be assumed by authors).
//   - Short, lowercase, and human-readable (SHOULD; snake_case segments
//     such as "dummy_interface" are conventional).
package tags

// Interface is implemented by capability interface base values that expose
// their interface tag.
//
// # Contract
//
//   - The returned tag MUST be non-empty and deterministic for a given
//     capability, independent of instance state.
//   - Implementations MUST be safe for concurrent calls and MUST NOT
//     perform blocking operations or I/O.
type Interface interface {
	// InterfaceTag returns the process-wide tag of the capability this
	// value belongs to.
	InterfaceTag() string
}

// Model is implemented by model values that expose their model tag.
//
// # Contract
//
//   - The returned tag MUST be non-empty and deterministic for a given
//     concrete type, independent of instance state.
//   - The tag MUST be unique among the models declared for the same
//     interface under case-insensitive comparison.
//   - Implementations MUST be safe for concurrent calls and MUST NOT
//     perform blocking operations or I/O.
type Model interface {
	// ModelTag returns the tag identifying this implementation within its
	// interface.
	ModelTag() string
}

// InterfaceTagOf returns the interface tag of v if v implements Interface.
func InterfaceTagOf(v any) (string, bool) {
	if t, ok := v.(Interface); ok {
		return t.InterfaceTag(), true
	}
	return "", false
}

// ModelTagOf returns the model tag of v if v implements Model.
func ModelTagOf(v any) (string, bool) {
	if t, ok := v.(Model); ok {
		return t.ModelTag(), true
	}
	return "", false
}
