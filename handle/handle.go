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

// Package handle implements the type-erased model container exchanged
// between modules and the manager.
//
// A Handle wraps a value that satisfies some capability interface, together
// with the interface tag it was wrapped for. The static type is erased so
// that handles are storable in homogeneous collections and transportable
// across the module boundary without the manager knowing any concrete type.
// Recovery is checked: Unwrap fails with ErrMismatch when the caller's
// expected type does not match, it never yields a corrupted value.
package handle

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch is returned when a handle is unwrapped as a type its
	// wrapped value does not satisfy.
	ErrMismatch = errors.New("modx(handle): wrapped value does not satisfy the requested type")
	// ErrEmpty is returned when an empty handle is unwrapped.
	ErrEmpty = errors.New("modx(handle): empty handle")
)

// Handle is a type-erased, shared reference to a model instance.
//
// The zero Handle is "empty" and only ever signals "not found" inside the
// core; a successful Get never returns one.
type Handle struct {
	// iface is the interface tag the value was wrapped for.
	iface string
	// value holds the erased model reference.
	value any
}

// Wrap erases the static type of v, recording the interface tag it was
// wrapped for. I is the capability interface the model satisfies; callers
// recover it with Unwrap[I].
func Wrap[I any](iface string, v I) Handle {
	return Handle{iface: iface, value: v}
}

// Interface returns the interface tag carried by the handle.
// It is empty for the zero Handle.
func (h Handle) Interface() string {
	return h.iface
}

// IsZero reports whether the handle is empty.
func (h Handle) IsZero() bool {
	return h.iface == "" && h.value == nil
}

// Unwrap recovers the wrapped value as I.
//
// Recovery is checked: if the wrapped value does not satisfy I, Unwrap
// returns ErrMismatch (annotated with the handle's interface tag) instead
// of a partially valid value. Unwrapping an empty handle yields ErrEmpty.
func Unwrap[I any](h Handle) (I, error) {
	var zero I
	if h.IsZero() {
		return zero, ErrEmpty
	}
	v, ok := h.value.(I)
	if !ok {
		return zero, fmt.Errorf("%w (handle wraps a model of interface %q)", ErrMismatch, h.iface)
	}
	return v, nil
}

// MustUnwrap recovers the wrapped value as I and panics on mismatch.
// It is intended for callers that already consulted Has for the same
// interface and model identifiers.
func MustUnwrap[I any](h Handle) I {
	v, err := Unwrap[I](h)
	if err != nil {
		panic(err)
	}
	return v
}
