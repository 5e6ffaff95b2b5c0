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

// Package resolver combines manager queries with checked handle recovery.
//
// The manager deals exclusively in type-erased handles; the functions here
// are the typed edge where a host recovers the concrete capability
// interface it expected. Recovery is checked, so requesting the wrong
// interface type fails with handle.ErrMismatch instead of misbehaving.
package resolver

import (
	"dirpx.dev/modx/handle"
	"dirpx.dev/modx/manager"
)

// Resolve retrieves the given model of the given interface from m and
// recovers it as I. The module filter follows manager.Get semantics; pass
// "" to search all modules.
func Resolve[I any](m *manager.Manager, iface, model, module string) (I, error) {
	var zero I
	h, err := m.Get(iface, model, module)
	if err != nil {
		return zero, err
	}
	v, err := handle.Unwrap[I](h)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// All retrieves every model of iface and recovers each as I, preserving
// the manager.GetAll order. A single mismatching handle fails the whole
// call.
func All[I any](m *manager.Manager, iface, module string) ([]I, error) {
	handles := m.GetAll(iface, module)
	out := make([]I, 0, len(handles))
	for _, h := range handles {
		v, err := handle.Unwrap[I](h)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Find returns the first model of iface, in manager.GetAll order, for
// which pred holds.
//
// It gathers all models first and only then tests the predicate — the
// predicate needs the recovered interface type, which only exists on this
// side of the type-erasure boundary. Find fails with manager.ErrNoModels
// when the interface has no registered models at all, and with
// manager.ErrNoMatch when none satisfies pred.
func Find[I any](m *manager.Manager, iface string, pred func(I) bool, module string) (I, error) {
	var zero I
	handles := m.GetAll(iface, module)
	if len(handles) == 0 {
		return zero, manager.ErrNoModels
	}
	for _, h := range handles {
		v, err := handle.Unwrap[I](h)
		if err != nil {
			return zero, err
		}
		if pred(v) {
			return v, nil
		}
	}
	return zero, manager.ErrNoMatch
}
