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

package registrar

import (
	"strings"

	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/handle"
)

// declared is the Module implementation generated from a validated
// declaration. All dispatch is case-insensitive over the declared tags.
type declared struct {
	name   string
	ifaces []Interface
}

// Ensure declared implements apis.Module.
var _ apis.Module = (*declared)(nil)

// Name returns the declared module name.
func (d *declared) Name() string {
	return d.name
}

// Has reports whether some declared interface matches iface and lists a
// model matching model.
func (d *declared) Has(iface, model string) bool {
	decl, ok := d.find(iface)
	if !ok {
		return false
	}
	for _, m := range decl.models {
		if strings.EqualFold(m.tag, model) {
			return true
		}
	}
	return false
}

// Get constructs a fresh instance of the matched model, upcast to the
// matched interface and wrapped for it. Identifiers Has rejects yield
// apis.ErrNotImplemented.
func (d *declared) Get(iface, model string) (handle.Handle, error) {
	decl, ok := d.find(iface)
	if !ok {
		return handle.Handle{}, apis.ErrNotImplemented
	}
	for _, m := range decl.models {
		if strings.EqualFold(m.tag, model) {
			return m.make(), nil
		}
	}
	return handle.Handle{}, apis.ErrNotImplemented
}

// Interfaces returns all declared interface tags in declaration order.
func (d *declared) Interfaces() []string {
	out := make([]string, 0, len(d.ifaces))
	for _, decl := range d.ifaces {
		out = append(out, decl.tag)
	}
	return out
}

// Models returns the model tags declared for iface in declaration order,
// or an empty list if the interface is not declared at all.
func (d *declared) Models(iface string) []string {
	decl, ok := d.find(iface)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(decl.models))
	for _, m := range decl.models {
		out = append(out, m.tag)
	}
	return out
}

// find locates the declaration entry whose tag matches iface.
func (d *declared) find(iface string) (Interface, bool) {
	for _, decl := range d.ifaces {
		if strings.EqualFold(decl.tag, iface) {
			return decl, true
		}
	}
	return Interface{}, false
}
