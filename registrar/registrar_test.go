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

package registrar_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/modx/apis"
	"dirpx.dev/modx/handle"
	"dirpx.dev/modx/registrar"
	"dirpx.dev/modx/sample"
)

type shape interface {
	Sides() int
}

type square struct{}

func (square) Sides() int { return 4 }

type triangle struct{}

func (triangle) Sides() int       { return 3 }
func (triangle) ModelTag() string { return "triangle" }

func shapesDecl() registrar.Interface {
	return registrar.Provide[shape]("shape",
		registrar.Model[shape]{Tag: "square", New: func() shape { return square{} }},
		registrar.Model[shape]{New: func() shape { return triangle{} }},
	)
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name    string
		modName string
		ifaces  []registrar.Interface
		wantErr error
	}{
		{
			name:    "empty module name",
			modName: "",
			ifaces:  []registrar.Interface{shapesDecl()},
			wantErr: registrar.ErrEmptyName,
		},
		{
			name:    "empty interface tag",
			modName: "Shapes",
			ifaces: []registrar.Interface{
				registrar.Provide[shape]("",
					registrar.Model[shape]{Tag: "square", New: func() shape { return square{} }},
				),
			},
			wantErr: registrar.ErrEmptyTag,
		},
		{
			name:    "interface without models",
			modName: "Shapes",
			ifaces:  []registrar.Interface{registrar.Provide[shape]("shape")},
			wantErr: registrar.ErrNoModels,
		},
		{
			name:    "nil model factory",
			modName: "Shapes",
			ifaces: []registrar.Interface{
				registrar.Provide[shape]("shape",
					registrar.Model[shape]{Tag: "square"},
				),
			},
			wantErr: registrar.ErrNilFactory,
		},
		{
			name:    "underivable model tag",
			modName: "Shapes",
			ifaces: []registrar.Interface{
				registrar.Provide[shape]("shape",
					registrar.Model[shape]{New: func() shape { return square{} }},
				),
			},
			wantErr: registrar.ErrEmptyTag,
		},
		{
			name:    "duplicate interface tag ignoring case",
			modName: "Shapes",
			ifaces:  []registrar.Interface{shapesDecl(), registrar.Provide[shape]("SHAPE", registrar.Model[shape]{Tag: "square", New: func() shape { return square{} }})},
			wantErr: registrar.ErrDuplicateInterface,
		},
		{
			name:    "duplicate model tag ignoring case",
			modName: "Shapes",
			ifaces: []registrar.Interface{
				registrar.Provide[shape]("shape",
					registrar.Model[shape]{Tag: "square", New: func() shape { return square{} }},
					registrar.Model[shape]{Tag: "Square", New: func() shape { return square{} }},
				),
			},
			wantErr: registrar.ErrDuplicateModel,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := registrar.New(tc.modName, tc.ifaces...); !errors.Is(err, tc.wantErr) {
				t.Fatalf("New: error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNew_ZeroInterfacesAllowed(t *testing.T) {
	mod, err := registrar.New("Empty")
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	if got := mod.Interfaces(); len(got) != 0 {
		t.Fatalf("Interfaces() = %v, want empty", got)
	}
	if mod.Has("anything", "at_all") {
		t.Fatal("Has on empty module = true, want false")
	}
}

func TestMustNew_PanicsOnMalformedDeclaration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew with empty name: expected panic")
		}
	}()
	_ = registrar.MustNew("")
}

func TestDeclared_Queries(t *testing.T) {
	mod := registrar.MustNew("Shapes", shapesDecl())

	if got := mod.Name(); got != "Shapes" {
		t.Fatalf("Name() = %q, want Shapes", got)
	}
	if got := mod.Interfaces(); !reflect.DeepEqual(got, []string{"shape"}) {
		t.Fatalf("Interfaces() = %v, want [shape]", got)
	}
	if got := mod.Models("shape"); !reflect.DeepEqual(got, []string{"square", "triangle"}) {
		t.Fatalf("Models(shape) = %v, want declaration order [square triangle]", got)
	}
	if got := mod.Models("circle"); len(got) != 0 {
		t.Fatalf("Models(circle) = %v, want empty", got)
	}

	h, err := mod.Get("shape", "triangle")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	s, err := handle.Unwrap[shape](h)
	if err != nil {
		t.Fatalf("Unwrap: unexpected error: %v", err)
	}
	if s.Sides() != 3 {
		t.Fatalf("Sides() = %d, want 3", s.Sides())
	}
}

func TestDeclared_CaseInsensitiveDispatch(t *testing.T) {
	mod := registrar.MustNew("Shapes", shapesDecl())

	if !mod.Has("SHAPE", "Square") {
		t.Fatal("Has(SHAPE, Square) = false, want case-insensitive match")
	}
	if _, err := mod.Get("Shape", "TRIANGLE"); err != nil {
		t.Fatalf("Get(Shape, TRIANGLE): unexpected error: %v", err)
	}
	// Reported tags keep the declared spelling regardless of query case.
	if got := mod.Models("SHAPE"); !reflect.DeepEqual(got, []string{"square", "triangle"}) {
		t.Fatalf("Models(SHAPE) = %v, want [square triangle]", got)
	}
}

func TestDeclared_GetMiss_ReturnsNotImplemented(t *testing.T) {
	mod := registrar.MustNew("Shapes", shapesDecl())

	if _, err := mod.Get("shape", "circle"); !errors.Is(err, apis.ErrNotImplemented) {
		t.Fatalf("Get(shape, circle): error = %v, want apis.ErrNotImplemented", err)
	}
	if _, err := mod.Get("color", "square"); !errors.Is(err, apis.ErrNotImplemented) {
		t.Fatalf("Get(color, square): error = %v, want apis.ErrNotImplemented", err)
	}
}

func TestDeclared_GetBuildsFreshInstances(t *testing.T) {
	type boxed interface{ Sides() int }

	count := 0
	mod := registrar.MustNew("Counting",
		registrar.Provide[boxed]("boxed",
			registrar.Model[boxed]{Tag: "square", New: func() boxed { count++; return square{} }},
		),
	)
	// Provide calls the factory once only when deriving an omitted tag;
	// an explicit tag defers all construction to Get.
	if count != 0 {
		t.Fatalf("factory ran %d times before Get, want 0", count)
	}
	if _, err := mod.Get("boxed", "square"); err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if _, err := mod.Get("boxed", "square"); err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("factory ran %d times after two Gets, want 2", count)
	}
}

func TestSampleModuleDeclaration(t *testing.T) {
	mod := sample.NewModule()

	if got := mod.Name(); got != sample.ModuleName {
		t.Fatalf("Name() = %q, want %q", got, sample.ModuleName)
	}
	if got := mod.Models(sample.InterfaceTag); !reflect.DeepEqual(got, []string{"dummy_a", "dummy_b"}) {
		t.Fatalf("Models(%s) = %v, want [dummy_a dummy_b]", sample.InterfaceTag, got)
	}

	h, err := mod.Get(sample.InterfaceTag, "dummy_b")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	d, err := handle.Unwrap[sample.DummyInterface](h)
	if err != nil {
		t.Fatalf("Unwrap: unexpected error: %v", err)
	}
	if got := d.Name(); got != "DummyB" {
		t.Fatalf("Name() = %q, want DummyB", got)
	}
}
