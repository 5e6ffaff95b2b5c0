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

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestModulesCmd_EmptyRegistry(t *testing.T) {
	out, err := execute(t, "modules", "--no-discover")
	require.NoError(t, err)
	assert.Contains(t, out, "Modules")
	assert.Contains(t, out, "(none)")
}

func TestInterfacesCmd_EmptyRegistry(t *testing.T) {
	out, err := execute(t, "interfaces", "--no-discover")
	require.NoError(t, err)
	assert.Contains(t, out, "Interfaces")
	assert.Contains(t, out, "(none)")
}

func TestModelsCmd_RequiresInterfaceArg(t *testing.T) {
	_, err := execute(t, "models", "--no-discover")
	assert.Error(t, err)

	out, err := execute(t, "models", "dummy_interface", "--no-discover")
	require.NoError(t, err)
	assert.Contains(t, out, "Models of dummy_interface")
}

func TestCheckCmd_UnavailableModel(t *testing.T) {
	_, err := execute(t, "check", "dummy_interface", "dummy_a", "--no-discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dummy_a")
	assert.Contains(t, err.Error(), "dummy_interface")
}

func TestLoadCmd_MissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.module.so")
	_, err := execute(t, "load", path, "--no-discover")
	assert.Error(t, err)
}
