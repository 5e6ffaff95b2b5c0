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
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"dirpx.dev/modx/config"
	"dirpx.dev/modx/manager"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// app carries the persistent flags and the manager built from them.
type app struct {
	verbose    bool
	noDiscover bool
	paths      []string

	mgr *manager.Manager
}

// setup configures logging and builds the manager every subcommand
// queries. Discovery failures are per-candidate and silent by design;
// --verbose surfaces them on stderr.
func (a *app) setup() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	a.mgr = manager.New(config.NewConfig(
		config.WithDiscovery(!a.noDiscover),
		config.WithSearchPaths(a.paths...),
	))
}

// printList renders a styled header followed by one item per line.
func printList(cmd *cobra.Command, header string, items []string) {
	out := cmd.OutOrStdout()
	line := func(s string) { _, _ = out.Write([]byte(s + "\n")) }
	line(headerStyle.Render(header))
	if len(items) == 0 {
		line(dimStyle.Render("  (none)"))
		return
	}
	for _, item := range items {
		line("  " + item)
	}
}
