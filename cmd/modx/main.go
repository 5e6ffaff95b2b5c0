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

// Command modx inspects the module libraries visible to a host process:
// which modules discovery would register, which interfaces and models they
// announce, and whether a given capability is available.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the CLI. Every subcommand operates on a manager
// built once from the persistent flags.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "modx",
		Short: "Inspect runtime module libraries",
		Long: `modx inspects the module libraries visible to a host process.

It builds a module registry the same way an embedding host would —
filesystem discovery plus any explicitly given paths — and reports the
registered modules, their interfaces, and their models.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setup()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log discovery details to stderr")
	root.PersistentFlags().BoolVar(&a.noDiscover, "no-discover", false, "skip filesystem discovery")
	root.PersistentFlags().StringArrayVar(&a.paths, "path", nil, "additional module-search directory (repeatable)")

	root.AddCommand(a.newModulesCmd())
	root.AddCommand(a.newInterfacesCmd())
	root.AddCommand(a.newModelsCmd())
	root.AddCommand(a.newCheckCmd())
	root.AddCommand(a.newLoadCmd())

	return root
}

func (a *app) newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List registered modules in registration order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printList(cmd, "Modules", a.mgr.ModuleNames())
		},
	}
}

func (a *app) newInterfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "List all announced interfaces, sorted and deduplicated",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printList(cmd, "Interfaces", a.mgr.Interfaces())
		},
	}
}

func (a *app) newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <interface>",
		Short: "List all announced models of an interface",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printList(cmd, fmt.Sprintf("Models of %s", args[0]), a.mgr.Models(args[0]))
		},
	}
}

func (a *app) newCheckCmd() *cobra.Command {
	var module string
	cmd := &cobra.Command{
		Use:   "check <interface> <model>",
		Short: "Check whether a model of an interface is available",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.mgr.Has(args[0], args[1], module) {
				return fmt.Errorf("no registered module provides model %q of interface %q", args[1], args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("available"))
			return nil
		},
	}
	cmd.Flags().StringVar(&module, "module", "", "restrict the search to one module")
	return cmd
}

func (a *app) newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>...",
		Short: "Load module libraries explicitly and report their modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := len(a.mgr.ModuleNames())
			for _, path := range args {
				if err := a.mgr.Load(path); err != nil {
					return err
				}
			}
			printList(cmd, "Loaded modules", a.mgr.ModuleNames()[before:])
			return nil
		},
	}
}
