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

// Package modx is a runtime plugin registry: independently built,
// dynamically-loadable libraries ("modules") register implementations
// ("models") of named abstract capabilities ("interfaces"), and a host
// discovers and retrieves them at runtime by string tags, without
// compile-time knowledge of the concrete types until the moment it asks
// for one.
//
// # Vocabulary
//
//   - An interface is an abstract capability contract, identified
//     process-wide by an interface tag ("dummy_interface").
//   - A model is one concrete implementation of exactly one interface,
//     identified within it by a model tag ("dummy_a").
//   - A module is a self-named provider of zero or more models across
//     zero or more interfaces.
//   - A library unit couples one mapped dynamically-loadable library to
//     the modules its factory entry point produced.
//
// # Structure
//
// The repository is layered leaves-first:
//
//   - tags: the identifier conventions everything else dispatches on.
//   - handle: the type-erased model container with checked recovery.
//   - apis: the Module contract, the factory entry-point signature, and
//     the configuration struct.
//   - registrar: generates the Module contract from a declarative
//     interface→models table, validated fail-fast when built.
//   - library: maps a library (Go plugin) and invokes its factory once.
//   - manager: the insertion-ordered, append-only registry of library
//     units; discovery, explicit loading, duplicate-name rejection, and
//     all queries.
//   - resolver: typed recovery on top of manager queries, including
//     predicate-based retrieval.
//   - config: functional options producing the apis.Config value.
//
// # Explicit instances and the process-wide default
//
// The primary API is an explicitly constructed, explicitly passed
// manager:
//
//	m := manager.New(config.NewConfig(config.WithDiscovery(true)))
//	if m.Has("dummy_interface", "dummy_a", "") {
//		calc, err := resolver.Resolve[DummyInterface](m, "dummy_interface", "dummy_a", "")
//		...
//	}
//
// For hosts that want the classic process-wide registry, this package
// keeps a lazily-initialized default instance behind an atomic pointer:
// Default constructs it (with discovery) on first access, SetDefault
// swaps it, and the top-level functions (Load, Has, Get, Resolve, Find,
// ...) delegate to it.
//
// # Concurrency model
//
// Default and SetDefault are safe for concurrent use; the Manager they
// hand out is deliberately not internally synchronized. The manager is
// the sole mutator of its unit list, mutation happens only through the
// Load operations, and callers that share a manager across goroutines
// must serialize all access themselves. Handles returned from queries
// hold ordinary shared references, and the underlying library mappings
// are never released while the process lives, so a recovered model never
// dangles.
//
// # Lifecycle
//
// There is no unload, no replacement, and no teardown: modules register
// once, stay for the life of the process, and the process exit reclaims
// everything. Loading a module whose name is already registered is
// rejected with an error.
package modx
