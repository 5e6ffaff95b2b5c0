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

package apis

import "log/slog"

// Config carries the knobs that influence module discovery and query
// filtering. It is passed by value and should be treated as immutable by
// implementations. Construct it through the config package.
type Config struct {
	// Discover controls whether a manager scans the filesystem for module
	// libraries once, during construction.
	Discover bool

	// SearchPaths lists additional directories scanned during discovery,
	// after the executable-relative locations and before the directories
	// named by EnvVar.
	SearchPaths []string

	// EnvVar names the environment variable holding extra module-search
	// directories, separated by the platform's path-list separator.
	EnvVar string

	// Marker is the filename token that, combined with the platform's
	// dynamic-library suffix, identifies a module library candidate
	// (e.g. marker ".module" matches "foo.module.so").
	Marker string

	// FilterSuffix is the conventional module-name suffix appended when
	// expanding a module-name filter: a filter "XYZ" also matches a module
	// named "XYZ"+FilterSuffix, case-insensitively.
	FilterSuffix string

	// Logger receives structured discovery and load events. A nil Logger
	// falls back to slog.Default. Queries never log.
	Logger *slog.Logger
}
