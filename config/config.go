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

package config

import (
	"log/slog"

	"dirpx.dev/modx/apis"
)

const (
	// DefaultDiscover represents the default for Discover.
	// Explicitly constructed managers do not scan the filesystem unless asked.
	DefaultDiscover = false
	// DefaultEnvVar is the environment variable consulted for additional
	// module-search directories.
	DefaultEnvVar = "MODX_MODULE_PATH"
	// DefaultMarker is the filename token identifying module libraries.
	DefaultMarker = ".module"
	// DefaultFilterSuffix is the conventional suffix appended when
	// expanding module-name filters.
	DefaultFilterSuffix = "module"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Empty identifiers would disable discovery matching entirely.
	if cfg.EnvVar == "" {
		cfg.EnvVar = DefaultEnvVar
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Discover:     DefaultDiscover,
		EnvVar:       DefaultEnvVar,
		Marker:       DefaultMarker,
		FilterSuffix: DefaultFilterSuffix,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDiscovery sets the Discover option.
func WithDiscovery(discover bool) Option {
	return func(c *apis.Config) {
		c.Discover = discover
	}
}

// WithSearchPaths appends additional module-search directories.
func WithSearchPaths(paths ...string) Option {
	return func(c *apis.Config) {
		c.SearchPaths = append(c.SearchPaths, paths...)
	}
}

// WithEnvVar sets the EnvVar option.
// An empty value resets to the default.
func WithEnvVar(name string) Option {
	return func(c *apis.Config) {
		if name == "" {
			c.EnvVar = DefaultEnvVar
			return
		}
		c.EnvVar = name
	}
}

// WithMarker sets the Marker option.
// An empty value resets to the default.
func WithMarker(marker string) Option {
	return func(c *apis.Config) {
		if marker == "" {
			c.Marker = DefaultMarker
			return
		}
		c.Marker = marker
	}
}

// WithFilterSuffix sets the FilterSuffix option.
func WithFilterSuffix(suffix string) Option {
	return func(c *apis.Config) {
		c.FilterSuffix = suffix
	}
}

// WithLogger sets the Logger option.
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}
