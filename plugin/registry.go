/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package plugin

import (
	"fmt"
	"io"

	"github.com/oss-muri/muri/fs"
)

// Registry holds the set of plugins muri knows about and runs them against a
// project.
type Registry struct {
	plugins []Plugin
	warn    io.Writer
}

// NewRegistry builds a registry from the given plugins, in the order they
// should run.
func NewRegistry(plugins ...Plugin) *Registry {
	return &Registry{plugins: plugins}
}

// Default returns the registry of built-in plugins muri ships with.
func Default() *Registry {
	return NewRegistry(
		NewVitest(),
		NewJest(),
		NewPlaywright(),
		NewCypress(),
		NewTypeScript(),
		NewESLint(),
		NewHusky(),
		NewVite(),
		NewNextjs(),
		NewLintStaged(),
		NewPostCSS(),
		NewTailwind(),
		NewStorybook(),
	)
}

// SetWarningWriter redirects per-plugin failure warnings, which default to
// nothing (silently dropped) unless set. The root package's prepare wires
// os.Stderr; tests wire a buffer.
func (r *Registry) SetWarningWriter(w io.Writer) {
	r.warn = w
}

// Names returns the names of every registered plugin, in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.plugins))
	for i, p := range r.plugins {
		names[i] = p.Name()
	}
	return names
}

// CollectAll runs ShouldEnable then DetectEntries for every registered
// plugin whose dependency/config check passes, merging the results.
// overrides lets a config file force a plugin on or off by name regardless
// of auto-detection, the same override shape compiler.Default accepts. A
// plugin that errors during detection is skipped with a warning rather than
// failing the whole run, matching the original tool's non-fatal stance on
// plugin failures: a broken eslint config shouldn't block detecting unused
// files.
func (r *Registry) CollectAll(filesystem fs.FileSystem, cwd string, deps map[string]bool, overrides map[string]bool) (patterns []string, paths []string) {
	for _, p := range r.plugins {
		enabled := p.ShouldEnable(filesystem, cwd, deps)
		if override, ok := overrides[p.Name()]; ok {
			enabled = override
		}
		if !enabled {
			continue
		}

		entries, err := p.DetectEntries(filesystem, cwd)
		if err != nil {
			if r.warn != nil {
				fmt.Fprintf(r.warn, "Warning: plugin %q failed: %v\n", p.Name(), err)
			}
			continue
		}

		patterns = append(patterns, entries.Patterns...)
		paths = append(paths, entries.Paths...)
	}
	return patterns, paths
}
