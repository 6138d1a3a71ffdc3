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

// Package compiler lets non-JS/TS source files contribute import records
// to the dependency graph via a small per-extension secondary parser.
package compiler

import "github.com/oss-muri/muri/extractor"

// Compiler extracts imports from a source kind the primary JS/TS extractor
// does not understand.
type Compiler interface {
	// Name identifies the compiler (e.g., "scss").
	Name() string

	// Extensions lists the file extensions this compiler claims, each
	// including the leading dot (e.g., ".scss", ".sass").
	Extensions() []string

	// ShouldEnable reports whether this compiler should be active given the
	// project's declared dependencies (union of package.json dependency
	// fields). Auto-detection only; callers may still force-enable.
	ShouldEnable(deps map[string]bool) bool

	// Extract parses content and returns the imports it contains.
	Extract(content []byte) ([]extractor.Import, error)
}

// Registry holds the set of active compilers for a single analysis run.
// It is built once by the orchestrator and is read-only for the rest of
// the run, so no synchronization is required around lookups.
type Registry struct {
	byExt map[string]Compiler
	names []string
}

// NewRegistry builds a registry containing exactly the given compilers.
func NewRegistry(compilers ...Compiler) *Registry {
	r := &Registry{byExt: make(map[string]Compiler, len(compilers))}
	for _, c := range compilers {
		r.names = append(r.names, c.Name())
		for _, ext := range c.Extensions() {
			r.byExt[ext] = c
		}
	}
	return r
}

// Default builds a registry with the built-in compilers enabled according
// to ShouldEnable, given the project's dependency set. Overrides lets a
// config file force a compiler on or off by name regardless of
// auto-detection.
func Default(deps map[string]bool, overrides map[string]bool) *Registry {
	candidates := []Compiler{NewSCSS(), NewHTML()}

	var active []Compiler
	for _, c := range candidates {
		enabled := c.ShouldEnable(deps)
		if override, ok := overrides[c.Name()]; ok {
			enabled = override
		}
		if enabled {
			active = append(active, c)
		}
	}
	return NewRegistry(active...)
}

// For returns the compiler registered for the given extension, if any.
func (r *Registry) For(ext string) (Compiler, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.byExt[ext]
	return c, ok
}

// Extensions returns every extension claimed by an active compiler.
func (r *Registry) Extensions() []string {
	if r == nil {
		return nil
	}
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// Names returns the registered compiler names, in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return r.names
}
