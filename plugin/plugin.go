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

// Package plugin auto-detects convention-aware JS/TS tooling (test runners,
// bundler/framework configs, git hooks) and contributes additional entry
// points for the graph engine to seed from.
package plugin

import (
	"path/filepath"

	"github.com/oss-muri/muri/fs"
)

// Entries is what a plugin contributes: glob patterns to fold into the
// collector's entry globset, and/or already-resolved absolute paths that
// bypass the collector walk entirely (for files outside the normal project
// glob, like a config file or a script that a Husky hook runs).
type Entries struct {
	Patterns []string
	Paths    []string
}

// IsEmpty reports whether the plugin contributed nothing.
func (e Entries) IsEmpty() bool {
	return len(e.Patterns) == 0 && len(e.Paths) == 0
}

// Plugin auto-detects one convention-aware tool and contributes entry
// points derived from its configuration files.
type Plugin interface {
	// Name identifies the plugin (e.g., "vitest").
	Name() string

	// ShouldEnable reports whether this plugin applies to the project,
	// given the package.json dependency union and filesystem access to
	// check for the tool's config files.
	ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool

	// DetectEntries discovers entry points once ShouldEnable has returned
	// true.
	DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error)
}

// hasAnyConfig reports whether any of cwd/name for name in names exists as a
// regular file, the common "find a config with one of these extensions"
// check every plugin below performs.
func hasAnyConfig(filesystem fs.FileSystem, cwd string, names []string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			return path, true
		}
	}
	return "", false
}

// dirExists reports whether path exists and is a directory.
func dirExists(filesystem fs.FileSystem, path string) bool {
	stat, err := filesystem.Stat(path)
	return err == nil && stat.IsDir()
}

// hasAnyConfigAll returns every name in names that exists under cwd as a
// regular file, for plugins with no single canonical config name.
func hasAnyConfigAll(filesystem fs.FileSystem, cwd string, names []string) ([]string, bool) {
	var found []string
	for _, name := range names {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			found = append(found, path)
		}
	}
	return found, len(found) > 0
}
