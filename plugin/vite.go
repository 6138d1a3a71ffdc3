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
	"path/filepath"

	"github.com/oss-muri/muri/fs"
)

var viteConfigAllNames = []string{"vite.config.js", "vite.config.mjs", "vite.config.ts", "vite.config.cjs", "vite.config.mts", "vite.config.cts"}

// Vite returns vite.config.* as an entry point; normal import tracing
// discovers whatever it references (custom plugins, shared configs).
type Vite struct{}

// NewVite builds the vite plugin.
func NewVite() *Vite { return &Vite{} }

func (p *Vite) Name() string { return "vite" }

// ShouldEnable is a dependency check only, no config-file fallback — this
// matches the original muri's vite plugin exactly.
func (p *Vite) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["vite"]
}

func (p *Vite) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var paths []string
	for _, name := range viteConfigAllNames {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			paths = append(paths, path)
		}
	}
	return Entries{Paths: paths}, nil
}
