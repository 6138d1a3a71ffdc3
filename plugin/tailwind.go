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
	"strings"

	"github.com/oss-muri/muri/extractor"
	"github.com/oss-muri/muri/fs"
)

var tailwindResolveExtensions = []string{".js", ".ts", ".mjs", ".cjs"}
var tailwindIndexFiles = []string{"index.js", "index.ts", "index.mjs", "index.cjs"}

// Tailwind returns tailwind.config.* (at the root or under config/) as entry
// points, plus whatever local require()/import paths it references — reusing
// the extractor's tree-sitter import scan instead of a bespoke AST walk,
// since a tailwind config is just a JS/TS module.
type Tailwind struct{}

// NewTailwind builds the tailwind plugin.
func NewTailwind() *Tailwind { return &Tailwind{} }

func (p *Tailwind) Name() string { return "tailwind" }

func (p *Tailwind) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["tailwindcss"]
}

func (p *Tailwind) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var paths []string

	for _, dir := range []string{cwd, filepath.Join(cwd, "config")} {
		for _, ext := range []string{"js", "ts", "mjs", "cjs"} {
			configPath := filepath.Join(dir, "tailwind.config."+ext)
			stat, err := filesystem.Stat(configPath)
			if err != nil || stat.IsDir() {
				continue
			}
			paths = append(paths, configPath)

			content, err := filesystem.ReadFile(configPath)
			if err != nil {
				continue
			}
			imports, err := extractor.ExtractImports(content)
			if err != nil {
				continue
			}
			for _, imp := range imports {
				if !isLocalSpecifier(imp.Specifier) {
					continue
				}
				if resolved, ok := resolveTailwindLocalPath(filesystem, dir, imp.Specifier); ok {
					paths = append(paths, resolved)
				}
			}
		}
	}

	return Entries{Paths: paths}, nil
}

func isLocalSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

func resolveTailwindLocalPath(filesystem fs.FileSystem, fromDir, specifier string) (string, bool) {
	target := filepath.Join(fromDir, specifier)

	if stat, err := filesystem.Stat(target); err == nil && !stat.IsDir() {
		return target, true
	}
	for _, ext := range tailwindResolveExtensions {
		if stat, err := filesystem.Stat(target + ext); err == nil && !stat.IsDir() {
			return target + ext, true
		}
	}
	if stat, err := filesystem.Stat(target); err == nil && stat.IsDir() {
		for _, indexName := range tailwindIndexFiles {
			indexPath := filepath.Join(target, indexName)
			if stat, err := filesystem.Stat(indexPath); err == nil && !stat.IsDir() {
				return indexPath, true
			}
		}
	}
	return "", false
}
