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

// eslintConfigNames covers both flat config (ESLint 8.21+, default since 9)
// and legacy .eslintrc* config.
var eslintConfigNames = []string{
	"eslint.config.js", "eslint.config.mjs", "eslint.config.cjs", "eslint.config.ts",
	".eslintrc", ".eslintrc.js", ".eslintrc.cjs", ".eslintrc.mjs",
	".eslintrc.json", ".eslintrc.yaml", ".eslintrc.yml",
}

// ESLint returns ESLint config files as entry points; custom rules, plugins,
// and shared configs they require are then discovered by normal import
// tracing.
type ESLint struct{}

// NewESLint builds the eslint plugin.
func NewESLint() *ESLint { return &ESLint{} }

func (p *ESLint) Name() string { return "eslint" }

func (p *ESLint) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["eslint"]
}

func (p *ESLint) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var paths []string
	for _, name := range eslintConfigNames {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			paths = append(paths, path)
		}
	}
	return Entries{Paths: paths}, nil
}
