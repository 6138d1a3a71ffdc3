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

import "github.com/oss-muri/muri/fs"

var lintStagedConfigNames = []string{
	"lint-staged.config.js", "lint-staged.config.mjs", "lint-staged.config.cjs",
	".lintstagedrc", ".lintstagedrc.js", ".lintstagedrc.cjs", ".lintstagedrc.mjs",
	".lintstagedrc.json", ".lintstagedrc.yaml", ".lintstagedrc.yml",
}

// LintStaged returns lint-staged config files as entry points.
type LintStaged struct{}

// NewLintStaged builds the lint-staged plugin.
func NewLintStaged() *LintStaged { return &LintStaged{} }

func (p *LintStaged) Name() string { return "lint-staged" }

func (p *LintStaged) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["lint-staged"]
}

func (p *LintStaged) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	paths, _ := hasAnyConfigAll(filesystem, cwd, lintStagedConfigNames)
	return Entries{Paths: paths}, nil
}
