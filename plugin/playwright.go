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

var playwrightConfigNames = []string{"playwright.config.js", "playwright.config.ts", "playwright.config.mjs", "playwright.config.cjs"}

var playwrightDefaultPatterns = []string{
	"tests/**/*.spec.js", "tests/**/*.spec.ts", "tests/**/*.test.js", "tests/**/*.test.ts",
	"e2e/**/*.spec.js", "e2e/**/*.spec.ts", "e2e/**/*.test.js", "e2e/**/*.test.ts",
}

// Playwright discovers Playwright test files and config as entry points.
type Playwright struct{}

// NewPlaywright builds the playwright plugin.
func NewPlaywright() *Playwright { return &Playwright{} }

func (p *Playwright) Name() string { return "playwright" }

func (p *Playwright) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["@playwright/test"]
}

func (p *Playwright) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries
	if configPath, found := hasAnyConfig(filesystem, cwd, playwrightConfigNames); found {
		entries.Paths = append(entries.Paths, configPath)
	}
	entries.Patterns = append(entries.Patterns, playwrightDefaultPatterns...)
	return entries, nil
}
