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

var cypressConfigNames = []string{"cypress.config.js", "cypress.config.ts", "cypress.config.mjs", "cypress.config.cjs"}

var cypressDefaultPatterns = []string{
	"cypress/e2e/**/*.cy.js", "cypress/e2e/**/*.cy.jsx", "cypress/e2e/**/*.cy.ts", "cypress/e2e/**/*.cy.tsx",
	"cypress/e2e/**/*.spec.js", "cypress/e2e/**/*.spec.jsx", "cypress/e2e/**/*.spec.ts", "cypress/e2e/**/*.spec.tsx",
	"cypress/support/**/*.js", "cypress/support/**/*.ts",
	"cypress/component/**/*.cy.js", "cypress/component/**/*.cy.jsx", "cypress/component/**/*.cy.ts", "cypress/component/**/*.cy.tsx",
	"cypress/component/**/*.spec.js", "cypress/component/**/*.spec.jsx", "cypress/component/**/*.spec.ts", "cypress/component/**/*.spec.tsx",
}

// Cypress discovers Cypress e2e/support/component test files and config as
// entry points.
type Cypress struct{}

// NewCypress builds the cypress plugin.
func NewCypress() *Cypress { return &Cypress{} }

func (p *Cypress) Name() string { return "cypress" }

func (p *Cypress) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["cypress"]
}

func (p *Cypress) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries
	if configPath, found := hasAnyConfig(filesystem, cwd, cypressConfigNames); found {
		entries.Paths = append(entries.Paths, configPath)
	}
	entries.Patterns = append(entries.Patterns, cypressDefaultPatterns...)
	return entries, nil
}
