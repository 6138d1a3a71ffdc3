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
	"regexp"

	"github.com/oss-muri/muri/fs"
)

// vitestDefaultTestPatterns mirrors Vitest's own default include globs,
// expanded out of its brace form for direct use against the collector's
// glob engine.
var vitestDefaultTestPatterns = []string{
	"**/*.test.js", "**/*.test.mjs", "**/*.test.cjs",
	"**/*.test.ts", "**/*.test.mts", "**/*.test.cts",
	"**/*.test.jsx", "**/*.test.tsx",
	"**/*.spec.js", "**/*.spec.mjs", "**/*.spec.cjs",
	"**/*.spec.ts", "**/*.spec.mts", "**/*.spec.cts",
	"**/*.spec.jsx", "**/*.spec.tsx",
	"**/__tests__/**/*.js", "**/__tests__/**/*.mjs", "**/__tests__/**/*.cjs",
	"**/__tests__/**/*.ts", "**/__tests__/**/*.mts", "**/__tests__/**/*.cts",
	"**/__tests__/**/*.jsx", "**/__tests__/**/*.tsx",
}

var (
	vitestConfigNames = []string{"vitest.config.js", "vitest.config.ts", "vitest.config.mjs", "vitest.config.cjs"}
	viteConfigNames   = []string{"vite.config.js", "vite.config.ts", "vite.config.mjs", "vite.config.cjs"}

	// vitestArrayKeyRegex captures the string-literal contents of an
	// array property such as `include: ["a", "b"]`.
	vitestArrayKeyRegex = func(key string) *regexp.Regexp {
		return regexp.MustCompile(key + `\s*:\s*\[([^\]]*)\]`)
	}
	vitestStringLiteralRegex = regexp.MustCompile(`['"` + "`" + `]([^'"` + "`" + `]+)['"` + "`" + `]`)

	// vitestSetupKeyRegex captures setupFiles/globalSetup as either a single
	// string or an array.
	vitestSetupKeyRegex = func(key string) *regexp.Regexp {
		return regexp.MustCompile(key + `\s*:\s*(\[[^\]]*\]|['"` + "`" + `][^'"` + "`" + `]+['"` + "`" + `])`)
	}
)

// Vitest discovers Vitest test files, setup files, and the config itself as
// entry points. Vitest configs are full JS/TS modules (often
// `defineConfig(...)` calls); rather than embed a JS AST parser purely to
// read a handful of well-known keys, this plugin regex-scans the config
// source for `include`, `setupFiles`, and `globalSetup` — the
// same scan-don't-parse approach the scss compiler uses for `@use`/`@import`.
type Vitest struct{}

// NewVitest builds the vitest plugin.
func NewVitest() *Vitest { return &Vitest{} }

func (p *Vitest) Name() string { return "vitest" }

// ShouldEnable matches the original muri's vitest plugin exactly: it's a
// dependency check only, no config-file probe, since a project can add a
// `test` block to vite.config.* without ever depending on the `vitest`
// package name as the runner alone doesn't appear in package.json.
func (p *Vitest) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["vitest"]
}

func (p *Vitest) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries

	configPath, found := hasAnyConfig(filesystem, cwd, vitestConfigNames)
	if !found {
		configPath, found = hasAnyConfig(filesystem, cwd, viteConfigNames)
	}

	include := vitestDefaultTestPatterns
	var setupFiles, globalSetup []string

	if found {
		entries.Paths = append(entries.Paths, configPath)
		content, err := filesystem.ReadFile(configPath)
		if err == nil {
			if parsed := vitestExtractStringArray("include", string(content)); len(parsed) > 0 {
				include = parsed
			}
			setupFiles = vitestExtractStringOrArray("setupFiles", string(content))
			globalSetup = vitestExtractStringOrArray("globalSetup", string(content))
		}
	}

	entries.Patterns = append(entries.Patterns, include...)

	for _, rel := range append(setupFiles, globalSetup...) {
		entries.Paths = append(entries.Paths, filepath.Join(cwd, rel))
	}

	return entries, nil
}

func vitestExtractStringArray(key, content string) []string {
	m := vitestArrayKeyRegex(key).FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	return vitestExtractStringLiterals(m[1])
}

func vitestExtractStringOrArray(key, content string) []string {
	m := vitestSetupKeyRegex(key).FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	return vitestExtractStringLiterals(m[1])
}

func vitestExtractStringLiterals(s string) []string {
	matches := vitestStringLiteralRegex.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
