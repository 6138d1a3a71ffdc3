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

// jestDefaultTestPatterns mirrors Jest's defaults
// (`**/__tests__/**/*.[jt]s?(x)` and `**/?(*.)+(spec|test).[jt]s?(x)`),
// expanded for a glob engine without extglob support.
var jestDefaultTestPatterns = []string{
	"**/__tests__/**/*.js", "**/__tests__/**/*.jsx",
	"**/__tests__/**/*.ts", "**/__tests__/**/*.tsx",
	"**/*.spec.js", "**/*.spec.jsx", "**/*.spec.ts", "**/*.spec.tsx",
	"**/*.test.js", "**/*.test.jsx", "**/*.test.ts", "**/*.test.tsx",
}

var jestConfigNames = []string{"jest.config.js", "jest.config.ts", "jest.config.mjs", "jest.config.cjs", "jest.config.json"}

// Jest discovers Jest test files, setup files, and config as entry points.
// Like Vitest's, Jest's config is a JS module; this plugin regex-scans it
// for testMatch/setupFiles/setupFilesAfterEnv/transform rather than
// embedding a JS parser.
type Jest struct{}

// NewJest builds the jest plugin.
func NewJest() *Jest { return &Jest{} }

func (p *Jest) Name() string { return "jest" }

func (p *Jest) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["jest"]
}

func (p *Jest) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries

	var configPaths []string
	for _, name := range jestConfigNames {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			configPaths = append(configPaths, path)
		}
	}

	testMatch := jestDefaultTestPatterns
	var setupFiles, setupFilesAfterEnv, transform []string

	for _, configPath := range configPaths {
		entries.Paths = append(entries.Paths, configPath)

		content, err := filesystem.ReadFile(configPath)
		if err != nil {
			continue
		}
		text := string(content)

		if parsed := vitestExtractStringArray("testMatch", text); len(parsed) > 0 {
			testMatch = parsed
		}
		setupFiles = append(setupFiles, vitestExtractStringOrArray("setupFiles", text)...)
		setupFilesAfterEnv = append(setupFilesAfterEnv, vitestExtractStringOrArray("setupFilesAfterEnv", text)...)
		transform = append(transform, vitestExtractStringOrArray("transform", text)...)
	}

	entries.Patterns = append(entries.Patterns, testMatch...)

	for _, rel := range append(append(setupFiles, setupFilesAfterEnv...), transform...) {
		entries.Paths = append(entries.Paths, filepath.Join(cwd, rel))
	}

	return entries, nil
}
