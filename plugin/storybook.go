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

	"github.com/oss-muri/muri/fs"
)

var storybookDefaultPatterns = []string{
	"**/*.stories.ts", "**/*.stories.tsx", "**/*.stories.js", "**/*.stories.jsx",
	"**/*.story.ts", "**/*.story.tsx", "**/*.story.js", "**/*.story.jsx",
}

var storybookConfigExtensions = []string{"js", "ts", "mjs", "cjs", "mts", "cts"}

// Storybook discovers story files via .storybook/main.*'s `stories` globs,
// falling back to Storybook's own default story patterns when the config
// can't be found or doesn't set one.
type Storybook struct{}

// NewStorybook builds the storybook plugin.
func NewStorybook() *Storybook { return &Storybook{} }

func (p *Storybook) Name() string { return "storybook" }

func (p *Storybook) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	for name := range deps {
		if name == "storybook" || strings.HasPrefix(name, "@storybook/") {
			return true
		}
	}
	return false
}

func (p *Storybook) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries

	var configPath string
	for _, ext := range storybookConfigExtensions {
		candidate := filepath.Join(cwd, ".storybook", "main."+ext)
		if stat, err := filesystem.Stat(candidate); err == nil && !stat.IsDir() {
			configPath = candidate
			break
		}
	}

	patterns := storybookDefaultPatterns
	if configPath != "" {
		entries.Paths = append(entries.Paths, configPath)
		if content, err := filesystem.ReadFile(configPath); err == nil {
			if parsed := vitestExtractStringArray("stories", string(content)); len(parsed) > 0 {
				patterns = parsed
			}
		}
	}

	entries.Patterns = append(entries.Patterns, patterns...)
	return entries, nil
}
