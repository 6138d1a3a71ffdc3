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
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/oss-muri/muri/fs"
)

type tsconfigJSON struct {
	Files   []string        `json:"files"`
	Extends json.RawMessage `json:"extends"`
}

// TypeScript discovers tsconfig.json / tsconfig.*.json files, the files
// they explicitly list, and the local base configs they extend, as entry
// points. It does not resolve tsconfig's own paths/baseUrl here — that's
// the resolver's job once a tsconfig is loaded.
type TypeScript struct{}

// NewTypeScript builds the typescript plugin.
func NewTypeScript() *TypeScript { return &TypeScript{} }

func (p *TypeScript) Name() string { return "typescript" }

func (p *TypeScript) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["typescript"]
}

func (p *TypeScript) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	configs := findTsconfigFiles(filesystem, cwd)

	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, configPath := range configs {
		add(configPath)

		content, err := filesystem.ReadFile(configPath)
		if err != nil {
			continue
		}
		var parsed tsconfigJSON
		if err := json.Unmarshal(jsonc.ToJSON(content), &parsed); err != nil {
			continue
		}

		configDir := filepath.Dir(configPath)
		for _, rel := range parsed.Files {
			abs := filepath.Join(configDir, rel)
			if stat, err := filesystem.Stat(abs); err == nil && !stat.IsDir() && withinDir(abs, cwd) {
				add(abs)
			}
		}

		for _, extendPath := range parseTsconfigExtends(parsed.Extends) {
			if resolved, ok := resolveTsconfigExtends(filesystem, configDir, extendPath); ok && withinDir(resolved, cwd) {
				add(resolved)
			}
		}
	}

	return Entries{Paths: paths}, nil
}

func findTsconfigFiles(filesystem fs.FileSystem, cwd string) []string {
	var found []string

	direct := filepath.Join(cwd, "tsconfig.json")
	if stat, err := filesystem.Stat(direct); err == nil && !stat.IsDir() {
		found = append(found, direct)
	}

	entries, err := filesystem.ReadDir(cwd)
	if err != nil {
		return found
	}
	for _, d := range entries {
		name := d.Name()
		if d.IsDir() || name == "tsconfig.json" {
			continue
		}
		if strings.HasPrefix(name, "tsconfig.") && strings.HasSuffix(name, ".json") {
			found = append(found, filepath.Join(cwd, name))
		}
	}
	return found
}

// parseTsconfigExtends accepts either a single string or an array of
// strings for tsconfig's "extends" field (TS 5.0+ supports multiple).
func parseTsconfigExtends(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}

// resolveTsconfigExtends resolves a local relative "extends" path, skipping
// npm-package extends targets (anything not starting with ./ or ../).
func resolveTsconfigExtends(filesystem fs.FileSystem, configDir, extendPath string) (string, bool) {
	if !strings.HasPrefix(extendPath, "./") && !strings.HasPrefix(extendPath, "../") {
		return "", false
	}

	target := filepath.Join(configDir, extendPath)
	if stat, err := filesystem.Stat(target); err == nil && !stat.IsDir() {
		return target, true
	}

	if !strings.HasSuffix(extendPath, ".json") {
		withExt := target + ".json"
		if stat, err := filesystem.Stat(withExt); err == nil && !stat.IsDir() {
			return withExt, true
		}
	}

	return "", false
}
