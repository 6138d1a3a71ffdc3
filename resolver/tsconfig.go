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
package resolver

import (
	"encoding/json"
	"path"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/oss-muri/muri/fs"
)

// Tsconfig holds the subset of tsconfig.json that affects module
// resolution: baseUrl, the paths alias table, and any project references it
// declares.
type Tsconfig struct {
	baseURL string // relative to this config's own directory, e.g. "src"
	paths   map[string][]string
	dir     string // this config's directory, relative to the project root
	refs    []*Tsconfig
}

type tsconfigFile struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
	References []struct {
		Path string `json:"path"`
	} `json:"references"`
}

// LoadTsconfig reads and parses tsconfig.json at the project root, following
// any "references" it declares (a TypeScript project-references setup, where
// a monorepo's root tsconfig only lists the sub-projects and each
// sub-project carries its own baseUrl/paths). tsconfig files are JSONC
// (comments + trailing commas allowed), matching the teacher's own
// jsonc-based config loading.
func LoadTsconfig(filesystem fs.FileSystem, rootDir, tsconfigPath string) (*Tsconfig, error) {
	return loadTsconfig(filesystem, rootDir, tsconfigPath, map[string]bool{})
}

func loadTsconfig(filesystem fs.FileSystem, rootDir, tsconfigPath string, visited map[string]bool) (*Tsconfig, error) {
	if visited[tsconfigPath] {
		return nil, nil
	}
	visited[tsconfigPath] = true

	data, err := filesystem.ReadFile(tsconfigPath)
	if err != nil {
		return nil, err
	}

	var parsed tsconfigFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &parsed); err != nil {
		return nil, err
	}

	dir := filepath.ToSlash(relDir(rootDir, filepath.Dir(tsconfigPath)))

	tc := &Tsconfig{
		baseURL: parsed.CompilerOptions.BaseURL,
		paths:   parsed.CompilerOptions.Paths,
		dir:     dir,
	}

	for _, ref := range parsed.References {
		refTsconfigPath := filepath.Join(filepath.Dir(tsconfigPath), ref.Path)
		if filepath.Ext(refTsconfigPath) != ".json" {
			refTsconfigPath = filepath.Join(refTsconfigPath, "tsconfig.json")
		}
		child, err := loadTsconfig(filesystem, rootDir, refTsconfigPath, visited)
		if err != nil || child == nil {
			// Best-effort: a reference pointing at a missing or
			// unreadable tsconfig doesn't fail resolution of the rest
			// of the project.
			continue
		}
		tc.refs = append(tc.refs, child)
	}

	return tc, nil
}

// relDir returns dir's path relative to root, or "" if they're equal.
func relDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return rel
}

// Resolve maps a bare specifier through the paths table (falling back to
// baseUrl-relative lookup, then to each declared project reference in
// turn) to a path relative to the project root. It reports false when
// nothing in this config or its references covers the specifier.
func (t *Tsconfig) Resolve(specifier string) (string, bool) {
	if t == nil {
		return "", false
	}

	for pattern, targets := range t.paths {
		if len(targets) == 0 {
			continue
		}
		if prefix, ok := matchPathPattern(pattern, specifier); ok {
			target := replacePathPattern(targets[0], prefix)
			return t.withBaseURL(target), true
		}
	}

	if t.baseURL != "" {
		return t.withBaseURL(specifier), true
	}

	for _, ref := range t.refs {
		if resolved, ok := ref.Resolve(specifier); ok {
			return resolved, true
		}
	}

	return "", false
}

// withBaseURL joins p onto this config's baseUrl, then onto this config's
// own directory — so a referenced sub-project's paths/baseUrl, which are
// relative to that sub-project, still resolve to a path relative to the
// overall project root.
func (t *Tsconfig) withBaseURL(p string) string {
	joined := p
	if t.baseURL != "" {
		joined = path.Join(t.baseURL, p)
	}
	if t.dir != "" {
		joined = path.Join(t.dir, joined)
	}
	return joined
}

// matchPathPattern matches a tsconfig paths key, which may contain a single
// "*" wildcard (e.g. "@app/*"), against specifier. It returns the text
// captured by the wildcard, or the whole specifier for an exact (no-
// wildcard) match.
func matchPathPattern(pattern, specifier string) (string, bool) {
	if !strings.Contains(pattern, "*") {
		if pattern == specifier {
			return "", true
		}
		return "", false
	}

	prefix, suffix, _ := strings.Cut(pattern, "*")
	if !strings.HasPrefix(specifier, prefix) || !strings.HasSuffix(specifier, suffix) {
		return "", false
	}
	return specifier[len(prefix) : len(specifier)-len(suffix)], true
}

// replacePathPattern substitutes the captured wildcard text into a paths
// target pattern (e.g. "src/app/*" + "widgets/button" -> "src/app/widgets/button").
func replacePathPattern(target, captured string) string {
	if !strings.Contains(target, "*") {
		return target
	}
	return strings.Replace(target, "*", captured, 1)
}
