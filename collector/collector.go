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

// Package collector performs the single filesystem walk that classifies
// every project file as entry, project, both, or neither.
package collector

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	muriFS "github.com/oss-muri/muri/fs"
)

// DefaultSourceExtensions are the JS/TS extensions recognized as "parseable"
// for project-file classification, independent of any compiler-registered
// extension (SCSS, HTML) a caller adds on top.
var DefaultSourceExtensions = []string{
	".ts", ".tsx", ".d.ts", ".js", ".jsx", ".mjs", ".cjs", ".mts", ".cts",
}

// Index is the result of a single walk: the set of entry files (seeds for
// the graph engine) and the set of project files (the universe unused_files
// is drawn from).
type Index struct {
	EntryFiles   []string
	ProjectFiles []string
}

// Collector walks rootDir once and classifies every regular file against
// the entry/project/ignore glob sets. It walks through an fs.FileSystem
// rather than the OS directly, the same abstraction every other component
// in the module uses, so a caller can run the whole analysis against an
// in-memory fixture.
type Collector struct {
	filesystem muriFS.FileSystem
	rootDir    string
	entry      *globSet
	project    *globSet
	ignore     *globSet
	gitIgnore  *ignore.GitIgnore
	extensions map[string]bool
}

// New builds a Collector. gitignorePath is read through filesystem if it
// exists; a missing .gitignore is not an error — every project file is then
// subject only to the entry/project/ignore patterns. parseableExtensions is
// merged with DefaultSourceExtensions to form the recognized set a file must
// carry, alongside a project glob match, to be classified as a project file
// — typically the active compiler registry's claimed extensions (.scss,
// .html), so a broad --project pattern like "src/**" doesn't admit images or
// other non-source files into project_files.
func New(filesystem muriFS.FileSystem, rootDir string, entryPatterns, projectPatterns, ignorePatterns []string, gitignorePath string, parseableExtensions []string) *Collector {
	extensions := make(map[string]bool, len(DefaultSourceExtensions)+len(parseableExtensions))
	for _, ext := range DefaultSourceExtensions {
		extensions[ext] = true
	}
	for _, ext := range parseableExtensions {
		extensions[ext] = true
	}

	c := &Collector{
		filesystem: filesystem,
		rootDir:    rootDir,
		entry:      compileGlobSet(entryPatterns),
		project:    compileGlobSet(projectPatterns),
		ignore:     compileGlobSet(ignorePatterns),
		extensions: extensions,
	}
	if data, err := filesystem.ReadFile(gitignorePath); err == nil {
		c.gitIgnore = ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
	}
	return c
}

// isParseable reports whether path's extension is in the recognized set.
// A ".d.ts" file's filepath.Ext is ".ts", so it's checked against the
// two-component suffix first.
func (c *Collector) isParseable(path string) bool {
	if strings.HasSuffix(path, ".d.ts") && c.extensions[".d.ts"] {
		return true
	}
	return c.extensions[filepath.Ext(path)]
}

// Collect walks rootDir, excluding node_modules and .git unconditionally,
// and classifies every remaining regular file.
func (c *Collector) Collect() (Index, error) {
	var index Index

	err := fs.WalkDir(c.filesystem, c.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.IsDir() {
			switch d.Name() {
			case "node_modules", ".git":
				return fs.SkipDir
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		relSlash := strings.TrimPrefix(strings.TrimPrefix(path, c.rootDir), "/")

		if c.gitIgnore != nil && c.gitIgnore.MatchesPath(relSlash) {
			return nil
		}
		if c.ignore.matches(relSlash) {
			return nil
		}

		if c.project.matches(relSlash) && c.isParseable(path) {
			index.ProjectFiles = append(index.ProjectFiles, path)
		}
		if c.entry.matches(relSlash) {
			index.EntryFiles = append(index.EntryFiles, path)
		}
		return nil
	})
	if err != nil {
		return Index{}, err
	}

	sort.Strings(index.ProjectFiles)
	sort.Strings(index.EntryFiles)
	return index, nil
}
