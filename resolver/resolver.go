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

// Package resolver implements Node-style module resolution, scoped to a
// single project root: specifiers that resolve outside rootDir, or that are
// bare (pointing at node_modules), are reported as unresolved rather than
// followed, per the project's own stated non-goal of never tracing beyond
// the project root.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/packagejson"
)

// DefaultExtensions is the resolution order tried when a specifier has no
// extension of its own.
var DefaultExtensions = []string{
	".ts", ".tsx", ".d.ts", ".js", ".jsx", ".mjs", ".cjs", ".mts", ".cts", ".json",
}

// extensionAlias lets a specifier written with one extension resolve to a
// file with a related one, matching the way bundlers let "./x.js" resolve
// to a TypeScript source file during development.
var extensionAlias = map[string][]string{
	".js":  {".js", ".ts", ".tsx"},
	".jsx": {".jsx", ".tsx"},
	".mjs": {".mjs", ".mts"},
	".cjs": {".cjs", ".cts"},
}

// Resolver resolves import specifiers to absolute file paths within a single
// project root.
type Resolver struct {
	fs          fs.FileSystem
	rootDir     string
	extensions  []string
	tsconfig    *Tsconfig
	resolveOpts *packagejson.ResolveOptions
	pkgCache    packagejson.Cache
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithExtensions overrides the resolution extension order, e.g. to add
// extensions contributed by an active compiler registry (.scss, .sass).
func WithExtensions(extensions []string) Option {
	return func(r *Resolver) {
		r.extensions = extensions
	}
}

// WithTsconfig attaches a parsed tsconfig.json for baseUrl/paths resolution.
func WithTsconfig(tsconfig *Tsconfig) Option {
	return func(r *Resolver) {
		r.tsconfig = tsconfig
	}
}

// New builds a Resolver rooted at rootDir.
func New(filesystem fs.FileSystem, rootDir string, opts ...Option) *Resolver {
	r := &Resolver{
		fs:          filesystem,
		rootDir:     rootDir,
		extensions:  DefaultExtensions,
		resolveOpts: &packagejson.ResolveOptions{Conditions: []string{"import", "require", "node", "default"}},
		pkgCache:    packagejson.NewMemoryCache(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves specifier as it appears in fromFile, returning the
// resolved absolute path and true on success. A bare specifier, or a
// specifier that resolves outside rootDir, returns ("", false) — muri never
// traces beyond the project root.
func (r *Resolver) Resolve(fromFile, specifier string) (string, bool) {
	if specifier == "" || strings.Contains(specifier, "://") {
		return "", false
	}

	target, ok := r.targetFor(fromFile, specifier)
	if !ok {
		return "", false
	}

	if resolved, ok := r.resolveFile(target); ok {
		return r.withinRoot(resolved)
	}

	// From a .scss/.sass file, "foo" may name the partial "_foo", with or
	// without an explicit .scss/.sass extension.
	if fromExt := filepath.Ext(fromFile); fromExt == ".scss" || fromExt == ".sass" {
		if base := filepath.Base(target); !strings.HasPrefix(base, "_") {
			partial := filepath.Join(filepath.Dir(target), "_"+base)
			for _, candidate := range []string{partial, partial + ".scss", partial + ".sass"} {
				if resolved, ok := r.resolveFile(candidate); ok {
					return r.withinRoot(resolved)
				}
			}
		}
	}
	return "", false
}

// targetFor joins a specifier onto the directory it resolves relative to,
// reporting whether the specifier is one this resolver follows at all
// (relative, root-absolute, or a tsconfig path alias — never a bare
// specifier, per the project's non-goal of not tracing into node_modules).
func (r *Resolver) targetFor(fromFile, specifier string) (string, bool) {
	switch {
	case strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") || specifier == ".":
		return filepath.Join(filepath.Dir(fromFile), specifier), true
	case strings.HasPrefix(specifier, "/"):
		return filepath.Join(r.rootDir, specifier), true
	}

	if r.tsconfig != nil {
		if aliased, ok := r.tsconfig.Resolve(specifier); ok {
			return filepath.Join(r.rootDir, aliased), true
		}
	}
	return "", false
}

// resolveFile finds an actual file for target, trying target as given, each
// extension in order (with alias fallbacks), directory index files, and a
// directory's package.json main/module field.
func (r *Resolver) resolveFile(target string) (string, bool) {
	if r.fileExists(target) {
		return target, true
	}

	ext := filepath.Ext(target)
	if ext != "" {
		if aliases, ok := extensionAlias[ext]; ok {
			base := strings.TrimSuffix(target, ext)
			for _, alias := range aliases {
				if candidate := base + alias; r.fileExists(candidate) {
					return candidate, true
				}
			}
		}
		if scssResolved, ok := r.resolveSCSSPartial(target); ok {
			return scssResolved, true
		}
	}

	for _, candidateExt := range r.extensions {
		if candidate := target + candidateExt; r.fileExists(candidate) {
			return candidate, true
		}
	}

	if r.isDir(target) {
		if pkgResolved, ok := r.resolvePackageDir(target); ok {
			return pkgResolved, true
		}
		for _, candidateExt := range r.extensions {
			if candidate := filepath.Join(target, "index"+candidateExt); r.fileExists(candidate) {
				return candidate, true
			}
		}
	}

	return "", false
}

// resolveSCSSPartial applies Sass's partial-file convention to a target that
// already carries a .scss/.sass extension: "foo.scss" can resolve to
// "_foo.scss" in the same directory, whatever file imports it. An
// extensionless "foo" is tried as a partial by Resolve, from .scss/.sass
// source files only.
func (r *Resolver) resolveSCSSPartial(target string) (string, bool) {
	ext := filepath.Ext(target)
	if ext != ".scss" && ext != ".sass" {
		return "", false
	}
	dir := filepath.Dir(target)
	base := filepath.Base(target)
	if strings.HasPrefix(base, "_") {
		return "", false
	}
	partial := filepath.Join(dir, "_"+base)
	if r.fileExists(partial) {
		return partial, true
	}
	return "", false
}

// resolvePackageDir resolves a directory containing a package.json by
// reading its exports/main/module fields, for local workspace packages that
// live inside the project root. Parses are memoized in r.pkgCache: a
// monorepo's shared package.json otherwise gets re-read by every concurrent
// BFS worker that resolves an import into the same workspace package.
func (r *Resolver) resolvePackageDir(dir string) (string, bool) {
	pkgPath := filepath.Join(dir, "package.json")
	pkg, err := r.pkgCache.GetOrLoad(pkgPath, func() (*packagejson.PackageJSON, error) {
		return packagejson.ParseFile(r.fs, pkgPath)
	})
	if err != nil {
		return "", false
	}

	if entry, err := pkg.ResolveExport(".", r.resolveOpts); err == nil {
		if candidate := filepath.Join(dir, entry); r.fileExists(candidate) {
			return candidate, true
		}
	}
	if pkg.Module != "" {
		if candidate := filepath.Join(dir, pkg.Module); r.fileExists(candidate) {
			return candidate, true
		}
	}
	if pkg.Main != "" {
		if candidate := filepath.Join(dir, pkg.Main); r.fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) fileExists(path string) bool {
	stat, err := r.fs.Stat(path)
	return err == nil && !stat.IsDir()
}

func (r *Resolver) isDir(path string) bool {
	stat, err := r.fs.Stat(path)
	return err == nil && stat.IsDir()
}

// withinRoot reports whether resolved lies within rootDir, returning a
// cleaned path if so.
func (r *Resolver) withinRoot(resolved string) (string, bool) {
	cleaned := filepath.Clean(resolved)
	rel, err := filepath.Rel(r.rootDir, cleaned)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return cleaned, true
}
