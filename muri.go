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

// Package muri finds JS/TS project files unreachable from a set of entry
// points via the project's own import graph: FindUnused and FindReachable
// are its two public entry functions, wiring the collector, compiler and
// plugin registries, resolver, module cache, and graph engine into a single
// call.
package muri

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oss-muri/muri/collector"
	"github.com/oss-muri/muri/compiler"
	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/graph"
	"github.com/oss-muri/muri/internal/canon"
	"github.com/oss-muri/muri/internal/config"
	"github.com/oss-muri/muri/modcache"
	"github.com/oss-muri/muri/packagejson"
	"github.com/oss-muri/muri/plugin"
	"github.com/oss-muri/muri/report"
	"github.com/oss-muri/muri/resolver"
)

// Config is muri's full configuration, shared verbatim between the
// programmatic API, the CLI flags, and the muri.json(c) config file. It's
// an alias for internal/config's type so config loading (file/CLI merge,
// JSONC parsing) stays internal plumbing while the type itself remains
// part of this package's public surface.
type Config = config.Config

// Report is the result of a FindUnused run.
type Report = report.Report

// ConfigurationError means the run could not even start: the working
// directory couldn't be canonicalized, or an explicitly named config file
// was missing.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NoEntryFilesError means the entry set was empty after merging CLI/file
// entry globs with plugin-discovered seeds — there is nothing to trace
// from, so a report would be meaningless (every project file would read as
// "unused").
type NoEntryFilesError struct {
	Patterns []string
}

func (e *NoEntryFilesError) Error() string {
	return fmt.Sprintf("no entry files found matching patterns: %s", strings.Join(e.Patterns, ", "))
}

// FindUnused runs a complete analysis and returns the assembled Report.
func FindUnused(filesystem fs.FileSystem, cfg Config) (*Report, error) {
	run, err := prepare(filesystem, cfg)
	if err != nil {
		return nil, err
	}

	engine := graph.New(run.index.ProjectFiles, run.resolver, run.cache, cfg.Verbose)
	unused, _ := engine.FindUnused(run.index.EntryFiles)

	return report.New(run.cwd, len(run.index.ProjectFiles), unused), nil
}

// FindReachable runs a complete analysis and returns the sorted absolute
// paths of every file reachable from the entry set — the companion to
// FindUnused for callers who want the reachable set itself rather than its
// complement.
func FindReachable(filesystem fs.FileSystem, cfg Config) ([]string, error) {
	run, err := prepare(filesystem, cfg)
	if err != nil {
		return nil, err
	}

	engine := graph.New(run.index.ProjectFiles, run.resolver, run.cache, cfg.Verbose)
	result := engine.FindReachable(run.index.EntryFiles)

	return result.ReachableSorted(), nil
}

// preparedRun holds everything FindUnused/FindReachable need after the
// shared setup steps (canonicalize, manifest, registries, collector walk)
// have run once.
type preparedRun struct {
	cwd      string
	index    collector.Index
	resolver *resolver.Resolver
	cache    modcache.Cache
}

// prepare implements spec.md §4.7's orchestrator steps common to both
// public entry points: canonicalize cwd, read the manifest, build the
// compiler and plugin registries, run the collector once, merge
// plugin-sourced entry paths, and fail fast if no entry points resulted.
func prepare(filesystem fs.FileSystem, cfg Config) (*preparedRun, error) {
	cwdInput := cfg.Cwd
	if cwdInput == "" {
		cwdInput = "."
	}
	cwd, err := canon.Canonicalize(cwdInput)
	if err != nil {
		return nil, &ConfigurationError{Reason: "cannot canonicalize cwd", Err: err}
	}

	deps := map[string]bool{}
	if pkg, err := packagejson.ParseFile(filesystem, filepath.Join(cwd, "package.json")); err == nil {
		deps = pkg.DependencyNames()
	}

	compilers := compiler.Default(deps, cfg.Compilers)

	pluginReg := plugin.Default()
	pluginReg.SetWarningWriter(os.Stderr)
	pluginPatterns, pluginPaths := pluginReg.CollectAll(filesystem, cwd, deps, cfg.Plugins)
	pluginPaths = withinCwd(cwd, pluginPaths)

	projectPatterns := append(append([]string{}, cfg.Project...), compilerGlobs(compilers.Extensions())...)
	entryPatterns := append(append([]string{}, cfg.Entry...), pluginPatterns...)

	col := collector.New(filesystem, cwd, entryPatterns, projectPatterns, cfg.Ignore, filepath.Join(cwd, ".gitignore"), compilers.Extensions())
	index, err := col.Collect()
	if err != nil {
		return nil, &ConfigurationError{Reason: "collector walk failed", Err: err}
	}

	index.EntryFiles = mergeSortedUnique(index.EntryFiles, pluginPaths)

	if len(index.EntryFiles) == 0 {
		return nil, &NoEntryFilesError{Patterns: entryPatterns}
	}

	extensions := append(append([]string{}, resolver.DefaultExtensions...), compilers.Extensions()...)
	var tsconfig *resolver.Tsconfig
	if t, err := resolver.LoadTsconfig(filesystem, cwd, filepath.Join(cwd, "tsconfig.json")); err == nil {
		tsconfig = t
	}

	resolve := resolver.New(filesystem, cwd,
		resolver.WithExtensions(extensions),
		resolver.WithTsconfig(tsconfig),
	)

	cache := modcache.New(filesystem, compilers)

	return &preparedRun{cwd: cwd, index: index, resolver: resolve, cache: cache}, nil
}

// compilerGlobs turns each active compiler extension into a project glob
// pattern, so non-JS/TS source files (SCSS, HTML) are classified as
// project files alongside the default TS/JS set.
func compilerGlobs(extensions []string) []string {
	globs := make([]string, len(extensions))
	for i, ext := range extensions {
		globs[i] = "**/*" + ext
	}
	return globs
}

// withinCwd filters paths to those that lie under the canonical cwd,
// per spec.md §4.5's security requirement that any absolute path returned
// by a plugin be validated before use.
func withinCwd(cwd string, paths []string) []string {
	var kept []string
	for _, p := range paths {
		rel, err := filepath.Rel(cwd, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// mergeSortedUnique merges b into sorted slice a, deduplicating, and
// returns the result sorted.
func mergeSortedUnique(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	sort.Strings(merged)
	return merged
}
