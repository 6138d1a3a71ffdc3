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

// Package graph computes reachability over the project's import graph,
// starting from entry points and walking every static and dynamic edge
// modcache can parse. Each round ("wave") of newly discovered files is
// parsed and resolved concurrently, so the walk's wall-clock cost tracks
// the graph's depth rather than its size.
package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oss-muri/muri/modcache"
	"github.com/oss-muri/muri/resolver"
)

// foreignAssetExtensions are the non-JS/TS extensions the resolver will
// happily resolve (images, styles, fonts, markup) but the graph never
// parses or enqueues — per spec.md §4.2's "foreign asset" extension list.
// An edge resolving to one of these is a dead end by design, not a bug.
var foreignAssetExtensions = map[string]bool{
	".css": true, ".scss": true, ".sass": true, ".less": true, ".html": true,
	".svg": true, ".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".avif": true, ".ico": true, ".ttf": true, ".woff": true,
	".woff2": true, ".eot": true, ".mp3": true, ".yaml": true, ".yml": true,
	".sh": true,
}

// Engine walks the import graph of a fixed project file set.
type Engine struct {
	projectFiles map[string]bool
	resolver     *resolver.Resolver
	cache        modcache.Cache
	verbose      bool

	warnMu sync.Mutex
	warned map[string]bool
}

// New builds an Engine over projectFiles — the universe Unused is drawn
// from. Only edges that resolve into this set are followed; imports into
// node_modules or outside the project root are skipped without being
// recorded, matching muri's no-follow-outside-root policy. When
// verbose is set, a resolved foreign-asset edge (a style sheet, image, or
// font reached by some project file) gets a one-shot diagnostic on
// stderr per spec.md §4.6/§7, deduplicated across the whole run.
func New(projectFiles []string, resolve *resolver.Resolver, cache modcache.Cache, verbose bool) *Engine {
	set := make(map[string]bool, len(projectFiles))
	for _, f := range projectFiles {
		set[f] = true
	}
	return &Engine{
		projectFiles: set,
		resolver:     resolve,
		cache:        cache,
		verbose:      verbose,
		warned:       make(map[string]bool),
	}
}

// Result is the outcome of a reachability walk: every file found reachable
// from the entry points, plus any non-fatal parse errors encountered along
// the way (a file that fails to parse is still marked reachable — its
// imports are simply not followed further).
type Result struct {
	Reachable map[string]bool
	Errors    []error
}

// FindReachable walks entryPoints outward over import edges and returns
// the entry points themselves plus every project file transitively
// reachable from them. The walk proceeds
// in waves: each wave parses and resolves every file discovered by the
// previous wave in parallel, then hands the next wave's frontier to the
// next round. A file is only ever parsed once, regardless of how many
// edges lead to it, via the shared modcache.
func (e *Engine) FindReachable(entryPoints []string) Result {
	var (
		mu        sync.Mutex
		reachable = make(map[string]bool)
		errs      []error
	)

	// Entry points are seeded unconditionally, even ones outside
	// projectFiles (a plugin-discovered config file, say): its own
	// imports must still be traced into the project so the files it
	// references are marked reachable, even though the config file
	// itself never counts toward unused/project totals.
	frontier := make(map[string]bool)
	for _, entry := range entryPoints {
		frontier[entry] = true
	}

	for len(frontier) > 0 {
		wave := make([]string, 0, len(frontier))
		for f := range frontier {
			// Mark reachable at dequeue time, not after parsing, so a
			// cycle within the same wave doesn't re-enqueue its own
			// members into the next frontier.
			reachable[f] = true
			wave = append(wave, f)
		}
		frontier = make(map[string]bool)

		g, _ := errgroup.WithContext(context.Background())
		for _, file := range wave {
			file := file
			g.Go(func() error {
				next, err := e.visit(file)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
				}
				for _, n := range next {
					if !reachable[n] {
						frontier[n] = true
					}
				}
				return nil
			})
		}
		// errgroup.Go's func never returns a non-nil error here — visit
		// errors are collected, not propagated — so Wait cannot fail.
		_ = g.Wait()
	}

	return Result{Reachable: reachable, Errors: errs}
}

// visit parses file and resolves every import it declares into the next
// wave's frontier, skipping edges that resolve outside the project file
// set (node_modules, files outside rootDir) or that fail to resolve at
// all (a dangling bare specifier is not an error muri reports here — an
// unresolved specifier is dropped silently).
func (e *Engine) visit(file string) ([]string, error) {
	info, err := e.cache.GetOrParse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	if info.ParseError != "" {
		return nil, fmt.Errorf("parsing %s: %s", file, info.ParseError)
	}

	var next []string
	for _, imp := range info.Imports {
		resolved, ok := e.resolver.Resolve(file, imp.Specifier)
		if !ok {
			continue
		}
		if !e.projectFiles[resolved] {
			if e.verbose && foreignAssetExtensions[filepath.Ext(resolved)] {
				e.warnForeignAsset(resolved)
			}
			continue
		}
		next = append(next, resolved)
	}
	return next, nil
}

// warnForeignAsset prints a one-shot diagnostic for a foreign-asset file
// resolved but not analyzed, deduplicated across the run since the same
// asset (a shared stylesheet, say) may be reached from many files.
func (e *Engine) warnForeignAsset(resolved string) {
	e.warnMu.Lock()
	defer e.warnMu.Unlock()
	if e.warned[resolved] {
		return
	}
	e.warned[resolved] = true
	fmt.Fprintf(os.Stderr, "Warning: foreign asset resolved but not analyzed: %s\n", resolved)
}

// FindUnused returns every project file not reachable from entryPoints,
// sorted lexically.
func (e *Engine) FindUnused(entryPoints []string) ([]string, []error) {
	result := e.FindReachable(entryPoints)

	// Reachable may hold entry seeds outside projectFiles, so it can be
	// larger than the project set; size by the project set alone.
	unused := make([]string, 0, len(e.projectFiles))
	for f := range e.projectFiles {
		if !result.Reachable[f] {
			unused = append(unused, f)
		}
	}
	sort.Strings(unused)

	return unused, result.Errors
}

// ReachableSorted returns Reachable as a lexically sorted slice, the shape
// cmd/reachable and report.Report consume.
func (r Result) ReachableSorted() []string {
	out := make([]string, 0, len(r.Reachable))
	for f := range r.Reachable {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
