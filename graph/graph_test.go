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
package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/compiler"
	"github.com/oss-muri/muri/internal/mapfs"
	"github.com/oss-muri/muri/modcache"
	"github.com/oss-muri/muri/resolver"
)

func TestFindReachableFollowsStaticChain(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)
	mfs.AddFile("/root/b.ts", `import "./c.js";`, 0o644)
	mfs.AddFile("/root/c.ts", ``, 0o644)
	mfs.AddFile("/root/unused.ts", ``, 0o644)

	project := []string{"/root/a.ts", "/root/b.ts", "/root/c.ts", "/root/unused.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	result := e.FindReachable([]string{"/root/a.ts"})
	require.ElementsMatch(t, []string{"/root/a.ts", "/root/b.ts", "/root/c.ts"}, result.ReachableSorted())
	require.Empty(t, result.Errors)
}

func TestFindUnusedReturnsUnreachedFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)
	mfs.AddFile("/root/b.ts", ``, 0o644)
	mfs.AddFile("/root/unused.ts", ``, 0o644)

	project := []string{"/root/a.ts", "/root/b.ts", "/root/unused.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	unused, errs := e.FindUnused([]string{"/root/a.ts"})
	require.Empty(t, errs)
	require.Equal(t, []string{"/root/unused.ts"}, unused)
}

func TestFindReachableHandlesCycles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)
	mfs.AddFile("/root/b.ts", `import "./a.js";`, 0o644)

	project := []string{"/root/a.ts", "/root/b.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	result := e.FindReachable([]string{"/root/a.ts"})
	require.ElementsMatch(t, []string{"/root/a.ts", "/root/b.ts"}, result.ReachableSorted())
}

func TestFindReachableNeverFollowsOutsideProjectSet(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "some-package";`, 0o644)
	mfs.AddFile("/root/node_modules/some-package/index.js", ``, 0o644)

	project := []string{"/root/a.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	result := e.FindReachable([]string{"/root/a.ts"})
	require.ElementsMatch(t, []string{"/root/a.ts"}, result.ReachableSorted())
}

func TestFindReachableTracesThroughNonProjectEntrySeed(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/vitest.config.ts", `import "./setup.ts";`, 0o644)
	mfs.AddFile("/root/setup.ts", ``, 0o644)
	mfs.AddFile("/root/unused.ts", ``, 0o644)

	// vitest.config.ts is a plugin-discovered seed, not itself a project
	// file (it wouldn't match a **/*.{ts,...} "project" glob the way the
	// collector classifies things), but setup.ts must still be traced.
	project := []string{"/root/setup.ts", "/root/unused.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	unused, errs := e.FindUnused([]string{"/root/vitest.config.ts"})
	require.Empty(t, errs)
	require.Equal(t, []string{"unused.ts"}, relNames(unused))
}

func relNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = p[len("/root/"):]
	}
	return names
}

func TestFindReachableSkipsForeignAssetsEvenVerbose(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.ts"; import "./style.css";`, 0o644)
	mfs.AddFile("/root/b.ts", `import "./style.css";`, 0o644)
	mfs.AddFile("/root/style.css", ``, 0o644)

	project := []string{"/root/a.ts", "/root/b.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), true)

	result := e.FindReachable([]string{"/root/a.ts"})
	require.ElementsMatch(t, []string{"/root/a.ts", "/root/b.ts"}, result.ReachableSorted())
	require.Empty(t, result.Errors)
}

func TestFindReachableRecordsReadErrorsButContinues(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)
	// b.ts is listed as a project file (e.g. from a stale collector index)
	// but was never written — its read fails, yet the wave must still
	// finish rather than abort the whole walk.
	project := []string{"/root/a.ts", "/root/b.ts"}
	e := New(project, resolver.New(mfs, "/root"), modcache.New(mfs, compiler.NewRegistry()), false)

	result := e.FindReachable([]string{"/root/a.ts", "/root/b.ts"})
	require.ElementsMatch(t, []string{"/root/a.ts", "/root/b.ts"}, result.ReachableSorted())
	require.Len(t, result.Errors, 1)
}
