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
package modcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/compiler"
	"github.com/oss-muri/muri/extractor"
	"github.com/oss-muri/muri/internal/mapfs"
)

func TestGetOrParseTS(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)

	c := New(mfs, compiler.NewRegistry())
	info, err := c.GetOrParse("/root/a.ts")
	require.NoError(t, err)
	require.Len(t, info.Imports, 1)
	require.Equal(t, "./b.js", info.Imports[0].Specifier)
}

func TestGetOrParseSCSSViaCompilerRegistry(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.scss", `@use './variables';`, 0o644)

	c := New(mfs, compiler.NewRegistry(compiler.NewSCSS()))
	info, err := c.GetOrParse("/root/a.scss")
	require.NoError(t, err)
	require.Len(t, info.Imports, 1)
	require.Equal(t, "./variables", info.Imports[0].Specifier)
}

func TestGetOrParseCachesResult(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)

	c := New(mfs, compiler.NewRegistry())
	_, err := c.GetOrParse("/root/a.ts")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	// Mutate the underlying file; the cached parse must not change.
	require.NoError(t, mfs.WriteFile("/root/a.ts", []byte(`import "./c.js";`), 0o644))

	info, err := c.GetOrParse("/root/a.ts")
	require.NoError(t, err)
	require.Equal(t, "./b.js", info.Imports[0].Specifier)
}

func TestGetOrParseConcurrentSingleLoad(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/a.ts", `import "./b.js";`, 0o644)

	c := New(mfs, compiler.NewRegistry())

	type result struct {
		info extractor.ModuleInfo
		err  error
	}

	var wg sync.WaitGroup
	results := make([]result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			info, err := c.GetOrParse("/root/a.ts")
			results[i] = result{info: info, err: err}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NoError(t, r.err)
		require.Len(t, r.info.Imports, 1)
	}
}
