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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/internal/mapfs"
)

func TestResolveRelativeWithExtension(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/src/b.ts", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "./b.ts")
	require.True(t, ok)
	require.Equal(t, "/root/src/b.ts", resolved)
}

func TestResolveRelativeWithoutExtension(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/src/b.tsx", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "./b")
	require.True(t, ok)
	require.Equal(t, "/root/src/b.tsx", resolved)
}

func TestResolveExtensionAlias(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/src/b.ts", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "./b.js")
	require.True(t, ok)
	require.Equal(t, "/root/src/b.ts", resolved)
}

func TestResolveDirectoryIndex(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/src/widgets/index.ts", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "./widgets")
	require.True(t, ok)
	require.Equal(t, "/root/src/widgets/index.ts", resolved)
}

func TestResolveWebAbsolutePath(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/public/shared.ts", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "/public/shared.ts")
	require.True(t, ok)
	require.Equal(t, "/root/public/shared.ts", resolved)
}

func TestResolveBareSpecifierUnresolved(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)

	r := New(mfs, "/root")
	_, ok := r.Resolve("/root/src/a.ts", "lit")
	require.False(t, ok)
}

func TestResolveOutsideRootUnresolved(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/outside/b.ts", "", 0o644)

	r := New(mfs, "/root")
	_, ok := r.Resolve("/root/src/a.ts", "../../outside/b.ts")
	require.False(t, ok)
}

func TestResolveSCSSPartialFallback(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/main.scss", "", 0o644)
	mfs.AddFile("/root/src/_variables.scss", "", 0o644)

	r := New(mfs, "/root", WithExtensions(append(append([]string{}, DefaultExtensions...), ".scss", ".sass")))
	resolved, ok := r.Resolve("/root/src/main.scss", "./variables")
	require.True(t, ok)
	require.Equal(t, "/root/src/_variables.scss", resolved)
}

func TestResolvePackageDirMain(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/src/a.ts", "", 0o644)
	mfs.AddFile("/root/packages/widgets/package.json", `{"name":"widgets","main":"dist/index.js"}`, 0o644)
	mfs.AddFile("/root/packages/widgets/dist/index.js", "", 0o644)

	r := New(mfs, "/root")
	resolved, ok := r.Resolve("/root/src/a.ts", "../packages/widgets")
	require.True(t, ok)
	require.Equal(t, "/root/packages/widgets/dist/index.js", resolved)
}

func TestTsconfigPathsAlias(t *testing.T) {
	tsconfig := &Tsconfig{
		baseURL: ".",
		paths:   map[string][]string{"@app/*": {"src/app/*"}},
	}

	mfs := mapfs.New()
	mfs.AddFile("/root/src/app/widgets/button.ts", "", 0o644)

	r := New(mfs, "/root", WithTsconfig(tsconfig))
	resolved, ok := r.Resolve("/root/elsewhere/a.ts", "@app/widgets/button")
	require.True(t, ok)
	require.Equal(t, "/root/src/app/widgets/button.ts", resolved)
}

func TestLoadTsconfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/tsconfig.json", `{
		// comments are allowed
		"compilerOptions": {
			"baseUrl": ".",
			"paths": { "@app/*": ["src/app/*"] }
		}
	}`, 0o644)

	tsconfig, err := LoadTsconfig(mfs, "/root", "/root/tsconfig.json")
	require.NoError(t, err)
	require.Equal(t, ".", tsconfig.baseURL)
	require.Equal(t, []string{"src/app/*"}, tsconfig.paths["@app/*"])
}

func TestLoadTsconfigHonoursProjectReferences(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/tsconfig.json", `{
		"references": [{ "path": "./packages/widgets" }]
	}`, 0o644)
	mfs.AddFile("/root/packages/widgets/tsconfig.json", `{
		"compilerOptions": {
			"baseUrl": ".",
			"paths": { "@widgets/*": ["src/*"] }
		}
	}`, 0o644)
	mfs.AddFile("/root/packages/widgets/src/button.ts", "", 0o644)
	mfs.AddFile("/root/app/main.ts", "", 0o644)

	tsconfig, err := LoadTsconfig(mfs, "/root", "/root/tsconfig.json")
	require.NoError(t, err)

	r := New(mfs, "/root", WithTsconfig(tsconfig))
	resolved, ok := r.Resolve("/root/app/main.ts", "@widgets/button")
	require.True(t, ok)
	require.Equal(t, "/root/packages/widgets/src/button.ts", resolved)
}
