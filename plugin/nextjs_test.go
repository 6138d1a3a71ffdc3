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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/internal/mapfs"
)

func TestNextjsAppRouterPatterns(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/app/page.tsx", "", 0o644)
	mfs.AddFile("/proj/next.config.js", "", 0o644)

	entries, err := NewNextjs().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Contains(t, entries.Paths, "/proj/next.config.js")
	require.Contains(t, entries.Patterns, "app/**/page.tsx")
}

func TestNextjsPagesRouterPatterns(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/pages/index.tsx", "", 0o644)

	entries, err := NewNextjs().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Contains(t, entries.Patterns, "pages/**/*.tsx")
}

func TestNextjsMiddlewareAndInstrumentation(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/middleware.ts", "", 0o644)
	mfs.AddFile("/proj/src/instrumentation.ts", "", 0o644)

	entries, err := NewNextjs().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Contains(t, entries.Paths, "/proj/middleware.ts")
	require.Contains(t, entries.Paths, "/proj/src/instrumentation.ts")
}
