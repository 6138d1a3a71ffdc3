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

func TestHuskyNoDirReturnsEmpty(t *testing.T) {
	entries, err := NewHusky().DetectEntries(mapfs.New(), "/proj")
	require.NoError(t, err)
	require.True(t, entries.IsEmpty())
}

func TestHuskyExtractsNodeScript(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/scripts/lint.js", "console.log('lint')", 0o644)
	mfs.AddFile("/proj/.husky/pre-commit", "#!/bin/sh\nnode scripts/lint.js\n", 0o755)
	mfs.AddFile("/proj/.husky/_", "#!/bin/sh", 0o644)
	mfs.AddFile("/proj/.husky/.gitignore", "*", 0o644)

	entries, err := NewHusky().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Equal(t, []string{"/proj/scripts/lint.js"}, entries.Paths)
}

func TestHuskyIgnoresCommentsAndNonexistentFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/.husky/pre-commit", "#!/bin/sh\n# node scripts/ignored.js\nnode scripts/missing.js\n", 0o644)

	entries, err := NewHusky().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Empty(t, entries.Paths)
}

func TestHuskyExtractsNpxTsNode(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/scripts/validate.ts", "", 0o644)
	mfs.AddFile("/proj/.husky/pre-push", "#!/bin/sh\nnpx ts-node scripts/validate.ts\n", 0o644)

	entries, err := NewHusky().DetectEntries(mfs, "/proj")
	require.NoError(t, err)
	require.Equal(t, []string{"/proj/scripts/validate.ts"}, entries.Paths)
}
