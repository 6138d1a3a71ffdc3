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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/internal/mapfs"
)

type stubPlugin struct {
	name    string
	enabled bool
	entries Entries
	err     error
}

func (s *stubPlugin) Name() string { return s.name }
func (s *stubPlugin) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return s.enabled
}
func (s *stubPlugin) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	return s.entries, s.err
}

func TestDefaultRegistryNames(t *testing.T) {
	names := Default().Names()
	require.Contains(t, names, "vitest")
	require.Contains(t, names, "nextjs")
	require.Contains(t, names, "tailwind")
}

func TestCollectAllMergesEnabledPlugins(t *testing.T) {
	r := NewRegistry(
		&stubPlugin{name: "a", enabled: true, entries: Entries{Patterns: []string{"**/*.a.ts"}, Paths: []string{"/x/a.ts"}}},
		&stubPlugin{name: "b", enabled: false, entries: Entries{Patterns: []string{"**/*.b.ts"}}},
		&stubPlugin{name: "c", enabled: true, entries: Entries{Paths: []string{"/x/c.ts"}}},
	)

	patterns, paths := r.CollectAll(mapfs.New(), "/x", nil, nil)
	require.Equal(t, []string{"**/*.a.ts"}, patterns)
	require.Equal(t, []string{"/x/a.ts", "/x/c.ts"}, paths)
}

func TestCollectAllOverrideForcesPluginOff(t *testing.T) {
	r := NewRegistry(
		&stubPlugin{name: "a", enabled: true, entries: Entries{Paths: []string{"/x/a.ts"}}},
	)

	_, paths := r.CollectAll(mapfs.New(), "/x", nil, map[string]bool{"a": false})
	require.Empty(t, paths)
}

func TestCollectAllOverrideForcesPluginOn(t *testing.T) {
	r := NewRegistry(
		&stubPlugin{name: "a", enabled: false, entries: Entries{Paths: []string{"/x/a.ts"}}},
	)

	_, paths := r.CollectAll(mapfs.New(), "/x", nil, map[string]bool{"a": true})
	require.Equal(t, []string{"/x/a.ts"}, paths)
}

func TestCollectAllWarnsAndContinuesOnPluginError(t *testing.T) {
	r := NewRegistry(
		&stubPlugin{name: "broken", enabled: true, err: errors.New("boom")},
		&stubPlugin{name: "ok", enabled: true, entries: Entries{Paths: []string{"/x/ok.ts"}}},
	)

	var stderr bytes.Buffer
	r.SetWarningWriter(&stderr)

	_, paths := r.CollectAll(mapfs.New(), "/x", nil, nil)
	require.Equal(t, []string{"/x/ok.ts"}, paths)
	require.Contains(t, stderr.String(), "broken")
}
