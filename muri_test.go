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
package muri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oss-muri/muri/internal/mapfs"
)

func TestFindUnusedScenarioNoUnusedFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.ts", `import "./b";`, 0o644)
	mfs.AddFile("/proj/b.ts", ``, 0o644)

	r, err := FindUnused(mfs, Config{Cwd: "/proj", Entry: []string{"a.ts"}, Project: []string{"**/*.ts"}})
	require.NoError(t, err)
	require.Equal(t, 0, r.UnusedCount)
	require.Equal(t, 2, r.TotalFiles)
}

func TestFindUnusedScenarioTwoUnusedFiles(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.ts", ``, 0o644)
	mfs.AddFile("/proj/b.ts", ``, 0o644)
	mfs.AddFile("/proj/c.ts", ``, 0o644)

	r, err := FindUnused(mfs, Config{Cwd: "/proj", Entry: []string{"a.ts"}, Project: []string{"**/*.ts"}})
	require.NoError(t, err)
	require.Equal(t, []string{"b.ts", "c.ts"}, r.UnusedFiles)
	require.Equal(t, 2, r.UnusedCount)
}

func TestFindUnusedScenarioSCSSChain(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/index.ts", `
import "./styles/index.scss";
import "./helper";
`, 0o644)
	mfs.AddFile("/proj/helper.ts", ``, 0o644)
	mfs.AddFile("/proj/styles/index.scss", `
@use "./variables";
@use "./mixins";
`, 0o644)
	mfs.AddFile("/proj/styles/_variables.scss", ``, 0o644)
	mfs.AddFile("/proj/styles/_mixins.scss", ``, 0o644)
	mfs.AddFile("/proj/styles/unused.scss", ``, 0o644)
	mfs.AddFile("/proj/unused.ts", ``, 0o644)
	mfs.AddFile("/proj/package.json", `{"dependencies": {"sass": "^1.0.0"}}`, 0o644)

	r, err := FindUnused(mfs, Config{Cwd: "/proj", Entry: []string{"index.ts"}, Project: []string{"**/*.ts", "**/*.scss"}})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"unused.ts", "styles/unused.scss"}, r.UnusedFiles)
}

func TestFindUnusedScenarioRequire(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.ts", `const m = require("./b");`, 0o644)
	mfs.AddFile("/proj/b.ts", ``, 0o644)

	reachable, err := FindReachable(mfs, Config{Cwd: "/proj", Entry: []string{"a.ts"}, Project: []string{"**/*.ts"}})
	require.NoError(t, err)
	require.Contains(t, reachable, "/proj/b.ts")
}

func TestFindUnusedNoEntryFilesErrors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.ts", ``, 0o644)

	_, err := FindUnused(mfs, Config{Cwd: "/proj", Entry: []string{"does-not-match/**"}, Project: []string{"**/*.ts"}})
	require.Error(t, err)
	var noEntry *NoEntryFilesError
	require.ErrorAs(t, err, &noEntry)
}

func TestFindUnusedPluginPatternSeedsEntryWithoutExplicitGlob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/e2e/login.spec.ts", ``, 0o644)
	mfs.AddFile("/proj/package.json", `{"devDependencies": {"@playwright/test": "^1.0.0"}}`, 0o644)

	r, err := FindUnused(mfs, Config{Cwd: "/proj", Project: []string{"**/*.ts"}})
	require.NoError(t, err)
	require.NotContains(t, r.UnusedFiles, "e2e/login.spec.ts")
}

func TestFindUnusedNeverFollowsOutsideProjectRoot(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/proj/a.ts", `import "../outside/secret.ts";`, 0o644)
	mfs.AddFile("/outside/secret.ts", ``, 0o644)

	r, err := FindUnused(mfs, Config{Cwd: "/proj", Entry: []string{"a.ts"}, Project: []string{"**/*.ts"}})
	require.NoError(t, err)
	require.Equal(t, 1, r.TotalFiles)
}
