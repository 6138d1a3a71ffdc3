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
	"fmt"
	"path/filepath"

	"github.com/oss-muri/muri/fs"
)

var nextConfigNames = []string{"next.config.js", "next.config.mjs", "next.config.ts"}

// nextAppRouterSpecialFiles are App Router (app/) convention files:
// https://nextjs.org/docs/app/building-your-application/routing
var nextAppRouterSpecialFiles = []struct {
	name string
	exts []string
}{
	{"page", []string{"js", "jsx", "ts", "tsx"}},
	{"layout", []string{"js", "jsx", "ts", "tsx"}},
	{"loading", []string{"js", "jsx", "ts", "tsx"}},
	{"error", []string{"js", "jsx", "ts", "tsx"}},
	{"not-found", []string{"js", "jsx", "ts", "tsx"}},
	{"template", []string{"js", "jsx", "ts", "tsx"}},
	{"default", []string{"js", "jsx", "ts", "tsx"}},
	{"route", []string{"js", "ts"}},
}

// Nextjs discovers entry points across both of Next.js's routers (App
// Router's app/ convention files, Pages Router's pages/ tree), plus
// middleware/instrumentation and the config file itself.
type Nextjs struct{}

// NewNextjs builds the nextjs plugin.
func NewNextjs() *Nextjs { return &Nextjs{} }

func (p *Nextjs) Name() string { return "nextjs" }

func (p *Nextjs) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["next"]
}

func (p *Nextjs) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	var entries Entries

	for _, name := range nextConfigNames {
		path := filepath.Join(cwd, name)
		if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
			entries.Paths = append(entries.Paths, path)
		}
	}

	if dirExists(filesystem, filepath.Join(cwd, "app")) {
		for _, special := range nextAppRouterSpecialFiles {
			for _, ext := range special.exts {
				entries.Patterns = append(entries.Patterns, fmt.Sprintf("app/**/%s.%s", special.name, ext))
			}
		}
	}

	if dirExists(filesystem, filepath.Join(cwd, "pages")) {
		entries.Patterns = append(entries.Patterns,
			"pages/**/*.js", "pages/**/*.jsx", "pages/**/*.ts", "pages/**/*.tsx")
	}

	for _, dir := range []string{"", "src"} {
		for _, name := range []string{"middleware", "instrumentation"} {
			for _, ext := range []string{"js", "ts"} {
				path := filepath.Join(cwd, dir, fmt.Sprintf("%s.%s", name, ext))
				if stat, err := filesystem.Stat(path); err == nil && !stat.IsDir() {
					entries.Paths = append(entries.Paths, path)
				}
			}
		}
	}

	return entries, nil
}
