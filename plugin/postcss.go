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

import "github.com/oss-muri/muri/fs"

var postcssConfigNames = []string{
	"postcss.config.js", "postcss.config.cjs", "postcss.config.mjs", "postcss.config.ts", "postcss.config.cts", "postcss.config.mts",
	".postcssrc", ".postcssrc.js", ".postcssrc.cjs", ".postcssrc.mjs", ".postcssrc.ts", ".postcssrc.cts", ".postcssrc.json",
}

// PostCSS returns PostCSS config files as entry points; the tailwind config
// or custom plugins they require are then discovered by normal tracing.
type PostCSS struct{}

// NewPostCSS builds the postcss plugin.
func NewPostCSS() *PostCSS { return &PostCSS{} }

func (p *PostCSS) Name() string { return "postcss" }

func (p *PostCSS) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["postcss"] || deps["postcss-cli"]
}

func (p *PostCSS) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	paths, _ := hasAnyConfigAll(filesystem, cwd, postcssConfigNames)
	return Entries{Paths: paths}, nil
}
