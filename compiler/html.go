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
package compiler

import "github.com/oss-muri/muri/extractor"

// HTML treats <script type="module"> tags (and the dynamic imports inside
// any inline script) as import edges, letting an index.html file feed the
// graph just like a JS entry point does.
type HTML struct{}

// NewHTML builds the HTML compiler.
func NewHTML() *HTML {
	return &HTML{}
}

// Name implements Compiler.
func (h *HTML) Name() string { return "html" }

// Extensions implements Compiler.
func (h *HTML) Extensions() []string { return []string{".html"} }

// ShouldEnable implements Compiler. HTML entry scanning is always useful
// when an .html file is actually part of the project — there is no
// dependency signal comparable to SCSS's sass/node-sass, so it is always on
// unless explicitly overridden off.
func (h *HTML) ShouldEnable(deps map[string]bool) bool { return true }

// Extract implements Compiler.
func (h *HTML) Extract(content []byte) ([]extractor.Import, error) {
	return extractor.HTMLImports(content)
}
