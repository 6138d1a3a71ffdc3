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

import (
	"regexp"
	"strings"

	"github.com/oss-muri/muri/extractor"
)

// scssImportRegex matches @use, @import, and @forward with a quoted
// specifier, e.g. `@use './variables';` or `@forward "functions";`.
var scssImportRegex = regexp.MustCompile(`@(?:use|import|forward)\s+['"]([^'"]+)['"]`)

// SCSS extracts @use/@import/@forward specifiers from Sass source.
type SCSS struct{}

// NewSCSS builds the SCSS compiler.
func NewSCSS() *SCSS {
	return &SCSS{}
}

// Name implements Compiler.
func (s *SCSS) Name() string { return "scss" }

// Extensions implements Compiler.
func (s *SCSS) Extensions() []string { return []string{".scss", ".sass"} }

// ShouldEnable implements Compiler.
func (s *SCSS) ShouldEnable(deps map[string]bool) bool {
	return deps["sass"] || deps["sass-embedded"] || deps["node-sass"]
}

// Extract implements Compiler.
func (s *SCSS) Extract(content []byte) ([]extractor.Import, error) {
	var imports []extractor.Import
	for _, match := range scssImportRegex.FindAllSubmatchIndex(content, -1) {
		source := string(content[match[2]:match[3]])
		if strings.HasPrefix(source, "sass:") {
			continue
		}
		line := 1 + strings.Count(string(content[:match[0]]), "\n")
		imports = append(imports, extractor.Import{
			Specifier: source,
			Kind:      extractor.Static,
			Line:      line,
		})
	}
	return imports, nil
}
