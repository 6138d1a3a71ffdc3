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
package extractor

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// ExtractImports parses JavaScript/TypeScript content and extracts every
// static import, dynamic import, require() call, and re-export it contains.
func ExtractImports(content []byte) ([]Import, error) {
	qm, err := getQueryManager()
	if err != nil {
		return nil, err
	}

	parser := getTSParser()
	defer putTSParser(parser)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("extractor: failed to parse content")
	}
	defer tree.Close()

	query, err := qm.Query("imports")
	if err != nil {
		return nil, err
	}

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	var imports []Import
	matches := cursor.Matches(query, tree.RootNode(), content)
	captureNames := query.CaptureNames()

	for {
		match := matches.Next()
		if match == nil {
			break
		}

		var stmt ts.Node
		var haveStmt bool
		for _, capture := range match.Captures {
			if captureNames[capture.Index] == "import.stmt" {
				stmt = capture.Node
				haveStmt = true
			}
		}

		for _, capture := range match.Captures {
			name := captureNames[capture.Index]
			line := int(capture.Node.StartPosition().Row) + 1 // 1-indexed

			switch name {
			case "import.spec":
				kind := Static
				if haveStmt && !hasImportClause(stmt) {
					kind = SideEffect
				}
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      kind,
					Line:      line,
				})
			case "reexport.spec":
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      ExportFrom,
					Line:      line,
				})
			case "reexportstar.spec":
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      ExportStar,
					Line:      line,
				})
			case "dynamicImport.spec":
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      Dynamic,
					Line:      line,
				})
			case "require.spec":
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      Require,
					Line:      line,
				})
			case "dynamicImport.spec.tmpl", "require.spec.tmpl":
				// Template-literal specifiers are only accepted when the
				// template has no substitution — a single string_fragment
				// child is exactly that case, since an interpolated
				// template would split into fragment/substitution/fragment
				// siblings under the same template_string parent.
				if countTemplateFragments(capture.Node.Parent()) != 1 {
					continue
				}
				kind := Dynamic
				if name == "require.spec.tmpl" {
					kind = Require
				}
				imports = append(imports, Import{
					Specifier: capture.Node.Utf8Text(content),
					Kind:      kind,
					Line:      line,
				})
			}
		}
	}

	return imports, nil
}

// hasImportClause reports whether an import_statement node has an
// import_clause child — present for `import {a} from "./x"` and friends,
// absent for a bare `import "./x"` with no bindings at all.
func hasImportClause(stmt ts.Node) bool {
	for i := uint(0); i < stmt.ChildCount(); i++ {
		if child := stmt.Child(i); child != nil && child.Kind() == "import_clause" {
			return true
		}
	}
	return false
}

// countTemplateFragments counts the string_fragment children of a
// template_string node, used to reject template literals with interpolation.
func countTemplateFragments(templateString *ts.Node) int {
	if templateString == nil {
		return 0
	}
	count := 0
	for i := uint(0); i < templateString.ChildCount(); i++ {
		if child := templateString.Child(i); child != nil && child.Kind() == "string_fragment" {
			count++
		}
	}
	return count
}
