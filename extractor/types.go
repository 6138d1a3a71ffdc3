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

// Package extractor parses JS/TS (and HTML) source files and extracts the
// import specifiers they contain, for consumption by the dependency graph.
package extractor

// Kind classifies how an Import specifier was written in the source.
type Kind int

const (
	// Static covers `import {a} from "./x"`, `import x from "./x"`, and
	// `import * as ns from "./x"` — any import with a binding clause.
	Static Kind = iota
	// Dynamic covers `import("./x")` / `await import("./x")`.
	Dynamic
	// Require covers CommonJS `require("./x")`.
	Require
	// ExportFrom covers `export {a} from "./x"`.
	ExportFrom
	// ExportStar covers `export * from "./x"` / `export * as ns from "./x"`.
	ExportStar
	// SideEffect covers a bare `import "./x"` with no import clause at
	// all — no default, named, or namespace bindings.
	SideEffect
)

// String renders the kind for logs and reports.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Require:
		return "require"
	case ExportFrom:
		return "export-from"
	case ExportStar:
		return "export-star"
	case SideEffect:
		return "side-effect"
	default:
		return "unknown"
	}
}

// Import is a single import/export/require specifier found in a source file,
// along with the line it appeared on and how it was written.
type Import struct {
	Specifier string
	Kind      Kind
	Line      int
}

// IsDynamic reports whether this import is a dynamic `import()` expression.
// The graph engine follows every kind of import edge the same way; this
// only feeds ModuleInfo.HasDynamicImports.
func (i Import) IsDynamic() bool {
	return i.Kind == Dynamic
}

// ModuleInfo is the parsed shape of a single source file: the imports it
// declares, whether any of them are dynamic, and a parse error if the file
// could not be parsed at all. A file that fails to parse still contributes a
// ModuleInfo (with ParseError set and no imports) rather than aborting the
// whole run — a graph can still mark it reachable even though its outgoing
// edges are unknown.
type ModuleInfo struct {
	Imports           []Import
	HasDynamicImports bool
	ParseError        string
}

// FromImports builds a ModuleInfo from a parsed import list.
func FromImports(imports []Import) ModuleInfo {
	info := ModuleInfo{Imports: imports}
	for _, imp := range imports {
		if imp.IsDynamic() {
			info.HasDynamicImports = true
			break
		}
	}
	return info
}

// FromError builds a ModuleInfo for a file that failed to parse.
func FromError(err error) ModuleInfo {
	return ModuleInfo{ParseError: err.Error()}
}
