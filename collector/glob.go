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
package collector

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expandBracePattern expands a single brace group in a glob pattern into one
// pattern per alternative, recursively, so `**/*.{ts,tsx}` becomes
// [`**/*.ts`, `**/*.tsx`]. Patterns with no brace group are returned as a
// single-element slice unchanged.
func expandBracePattern(pattern string) []string {
	start := strings.IndexByte(pattern, '{')
	if start < 0 {
		return []string{pattern}
	}
	end := strings.IndexByte(pattern[start:], '}')
	if end < 0 {
		return []string{pattern}
	}
	end += start

	prefix := pattern[:start]
	suffix := pattern[end+1:]
	alternatives := strings.Split(pattern[start+1:end], ",")

	var expanded []string
	for _, alt := range alternatives {
		expanded = append(expanded, expandBracePattern(prefix+alt+suffix)...)
	}
	return expanded
}

// expandGlobs expands every brace group in every pattern, flattening the
// result into a single list doublestar.Match can evaluate directly.
func expandGlobs(patterns []string) []string {
	var expanded []string
	for _, pattern := range patterns {
		expanded = append(expanded, expandBracePattern(pattern)...)
	}
	return expanded
}

// globSet is a precompiled set of glob patterns matched against a
// slash-normalized relative path.
type globSet struct {
	patterns []string
}

// compileGlobSet expands brace groups in patterns once, up front, so
// matching a path never re-parses the pattern text.
func compileGlobSet(patterns []string) *globSet {
	return &globSet{patterns: expandGlobs(patterns)}
}

// matches reports whether relPath (slash-separated, relative to the project
// root) matches any pattern in the set.
func (g *globSet) matches(relPath string) bool {
	for _, pattern := range g.patterns {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}
