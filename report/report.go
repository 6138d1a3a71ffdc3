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

// Package report holds the result of a find-unused run and renders it as
// text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Report is the result of a find_unused run: unused_files ⊆ project_files,
// and unused_count = len(unused_files).
type Report struct {
	UnusedFiles []string `json:"unused_files"`
	TotalFiles  int      `json:"total_files"`
	UnusedCount int      `json:"unused_count"`
}

// New builds a Report from cwd and the absolute paths of unused project
// files, converting each to a cwd-relative path and sorting lexically. A
// file that cannot be made relative to cwd (shouldn't happen — the
// collector never yields files outside its root) keeps its absolute form
// rather than failing the whole report.
func New(cwd string, totalFiles int, unusedAbs []string) *Report {
	rel := make([]string, len(unusedAbs))
	for i, abs := range unusedAbs {
		if r, err := filepath.Rel(cwd, abs); err == nil {
			rel[i] = filepath.ToSlash(r)
		} else {
			rel[i] = abs
		}
	}
	sort.Strings(rel)

	return &Report{
		UnusedFiles: rel,
		TotalFiles:  totalFiles,
		UnusedCount: len(rel),
	}
}

// ToJSON renders the report as pretty-printed JSON.
func (r *Report) ToJSON() string {
	bytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

// ToText renders the report as the CLI's human-readable summary.
func (r *Report) ToText() string {
	if r.UnusedCount == 0 {
		return "No unused files found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Unused files (%d):\n", r.UnusedCount)
	for _, f := range r.UnusedFiles {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	fmt.Fprintf(&b, "\n%d/%d files unused", r.UnusedCount, r.TotalFiles)
	return b.String()
}

// Format returns the report in the given format. Supported formats:
// "json", "text" (default).
func (r *Report) Format(format string) string {
	if format == "json" {
		return r.ToJSON()
	}
	return r.ToText()
}
