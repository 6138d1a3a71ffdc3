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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oss-muri/muri/fs"
)

// huskyHookNames are the standard git hook names Husky installs scripts for;
// any other extensionless file under .husky/ is also accepted as a hook.
var huskyHookNames = map[string]bool{
	"applypatch-msg": true, "commit-msg": true, "fsmonitor-watchman": true,
	"post-applypatch": true, "post-checkout": true, "post-commit": true,
	"post-merge": true, "post-receive": true, "post-rewrite": true, "post-update": true,
	"pre-applypatch": true, "pre-auto-gc": true, "pre-commit": true, "pre-merge-commit": true,
	"pre-push": true, "pre-rebase": true, "pre-receive": true, "prepare-commit-msg": true,
	"push-to-checkout": true, "sendemail-validate": true, "update": true,
}

// huskyScriptPatterns match the JS/TS runners Husky hooks commonly shell
// out to, each capturing the referenced file path.
var huskyScriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\s)node\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:js|mjs|cjs))["']?`),
	regexp.MustCompile(`(?:^|\s)npx\s+ts-node\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|mts|cts))["']?`),
	regexp.MustCompile(`(?:^|\s)npx\s+tsx\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|tsx|mts|cts|js|jsx|mjs|cjs))["']?`),
	regexp.MustCompile(`(?:^|\s)tsx\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|tsx|mts|cts|js|jsx|mjs|cjs))["']?`),
	regexp.MustCompile(`(?:^|\s)ts-node\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|mts|cts))["']?`),
	regexp.MustCompile(`(?:^|\s)bun\s+(?:run\s+)?(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|tsx|js|jsx|mts|cts|mjs|cjs))["']?`),
	regexp.MustCompile(`(?:^|\s)deno\s+run\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|tsx|js|jsx|mts|cts|mjs|cjs))["']?`),
	regexp.MustCompile(`(?:^|\s)\./node_modules/\.bin/ts-node\s+(?:--\S+\s+)*["']?([^\s"']+\.(?:ts|mts|cts))["']?`),
	regexp.MustCompile(`require\s*\(\s*["']([^"']+\.(?:js|mjs|cjs|ts|mts|cts))["']\s*\)`),
}

// Husky parses .husky/ git hook shell scripts for JS/TS files they shell
// out to (`node scripts/lint.js`, `npx ts-node scripts/check.ts`), since
// those are real entry points normal import tracing would otherwise miss.
type Husky struct{}

// NewHusky builds the husky plugin.
func NewHusky() *Husky { return &Husky{} }

func (p *Husky) Name() string { return "husky" }

func (p *Husky) ShouldEnable(filesystem fs.FileSystem, cwd string, deps map[string]bool) bool {
	return deps["husky"]
}

func (p *Husky) DetectEntries(filesystem fs.FileSystem, cwd string) (Entries, error) {
	huskyDir := filepath.Join(cwd, ".husky")
	if !dirExists(filesystem, huskyDir) {
		return Entries{}, nil
	}

	dirEntries, err := filesystem.ReadDir(huskyDir)
	if err != nil {
		return Entries{}, nil
	}

	seen := make(map[string]bool)
	var paths []string

	for _, d := range dirEntries {
		if d.IsDir() || !isHookFile(d.Name()) {
			continue
		}

		content, err := filesystem.ReadFile(filepath.Join(huskyDir, d.Name()))
		if err != nil {
			continue
		}

		for _, ref := range extractScriptReferences(string(content)) {
			resolved := ref
			if !filepath.IsAbs(resolved) {
				resolved = filepath.Join(cwd, resolved)
			}
			if stat, err := filesystem.Stat(resolved); err != nil || stat.IsDir() {
				continue
			}
			if !withinDir(resolved, cwd) {
				continue
			}
			if !seen[resolved] {
				seen[resolved] = true
				paths = append(paths, resolved)
			}
		}
	}

	return Entries{Paths: paths}, nil
}

// isHookFile mirrors Husky's own convention: hook files have no extension
// and aren't the `_` shim or a dotfile.
func isHookFile(name string) bool {
	if strings.HasPrefix(name, ".") || name == "_" {
		return false
	}
	return huskyHookNames[name] || !strings.Contains(name, ".")
}

func extractScriptReferences(content string) []string {
	var refs []string
	for _, line := range strings.Split(content, "\n") {
		line := strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, pattern := range huskyScriptPatterns {
			for _, m := range pattern.FindAllStringSubmatch(line, -1) {
				refs = append(refs, m[1])
			}
		}
	}
	return refs
}

// withinDir reports whether path is cwd itself or nested under it.
func withinDir(path, cwd string) bool {
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}
