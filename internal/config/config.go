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

// Package config loads muri's JSONC config file (muri.json / muri.jsonc)
// and merges it with CLI-supplied overrides — the file is optional, the CLI
// always wins.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/oss-muri/muri/fs"
)

// DefaultProjectPatterns is used when neither the config file nor the CLI
// supplies --project globs.
var DefaultProjectPatterns = []string{"**/*.{ts,tsx,js,jsx,mjs,cjs}"}

// Config is muri's full resolved configuration: the merge of muri.json(c)
// and CLI flags, with CLI flags taking precedence field-by-field.
type Config struct {
	Entry     []string        `json:"entry"`
	Project   []string        `json:"project"`
	Cwd       string          `json:"cwd"`
	Ignore    []string        `json:"ignore"`
	Plugins   map[string]bool `json:"plugins"`
	Compilers map[string]bool `json:"compilers"`
	Verbose   bool            `json:"verbose"`
}

// fileConfig mirrors Config's on-disk shape; Verbose/Cwd are rarely set in
// a checked-in config file but are accepted for symmetry with the
// programmatic config.
type fileConfig struct {
	Entry     []string        `json:"entry"`
	Project   []string        `json:"project"`
	Cwd       string          `json:"cwd"`
	Ignore    []string        `json:"ignore"`
	Plugins   map[string]bool `json:"plugins"`
	Compilers map[string]bool `json:"compilers"`
	Verbose   bool            `json:"verbose"`
}

// Load reads configPath (muri.json or muri.jsonc) if it exists, strips its
// C-style comments, and merges it under overrides — any field overrides
// sets (non-zero-value) wins over the file's value. A missing configPath is
// not an error only when it was not explicitly requested (explicit=false);
// an explicitly named --config path that doesn't exist is fatal.
func Load(filesystem fs.FileSystem, configPath string, explicit bool, overrides Config) (Config, error) {
	cfg := overrides
	if len(cfg.Project) == 0 {
		cfg.Project = DefaultProjectPatterns
	}

	raw, err := filesystem.ReadFile(configPath)
	if err != nil {
		if explicit {
			return Config{}, fmt.Errorf("config file %q not found: %w", configPath, err)
		}
		return cfg, nil
	}

	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(raw), &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config file %q: %w", configPath, err)
	}

	merged := cfg
	if len(merged.Entry) == 0 {
		merged.Entry = fc.Entry
	}
	if len(overrides.Project) == 0 && len(fc.Project) > 0 {
		merged.Project = fc.Project
	}
	if merged.Cwd == "" {
		merged.Cwd = fc.Cwd
	}
	if len(merged.Ignore) == 0 {
		merged.Ignore = fc.Ignore
	}
	merged.Plugins = mergeBoolMaps(fc.Plugins, overrides.Plugins)
	merged.Compilers = mergeBoolMaps(fc.Compilers, overrides.Compilers)
	if !merged.Verbose {
		merged.Verbose = fc.Verbose
	}

	return merged, nil
}

// mergeBoolMaps merges a config file's per-name bool overrides with the
// CLI's, with the CLI's entries winning on key collision.
func mergeBoolMaps(file, cli map[string]bool) map[string]bool {
	if len(file) == 0 && len(cli) == 0 {
		return nil
	}
	merged := make(map[string]bool, len(file)+len(cli))
	for k, v := range file {
		merged[k] = v
	}
	for k, v := range cli {
		merged[k] = v
	}
	return merged
}
