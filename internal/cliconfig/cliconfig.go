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

// Package cliconfig resolves muri's Config from the root command's
// persistent flags plus an optional muri.json(c) file, shared by the
// check and reachable subcommands so the flag-to-Config wiring exists in
// exactly one place.
package cliconfig

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/internal/config"
)

// Resolve builds a config.Config from the root command's persistent flags
// (--entry, --project, --cwd, --ignore, --verbose, bound into viper in
// main.go's init) and the --config file, if any.
func Resolve(filesystem fs.FileSystem) (config.Config, error) {
	cwd := viper.GetString("cwd")
	if cwd == "" {
		cwd = "."
	}

	overrides := config.Config{
		Entry:   viper.GetStringSlice("entry"),
		Project: viper.GetStringSlice("project"),
		Cwd:     cwd,
		Ignore:  viper.GetStringSlice("ignore"),
		Verbose: viper.GetBool("verbose"),
	}

	configPath := viper.GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(cwd, "muri.json")
		if !filesystem.Exists(configPath) {
			configPath = filepath.Join(cwd, "muri.jsonc")
		}
	}

	return config.Load(filesystem, configPath, explicit, overrides)
}
