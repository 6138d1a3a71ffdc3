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

// Package check provides muri's default command: find and report unused
// project files.
package check

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	muri "github.com/oss-muri/muri"
	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/internal/cliconfig"
)

// ErrUnusedFilesFound signals the check ran cleanly but found unused
// files — cmd.SilenceUsage keeps this from printing a usage dump, and
// main still exits 1 per spec.md §6.
var ErrUnusedFilesFound = errors.New("unused files found")

// Cmd is the check command: muri's find_unused entry point. It's also
// wired as the root command's default RunE, so `muri` with no subcommand
// behaves the same as `muri check`, matching the original CLI's flat,
// subcommand-less invocation.
var Cmd = &cobra.Command{
	Use:           "check",
	Short:         "Find project files unreachable from the entry points",
	Long:          `check walks the project's import graph from its entry points and reports every project file never reached.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          Run,
}

// Run executes the check: resolve Config from flags/config file, run
// FindUnused, print the report in the requested format, and return
// ErrUnusedFilesFound if any were found so main can map it to exit code 1.
func Run(cmd *cobra.Command, args []string) error {
	osfs := fs.NewOSFileSystem()

	cfg, err := cliconfig.Resolve(osfs)
	if err != nil {
		return err
	}

	rpt, err := muri.FindUnused(osfs, cfg)
	if err != nil {
		return err
	}

	format := viper.GetString("format")
	if format == "" {
		format = "text"
	}
	fmt.Println(rpt.Format(format))

	if rpt.UnusedCount > 0 {
		return ErrUnusedFilesFound
	}
	return nil
}
