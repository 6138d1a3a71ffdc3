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

// Package reachable provides muri's find_reachable companion command: the
// complement of check, printing what the graph walk reached rather than
// what it missed.
package reachable

import (
	"fmt"

	"github.com/spf13/cobra"

	muri "github.com/oss-muri/muri"
	"github.com/oss-muri/muri/fs"
	"github.com/oss-muri/muri/internal/cliconfig"
)

// Cmd is the reachable command: muri's find_reachable entry point.
var Cmd = &cobra.Command{
	Use:           "reachable",
	Short:         "List project files reachable from the entry points",
	Long:          `reachable walks the project's import graph from its entry points and prints every file the walk reached, one absolute path per line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	osfs := fs.NewOSFileSystem()

	cfg, err := cliconfig.Resolve(osfs)
	if err != nil {
		return err
	}

	files, err := muri.FindReachable(osfs, cfg)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}
