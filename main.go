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

// Command muri finds JS/TS project files unreachable from their entry
// points.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oss-muri/muri/cmd/check"
	"github.com/oss-muri/muri/cmd/reachable"
	"github.com/oss-muri/muri/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:           "muri",
	Short:         "Find unused files in JS/TS projects",
	Long:          `muri walks a project's import graph from its entry points and reports every project file never reached.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          check.Run,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (muri.json or muri.jsonc)")
	rootCmd.PersistentFlags().StringArrayP("entry", "e", nil, "Entry point files or glob patterns (repeatable)")
	rootCmd.PersistentFlags().StringArrayP("project", "p", nil, "Project files to check, glob patterns (repeatable)")
	rootCmd.PersistentFlags().StringP("cwd", "C", ".", "Working directory")
	rootCmd.PersistentFlags().StringArray("ignore", nil, "Glob patterns to ignore (repeatable)")
	rootCmd.PersistentFlags().String("format", "text", "Output format (text, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Warn about foreign-asset files resolved but not analyzed")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("entry", rootCmd.PersistentFlags().Lookup("entry"))
	_ = viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag("cwd", rootCmd.PersistentFlags().Lookup("cwd"))
	_ = viper.BindPFlag("ignore", rootCmd.PersistentFlags().Lookup("ignore"))
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(reachable.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	if !errors.Is(err, check.ErrUnusedFilesFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
