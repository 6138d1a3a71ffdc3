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

// Package canon canonicalizes filesystem paths to the absolute,
// symlink-resolved form the collector and resolver compare against.
package canon

import "path/filepath"

// Canonicalize resolves path to an absolute form, following symlinks where
// possible. A path that doesn't exist yet (or whose symlinks can't be
// resolved) still canonicalizes to its absolute form — canonicalization
// only fails when even an absolute path can't be computed, e.g. the
// process's working directory no longer exists.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
