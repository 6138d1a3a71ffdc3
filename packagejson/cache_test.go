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
package packagejson

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetOrLoadCallsLoaderOnce(t *testing.T) {
	cache := NewMemoryCache()
	var loads int32

	loader := func() (*PackageJSON, error) {
		atomic.AddInt32(&loads, 1)
		return &PackageJSON{Name: "widgets"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pkg, err := cache.GetOrLoad("/root/packages/widgets/package.json", loader)
			require.NoError(t, err)
			require.Equal(t, "widgets", pkg.Name)
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, loads)
}

func TestMemoryCacheInvalidateForcesReload(t *testing.T) {
	cache := NewMemoryCache()
	var loads int32

	loader := func() (*PackageJSON, error) {
		atomic.AddInt32(&loads, 1)
		return &PackageJSON{Name: "widgets"}, nil
	}

	_, err := cache.GetOrLoad("/root/pkg/package.json", loader)
	require.NoError(t, err)
	cache.Invalidate("/root/pkg/package.json")
	_, err = cache.GetOrLoad("/root/pkg/package.json", loader)
	require.NoError(t, err)

	require.EqualValues(t, 2, loads)
}

func TestMemoryCacheGetSet(t *testing.T) {
	cache := NewMemoryCache()
	_, ok := cache.Get("/root/pkg/package.json")
	require.False(t, ok)

	cache.Set("/root/pkg/package.json", &PackageJSON{Name: "widgets"})
	pkg, ok := cache.Get("/root/pkg/package.json")
	require.True(t, ok)
	require.Equal(t, "widgets", pkg.Name)
}
