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

// Package modcache caches parsed ModuleInfo per file path so the graph
// engine never parses the same file twice, even when two waves discover it
// through different import edges concurrently.
package modcache

import (
	"path/filepath"
	"sync"

	"github.com/oss-muri/muri/compiler"
	"github.com/oss-muri/muri/extractor"
	"github.com/oss-muri/muri/fs"
)

// Cache maps file paths to parsed ModuleInfo, coordinating concurrent
// first-access parses so only one goroutine parses a given file.
type Cache interface {
	// Get retrieves a cached ModuleInfo by path.
	Get(path string) (extractor.ModuleInfo, bool)

	// GetOrParse atomically retrieves from cache or parses path, with only
	// one goroutine executing the parse for a given path; others wait.
	GetOrParse(path string) (extractor.ModuleInfo, error)

	// Len reports the number of cached entries.
	Len() int
}

// entry coordinates a single in-flight parse.
type entry struct {
	info extractor.ModuleInfo
	err  error
	once sync.Once
}

// MemoryCache is a thread-safe, in-memory Cache backed by a compiler
// registry for non-JS/TS extensions (SCSS, HTML) and the TS/JS extractor
// for everything else.
type MemoryCache struct {
	fs        fs.FileSystem
	compilers *compiler.Registry
	mu        sync.RWMutex
	cache     map[string]extractor.ModuleInfo
	loading   sync.Map // map[string]*entry
}

// New builds a MemoryCache. compilers may be nil, in which case every file
// is parsed with the default TS/JS extractor regardless of extension.
func New(filesystem fs.FileSystem, compilers *compiler.Registry) *MemoryCache {
	return &MemoryCache{
		fs:        filesystem,
		compilers: compilers,
		cache:     make(map[string]extractor.ModuleInfo),
	}
}

// Get retrieves a cached ModuleInfo by path.
func (c *MemoryCache) Get(path string) (extractor.ModuleInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.cache[path]
	return info, ok
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// GetOrParse atomically retrieves from cache or parses path. Only one
// goroutine executes the parse for a given path; others block on it.
func (c *MemoryCache) GetOrParse(path string) (extractor.ModuleInfo, error) {
	c.mu.RLock()
	if info, ok := c.cache[path]; ok {
		c.mu.RUnlock()
		return info, nil
	}
	c.mu.RUnlock()

	actual, _ := c.loading.LoadOrStore(path, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		e.info, e.err = c.parse(path)
		if e.err == nil {
			c.mu.Lock()
			c.cache[path] = e.info
			c.mu.Unlock()
		}
	})

	return e.info, e.err
}

// parse reads path and extracts its imports, dispatching to a registered
// compiler for non-default extensions (SCSS, HTML) and the TS/JS tree-sitter
// extractor otherwise. A file that fails to parse still yields a ModuleInfo
// (with ParseError set) rather than aborting the caller's wave — the file
// is still reachable, it just contributes no further edges.
func (c *MemoryCache) parse(path string) (extractor.ModuleInfo, error) {
	content, err := c.fs.ReadFile(path)
	if err != nil {
		return extractor.ModuleInfo{}, err
	}

	ext := filepath.Ext(path)
	if comp, ok := c.compilers.For(ext); ok {
		imports, err := comp.Extract(content)
		if err != nil {
			return extractor.FromError(err), nil
		}
		return extractor.FromImports(imports), nil
	}

	imports, err := extractor.ExtractImports(content)
	if err != nil {
		return extractor.FromError(err), nil
	}
	return extractor.FromImports(imports), nil
}
