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
package extractor

import (
	"embed"
	"fmt"
	"path"
	"sync"

	ts "github.com/tree-sitter/go-tree-sitter"
	tsTypescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

//go:embed queries/*/*.scm
var queryFiles embed.FS

// language holds the pre-initialized TypeScript grammar. Unlike the teacher,
// there is no HTML grammar here: HTML script-tag scanning uses
// golang.org/x/net/html (see html.go), not a tree-sitter query, matching
// what the teacher's own ExtractScripts actually runs.
var language = ts.NewLanguage(tsTypescript.LanguageTypescript())

var tsParserPool = sync.Pool{
	New: func() any {
		parser := ts.NewParser()
		if err := parser.SetLanguage(language); err != nil {
			panic("extractor: failed to set TypeScript language: " + err.Error())
		}
		return parser
	},
}

func getTSParser() *ts.Parser {
	return tsParserPool.Get().(*ts.Parser)
}

func putTSParser(p *ts.Parser) {
	p.Reset()
	tsParserPool.Put(p)
}

// QueryManager loads and owns compiled tree-sitter queries for the
// TypeScript grammar.
type QueryManager struct {
	mu     sync.Mutex
	closed bool
	byName map[string]*ts.Query
}

// NewQueryManager loads the named queries under queries/typescript/*.scm.
func NewQueryManager(names []string) (*QueryManager, error) {
	qm := &QueryManager{byName: make(map[string]*ts.Query, len(names))}
	for _, name := range names {
		if err := qm.loadQuery(name); err != nil {
			qm.Close()
			return nil, err
		}
	}
	return qm, nil
}

func (qm *QueryManager) loadQuery(name string) error {
	queryPath := path.Join("queries", "typescript", name+".scm")
	data, err := queryFiles.ReadFile(queryPath)
	if err != nil {
		return fmt.Errorf("extractor: failed to read query %s: %w", queryPath, err)
	}
	query, qerr := ts.NewQuery(language, string(data))
	if qerr != nil {
		return fmt.Errorf("extractor: failed to parse query %s: %w", name, qerr)
	}
	qm.byName[name] = query
	return nil
}

// Query returns a compiled query by name.
func (qm *QueryManager) Query(name string) (*ts.Query, error) {
	q, ok := qm.byName[name]
	if !ok {
		return nil, fmt.Errorf("extractor: query not found: %s", name)
	}
	return q, nil
}

// Close releases all query resources. Safe to call multiple times.
func (qm *QueryManager) Close() {
	qm.mu.Lock()
	if qm.closed {
		qm.mu.Unlock()
		return
	}
	qm.closed = true
	queries := qm.byName
	qm.byName = nil
	qm.mu.Unlock()

	for _, q := range queries {
		q.Close()
	}
}

var (
	globalQM     *QueryManager
	globalQMOnce sync.Once
	globalQMErr  error
)

// getQueryManager returns the process-wide query manager, loading it on
// first use.
func getQueryManager() (*QueryManager, error) {
	globalQMOnce.Do(func() {
		globalQM, globalQMErr = NewQueryManager([]string{"imports"})
	})
	return globalQM, globalQMErr
}
