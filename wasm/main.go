//go:build js && wasm

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

// Package main provides the WASM entry point for muri, letting a browser
// or Node host run find_unused/find_reachable over an in-memory project
// tree without ever touching a real filesystem.
package main

import (
	"syscall/js"

	muri "github.com/oss-muri/muri"
	"github.com/oss-muri/muri/internal/mapfs"
)

func main() {
	ns := make(map[string]any)
	ns["check"] = js.FuncOf(check)
	ns["reachable"] = js.FuncOf(reachable)

	js.Global().Set("muri", js.ValueOf(ns))

	select {}
}

// check is muri.check(files, options) in JS: files is an object mapping
// absolute path to file content, options may set cwd, entry, project and
// ignore (see parseConfig). Returns a Promise resolving to the Report's
// JSON shape.
func check(this js.Value, args []js.Value) any {
	return runAsync(args, func(fs *mapfs.MapFileSystem, cfg muri.Config) (any, error) {
		rpt, err := muri.FindUnused(fs, cfg)
		if err != nil {
			return nil, err
		}
		return rpt.ToJSON(), nil
	})
}

// reachable is muri.reachable(files, options) in JS, the find_reachable
// companion: resolves to a JSON array of reachable absolute paths.
func reachable(this js.Value, args []js.Value) any {
	return runAsync(args, func(fs *mapfs.MapFileSystem, cfg muri.Config) (any, error) {
		files, err := muri.FindReachable(fs, cfg)
		if err != nil {
			return nil, err
		}
		return jsStringArray(files), nil
	})
}

// runAsync parses args into an in-memory filesystem and Config, runs fn
// off the JS thread, and wraps the result in a Promise, matching the
// teacher's wasm/main.go Promise-wrapping pattern around a goroutine.
func runAsync(args []js.Value, fn func(*mapfs.MapFileSystem, muri.Config) (any, error)) any {
	handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) any {
		resolve := promiseArgs[0]
		reject := promiseArgs[1]

		go func() {
			if len(args) < 1 {
				reject.Invoke(js.Global().Get("Error").New("check/reachable requires a files object argument"))
				return
			}

			fs := parseFiles(args[0])
			cfg := parseConfig(args)

			result, err := fn(fs, cfg)
			if err != nil {
				reject.Invoke(js.Global().Get("Error").New(err.Error()))
				return
			}
			resolve.Invoke(js.ValueOf(result))
		}()

		return nil
	})

	promise := js.Global().Get("Promise").New(handler)
	handler.Release()
	return promise
}

// parseFiles builds an in-memory filesystem from a JS object mapping
// absolute path to file content.
func parseFiles(obj js.Value) *mapfs.MapFileSystem {
	fs := mapfs.New()
	keys := js.Global().Get("Object").Call("keys", obj)
	for i := range keys.Length() {
		path := keys.Index(i).String()
		fs.AddFile(path, obj.Get(path).String(), 0o644)
	}
	return fs
}

// parseConfig reads the optional second argument into a Config, defaulting
// Cwd to "/" when absent since WASM callers have no real working directory.
func parseConfig(args []js.Value) muri.Config {
	cfg := muri.Config{Cwd: "/"}
	if len(args) < 2 || args[1].IsUndefined() || args[1].IsNull() {
		return cfg
	}

	opts := args[1]
	if v := opts.Get("cwd"); !v.IsUndefined() && !v.IsNull() {
		cfg.Cwd = v.String()
	}
	if v := opts.Get("entry"); !v.IsUndefined() && !v.IsNull() {
		cfg.Entry = jsGoStringArray(v)
	}
	if v := opts.Get("project"); !v.IsUndefined() && !v.IsNull() {
		cfg.Project = jsGoStringArray(v)
	}
	if v := opts.Get("ignore"); !v.IsUndefined() && !v.IsNull() {
		cfg.Ignore = jsGoStringArray(v)
	}
	return cfg
}

func jsGoStringArray(v js.Value) []string {
	out := make([]string, v.Length())
	for i := range v.Length() {
		out[i] = v.Index(i).String()
	}
	return out
}

func jsStringArray(in []string) js.Value {
	out := js.Global().Get("Array").New(len(in))
	for i, s := range in {
		out.SetIndex(i, s)
	}
	return out
}
