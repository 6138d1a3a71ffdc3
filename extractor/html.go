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
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ScriptTag is a single <script> element found in an HTML document.
type ScriptTag struct {
	Type    string // the type attribute, e.g. "module"
	Src     string // the src attribute, for external scripts
	Inline  bool   // true when the script has inline content instead of src
	Content string // inline script content, trimmed
}

// ExtractScripts parses HTML content and returns every <script> tag it
// contains. Uses golang.org/x/net/html for fast parsing instead of
// tree-sitter, the same tradeoff the HTML compiler here is grounded on.
func ExtractScripts(content []byte) ([]ScriptTag, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var scripts []ScriptTag
	extractScriptsFromNode(doc, &scripts)
	return scripts, nil
}

func extractScriptsFromNode(n *html.Node, scripts *[]ScriptTag) {
	if n.Type == html.ElementNode && n.Data == "script" {
		script := ScriptTag{}
		for _, attr := range n.Attr {
			switch attr.Key {
			case "type":
				script.Type = attr.Val
			case "src":
				script.Src = attr.Val
			}
		}
		if script.Src == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			rawContent := strings.TrimSpace(n.FirstChild.Data)
			if rawContent != "" {
				script.Content = rawContent
				script.Inline = true
			}
		}
		*scripts = append(*scripts, script)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractScriptsFromNode(c, scripts)
	}
}

// HTMLImports extracts the import specifiers that a graph engine should
// follow from an HTML document: the src of every module script, plus every
// static and dynamic import inside inline module scripts. Non-module inline
// scripts only contribute their dynamic imports, mirroring the way a browser
// only treats `type="module"` scripts as ES modules.
func HTMLImports(content []byte) ([]Import, error) {
	scripts, err := ExtractScripts(content)
	if err != nil {
		return nil, err
	}

	var imports []Import
	for _, script := range scripts {
		isModule := script.Type == "module"

		if script.Src != "" {
			if isModule {
				imports = append(imports, Import{Specifier: script.Src, Kind: Static})
			}
			continue
		}

		if !script.Inline || script.Content == "" {
			continue
		}

		inline, err := ExtractImports([]byte(script.Content))
		if err != nil {
			continue
		}
		for _, imp := range inline {
			if isModule || imp.Kind == Dynamic {
				imports = append(imports, imp)
			}
		}
	}
	return imports, nil
}
