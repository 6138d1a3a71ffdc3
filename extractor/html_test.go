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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractScriptsExternalModule(t *testing.T) {
	content := []byte(`<!doctype html><html><body>
<script type="module" src="./main.js"></script>
<script src="./legacy.js"></script>
</body></html>`)

	scripts, err := ExtractScripts(content)
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	require.Equal(t, "module", scripts[0].Type)
	require.Equal(t, "./main.js", scripts[0].Src)
	require.Equal(t, "./legacy.js", scripts[1].Src)
}

func TestExtractScriptsInline(t *testing.T) {
	content := []byte(`<html><body>
<script type="module">import "./foo.js";</script>
</body></html>`)

	scripts, err := ExtractScripts(content)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	require.True(t, scripts[0].Inline)
	require.Equal(t, `import "./foo.js";`, scripts[0].Content)
}

func TestHTMLImportsModuleSrc(t *testing.T) {
	content := []byte(`<script type="module" src="./main.js"></script>`)

	imports, err := HTMLImports(content)
	require.NoError(t, err)
	require.Len(t, imports, 1)
	require.Equal(t, "./main.js", imports[0].Specifier)
	require.Equal(t, Static, imports[0].Kind)
}

func TestHTMLImportsNonModuleSrcIgnored(t *testing.T) {
	content := []byte(`<script src="./legacy.js"></script>`)

	imports, err := HTMLImports(content)
	require.NoError(t, err)
	require.Empty(t, imports)
}

func TestHTMLImportsInlineModule(t *testing.T) {
	content := []byte(`<script type="module">
import foo from "./foo.js";
const mod = await import("./dynamic.js");
</script>`)

	imports, err := HTMLImports(content)
	require.NoError(t, err)
	require.Len(t, imports, 2)
}

func TestHTMLImportsInlineNonModuleOnlyDynamic(t *testing.T) {
	content := []byte(`<script>
const mod = import("./dynamic.js");
</script>`)

	imports, err := HTMLImports(content)
	require.NoError(t, err)
	require.Len(t, imports, 1)
	require.Equal(t, Dynamic, imports[0].Kind)
}
