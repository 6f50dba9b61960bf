// Copyright 2026 The zxc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx-lang/zxc/pkg/convert"
	"github.com/zx-lang/zxc/pkg/resolve"
	"github.com/zx-lang/zxc/pkg/ztext"
)

func zslice(s string) ztext.Slice { return ztext.Slice(s) }

func newCfg(t *testing.T, files map[string]string) *resolve.Config {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return &resolve.Config{FS: fs, StdRoot: "/std"}
}

func TestConvertMinimalProgram(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `package demo; fun main() { return 0; }`,
	})

	files, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)

	fc := files[0]
	assert.Equal(t, "/proj/main.zx", fc.Path)
	require.Contains(t, fc.Functions, zslice("main"))
	assert.Empty(t, fc.Imports)
}

func TestConvertFollowsImports(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `package demo; import "util.zx"; fun main() { return 0; }`,
		"/proj/util.zx": `package demo.util; fun helper() { return 1; }`,
	})

	files, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.NoError(t, err)
	require.Len(t, files, 2)

	root := files[0]
	require.Len(t, root.Imports, 1)
	imported := files[root.Imports[0]]
	assert.Equal(t, "/proj/util.zx", imported.Path)
	assert.Contains(t, imported.Functions, zslice("helper"))
}

func TestConvertDetectsCircularImport(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/a.zx": `package demo; import "b.zx"; fun a() { return 0; }`,
		"/proj/b.zx": `package demo; import "a.zx"; fun b() { return 0; }`,
	})

	_, err := convert.Convert("/proj/a.zx", cfg, &convert.Pools{}, nil)
	require.Error(t, err)

	cerr, ok := err.(*convert.CircularImportError)
	require.True(t, ok)
	assert.Equal(t, []string{"/proj/a.zx", "/proj/b.zx", "/proj/a.zx"}, cerr.Chain())
}

func TestConvertDiamondStdImportIsNotCircular(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `package demo; import "@std/a"; import "@std/b"; fun main() { return 0; }`,
		"/std/a.zx":      `package std.a; import "@std/shared"; fun a() { return 0; }`,
		"/std/b.zx":      `package std.b; import "@std/shared"; fun b() { return 0; }`,
		"/std/shared.zx": `package std.shared; fun shared() { return 0; }`,
	})

	files, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.NoError(t, err)
	// main, a, b, shared: shared is reached twice but only converted once.
	assert.Len(t, files, 4)
}

func TestConvertMissingPackageDeclarationFails(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `fun main() { return 0; }`,
	})
	_, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.Error(t, err)
}

func TestConvertBuildsModDeclarations(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `package demo;
mod counters {
	let count: num = 0;
	pub fun next() -> num { return 1; }
}`,
	})

	files, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)

	m, ok := files[0].Modules[zslice("counters")]
	require.True(t, ok)
	assert.Contains(t, m.Declarations, zslice("count"))
	assert.Contains(t, m.Functions, zslice("next"))
	assert.True(t, m.Functions[zslice("next")].Public)
}

func TestDependencyOrderPlacesLeavesBeforeRoot(t *testing.T) {
	cfg := newCfg(t, map[string]string{
		"/proj/main.zx": `package demo; import "util.zx"; fun main() { return 0; }`,
		"/proj/util.zx": `package demo.util; fun helper() { return 1; }`,
	})

	files, err := convert.Convert("/proj/main.zx", cfg, &convert.Pools{}, nil)
	require.NoError(t, err)

	ordered := convert.DependencyOrder(files)
	require.Len(t, ordered, 2)
	assert.Equal(t, "/proj/util.zx", ordered[0].Path)
	assert.Equal(t, "/proj/main.zx", ordered[1].Path)
}
