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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx-lang/zxc/pkg/convert"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/registry"
	"github.com/zx-lang/zxc/pkg/ztext"
)

func TestNewPkgCreatesNestedPrefixes(t *testing.T) {
	reg := registry.New()
	leaf := reg.Root.NewPkg([]string{"a", "b", "c"})
	require.NotNil(t, leaf)
	assert.Equal(t, "c", leaf.Name)
}

func TestNewPkgIsIdempotent(t *testing.T) {
	reg := registry.New()
	first := reg.Root.NewPkg([]string{"a", "b"})
	second := reg.Root.NewPkg([]string{"a", "b"})
	assert.Same(t, first, second)
}

func TestSetFunctionReservesThenReturnsSameHandle(t *testing.T) {
	reg := registry.New()
	pkg := reg.Root.NewPkg([]string{"demo"})

	fn, isNew, err := pkg.SetFunction("main")
	require.NoError(t, err)
	assert.True(t, isNew)
	require.NotNil(t, fn)

	again, isNew, err := pkg.SetFunction("main")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Same(t, fn, again)
}

func TestSetFunctionMismatchAgainstModule(t *testing.T) {
	reg := registry.New()
	pkg := reg.Root.NewPkg([]string{"demo"})

	_, _, err := pkg.SetModule("shared")
	require.NoError(t, err)

	_, _, err = pkg.SetFunction("shared")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.KindSymbolMismatch, d.Kind)
}

func TestSetModuleReservesThenReturnsSameHandle(t *testing.T) {
	reg := registry.New()
	pkg := reg.Root.NewPkg([]string{"demo"})

	m, isNew, err := pkg.SetModule("math")
	require.NoError(t, err)
	assert.True(t, isNew)
	require.NotNil(t, m.Declarations)
	require.NotNil(t, m.Functions)

	again, isNew, err := pkg.SetModule("math")
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Same(t, m, again)
}

func TestResolveNotFound(t *testing.T) {
	reg := registry.New()
	pkg := reg.Root.NewPkg([]string{"demo"})

	_, err := pkg.Resolve("missing", registry.KindFunction)
	require.Error(t, err)
	d := err.(*diag.Diagnostic)
	assert.Equal(t, diag.KindSymbolNotFound, d.Kind)
}

func TestResolvePathDescendsPackagesAndAllowsModuleTerminal(t *testing.T) {
	reg := registry.New()
	leaf := reg.Root.NewPkg([]string{"a", "b"})
	_, _, err := leaf.SetModule("util")
	require.NoError(t, err)

	sym, err := reg.Root.ResolvePath("a.b.util", true)
	require.NoError(t, err)
	assert.Equal(t, registry.KindModule, sym.Kind)

	_, err = reg.Root.ResolvePath("a.b.util", false)
	require.Error(t, err)
}

func TestBuildMergesSiblingFileDeclarations(t *testing.T) {
	first := &convert.FileCode{
		PackageChain: []ztext.Slice{"demo"},
		Functions: map[ztext.Slice]*convert.Function{
			"main": {Public: true},
		},
		Modules: map[ztext.Slice]*convert.Mod{
			"shared": {
				Declarations: map[ztext.Slice]*convert.Declaration{
					"count": {IsConst: true},
				},
				Functions: map[ztext.Slice]*convert.Function{},
			},
		},
	}
	second := &convert.FileCode{
		PackageChain: []ztext.Slice{"demo"},
		Functions:    map[ztext.Slice]*convert.Function{},
		Modules: map[ztext.Slice]*convert.Mod{
			"shared": {
				Declarations: map[ztext.Slice]*convert.Declaration{
					"total": {IsConst: false},
				},
				Functions: map[ztext.Slice]*convert.Function{},
			},
		},
	}

	reg, err := registry.Build([]*convert.FileCode{first, second})
	require.NoError(t, err)

	pkg := reg.Root.NewPkg([]string{"demo"})
	sym, err := pkg.Resolve("shared", registry.KindModule)
	require.NoError(t, err)
	assert.Contains(t, sym.Module.Declarations, ztext.Slice("count"))
	assert.Contains(t, sym.Module.Declarations, ztext.Slice("total"))

	fnSym, err := pkg.Resolve("main", registry.KindFunction)
	require.NoError(t, err)
	assert.True(t, fnSym.Function.Public)
}
