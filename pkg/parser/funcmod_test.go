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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zx-lang/zxc/pkg/ast"
)

func TestFunctionWithArgsAndReturnType(t *testing.T) {
	root := parseSource(t, `package demo; fun add(a: num, b: num) -> num { return a; }`)
	require.Len(t, root.Children, 2) // PACKAGE, FUNCTION
	fn := root.Children[1]
	require.Equal(t, ast.Function, fn.Rule)

	assert.Equal(t, ast.Identifier, fn.Children[0].Rule)
	assert.Equal(t, "add", fn.Children[0].Value.String())

	args := fn.Children[1]
	require.Equal(t, ast.Arguments, args.Rule)
	require.Len(t, args.Children, 2)
	assert.Equal(t, "a", args.Children[0].Children[0].Value.String())
	assert.Equal(t, ast.Num, args.Children[0].Children[1].Children[0].Rule)

	retType := fn.Children[2]
	require.Equal(t, ast.Type, retType.Rule)
	assert.Equal(t, ast.Num, retType.Children[0].Rule)

	block := fn.Children[3]
	assert.Equal(t, ast.Block, block.Rule)
}

func TestPublicFunctionHasPublicMarker(t *testing.T) {
	root := parseSource(t, `package demo; pub fun main() { return 0; }`)
	fn := root.Children[1]
	require.Equal(t, ast.Function, fn.Rule)
	assert.Equal(t, ast.Public, fn.Children[0].Rule)
}

func TestFunctionWithNoReturnTypeHasNoTypeChild(t *testing.T) {
	root := parseSource(t, `package demo; fun main() { return 0; }`)
	fn := root.Children[1]
	for _, c := range fn.Children {
		assert.NotEqual(t, ast.Type, c.Rule, "no return type was written")
	}
}

func TestModWithDeclarationAndFunctions(t *testing.T) {
	root := parseSource(t, `package demo;
mod counters {
	derive Clone, Debug;
	let count: num = 0;
	const max: num = 10;
	fun internal() { return 0; }
	pub fun next() -> num { return 1; }
}`)
	mod := root.Children[1]
	require.Equal(t, ast.Mod, mod.Rule)

	assert.Equal(t, []ast.Rule{
		ast.Identifier, ast.Derive, ast.Declaration, ast.ConstDeclaration,
		ast.Function, ast.Function,
	}, rules(mod.Children))

	derive := mod.Children[1]
	require.Len(t, derive.Children, 2)
	assert.Equal(t, "Clone", derive.Children[0].Value.String())
	assert.Equal(t, "Debug", derive.Children[1].Value.String())

	lastFn := mod.Children[len(mod.Children)-1]
	assert.Equal(t, ast.Public, lastFn.Children[0].Rule)
}

func TestModDeriveWithoutDeclarationFails(t *testing.T) {
	root, err := parseProgram(t, `package demo; mod bad { derive Clone; fun oops() { return 0; } }`)
	require.Error(t, err)
	assert.Nil(t, root)
}

func TestModDeriveRequiresAtLeastOneIdentifier(t *testing.T) {
	root, err := parseProgram(t, `package demo; mod bad { derive; let x: num = 0; }`)
	require.Error(t, err)
	assert.Nil(t, root)
}

func TestModDeriveRejectsTrailingComma(t *testing.T) {
	root, err := parseProgram(t, `package demo; mod bad { derive Clone,; let x: num = 0; }`)
	require.Error(t, err)
	assert.Nil(t, root)
}
