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

func TestBlockDeclarationAndAssignment(t *testing.T) {
	root := parseSource(t, `package demo; fun main() {
		let x: num = 1;
		x = 2;
	}`)
	block := firstFunctionBody(t, root)
	assert.Equal(t, []ast.Rule{ast.Declaration, ast.Assignment}, rules(block.Children))

	decl := block.Children[0]
	assert.Equal(t, "x", decl.Children[0].Value.String())

	assign := block.Children[1]
	assert.Equal(t, "x", assign.Children[0].Value.String())
	assert.Equal(t, ast.Expression, assign.Children[1].Rule)
}

func TestBlockIfElseIfElse(t *testing.T) {
	root := parseSource(t, `package demo; fun main() {
		if a {
			return 1;
		} elseif b {
			return 2;
		} else {
			return 3;
		}
	}`)
	block := firstFunctionBody(t, root)
	require.Len(t, block.Children, 1)
	ifNode := block.Children[0]
	require.Equal(t, ast.If, ifNode.Rule)

	assert.Equal(t, []ast.Rule{ast.Expression, ast.Block, ast.ElseIf, ast.Else}, rules(ifNode.Children))

	elseIf := ifNode.Children[2]
	assert.Equal(t, []ast.Rule{ast.Expression, ast.Block}, rules(elseIf.Children))

	elseNode := ifNode.Children[3]
	require.Len(t, elseNode.Children, 1)
	assert.Equal(t, ast.Block, elseNode.Children[0].Rule)
}

func TestBlockWhile(t *testing.T) {
	root := parseSource(t, `package demo; fun main() {
		while x {
			return 0;
		}
	}`)
	block := firstFunctionBody(t, root)
	whileNode := block.Children[0]
	require.Equal(t, ast.While, whileNode.Rule)
	assert.Equal(t, []ast.Rule{ast.Expression, ast.Block}, rules(whileNode.Children))
}

func TestBlockForWithStep(t *testing.T) {
	root := parseSource(t, `package demo; fun main() {
		for i in 0 to 10 step 2 {
			return 0;
		}
	}`)
	block := firstFunctionBody(t, root)
	forNode := block.Children[0]
	require.Equal(t, ast.For, forNode.Rule)
	assert.Equal(t, []ast.Rule{ast.Identifier, ast.From, ast.To, ast.Step, ast.Block}, rules(forNode.Children))

	toNode := forNode.Children[2]
	require.Len(t, toNode.Children, 1)
	assert.Equal(t, ast.Expression, toNode.Children[0].Rule)
}

func TestBlockForWithoutStep(t *testing.T) {
	root := parseSource(t, `package demo; fun main() {
		for i in 0 to 10 {
			return 0;
		}
	}`)
	block := firstFunctionBody(t, root)
	forNode := block.Children[0]
	assert.Equal(t, []ast.Rule{ast.Identifier, ast.From, ast.To, ast.Block}, rules(forNode.Children))
}

func TestBlockElseIfWithoutIfFails(t *testing.T) {
	root, err := parseProgram(t, `package demo; fun main() { elseif x { return 0; } }`)
	require.Error(t, err)
	assert.Nil(t, root)
}

func TestBlockUnterminatedFails(t *testing.T) {
	root, err := parseProgram(t, `package demo; fun main() { let x: num = 1;`)
	require.Error(t, err)
	assert.Nil(t, root)
}
