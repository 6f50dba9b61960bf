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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zx-lang/zxc/pkg/arena"
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/ztext"
)

func leaf(pool *arena.Arena[ast.Node], rule ast.Rule, value string) *ast.Node {
	n := pool.New()
	n.Rule = rule
	n.Value = ztext.Slice(value)
	n.HasValue = true
	return n
}

func TestRuleStringRoundTrips(t *testing.T) {
	assert.Equal(t, "ROOT", ast.Root.String())
	assert.Equal(t, "FUNCTION", ast.Function.String())
	assert.Equal(t, "INVALID", ast.Rule(255).String())
}

func TestNodeAddChildAndLeaf(t *testing.T) {
	var pool arena.Arena[ast.Node]
	root := pool.New()
	root.Rule = ast.Root
	assert.True(t, root.Leaf())

	child := pool.New()
	child.Rule = ast.Package
	root.AddChild(child)

	assert.False(t, root.Leaf())
	assert.Len(t, root.Children, 1)
	assert.Same(t, child, root.Children[0])
}

func TestEqualIgnoresPosition(t *testing.T) {
	var pool arena.Arena[ast.Node]

	a := pool.New()
	a.Rule = ast.NumberLiteral
	a.Line, a.Column = 1, 1

	b := pool.New()
	b.Rule = ast.NumberLiteral
	b.Line, b.Column = 99, 42

	assert.True(t, ast.Equal(a, b))
}

func TestEqualDetectsValueDifference(t *testing.T) {
	var pool arena.Arena[ast.Node]
	a := leaf(&pool, ast.Identifier, "x")
	b := leaf(&pool, ast.Identifier, "y")
	assert.False(t, ast.Equal(a, b))
	assert.True(t, ast.Equal(a, leaf(&pool, ast.Identifier, "x")))
}

func TestEqualDetectsShapeDifference(t *testing.T) {
	var pool arena.Arena[ast.Node]

	a := pool.New()
	a.Rule = ast.Arithmetic
	a.AddChild(&ast.Node{Rule: ast.NumberLiteral})

	b := pool.New()
	b.Rule = ast.Arithmetic
	b.AddChild(&ast.Node{Rule: ast.NumberLiteral})
	b.AddChild(&ast.Node{Rule: ast.NumberLiteral})

	assert.False(t, ast.Equal(a, b))
}
