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

	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/ztext"
)

func valueLeaf(rule ast.Rule, value string) *ast.Node {
	return &ast.Node{Rule: rule, Value: ztext.Slice(value), HasValue: true}
}

func TestEqualIgnoresPositionInNestedTree(t *testing.T) {
	a := &ast.Node{Rule: ast.Sum, Line: 1, Column: 1, Children: []*ast.Node{
		valueLeaf(ast.NumberLiteral, "1"), valueLeaf(ast.NumberLiteral, "2"),
	}}
	b := &ast.Node{Rule: ast.Sum, Line: 99, Column: 5, Children: []*ast.Node{
		valueLeaf(ast.NumberLiteral, "1"), valueLeaf(ast.NumberLiteral, "2"),
	}}
	assert.True(t, ast.Equal(a, b), ast.Diff(a, b))
}

func TestEqualDetectsValueMismatch(t *testing.T) {
	a := &ast.Node{Rule: ast.Identifier, Children: []*ast.Node{valueLeaf(ast.NumberLiteral, "1")}}
	b := &ast.Node{Rule: ast.Identifier, Children: []*ast.Node{valueLeaf(ast.NumberLiteral, "2")}}
	assert.False(t, ast.Equal(a, b))
	assert.NotEmpty(t, ast.Diff(a, b))
}

func TestEqualDetectsChildCountMismatch(t *testing.T) {
	a := &ast.Node{Rule: ast.Block, Children: []*ast.Node{valueLeaf(ast.Return, "")}}
	b := &ast.Node{Rule: ast.Block}
	assert.False(t, ast.Equal(a, b))
}

func TestEqualNilHandling(t *testing.T) {
	assert.True(t, ast.Equal(nil, nil))
	assert.False(t, ast.Equal(&ast.Node{}, nil))
}
