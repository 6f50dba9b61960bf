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

	"github.com/stretchr/testify/require"

	"github.com/zx-lang/zxc/pkg/arena"
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/lexer"
	"github.com/zx-lang/zxc/pkg/parser"
	"github.com/zx-lang/zxc/pkg/token"
)

// parseSource lexes and parses src in one shot, returning the ROOT node.
// Parser internals (parseExpression, parseType, ...) are unexported, so the
// full pipeline is the only seam these tests can drive from outside the
// package; each test still targets one grammar feature through a minimal
// enclosing program.
func parseSource(t *testing.T, src string) *ast.Node {
	t.Helper()
	var tokPool arena.Arena[token.Token]
	toks, err := lexer.Lex(src, &tokPool)
	require.NoError(t, err)

	var nodePool arena.Arena[ast.Node]
	root, err := parser.Parse(toks, &nodePool)
	require.NoError(t, err)
	return root
}

// parseOrError wraps stmtSrc in a minimal program and returns the parse
// result without asserting on it, for tests that expect a failure.
func parseOrError(t *testing.T, stmtSrc string) (*ast.Node, error) {
	t.Helper()
	return parseProgram(t, "package demo; fun main() { "+stmtSrc+" }")
}

// parseProgram lexes and parses a full, self-contained source text (unlike
// parseSource, it doesn't assert success), for tests that expect a parse
// failure.
func parseProgram(t *testing.T, src string) (*ast.Node, error) {
	t.Helper()
	var tokPool arena.Arena[token.Token]
	toks, err := lexer.Lex(src, &tokPool)
	require.NoError(t, err)

	var nodePool arena.Arena[ast.Node]
	return parser.Parse(toks, &nodePool)
}

func rules(nodes []*ast.Node) []ast.Rule {
	out := make([]ast.Rule, len(nodes))
	for i, n := range nodes {
		out[i] = n.Rule
	}
	return out
}

func firstFunctionBody(t *testing.T, root *ast.Node) *ast.Node {
	t.Helper()
	for _, child := range root.Children {
		if child.Rule == ast.Function {
			for _, c := range child.Children {
				if c.Rule == ast.Block {
					return c
				}
			}
		}
	}
	t.Fatal("no function with a body found")
	return nil
}
