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

// Package parser implements the recursive, precedence-aware parser that
// turns a token Stream into a tagged AST. The expression grammar is handled
// by a queue-driven subparser (see expr.go) that avoids recursing into
// nested parenthesized groups; everything else is a conventional per-rule
// recursive-descent dispatch.
package parser

import (
	"fmt"

	"github.com/zx-lang/zxc/pkg/arena"
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/stream"
	"github.com/zx-lang/zxc/pkg/token"
)

type parser struct {
	tokens *stream.Stream[*token.Token]
	nodes  *arena.Arena[ast.Node]
}

// Parse consumes tokens and returns the ROOT of the parsed tree: a PACKAGE
// node followed by zero or more of IMPORT/FUNCTION/MOD, in source order.
func Parse(tokens *stream.Stream[*token.Token], nodes *arena.Arena[ast.Node]) (*ast.Node, error) {
	p := &parser{tokens: tokens, nodes: nodes}
	return p.parseRoot()
}

func (p *parser) newNodeAt(rule ast.Rule, line, column int) *ast.Node {
	n := p.nodes.New()
	n.Rule = rule
	n.Line = line
	n.Column = column
	return n
}

func (p *parser) newLeaf(rule ast.Rule, tok *token.Token) *ast.Node {
	n := p.nodes.New()
	n.Rule = rule
	n.Value = tok.Value
	n.HasValue = tok.HasValue()
	n.Line = tok.Line
	n.Column = tok.Column
	return n
}

func (p *parser) expect(kind token.Kind) (*token.Token, error) {
	return p.expectFrom(p.tokens, kind)
}

func (p *parser) expectFrom(tokens *stream.Stream[*token.Token], kind token.Kind) (*token.Token, error) {
	tok, ok := tokens.Next()
	if !ok {
		return nil, p.failAt(0, 0, fmt.Sprintf("expected %s, found end of input", kind))
	}
	if tok.Kind != kind {
		return nil, p.fail(tok, fmt.Sprintf("expected %s", kind))
	}
	return tok, nil
}

func (p *parser) fail(tok *token.Token, msg string) error {
	return diag.New(diag.PhaseParser, diag.KindUnexpectedToken, tok.Line, tok.Column,
		fmt.Sprintf("%s, found %s", msg, tok.Kind))
}

func (p *parser) failAt(line, column int, msg string) error {
	return diag.New(diag.PhaseParser, diag.KindUnexpectedToken, line, column, msg)
}
