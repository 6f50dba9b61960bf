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

package parser

import (
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/token"
	"github.com/zx-lang/zxc/pkg/ztext"
)

var builtinTypeRules = map[token.Kind]ast.Rule{
	token.Str:     ast.Str,
	token.Num:     ast.Num,
	token.Dec:     ast.Dec,
	token.Bool:    ast.Bool,
	token.Nothing: ast.Nothing,
}

// parseType parses a TYPE: leading "&" tokens become PTR children (each "&&"
// contributes two), then a base (a built-in keyword, or a dotted package
// path for a user-defined type), optionally followed by "<" TYPE ("," TYPE)*
// ">" for generics.
func (p *parser) parseType() (*ast.Node, error) {
	first, ok := p.tokens.Peek()
	line, col := 1, 1
	if ok {
		line, col = first.Line, first.Column
	}
	node := p.newNodeAt(ast.Type, line, col)

	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case token.Ampersand:
			p.tokens.Next()
			node.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			continue
		case token.And:
			p.tokens.Next()
			node.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			node.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			continue
		}
		break
	}

	tok, ok := p.tokens.Peek()
	if !ok {
		return nil, p.failAt(line, col, "expected a type")
	}

	if rule, isBuiltin := builtinTypeRules[tok.Kind]; isBuiltin {
		p.tokens.Next()
		node.AddChild(p.newNodeAt(rule, tok.Line, tok.Column))
		return node, nil
	}

	if tok.Kind != token.Identifier {
		return nil, p.fail(tok, "expected a type")
	}

	name, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}
	node.AddChild(name)

	if open, ok := p.tokens.Peek(); ok && open.Kind == token.BoolLt {
		p.tokens.Next()
		for {
			generic, err := p.parseType()
			if err != nil {
				return nil, err
			}
			node.AddChild(generic)

			next, ok := p.tokens.Peek()
			if !ok {
				return nil, p.failAt(open.Line, open.Column, "unterminated generic argument list")
			}
			if next.Kind == token.Comma {
				p.tokens.Next()
				continue
			}
			if next.Kind == token.BoolGt {
				p.tokens.Next()
				break
			}
			return nil, p.fail(next, "expected ',' or '>' in generic argument list")
		}
	}

	return node, nil
}

// parseDottedName parses "a.b.c" and returns a single IDENTIFIER leaf whose
// value is the joined dotted name, which is all the converter's
// UserDefinedBase needs (spec.md §3's Type.name).
func (p *parser) parseDottedName() (*ast.Node, error) {
	id, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	joined := string(id.Value)

	for {
		tok, ok := p.tokens.Peek()
		if !ok || tok.Kind != token.Dot {
			break
		}
		p.tokens.Next()
		next, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		joined += "." + string(next.Value)
	}

	node := p.newNodeAt(ast.Identifier, id.Line, id.Column)
	node.Value = ztext.Slice(joined)
	node.HasValue = true
	return node, nil
}
