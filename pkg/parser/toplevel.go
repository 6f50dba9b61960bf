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
)

// parseRoot implements the top-level state machine: exactly one package
// declaration, followed by any mix of imports, functions, and mods. Imports
// are only legal before any function/mod.
func (p *parser) parseRoot() (*ast.Node, error) {
	first, ok := p.tokens.Peek()
	line, col := 1, 1
	if ok {
		line, col = first.Line, first.Column
	}
	root := p.newNodeAt(ast.Root, line, col)

	pkg, err := p.parsePackage()
	if err != nil {
		return nil, err
	}
	root.AddChild(pkg)

	seenBody := false
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case token.Import:
			if seenBody {
				return nil, p.fail(tok, "import must appear before any function or mod")
			}
			imp, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			root.AddChild(imp)

		case token.Pub:
			p.tokens.Next()
			next, ok := p.tokens.Peek()
			if !ok {
				return nil, p.failAt(tok.Line, tok.Column, "pub at end of input")
			}
			switch next.Kind {
			case token.Function:
				fn, err := p.parseFunction(true)
				if err != nil {
					return nil, err
				}
				root.AddChild(fn)
			case token.Mod:
				m, err := p.parseMod(true)
				if err != nil {
					return nil, err
				}
				root.AddChild(m)
			default:
				return nil, p.fail(next, "pub must be followed by fun or mod")
			}
			seenBody = true

		case token.Function:
			fn, err := p.parseFunction(false)
			if err != nil {
				return nil, err
			}
			root.AddChild(fn)
			seenBody = true

		case token.Mod:
			m, err := p.parseMod(false)
			if err != nil {
				return nil, err
			}
			root.AddChild(m)
			seenBody = true

		default:
			return nil, p.fail(tok, "expected import, fun, mod, or pub")
		}
	}

	return root, nil
}

// parsePackage expects `package a.b.c;` and emits a PACKAGE node whose
// children are the dotted IDENTIFIER sequence.
func (p *parser) parsePackage() (*ast.Node, error) {
	kw, err := p.expect(token.Package)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Package, kw.Line, kw.Column)

	for {
		id, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		node.AddChild(p.newLeaf(ast.Identifier, id))

		tok, ok := p.tokens.Peek()
		if !ok {
			return nil, p.failAt(id.Line, id.Column, "unterminated package declaration")
		}
		if tok.Kind != token.Dot {
			break
		}
		p.tokens.Next()
	}

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return node, nil
}

// parseImport expects `import "path";` and stores the literal value on the
// IMPORT node.
func (p *parser) parseImport() (*ast.Node, error) {
	kw, err := p.expect(token.Import)
	if err != nil {
		return nil, err
	}
	str, err := p.expect(token.StringLiteral)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	node := p.newLeaf(ast.Import, str)
	node.Line, node.Column = kw.Line, kw.Column
	return node, nil
}
