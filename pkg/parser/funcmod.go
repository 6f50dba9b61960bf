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

// parseFunction parses `fun NAME ( args? ) ( -> type )? { block }`. Missing
// return type means NOTHING (left unset here; the converter defaults it,
// spec.md §4.4).
func (p *parser) parseFunction(public bool) (*ast.Node, error) {
	kw, err := p.expect(token.Function)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Function, kw.Line, kw.Column)
	if public {
		node.AddChild(p.newNodeAt(ast.Public, kw.Line, kw.Column))
	}

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(p.newLeaf(ast.Identifier, name))

	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	node.AddChild(args)

	if arrow, ok := p.tokens.Peek(); ok && arrow.Kind == token.Arrow {
		p.tokens.Next()
		retType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		node.AddChild(retType)
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)

	return node, nil
}

// parseArgumentList parses "( args? )" where args is a comma-separated list
// of ARGUMENT nodes, each "NAME : TYPE".
func (p *parser) parseArgumentList() (*ast.Node, error) {
	open, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Arguments, open.Line, open.Column)

	if close, ok := p.tokens.Peek(); ok && close.Kind == token.CloseParen {
		p.tokens.Next()
		return node, nil
	}

	for {
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		argType, err := p.parseType()
		if err != nil {
			return nil, err
		}

		arg := p.newNodeAt(ast.Argument, nameTok.Line, nameTok.Column)
		arg.AddChild(p.newLeaf(ast.Identifier, nameTok))
		arg.AddChild(argType)
		node.AddChild(arg)

		next, ok := p.tokens.Peek()
		if !ok {
			return nil, p.failAt(open.Line, open.Column, "unterminated argument list")
		}
		if next.Kind == token.Comma {
			p.tokens.Next()
			continue
		}
		if next.Kind == token.CloseParen {
			p.tokens.Next()
			break
		}
		return nil, p.fail(next, "expected ',' or ')' in argument list")
	}

	return node, nil
}

// parseDerive parses `derive Ident (, Ident)* ;`, a semicolon-terminated,
// comma-separated list of at least one trait name. Each identifier becomes
// an IDENTIFIER child of the DERIVE node.
func (p *parser) parseDerive() (*ast.Node, error) {
	kw, err := p.expect(token.Derive)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Derive, kw.Line, kw.Column)

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(p.newLeaf(ast.Identifier, name))

	for {
		next, ok := p.tokens.Peek()
		if !ok {
			return nil, p.failAt(kw.Line, kw.Column, "unterminated derive list")
		}
		if next.Kind == token.Semicolon {
			p.tokens.Next()
			return node, nil
		}
		if next.Kind != token.Comma {
			return nil, p.fail(next, "expected ',' or ';' in derive list")
		}
		p.tokens.Next()
		name, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		node.AddChild(p.newLeaf(ast.Identifier, name))
	}
}

// parseMod parses `mod NAME { body }`. Body may contain let/const
// declarations, nested functions, and derive trait references; a derive
// attaches to the immediately following declaration only.
func (p *parser) parseMod(public bool) (*ast.Node, error) {
	kw, err := p.expect(token.Mod)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Mod, kw.Line, kw.Column)
	if public {
		node.AddChild(p.newNodeAt(ast.Public, kw.Line, kw.Column))
	}

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(p.newLeaf(ast.Identifier, name))

	if _, err := p.expect(token.OpenCurly); err != nil {
		return nil, err
	}

	pendingDerive := false
	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			return nil, p.failAt(kw.Line, kw.Column, "unterminated mod body")
		}
		if tok.Kind == token.CloseCurly {
			if pendingDerive {
				return nil, p.fail(tok, "derive must be followed by a declaration")
			}
			p.tokens.Next()
			break
		}

		switch tok.Kind {
		case token.Derive:
			deriveNode, err := p.parseDerive()
			if err != nil {
				return nil, err
			}
			node.AddChild(deriveNode)
			pendingDerive = true

		case token.Let, token.Const:
			decl, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			node.AddChild(decl)
			pendingDerive = false

		case token.Function:
			fn, err := p.parseFunction(false)
			if err != nil {
				return nil, err
			}
			node.AddChild(fn)
			if pendingDerive {
				return nil, p.fail(tok, "derive must be followed by a declaration")
			}

		case token.Pub:
			p.tokens.Next()
			next, ok := p.tokens.Peek()
			if !ok {
				return nil, p.failAt(tok.Line, tok.Column, "pub at end of input")
			}
			if next.Kind != token.Function {
				return nil, p.fail(next, "pub inside a mod must be followed by fun")
			}
			fn, err := p.parseFunction(true)
			if err != nil {
				return nil, err
			}
			node.AddChild(fn)
			if pendingDerive {
				return nil, p.fail(tok, "derive must be followed by a declaration")
			}

		default:
			return nil, p.fail(tok, "expected a declaration, fun, derive, or '}'")
		}
	}

	return node, nil
}
