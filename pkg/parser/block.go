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
	"github.com/zx-lang/zxc/pkg/stream"
	"github.com/zx-lang/zxc/pkg/token"
)

// parseBlock parses "{ statement* }".
func (p *parser) parseBlock() (*ast.Node, error) {
	open, err := p.expect(token.OpenCurly)
	if err != nil {
		return nil, err
	}
	node := p.newNodeAt(ast.Block, open.Line, open.Column)

	for {
		tok, ok := p.tokens.Peek()
		if !ok {
			return nil, p.failAt(open.Line, open.Column, "unterminated block")
		}
		if tok.Kind == token.CloseCurly {
			p.tokens.Next()
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		node.AddChild(stmt)
	}
	return node, nil
}

// parseStatement dispatches one block statement: a declaration, a
// conditional, a loop, a return, an assignment, or a bare expression.
func (p *parser) parseStatement() (*ast.Node, error) {
	tok, ok := p.tokens.Peek()
	if !ok {
		return nil, p.failAt(0, 0, "expected a statement")
	}

	switch tok.Kind {
	case token.Let, token.Const:
		return p.parseDeclaration()
	case token.If:
		return p.parseIf()
	case token.ElseIf, token.Else:
		return nil, p.fail(tok, "elseif/else without a preceding if")
	case token.For:
		return p.parseFor()
	case token.While:
		return p.parseWhile()
	case token.Return:
		return p.parseReturn()
	case token.Identifier:
		if next, ok := p.tokens.PeekAt(1); ok && next.Kind == token.Equals {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseDeclaration parses "let NAME : TYPE = EXPR ;" or the const form.
func (p *parser) parseDeclaration() (*ast.Node, error) {
	kw, _ := p.tokens.Next()
	rule := ast.Declaration
	if kw.Kind == token.Const {
		rule = ast.ConstDeclaration
	}
	node := p.newNodeAt(rule, kw.Line, kw.Column)

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(p.newLeaf(ast.Identifier, name))

	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	declType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	node.AddChild(declType)

	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}

	exprTokens, err := p.extractUntil(p.tokens, token.Semicolon)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(exprTokens)
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return node, nil
}

// parseAssignment parses "ID = expr;".
func (p *parser) parseAssignment() (*ast.Node, error) {
	name, _ := p.tokens.Next()
	node := p.newNodeAt(ast.Assignment, name.Line, name.Column)
	node.AddChild(p.newLeaf(ast.Identifier, name))

	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}

	exprTokens, err := p.extractUntil(p.tokens, token.Semicolon)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(exprTokens)
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return node, nil
}

// parseExpressionStatement parses a bare expression terminated by ";".
func (p *parser) parseExpressionStatement() (*ast.Node, error) {
	exprTokens, err := p.extractUntil(p.tokens, token.Semicolon)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(exprTokens)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseReturn parses "return expr;".
func (p *parser) parseReturn() (*ast.Node, error) {
	kw, _ := p.tokens.Next()
	node := p.newNodeAt(ast.Return, kw.Line, kw.Column)

	exprTokens, err := p.extractUntil(p.tokens, token.Semicolon)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(exprTokens)
	if err != nil {
		return nil, err
	}
	node.AddChild(expr)

	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return node, nil
}

// parseCondition extracts and parses the expression up to the block's
// opening "{".
func (p *parser) parseCondition() (*ast.Node, error) {
	exprTokens, err := p.extractUntil(p.tokens, token.OpenCurly)
	if err != nil {
		return nil, err
	}
	return p.parseExpression(exprTokens)
}

// parseIf parses "if EXPR { block } (elseif EXPR { block })* (else { block })?".
func (p *parser) parseIf() (*ast.Node, error) {
	kw, _ := p.tokens.Next()
	node := p.newNodeAt(ast.If, kw.Line, kw.Column)

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	node.AddChild(cond)

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)

	for {
		tok, ok := p.tokens.Peek()
		if !ok || tok.Kind != token.ElseIf {
			break
		}
		p.tokens.Next()
		elseIf := p.newNodeAt(ast.ElseIf, tok.Line, tok.Column)
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		elseIf.AddChild(cond)
		blk, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseIf.AddChild(blk)
		node.AddChild(elseIf)
	}

	if tok, ok := p.tokens.Peek(); ok && tok.Kind == token.Else {
		p.tokens.Next()
		elseNode := p.newNodeAt(ast.Else, tok.Line, tok.Column)
		blk, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseNode.AddChild(blk)
		node.AddChild(elseNode)
	}

	return node, nil
}

// parseWhile parses "while EXPR { block }".
func (p *parser) parseWhile() (*ast.Node, error) {
	kw, _ := p.tokens.Next()
	node := p.newNodeAt(ast.While, kw.Line, kw.Column)

	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	node.AddChild(cond)

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)
	return node, nil
}

// parseFor parses "for ID in EXPR to EXPR (step EXPR)? { block }", producing
// FOR with children IDENTIFIER, FROM(expression), TO(expression), optional
// STEP(expression), BLOCK.
//
// The range expressions are delimited by the keywords "to"/"step" and the
// block's "{", scanned with extractUntil so a nested call's own "(...)"
// doesn't confuse the boundary. This relies on "to"/"step"/"{" never
// appearing at nesting depth zero inside the range expression itself (see
// spec.md §9's note on this heuristic breaking if an expression can itself
// contain an anonymous block).
func (p *parser) parseFor() (*ast.Node, error) {
	kw, _ := p.tokens.Next()
	node := p.newNodeAt(ast.For, kw.Line, kw.Column)

	idTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	node.AddChild(p.newLeaf(ast.Identifier, idTok))

	if _, err := p.expect(token.In); err != nil {
		return nil, err
	}

	fromTokens, err := p.extractUntil(p.tokens, token.To)
	if err != nil {
		return nil, err
	}
	fromExpr, err := p.parseExpression(fromTokens)
	if err != nil {
		return nil, err
	}
	fromNode := p.newNodeAt(ast.From, fromExpr.Line, fromExpr.Column)
	fromNode.AddChild(fromExpr)
	node.AddChild(fromNode)

	toKw, err := p.expect(token.To)
	if err != nil {
		return nil, err
	}

	// The range's "to" expression ends at "step" if present, otherwise at
	// the block's "{".
	toTokens, hasStep, err := p.extractToStepOrBlock()
	if err != nil {
		return nil, err
	}
	toExpr, err := p.parseExpression(toTokens)
	if err != nil {
		return nil, err
	}
	toNode := p.newNodeAt(ast.To, toKw.Line, toKw.Column)
	toNode.AddChild(toExpr)
	node.AddChild(toNode)

	if hasStep {
		stepKw, err := p.expect(token.Step)
		if err != nil {
			return nil, err
		}
		stepTokens, err := p.extractUntil(p.tokens, token.OpenCurly)
		if err != nil {
			return nil, err
		}
		stepExpr, err := p.parseExpression(stepTokens)
		if err != nil {
			return nil, err
		}
		stepNode := p.newNodeAt(ast.Step, stepKw.Line, stepKw.Column)
		stepNode.AddChild(stepExpr)
		node.AddChild(stepNode)
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AddChild(block)

	return node, nil
}

// extractToStepOrBlock scans tokens up to whichever comes first at nesting
// depth zero: "step" or "{", and reports which one ended the scan.
func (p *parser) extractToStepOrBlock() (*stream.Stream[*token.Token], bool, error) {
	start := p.tokens.Current()
	depth := 0
	var collected []*token.Token

	for {
		t, ok := p.tokens.Peek()
		if !ok {
			p.tokens.SetPosition(start)
			return nil, false, p.failAt(0, 0, "unterminated for-loop range")
		}
		if depth == 0 && (t.Kind == token.Step || t.Kind == token.OpenCurly) {
			return stream.New(collected), t.Kind == token.Step, nil
		}
		switch t.Kind {
		case token.OpenParen, token.OpenBracket:
			depth++
		case token.CloseParen, token.CloseBracket:
			depth--
		}
		p.tokens.Next()
		collected = append(collected, t)
	}
}
