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

// exprWork is one item of the expression subparser's work queue: a flat
// token range still to be parsed into children of parent. Nested
// parenthesized sub-expressions push a new item instead of recursing, so
// stack depth stays bounded regardless of nesting (spec.md §4.3).
type exprWork struct {
	tokens *stream.Stream[*token.Token]
	parent *ast.Node
}

// parseExpression consumes tokens (already delimited by the caller: up to a
// ";", a "{", or a "," / ")") and returns the EXPRESSION node.
func (p *parser) parseExpression(tokens *stream.Stream[*token.Token]) (*ast.Node, error) {
	line, col := 1, 1
	if tok, ok := tokens.Peek(); ok {
		line, col = tok.Line, tok.Column
	}
	root := p.newNodeAt(ast.Expression, line, col)

	queue := []exprWork{{tokens: tokens, parent: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if err := p.parseFlat(item.tokens, item.parent, &queue); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// primaryClass determines which trailing operators a primary's mask allows,
// per spec.md §4.3 step 3.
type primaryClass int

const (
	classIdentOrParen primaryClass = iota
	classNumeric
	classString
	classBool
)

// parseFlat parses one flat expression from tokens (no nested parens left
// unresolved: any are pushed onto *queue instead) and appends the result to
// parent.
func (p *parser) parseFlat(tokens *stream.Stream[*token.Token], parent *ast.Node, queue *[]exprWork) error {
	// Step 1: leading &, &&, * prefix markers attach directly to parent.
	// Scoped to the start of a flat item only, matching spec.md §8's only
	// concrete scenario for prefixes ("*&&x" at the head of an expression);
	// a prefix on a later operand in a binary chain (e.g. "a * *b") is not
	// recognized and fails with "expected an expression".
	for {
		tok, ok := tokens.Peek()
		if !ok {
			break
		}
		switch tok.Kind {
		case token.Ampersand:
			tokens.Next()
			parent.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			continue
		case token.And:
			tokens.Next()
			parent.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			parent.AddChild(p.newNodeAt(ast.Ptr, tok.Line, tok.Column))
			continue
		case token.Multiply:
			tokens.Next()
			parent.AddChild(p.newNodeAt(ast.Deref, tok.Line, tok.Column))
			continue
		}
		break
	}

	if tokens.Empty() {
		return p.failAt(parent.Line, parent.Column, "expected an expression")
	}

	result, err := p.parseBinary(tokens, queue)
	if err != nil {
		return err
	}
	parent.AddChild(result)

	if !tokens.Empty() {
		tok, _ := tokens.Peek()
		return p.fail(tok, "unexpected trailing token in expression")
	}
	return nil
}

// opInfo describes a comparison/logical binary operator: its rule (Invalid
// when the operator has no dedicated leaf in the closed AstRule set, e.g.
// && and ||, which are expressed purely through grouping) and its
// precedence tier, higher binds tighter.
type opInfo struct {
	rule       ast.Rule
	precedence int
	isBoolean  bool
}

// logicalOps holds comparison and logical operators only; +, -, *, / are
// handled separately by parseArithmeticChain's flat builder, matching
// original_source/parser/rule/signed/signed.cpp's split between its
// Arithmetic and boolean template instantiations.
var logicalOps = map[token.Kind]opInfo{
	token.And:     {ast.Invalid, 2, true},
	token.Or:      {ast.Invalid, 1, true},
	token.BoolEq:  {ast.Eq, 0, true},
	token.BoolNeq: {ast.Neq, 0, true},
	token.BoolLt:  {ast.Lt, 0, true},
	token.BoolGt:  {ast.Gt, 0, true},
	token.BoolLte: {ast.Lte, 0, true},
	token.BoolGte: {ast.Gte, 0, true},
}

// arithOp describes +, -, *, /: its leaf rule and whether it belongs to the
// high-precedence (*, /) tier that collapses into a nested ARITHMETIC node.
type arithOp struct {
	rule ast.Rule
	high bool
}

var arithOps = map[token.Kind]arithOp{
	token.Multiply: {ast.Mul, true},
	token.Divide:   {ast.Div, true},
	token.Plus:     {ast.Sum, false},
	token.Minus:    {ast.Sub, false},
}

// parseBinary parses the full operator chain following the first operand:
// spec.md §4.3's signed-op builder, doubled for arithmetic and boolean mode.
// An arithmetic run (+, -, *, /) is built flat first (parseArithmeticChain);
// any remaining comparison/&&/|| chain is then built by precedence climbing
// over the arithmetic result, since comparisons bind loosest and && / ||
// have no dedicated AstRule leaf to carry a flat grouping unambiguously.
func (p *parser) parseBinary(tokens *stream.Stream[*token.Token], queue *[]exprWork) (*ast.Node, error) {
	left, class, err := p.parseOperand(tokens, queue)
	if err != nil {
		return nil, err
	}
	left, class, err = p.parseArithmeticChain(tokens, queue, left, class)
	if err != nil {
		return nil, err
	}
	return p.parseLogicalAt(tokens, queue, left, class, -1)
}

// parseArithmeticChain builds a flat ARITHMETIC node from left-to-right
// runs of +/- terms, each term itself a left-to-right run of * / factors
// collapsed into one nested ARITHMETIC child: spec.md §8 scenario 2's
// `1 + 2 * 3 + 4` example, and original_source/parser/rule/signed/
// signed.cpp's signed_op<true> (top node + one "last nested" slot for the
// active high-precedence run). Stops at the first token that isn't +, -, *,
// or /, leaving it for parseLogicalAt. If only one term is found, left is
// returned unwrapped (spec.md §4.3's "exactly one child" unwrap rule).
func (p *parser) parseArithmeticChain(tokens *stream.Stream[*token.Token], queue *[]exprWork, left *ast.Node, class primaryClass) (*ast.Node, primaryClass, error) {
	if !arithmeticAllowed(class) {
		return left, class, nil
	}

	top := []*ast.Node{left}
	var nested *ast.Node
	var nestedChildren []*ast.Node

	flushNested := func() {
		if nested != nil {
			nested.Children = nestedChildren
			nested, nestedChildren = nil, nil
		}
	}

	for {
		tok, ok := tokens.Peek()
		if !ok {
			break
		}
		op, isArith := arithOps[tok.Kind]
		if !isArith {
			break
		}
		tokens.Next()

		operand, _, err := p.parseOperand(tokens, queue)
		if err != nil {
			return nil, 0, err
		}
		opLeaf := p.newNodeAt(op.rule, tok.Line, tok.Column)

		if op.high {
			if nested == nil {
				nested = p.newNodeAt(ast.Arithmetic, tok.Line, tok.Column)
				last := len(top) - 1
				nestedChildren = []*ast.Node{top[last]}
				top = append(top[:last], nested)
			}
			nestedChildren = append(nestedChildren, opLeaf, operand)
		} else {
			flushNested()
			top = append(top, opLeaf, operand)
		}
	}
	flushNested()

	if len(top) == 1 {
		return top[0], class, nil
	}
	node := p.newNodeAt(ast.Arithmetic, left.Line, left.Column)
	node.Children = top
	return node, class, nil
}

// arithmeticAllowed enforces spec.md §4.3 step 3's mask for the arithmetic
// operators: identifiers and parens allow everything, numerics allow
// arithmetic, strings and booleans do not.
func arithmeticAllowed(class primaryClass) bool {
	switch class {
	case classIdentOrParen, classNumeric:
		return true
	default:
		return false
	}
}

// parseLogicalAt implements precedence climbing over comparison/&&/||
// operators, each operand itself a full arithmetic chain. Comparisons bind
// loosest, || next, && tightest (spec.md §4.3), which a flat two-slot
// builder can't represent across three tiers at once; climbing generalizes
// cleanly where the arithmetic tier's two tiers fit the original's flat
// builder exactly.
func (p *parser) parseLogicalAt(tokens *stream.Stream[*token.Token], queue *[]exprWork, left *ast.Node, class primaryClass, minPrec int) (*ast.Node, primaryClass, error) {
	for {
		tok, ok := tokens.Peek()
		if !ok {
			break
		}
		info, known := logicalOps[tok.Kind]
		if !known || info.precedence < minPrec {
			break
		}
		if !operatorAllowed(class, info) {
			break
		}
		tokens.Next()

		right, rightClass, err := p.parseOperand(tokens, queue)
		if err != nil {
			return nil, 0, err
		}
		right, rightClass, err = p.parseArithmeticChain(tokens, queue, right, rightClass)
		if err != nil {
			return nil, 0, err
		}
		right, _, err = p.parseLogicalAt(tokens, queue, right, rightClass, info.precedence+1)
		if err != nil {
			return nil, 0, err
		}

		node := p.newNodeAt(ast.Boolean, left.Line, left.Column)
		node.AddChild(left)
		if info.rule != ast.Invalid {
			node.AddChild(p.newNodeAt(info.rule, tok.Line, tok.Column))
		}
		node.AddChild(right)
		left = node
		class = classIdentOrParen // a composite expression can feed any further operator the grammar allows
	}

	return left, class, nil
}

// operatorAllowed enforces spec.md §4.3 step 3's mask for comparison/&&/||:
// identifiers and parens allow everything, numerics allow comparison only
// (arithmetic was already consumed by parseArithmeticChain), strings allow
// comparison only, booleans allow boolean comparison (and logical
// connection) only.
func operatorAllowed(class primaryClass, info opInfo) bool {
	switch class {
	case classIdentOrParen:
		return true
	case classNumeric:
		return info.rule != ast.Invalid // comparisons, not && / ||
	case classString:
		return info.rule != ast.Invalid // comparisons only
	case classBool:
		return true
	}
	return false
}

// parseOperand parses one primary, including an optional trailing call or
// property-access chain, and returns it along with its primaryClass for the
// caller's operator mask.
func (p *parser) parseOperand(tokens *stream.Stream[*token.Token], queue *[]exprWork) (*ast.Node, primaryClass, error) {
	tok, ok := tokens.Next()
	if !ok {
		return nil, 0, p.failAt(0, 0, "expected an expression")
	}

	var candidate *ast.Node
	class := classIdentOrParen

	switch tok.Kind {
	case token.OpenParen:
		inner, err := p.extractBalanced(tokens, token.OpenParen, token.CloseParen)
		if err != nil {
			return nil, 0, err
		}
		candidate = p.newNodeAt(ast.Expression, tok.Line, tok.Column)
		*queue = append(*queue, exprWork{tokens: inner, parent: candidate})

	case token.Identifier:
		candidate = p.newLeaf(ast.Identifier, tok)

	case token.NumberLiteral:
		candidate = p.newLeaf(ast.NumberLiteral, tok)
		class = classNumeric

	case token.DecimalLiteral:
		candidate = p.newLeaf(ast.DecimalLiteral, tok)
		class = classNumeric

	case token.StringLiteral:
		candidate = p.newLeaf(ast.StringLiteral, tok)
		class = classString

	case token.True:
		candidate = p.newNodeAt(ast.True, tok.Line, tok.Column)
		class = classBool

	case token.False:
		candidate = p.newNodeAt(ast.False, tok.Line, tok.Column)
		class = classBool

	default:
		return nil, 0, p.fail(tok, "expected an expression")
	}

	if class != classIdentOrParen {
		return candidate, class, nil
	}

	if next, ok := tokens.Peek(); ok {
		switch next.Kind {
		case token.Dot:
			node, err := p.parsePropAccess(candidate, tokens, queue)
			return node, class, err
		case token.OpenParen:
			node, err := p.parseCall(candidate, tokens, queue)
			return node, class, err
		}
	}
	return candidate, class, nil
}

// parseCall allocates a CALL node whose first child is callee, parses the
// argument list via split-args, and queues each argument's tokens as its own
// expression.
func (p *parser) parseCall(callee *ast.Node, tokens *stream.Stream[*token.Token], queue *[]exprWork) (*ast.Node, error) {
	open, _ := tokens.Next() // "("
	node := p.newNodeAt(ast.Call, callee.Line, callee.Column)
	node.AddChild(callee)

	args, err := p.parseArguments(tokens, queue, open)
	if err != nil {
		return nil, err
	}
	node.AddChild(args)
	return node, nil
}

func (p *parser) parseArguments(tokens *stream.Stream[*token.Token], queue *[]exprWork, open *token.Token) (*ast.Node, error) {
	argsNode := p.newNodeAt(ast.Arguments, open.Line, open.Column)
	split, err := p.splitArgs(tokens)
	if err != nil {
		return nil, err
	}
	for _, argTokens := range split {
		line, col := open.Line, open.Column
		if tok, ok := argTokens.Peek(); ok {
			line, col = tok.Line, tok.Column
		}
		argNode := p.newNodeAt(ast.Argument, line, col)
		exprNode := p.newNodeAt(ast.Expression, line, col)
		*queue = append(*queue, exprWork{tokens: argTokens, parent: exprNode})
		argNode.AddChild(exprNode)
		argsNode.AddChild(argNode)
	}
	return argsNode, nil
}

// parsePropAccess allocates a PROP_ACCESS node and greedily consumes
// ".IDENT" chains; an "IDENT(" triggers a nested CALL under PROP_ACCESS.
func (p *parser) parsePropAccess(first *ast.Node, tokens *stream.Stream[*token.Token], queue *[]exprWork) (*ast.Node, error) {
	node := p.newNodeAt(ast.PropAccess, first.Line, first.Column)
	node.AddChild(first)

	for {
		next, ok := tokens.Peek()
		if !ok || next.Kind != token.Dot {
			break
		}
		tokens.Next()
		id, err := p.expectFrom(tokens, token.Identifier)
		if err != nil {
			return nil, err
		}
		idNode := p.newLeaf(ast.Identifier, id)

		if peek, ok := tokens.Peek(); ok && peek.Kind == token.OpenParen {
			call, err := p.parseCall(idNode, tokens, queue)
			if err != nil {
				return nil, err
			}
			node.AddChild(call)
			continue
		}
		node.AddChild(idNode)
	}
	return node, nil
}
