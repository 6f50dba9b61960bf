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

// Package lexer implements the front-end's single-pass, state-driven
// tokenizer. It consumes UTF-8 source text byte by byte — only string and
// comment bodies may carry multi-byte content, everything else in the
// grammar is ASCII — and produces a Stream of arena-allocated Tokens in
// left-to-right order.
package lexer

import (
	"github.com/zx-lang/zxc/pkg/arena"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/stream"
	"github.com/zx-lang/zxc/pkg/token"
	"github.com/zx-lang/zxc/pkg/ztext"
)

// Lex tokenizes source, allocating every Token from pool, and returns a
// Stream ready for the parser. On malformed input it returns one of
// diag.KindUnknownToken, diag.KindUnclosedString, or
// diag.KindUnclosedComment, carrying the line/column of the offending byte.
func Lex(source string, pool *arena.Arena[token.Token]) (*stream.Stream[*token.Token], error) {
	l := &state{src: source, pool: pool, line: 1, col: 1}
	return l.run()
}

type state struct {
	src  string
	pool *arena.Arena[token.Token]

	tokens []*token.Token

	line, col int

	// Current run (identifier/number/decimal/string), tracked since the
	// last flush.
	start      int // byte offset of the run's first byte
	runLen     int
	runStartLn int
	runStartCl int

	inString       bool
	inBlockComment bool
	isNumber       bool
	isDecimal      bool
	identLike      bool // run began with a letter or '_'
}

func (l *state) fail(kind diag.Kind, line, column int, msg string) error {
	return diag.New(diag.PhaseLexer, kind, line, column, msg)
}

func (l *state) beginRunIfNeeded(i int) {
	if l.runLen != 0 {
		return
	}
	l.start = i
	l.runStartLn = l.line
	l.runStartCl = l.col
}

func (l *state) resetFlags() {
	l.inString = false
	l.isNumber = false
	l.isDecimal = false
	l.identLike = false
	l.runLen = 0
}

// flush classifies the accumulated run in order:
// number -> decimal -> string -> known keyword -> identifier, and appends a
// Token for it. A non-empty run that matches none of those fails with
// UnknownToken.
func (l *state) flush() error {
	if l.runLen == 0 {
		return nil
	}

	value := ztext.Slice(l.src[l.start : l.start+l.runLen])

	switch {
	case l.isNumber && l.isDecimal:
		l.push(token.DecimalLiteral, value, true)
	case l.isNumber:
		l.push(token.NumberLiteral, value, true)
	case l.inString:
		l.push(token.StringLiteral, value, true)
	default:
		if kw, ok := token.Keywords[string(value)]; ok {
			l.push(kw, "", false)
		} else if l.identLike {
			l.push(token.Identifier, value, true)
		} else {
			return l.fail(diag.KindUnknownToken, l.runStartLn, l.runStartCl,
				"unknown token \""+string(value)+"\"")
		}
	}

	l.resetFlags()
	return nil
}

func (l *state) push(kind token.Kind, value ztext.Slice, hasValue bool) {
	t := l.pool.New()
	t.Kind = kind
	t.Value = value
	t.HasVal = hasValue
	t.Line = l.runStartLn
	t.Column = l.runStartCl
	l.tokens = append(l.tokens, t)
}

// pushAt emits a zero-length punctuation token positioned at the given
// line/column, independent of any run in progress.
func (l *state) pushAt(kind token.Kind, line, column int) {
	t := l.pool.New()
	t.Kind = kind
	t.Line = line
	t.Column = column
	l.tokens = append(l.tokens, t)
}

var singleCharPunct = map[byte]token.Kind{
	'{': token.OpenCurly,
	'}': token.CloseCurly,
	'(': token.OpenParen,
	')': token.CloseParen,
	'[': token.OpenBracket,
	']': token.CloseBracket,
	';': token.Semicolon,
	',': token.Comma,
	':': token.Colon,
	'=': token.Equals,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Multiply,
	'/': token.Divide,
	'!': token.Not,
	'&': token.Ampersand,
}

func (l *state) run() (*stream.Stream[*token.Token], error) {
	src := l.src
	n := len(src)

	for i := 0; i < n; i++ {
		c := src[i]
		peekNext := byte(0)
		if i+1 < n {
			peekNext = src[i+1]
		}

		switch {
		case !l.inBlockComment && (c == ' ' || c == '\t'):
			if l.inString {
				l.runLen++
				l.col++
				continue
			}
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.col++
			continue

		case c == '\n':
			if l.inBlockComment {
				l.line++
				l.col = 1
				continue
			}
			if l.inString {
				return nil, l.fail(diag.KindUnclosedString, l.runStartLn, l.runStartCl,
					"unclosed string literal")
			}
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.line++
			l.col = 1
			continue

		case !l.inBlockComment && c == '"':
			if l.inString {
				value := ztext.Slice(src[l.start : l.start+l.runLen])
				l.push(token.StringLiteral, value, true)
				l.resetFlags()
			} else {
				if err := l.flush(); err != nil {
					return nil, err
				}
				l.inString = true
				l.start = i + 1
				l.runLen = 0
				l.runStartLn = l.line
				l.runStartCl = l.col + 1
			}
			l.col++
			continue

		case !l.inBlockComment && !l.inString && c == '/' && peekNext == '/':
			if err := l.flush(); err != nil {
				return nil, err
			}
			for i < n && src[i] != '\n' {
				i++
			}
			i-- // the outer for-loop's i++ will land back on the newline
			continue

		case !l.inString && c == '/' && peekNext == '*' && !l.inBlockComment:
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.inBlockComment = true
			l.col += 2
			i++
			continue

		case l.inBlockComment && c == '*' && peekNext == '/':
			l.inBlockComment = false
			l.col += 2
			i++
			continue

		case l.inBlockComment:
			l.col++
			continue

		case l.inString:
			l.runLen++
			l.col++
			continue
		}

		if l.runLen == 0 {
			switch {
			case isAlpha(c) || c == '_':
				l.identLike = true
				l.beginRunIfNeeded(i)
			case isDigit(c):
				l.isNumber = true
				l.beginRunIfNeeded(i)
			}
		}

		switch {
		case (c == '&' && peekNext == '&') || (c == '|' && peekNext == '|') || (c == '=' && peekNext == '='):
			if err := l.flush(); err != nil {
				return nil, err
			}
			kind := token.And
			if c == '|' {
				kind = token.Or
			} else if c == '=' {
				kind = token.BoolEq
			}
			l.pushAt(kind, l.line, l.col)
			l.col += 2
			i++
			continue

		case (c == '>' || c == '<' || c == '!') && peekNext == '=':
			if err := l.flush(); err != nil {
				return nil, err
			}
			kind := token.BoolGte
			if c == '<' {
				kind = token.BoolLte
			} else if c == '!' {
				kind = token.BoolNeq
			}
			l.pushAt(kind, l.line, l.col)
			l.col += 2
			i++
			continue

		case c == '-' && peekNext == '>':
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.pushAt(token.Arrow, l.line, l.col)
			l.col += 2
			i++
			continue

		case c == '>':
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.pushAt(token.BoolGt, l.line, l.col)
			l.col++
			continue

		case c == '<':
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.pushAt(token.BoolLt, l.line, l.col)
			l.col++
			continue
		}

		if kind, ok := singleCharPunct[c]; ok {
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.pushAt(kind, l.line, l.col)
			l.col++
			continue
		}

		if c == '.' {
			if l.isDecimal {
				return nil, l.fail(diag.KindUnknownToken, l.line, l.col,
					"unexpected second decimal point in number")
			}
			if l.isNumber {
				l.isDecimal = true
				l.runLen++
				l.col++
				continue
			}
			if err := l.flush(); err != nil {
				return nil, err
			}
			l.pushAt(token.Dot, l.line, l.col)
			l.col++
			continue
		}

		if l.identLike && !isAlnum(c) && c != '_' {
			return nil, l.fail(diag.KindUnknownToken, l.line, l.col,
				"invalid character in identifier")
		}
		if l.isNumber && !isDigit(c) {
			return nil, l.fail(diag.KindUnknownToken, l.line, l.col,
				"invalid character in numeric literal")
		}

		l.runLen++
		l.col++
	}

	if l.inString {
		return nil, l.fail(diag.KindUnclosedString, l.runStartLn, l.runStartCl, "unclosed string literal")
	}
	if l.inBlockComment {
		return nil, l.fail(diag.KindUnclosedComment, l.line, l.col, "unclosed block comment")
	}
	if err := l.flush(); err != nil {
		return nil, err
	}

	return stream.New(l.tokens), nil
}

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
