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

// Package token defines the tagged-variant token produced by the lexer.
package token

import "github.com/zx-lang/zxc/pkg/ztext"

// Kind identifies the lexical category of a Token. The zero value, Unknown,
// is never produced by a successful lex; it exists only as a sentinel for
// zero-valued Tokens and arena slots awaiting construction.
type Kind uint8

const (
	Unknown Kind = iota

	// Identifiers and literals.
	Identifier
	StringLiteral
	NumberLiteral
	DecimalLiteral
	True
	False

	// Keywords.
	Import
	Function // "fun"
	Mod
	Let
	Const
	Pub
	If
	Else
	ElseIf
	For
	While
	Return
	In
	To
	Step
	Str
	Num
	Dec
	Bool
	Nothing
	Derive
	Package

	// Punctuation.
	OpenCurly
	CloseCurly
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Semicolon
	Comma
	Colon
	Dot
	Equals
	Plus
	Minus
	Multiply
	Divide
	Arrow // ->
	Ampersand
	And // &&
	Or  // ||
	Not // !
	BoolEq
	BoolNeq
	BoolLt
	BoolGt
	BoolLte
	BoolGte
)

var kindNames = map[Kind]string{
	Unknown:        "UNKNOWN",
	Identifier:     "IDENTIFIER",
	StringLiteral:  "STRING_LITERAL",
	NumberLiteral:  "NUMBER_LITERAL",
	DecimalLiteral: "DECIMAL_LITERAL",
	True:           "TRUE",
	False:          "FALSE",
	Import:         "IMPORT",
	Function:       "FUNCTION",
	Mod:            "MOD",
	Let:            "LET",
	Const:          "CONST",
	Pub:            "PUB",
	If:             "IF",
	Else:           "ELSE",
	ElseIf:         "ELSEIF",
	For:            "FOR",
	While:          "WHILE",
	Return:         "RETURN",
	In:             "IN",
	To:             "TO",
	Step:           "STEP",
	Str:            "STR",
	Num:            "NUM",
	Dec:            "DEC",
	Bool:           "BOOL",
	Nothing:        "NOTHING",
	Derive:         "DERIVE",
	Package:        "PACKAGE",
	OpenCurly:      "OPEN_CURLY",
	CloseCurly:     "CLOSE_CURLY",
	OpenParen:      "OPEN_PAREN",
	CloseParen:     "CLOSE_PAREN",
	OpenBracket:    "OPEN_BRACKET",
	CloseBracket:   "CLOSE_BRACKET",
	Semicolon:      "SEMICOLON",
	Comma:          "COMMA",
	Colon:          "COLON",
	Dot:            "DOT",
	Equals:         "EQUALS",
	Plus:           "PLUS",
	Minus:          "MINUS",
	Multiply:       "MULTIPLY",
	Divide:         "DIVIDE",
	Arrow:          "ARROW",
	Ampersand:      "AMPERSAND",
	And:            "AND",
	Or:             "OR",
	Not:            "NOT",
	BoolEq:         "BOOL_EQ",
	BoolNeq:        "BOOL_NEQ",
	BoolLt:         "BOOL_LT",
	BoolGt:         "BOOL_GT",
	BoolLte:        "BOOL_LTE",
	BoolGte:        "BOOL_GTE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords maps a lexeme to its keyword Kind. Any identifier lexeme that
// does not appear here is an Identifier token.
var Keywords = map[string]Kind{
	"import":  Import,
	"fun":     Function,
	"mod":     Mod,
	"let":     Let,
	"const":   Const,
	"pub":     Pub,
	"if":      If,
	"else":    Else,
	"elseif":  ElseIf,
	"for":     For,
	"while":   While,
	"return":  Return,
	"in":      In,
	"to":      To,
	"step":    Step,
	"str":     Str,
	"num":     Num,
	"dec":     Dec,
	"bool":    Bool,
	"nothing": Nothing,
	"derive":  Derive,
	"package": Package,
	"true":    True,
	"false":   False,
}

// Token is a single lexeme: its kind, an optional source slice carrying
// semantic payload (identifiers and literals), and its 1-based source
// position.
type Token struct {
	Kind   Kind
	Value  ztext.Slice // only set for Identifier and literal kinds
	HasVal bool
	Line   int
	Column int
}

// HasValue reports whether this token carries a semantic payload.
func (t *Token) HasValue() bool {
	return t.HasVal
}
