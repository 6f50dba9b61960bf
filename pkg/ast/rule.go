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

// Package ast defines the tagged-variant tree produced by the parser: one
// Node type with a Rule discriminant, an optional value slice, and a list of
// children. Every Node is owned by an Arena and referenced by pointer;
// nothing is ever deep-copied.
package ast

// Rule is the closed set of node kinds the parser can produce.
type Rule uint8

const (
	Invalid Rule = iota

	Root
	Package
	Import
	Function
	Mod
	Type
	Arguments
	Argument
	Block
	Declaration
	ConstDeclaration
	Expression
	Arithmetic
	Boolean
	Call
	PropAccess
	Assignment
	If
	ElseIf
	Else
	For
	From
	To
	In
	Step
	While
	Return

	Str
	Num
	Dec
	Bool
	Nothing

	StringLiteral
	NumberLiteral
	DecimalLiteral
	True
	False
	Identifier

	Public
	Ptr
	Deref
	Derive

	Sum
	Sub
	Mul
	Div
	Eq
	Neq
	Gt
	Gte
	Lt
	Lte
)

var ruleNames = map[Rule]string{
	Root: "ROOT", Package: "PACKAGE", Import: "IMPORT", Function: "FUNCTION",
	Mod: "MOD", Type: "TYPE", Arguments: "ARGUMENTS", Argument: "ARGUMENT",
	Block: "BLOCK", Declaration: "DECLARATION", ConstDeclaration: "CONST_DECLARATION",
	Expression: "EXPRESSION", Arithmetic: "ARITHMETIC", Boolean: "BOOLEAN",
	Call: "CALL", PropAccess: "PROP_ACCESS", Assignment: "ASSIGNMENT",
	If: "IF", ElseIf: "ELSEIF", Else: "ELSE", For: "FOR", From: "FROM", To: "TO",
	In: "IN", Step: "STEP", While: "WHILE", Return: "RETURN",
	Str: "STR", Num: "NUM", Dec: "DEC", Bool: "BOOL", Nothing: "NOTHING",
	StringLiteral: "STRING_LITERAL", NumberLiteral: "NUMBER_LITERAL",
	DecimalLiteral: "DECIMAL_LITERAL", True: "TRUE", False: "FALSE",
	Identifier: "IDENTIFIER", Public: "PUBLIC", Ptr: "PTR", Deref: "DEREF",
	Derive: "DERIVE", Sum: "SUM", Sub: "SUB", Mul: "MUL", Div: "DIV",
	Eq: "EQ", Neq: "NEQ", Gt: "GT", Gte: "GTE", Lt: "LT", Lte: "LTE",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "INVALID"
}
