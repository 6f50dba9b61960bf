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

// Package convert implements the file-code converter (spec.md §4.4): it
// walks a parsed AST into a FileCode record of functions and modules,
// resolving and scheduling transitively imported files with circular-import
// detection.
package convert

import (
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/ztext"
)

// BaseKind is the closed set of built-in type bases a TYPE node can carry,
// plus UserDefined for a dotted package path.
type BaseKind uint8

const (
	InvalidBase BaseKind = iota
	StrBase
	NumBase
	DecBase
	BoolBase
	NothingBase
	UserDefinedBase
)

// Type is the converter's structured view of a parsed TYPE node: pointer
// depth, a base kind, an optional dotted name (only for UserDefinedBase),
// and generic type-parameter children.
type Type struct {
	Pointers int
	Base     BaseKind
	Name     ztext.Slice // set only when Base == UserDefinedBase
	Children []Type      // generic parameters, e.g. the b, c<d> in a<b,c<d>>
}

// Arg is one entry of a Function's ordered argument list.
type Arg struct {
	Name ztext.Slice
	Type Type
}

// Args preserves argument declaration order while still supporting name
// lookup, matching spec.md §3's "OrderedMap<Slice, Type>".
type Args struct {
	entries []Arg
	index   map[ztext.Slice]int
}

// Append adds a new argument to the end of the list.
func (a *Args) Append(name ztext.Slice, typ Type) {
	if a.index == nil {
		a.index = make(map[ztext.Slice]int)
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, Arg{Name: name, Type: typ})
}

// Len reports the number of arguments.
func (a *Args) Len() int { return len(a.entries) }

// At returns the i-th argument in declaration order.
func (a *Args) At(i int) Arg { return a.entries[i] }

// Lookup finds an argument by name, preserving its declared Type.
func (a *Args) Lookup(name ztext.Slice) (Type, bool) {
	i, ok := a.index[name]
	if !ok {
		return Type{}, false
	}
	return a.entries[i].Type, true
}

// All returns the arguments in declaration order.
func (a *Args) All() []Arg { return a.entries }

// Function is a converted FUNCTION declaration.
type Function struct {
	Public     bool
	Args       Args
	ReturnType Type // Base == NothingBase when no "-> type" was written
	Body       *ast.Node
}

// Declaration is a converted `let`/`const` statement.
type Declaration struct {
	IsConst  bool
	Derive   *ast.Node // nil unless a `derive` attached to this declaration
	DeclType Type
	Value    *ast.Node
}

// Mod is a converted MOD namespace.
type Mod struct {
	Public       bool
	Derives      []*ast.Node
	Declarations map[ztext.Slice]*Declaration
	Functions    map[ztext.Slice]*Function
}

// FileCode is the converter's per-file record: the file's own content (so
// every Slice reachable from its AST remains valid for the compilation's
// lifetime), its package path, the files it imports (by index into the
// converter's output slice), and its top-level declarations.
type FileCode struct {
	Path         string
	Content      string
	PackageChain []ztext.Slice
	Imports      []int
	Functions    map[ztext.Slice]*Function
	Modules      map[ztext.Slice]*Mod
}
