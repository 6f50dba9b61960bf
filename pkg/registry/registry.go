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

// Package registry implements the program/symbol registry (spec.md §4.5): a
// hierarchical package map from dotted names to symbols, where a symbol is
// one of {function, module, declaration, sub-package}.
package registry

import (
	"strings"

	"github.com/zx-lang/zxc/pkg/convert"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/ztext"
)

// Kind is the closed set of symbol variants a Package can hold.
type Kind uint8

const (
	InvalidKind Kind = iota
	KindFunction
	KindModule
	KindDeclaration
	KindPackage
)

// Symbol is a tagged variant with exactly one inhabited field, selected by
// Kind.
type Symbol struct {
	Kind        Kind
	Function    *convert.Function
	Module      *convert.Mod
	Declaration *convert.Declaration
	Package     *Package
}

// Package is a dotted namespace: a map of name to Symbol, plus the root of
// the symbol registry tree when it has no parent.
type Package struct {
	Name    string
	symbols map[string]*Symbol
}

func newPackage(name string) *Package {
	return &Package{Name: name, symbols: make(map[string]*Symbol)}
}

// Registry is the top of the symbol tree: an implicit root Package whose
// children are the compilation's top-level packages.
type Registry struct {
	Root *Package
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{Root: newPackage("")}
}

// NewPkg ensures that each prefix of dotted, and dotted itself, exists as a
// Package under pkg, creating any that don't yet exist. It is idempotent:
// calling it twice with the same path returns the same terminal Package.
//
// Two files declaring the same package merge their symbols into one
// Package: this is the policy decision spec.md §9 calls out as an open
// question (see DESIGN.md).
func (pkg *Package) NewPkg(dotted []string) *Package {
	cur := pkg
	for _, segment := range dotted {
		cur = cur.childPackage(segment)
	}
	return cur
}

func (pkg *Package) childPackage(name string) *Package {
	if sym, ok := pkg.symbols[name]; ok {
		return sym.Package // NewPkg only ever stores KindPackage symbols under this path
	}
	child := newPackage(name)
	pkg.symbols[name] = &Symbol{Kind: KindPackage, Package: child}
	return child
}

// SetFunction reserves a function slot named name in pkg, returning its
// existing Function (and isNew=false) if name was already declared there as
// a function (spec.md §4.5's set<T> idempotency), or a SymbolMismatch error
// if it was already declared as something else.
func (pkg *Package) SetFunction(name string) (fn *convert.Function, isNew bool, err error) {
	if existing, ok := pkg.symbols[name]; ok {
		if existing.Kind != KindFunction {
			return nil, false, mismatch(name, KindFunction, existing.Kind)
		}
		return existing.Function, false, nil
	}
	fn = &convert.Function{}
	pkg.symbols[name] = &Symbol{Kind: KindFunction, Function: fn}
	return fn, true, nil
}

// SetModule is SetFunction's counterpart for modules: it reserves (or
// returns the existing) *convert.Mod handle for name, so a caller merging a
// newly-parsed file's Mod into it (Build does this for same-named mods
// declared in sibling files) writes into the same shared slot every time.
func (pkg *Package) SetModule(name string) (mod *convert.Mod, isNew bool, err error) {
	if existing, ok := pkg.symbols[name]; ok {
		if existing.Kind != KindModule {
			return nil, false, mismatch(name, KindModule, existing.Kind)
		}
		return existing.Module, false, nil
	}
	mod = &convert.Mod{
		Declarations: make(map[ztext.Slice]*convert.Declaration),
		Functions:    make(map[ztext.Slice]*convert.Function),
	}
	pkg.symbols[name] = &Symbol{Kind: KindModule, Module: mod}
	return mod, true, nil
}

// Resolve looks up name directly in pkg and asserts its kind.
func (pkg *Package) Resolve(name string, want Kind) (*Symbol, error) {
	sym, ok := pkg.symbols[name]
	if !ok {
		return nil, notFound(name)
	}
	if sym.Kind != want {
		return nil, mismatch(name, want, sym.Kind)
	}
	return sym, nil
}

// ResolvePath walks a dotted path "a.b.c", descending one Package per
// segment. Every prefix must resolve to a Package; the terminal segment may
// resolve to a Package or, if allowModuleTerminal is set, a Mod — matching
// spec.md §4.5's "resolve<T>(package_node)" template-flag behavior.
func (pkg *Package) ResolvePath(dotted string, allowModuleTerminal bool) (*Symbol, error) {
	segments := strings.Split(dotted, ".")
	cur := pkg
	for i, seg := range segments {
		sym, ok := cur.symbols[seg]
		if !ok {
			return nil, notFound(seg)
		}
		last := i == len(segments)-1
		switch {
		case sym.Kind == KindPackage:
			cur = sym.Package
			if last {
				return sym, nil
			}
		case last && allowModuleTerminal && sym.Kind == KindModule:
			return sym, nil
		default:
			return nil, mismatch(seg, KindPackage, sym.Kind)
		}
	}
	return nil, notFound(dotted)
}

func notFound(name string) error {
	return diag.New(diag.PhaseRegistry, diag.KindSymbolNotFound, 0, 0, "symbol not found: "+name)
}

func mismatch(name string, want, got Kind) error {
	return diag.New(diag.PhaseRegistry, diag.KindSymbolMismatch, 0, 0,
		"symbol "+name+" is not a "+want.String()+" (found "+got.String()+")")
}

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindModule:
		return "module"
	case KindDeclaration:
		return "declaration"
	case KindPackage:
		return "package"
	default:
		return "invalid"
	}
}
