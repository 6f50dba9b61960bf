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

package registry

import (
	"github.com/zx-lang/zxc/pkg/convert"
)

// Build populates a fresh Registry from the converter's output, one
// FileCode at a time in the order given (spec.md §4.5 expects this to run
// after convert.Convert, in the dependency order pkg/convert/order.go
// produces). Each file's package chain creates or reuses the target
// Package, and every function/mod it declares is written into that
// Package's symbol map.
//
// First declaration wins: when a name is declared as the same kind of
// symbol in more than one sibling file (the legal case), later files merge
// their functions/declarations into the first file's shared handle rather
// than overwriting it (see DESIGN.md on spec.md §9's package-merge
// question). A mismatched redeclaration (same name, different kind) is
// reported as a SymbolMismatch error.
func Build(files []*convert.FileCode) (*Registry, error) {
	reg := New()

	for _, fc := range files {
		segments := make([]string, len(fc.PackageChain))
		for i, s := range fc.PackageChain {
			segments[i] = s.String()
		}
		pkg := reg.Root.NewPkg(segments)

		for name, fn := range fc.Functions {
			slot, isNew, err := pkg.SetFunction(name.String())
			if err != nil {
				return nil, err
			}
			if isNew {
				*slot = *fn
			}
		}

		for name, m := range fc.Modules {
			slot, isNew, err := pkg.SetModule(name.String())
			if err != nil {
				return nil, err
			}
			if isNew {
				slot.Public = m.Public
				slot.Derives = m.Derives
				for declName, decl := range m.Declarations {
					slot.Declarations[declName] = decl
				}
				for fnName, fn := range m.Functions {
					slot.Functions[fnName] = fn
				}
				continue
			}
			// A sibling file re-opening the same mod merges its members
			// into the already-registered handle rather than replacing it.
			for declName, decl := range m.Declarations {
				slot.Declarations[declName] = decl
			}
			for fnName, fn := range m.Functions {
				slot.Functions[fnName] = fn
			}
		}
	}

	return reg, nil
}
