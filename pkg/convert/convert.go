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

package convert

import (
	"fmt"
	"path/filepath"

	"github.com/zx-lang/zxc/pkg/arena"
	"github.com/zx-lang/zxc/pkg/ast"
	"github.com/zx-lang/zxc/pkg/diag"
	"github.com/zx-lang/zxc/pkg/lexer"
	"github.com/zx-lang/zxc/pkg/parser"
	"github.com/zx-lang/zxc/pkg/progress"
	"github.com/zx-lang/zxc/pkg/resolve"
	"github.com/zx-lang/zxc/pkg/token"
	"github.com/zx-lang/zxc/pkg/ztext"
)

// Pools bundles the arenas the converter needs to lex and parse every file
// it discovers. One Pools is shared across an entire compilation: the tokens
// and AST nodes of every file are allocated from the same two arenas, so
// nodes of different files can share a page.
type Pools struct {
	Tokens arena.Arena[token.Token]
	Nodes  arena.Arena[ast.Node]
}

// CircularImportError is returned when an import path is already in the
// active import chain (spec.md §7's CircularImport), carrying the rendered
// chain an external diagnostics collaborator can print (spec.md §4.4's
// "Import chain rendering").
type CircularImportError struct {
	*diag.Diagnostic
	chain []string
}

// Chain returns the canonical paths from the compilation's root file down to
// the file whose import was rejected, followed by the rejected path, e.g.
// [A, B, A] for the two-file cycle in spec.md §8's scenario 5.
func (e *CircularImportError) Chain() []string { return e.chain }

// Convert walks rootPath's AST (and every file it transitively imports) into
// one FileCode per file, root first, per spec.md §4.4. pools supplies the
// lexer/parser arenas; cfg resolves import strings to readable files; prog
// receives the four progress hooks (spec.md §6), or progress.Noop if the
// caller doesn't care.
func Convert(rootPath string, cfg *resolve.Config, pools *Pools, prog progress.Reporter) ([]*FileCode, error) {
	if prog == nil {
		prog = progress.Noop
	}

	rootCanon := resolve.Canonicalize(rootPath)
	files := []*FileCode{{}}
	chain := map[string]int{rootCanon: 0}
	parent := map[int]int{0: 0}

	type queued struct {
		idx  int
		path string
		dir  string
	}
	queue := []queued{{0, rootCanon, filepath.Dir(rootCanon)}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		task := prog.Post(item.path, 4, 0)
		fc := files[item.idx]
		fc.Path = item.path

		content, err := cfg.ReadFile(item.path)
		if err != nil {
			task.Fail(err.Error())
			return nil, err
		}
		task.Advance() // read

		toks, err := lexer.Lex(content, &pools.Tokens)
		if err != nil {
			task.Fail(err.Error())
			return nil, err
		}
		task.Advance() // lex

		root, err := parser.Parse(toks, &pools.Nodes)
		if err != nil {
			task.Fail(err.Error())
			return nil, err
		}
		task.Advance() // parse

		fc.Content = content
		if len(root.Children) == 0 || root.Children[0].Rule != ast.Package {
			err := diag.New(diag.PhaseConverter, diag.KindUnexpectedToken, root.Line, root.Column,
				"file is missing a package declaration")
			task.Fail(err.Error())
			return nil, err
		}
		fc.PackageChain = packageChain(root.Children[0])
		fc.Functions = make(map[ztext.Slice]*Function)
		fc.Modules = make(map[ztext.Slice]*Mod)

		seenBody := false
		for _, child := range root.Children[1:] {
			switch child.Rule {
			case ast.Import:
				if seenBody {
					err := diag.New(diag.PhaseConverter, diag.KindIllegalImport, child.Line, child.Column,
						"import appears outside the top-level prelude")
					task.Fail(err.Error())
					return nil, err
				}
				res, err := cfg.Resolve(string(child.Value), item.dir)
				if err != nil {
					task.Fail(err.Error())
					return nil, err
				}
				canon := resolve.Canonicalize(res.Path)

				if existing, ok := chain[canon]; ok {
					if !res.IsStd {
						cerr := &CircularImportError{
							Diagnostic: diag.New(diag.PhaseConverter, diag.KindCircularImport, child.Line, child.Column,
								fmt.Sprintf("circular import: %s", canon)),
							chain: append(ancestry(item.idx, parent, files), canon),
						}
						task.Fail(cerr.Error())
						return nil, cerr
					}
					fc.Imports = append(fc.Imports, existing)
					continue
				}

				newIdx := len(files)
				files = append(files, &FileCode{})
				chain[canon] = newIdx
				parent[newIdx] = item.idx
				fc.Imports = append(fc.Imports, newIdx)
				queue = append(queue, queued{newIdx, canon, filepath.Dir(canon)})

			case ast.Function:
				seenBody = true
				fn, name := buildFunction(child)
				fc.Functions[name] = fn

			case ast.Mod:
				seenBody = true
				m, name := buildMod(child)
				fc.Modules[name] = m

			default:
				err := diag.New(diag.PhaseConverter, diag.KindUnexpectedToken, child.Line, child.Column,
					fmt.Sprintf("unexpected top-level node %s", child.Rule))
				task.Fail(err.Error())
				return nil, err
			}
		}

		task.Advance() // convert
		task.Complete(true)
	}

	return files, nil
}

// ancestry walks parent pointers from idx back to the root, returning
// canonical paths in root-to-idx order.
func ancestry(idx int, parent map[int]int, files []*FileCode) []string {
	var rev []string
	for {
		rev = append(rev, files[idx].Path)
		p := parent[idx]
		if p == idx {
			break
		}
		idx = p
	}
	out := make([]string, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

func packageChain(pkg *ast.Node) []ztext.Slice {
	chain := make([]ztext.Slice, 0, len(pkg.Children))
	for _, id := range pkg.Children {
		chain = append(chain, id.Value)
	}
	return chain
}

func buildFunction(n *ast.Node) (*Function, ztext.Slice) {
	fn := &Function{}
	var name ztext.Slice
	for _, child := range n.Children {
		switch child.Rule {
		case ast.Public:
			fn.Public = true
		case ast.Identifier:
			if name == "" {
				name = child.Value
			}
		case ast.Arguments:
			for _, arg := range child.Children {
				argName := arg.Children[0].Value
				fn.Args.Append(argName, BuildType(arg.Children[1]))
			}
		case ast.Type:
			fn.ReturnType = BuildType(child)
		case ast.Block:
			fn.Body = child
		}
	}
	if fn.ReturnType.Base == InvalidBase {
		fn.ReturnType = Type{Base: NothingBase}
	}
	return fn, name
}

func buildMod(n *ast.Node) (*Mod, ztext.Slice) {
	m := &Mod{
		Declarations: make(map[ztext.Slice]*Declaration),
		Functions:    make(map[ztext.Slice]*Function),
	}
	var name ztext.Slice
	var pendingDerive *ast.Node

	for _, child := range n.Children {
		switch child.Rule {
		case ast.Public:
			m.Public = true
		case ast.Identifier:
			if name == "" {
				name = child.Value
			}
		case ast.Derive:
			pendingDerive = child
			m.Derives = append(m.Derives, child)
		case ast.Declaration, ast.ConstDeclaration:
			decl := buildDeclaration(child, pendingDerive)
			pendingDerive = nil
			m.Declarations[declName(child)] = decl
		case ast.Function:
			fn, fnName := buildFunction(child)
			m.Functions[fnName] = fn
		}
	}
	return m, name
}

func declName(n *ast.Node) ztext.Slice {
	for _, c := range n.Children {
		if c.Rule == ast.Identifier {
			return c.Value
		}
	}
	return ""
}

func buildDeclaration(n *ast.Node, derive *ast.Node) *Declaration {
	decl := &Declaration{IsConst: n.Rule == ast.ConstDeclaration, Derive: derive}
	for _, c := range n.Children {
		switch c.Rule {
		case ast.Type:
			decl.DeclType = BuildType(c)
		case ast.Expression:
			decl.Value = c
		}
	}
	return decl
}
