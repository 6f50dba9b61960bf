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

import "github.com/zx-lang/zxc/pkg/ast"

// BuildType converts a parsed TYPE node into the converter's structured
// Type. The node's children are zero or more PTR markers followed by one
// base node (a built-in keyword rule, or an IDENTIFIER carrying a dotted
// user-defined name) followed by zero or more generic-parameter TYPE nodes.
func BuildType(n *ast.Node) Type {
	var t Type
	i := 0
	for i < len(n.Children) && n.Children[i].Rule == ast.Ptr {
		t.Pointers++
		i++
	}
	if i >= len(n.Children) {
		// An empty terminal TYPE (spec.md §4.3's "empty terminal TYPE nodes
		// are pruned") never reaches here as a standalone node; a bare
		// pointer run with no base is a parser bug, not a converter one.
		t.Base = NothingBase
		return t
	}

	base := n.Children[i]
	switch base.Rule {
	case ast.Str:
		t.Base = StrBase
	case ast.Num:
		t.Base = NumBase
	case ast.Dec:
		t.Base = DecBase
	case ast.Bool:
		t.Base = BoolBase
	case ast.Nothing:
		t.Base = NothingBase
	case ast.Identifier:
		t.Base = UserDefinedBase
		t.Name = base.Value
	}
	i++

	for ; i < len(n.Children); i++ {
		t.Children = append(t.Children, BuildType(n.Children[i]))
	}
	return t
}
