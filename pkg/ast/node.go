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

package ast

import "github.com/zx-lang/zxc/pkg/ztext"

// Node is the tagged tree node produced by the parser. Children is append-only
// during parsing; nothing downstream mutates an existing child slice in
// place.
type Node struct {
	Rule     Rule
	Value    ztext.Slice
	HasValue bool
	Children []*Node

	Line   int
	Column int
}

// AddChild appends child to n's children in place.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Leaf reports whether n carries no children, i.e. it is a terminal such as
// an identifier or literal.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}
