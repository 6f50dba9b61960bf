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

// Package toposort provides a generic topological sort used to order
// FileCode records by import dependency (spec.md §4.4: "Record the import
// edge ... so the semantic analyzer can iterate files in dependency order").
package toposort

import (
	"fmt"
	"iter"
)

// Sort sorts a DAG topologically, yielding leaves before the nodes that
// depend on them.
//
// Roots are the nodes whose dependencies are being queried. key returns a
// comparable key for each node. dag returns the children (dependencies) of a
// node.
func Sort[Node any, Key comparable](
	roots []Node,
	key func(Node) Key,
	dag func(Node) iter.Seq[Node],
) iter.Seq[Node] {
	s := Sorter[Node, Key]{Key: key}
	return s.Sort(roots, dag)
}

// Sorter is reusable scratch space for a particular stencil of [Sort], so
// repeated sorts (e.g. once per incremental recompile) can amortize the
// allocation of its bookkeeping maps.
type Sorter[Node any, Key comparable] struct {
	Key func(Node) Key

	state     map[Key]bool
	stack     []Node
	iterating bool
}

// Sort is like [Sort], but reuses resources stored in s.
func (s *Sorter[Node, Key]) Sort(
	roots []Node,
	dag func(Node) iter.Seq[Node],
) iter.Seq[Node] {
	if s.state == nil {
		s.state = make(map[Key]bool)
	} else {
		clear(s.state)
	}
	clear(s.stack)
	s.stack = s.stack[:0]

	return func(yield func(Node) bool) {
		if s.iterating {
			panic("toposort: Sort() called reentrantly")
		}
		s.iterating = true
		defer func() { s.iterating = false }()

		for _, root := range roots {
			s.push(root)
			// DFS tail-call-optimized into a loop. Each node is visited twice:
			// once to push its children, once to pop it and yield it. The
			// state map tracks whether this is the first or second visit.
			for len(s.stack) > 0 {
				node := s.stack[len(s.stack)-1]
				k := s.Key(node)
				yielded, visited := s.state[k]

				if !visited {
					s.state[k] = false
					for child := range dag(node) {
						s.push(child)
					}
					continue
				}

				s.stack = s.stack[:len(s.stack)-1]
				if !yielded {
					if !yield(node) {
						return
					}
					s.state[k] = true
				}
			}
		}
	}
}

func (s *Sorter[Node, Key]) push(v Node) {
	k := s.Key(v)
	switch yielded, visited := s.state[k]; {
	case !visited:
		s.stack = append(s.stack, v)

	case !yielded && visited:
		prev := lastIndexFunc(s.stack, func(n Node) bool { return s.Key(n) == k })
		panic(fmt.Sprintf("toposort: cycle detected ending at %v", s.stack[prev:]))

	case yielded:
		return
	}
}

func lastIndexFunc[T any](s []T, match func(T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if match(s[i]) {
			return i
		}
	}
	return -1
}
