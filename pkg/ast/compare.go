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

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// compareOpts ignores source positions: two trees with the same shape and
// values are considered equal regardless of where in the source they were
// parsed from. Tests that care about position assert on it directly.
var compareOpts = cmp.Options{
	cmpopts.IgnoreFields(Node{}, "Line", "Column"),
}

// Equal reports whether a and b have the same Rule, Value, and recursively
// equal Children, ignoring Line/Column. Used by tests to assert tree shape
// without hand-writing a traversal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rule != b.Rule || a.HasValue != b.HasValue || a.Value != b.Value {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Diff renders a human-readable structural diff between a and b, for test
// failure messages.
func Diff(a, b *Node) string {
	return cmp.Diff(a, b, compareOpts)
}
