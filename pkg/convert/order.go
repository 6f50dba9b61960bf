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
	"iter"

	"github.com/zx-lang/zxc/internal/toposort"
)

// DependencyOrder returns files reordered so that every file appears after
// all the files it imports (spec.md §4.4: "so the semantic analyzer can
// iterate files in dependency order"). The root file (index 0, the one
// Convert was first called with) is always last.
//
// Convert already rejects any cycle among non-std imports before it
// returns, so DependencyOrder never needs to detect one itself; a std
// import back into an already-seen file is a legal diamond, not a cycle,
// because Convert records it as a plain edge to the existing index.
func DependencyOrder(files []*FileCode) []*FileCode {
	index := make(map[*FileCode]int, len(files))
	for i, fc := range files {
		index[fc] = i
	}

	deps := func(fc *FileCode) iter.Seq[*FileCode] {
		return func(yield func(*FileCode) bool) {
			for _, i := range fc.Imports {
				if !yield(files[i]) {
					return
				}
			}
		}
	}

	ordered := make([]*FileCode, 0, len(files))
	for fc := range toposort.Sort(files, func(fc *FileCode) int { return index[fc] }, deps) {
		ordered = append(ordered, fc)
	}
	return ordered
}
