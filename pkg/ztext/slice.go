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

// Package ztext provides the two string representations used throughout the
// front-end: Slice, a non-owning view into source text, and Builder, an
// owned, growable buffer with a small-buffer optimization for strings
// assembled at runtime. The front-end's own packages use Slice; import paths
// are built with path/filepath, not Builder.
package ztext

import "hash/maphash"

var hashSeed = maphash.MakeSeed()

// Slice is a non-owning view into a byte buffer, analogous to a Rust &str or
// C++ std::string_view. Two Slices compare equal iff their bytes match,
// regardless of which buffer they were cut from. A Slice must never outlive
// the buffer it was cut from; callers that need a Slice to survive past a
// file's lifetime must use Builder to copy it into an owned string.
//
// Go string headers already carry a pointer and a length and slicing a
// string never copies the backing array, so Slice is implemented as a named
// string rather than a hand-rolled pointer+length pair; this gives the same
// "view, not copy" semantics the front-end requires while staying
// comparable and usable directly as a map key.
type Slice string

// Empty reports whether s has zero length.
func (s Slice) Empty() bool {
	return len(s) == 0
}

// String returns s as a plain string, for use in fmt and error messages.
func (s Slice) String() string {
	return string(s)
}

// Equal reports whether s and other have identical bytes.
func (s Slice) Equal(other Slice) bool {
	return s == other
}

// Hash returns a 64-bit hash of s's bytes, computed with a streaming
// byte-at-a-time hasher seeded once per process. Any well-distributed hash
// satisfies the front-end's requirements; maphash.Hash is the streaming
// construction the standard library offers (the pack carries no xxhash-family
// dependency — see DESIGN.md).
func (s Slice) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.WriteString(string(s))
	return h.Sum64()
}
