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

package ztext

// smallBufferCapacity mirrors the inline stack buffer size used by the
// reference implementation's owned string type before it spills to a heap
// allocation.
const smallBufferCapacity = 256

// Builder is an owned, growable byte buffer with a small-buffer
// optimization: content up to smallBufferCapacity bytes lives in an inline
// array, and only larger content causes a heap allocation. Unlike
// strings.Builder, callers can inspect whether Builder is still using its
// inline storage via Inline, which the package's tests use to confirm that
// short content stays inline and long content spills.
type Builder struct {
	inline [smallBufferCapacity]byte
	spill  []byte
	len    int
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return b.len
}

// Inline reports whether the builder is still writing into its inline
// buffer (i.e. has not yet spilled to the heap).
func (b *Builder) Inline() bool {
	return b.spill == nil
}

func (b *Builder) grow(extra int) {
	if b.spill != nil {
		return
	}
	if b.len+extra <= smallBufferCapacity {
		return
	}

	// Spill to the heap, copying what's already been written and reserving
	// headroom so repeated small pushes don't re-spill on every call.
	capacity := (b.len + extra) * 2
	b.spill = make([]byte, b.len, capacity)
	copy(b.spill, b.inline[:b.len])
}

// PushByte appends a single byte.
func (b *Builder) PushByte(c byte) {
	b.grow(1)
	if b.spill != nil {
		b.spill = append(b.spill, c)
	} else {
		b.inline[b.len] = c
	}
	b.len++
}

// PushString appends s's bytes.
func (b *Builder) PushString(s string) {
	b.grow(len(s))
	if b.spill != nil {
		b.spill = append(b.spill, s...)
	} else {
		copy(b.inline[b.len:], s)
	}
	b.len += len(s)
}

// PushSlice appends a Slice's bytes.
func (b *Builder) PushSlice(s Slice) {
	b.PushString(string(s))
}

// Reserve ensures the builder has room for at least extra more bytes
// without an intermediate reallocation, spilling to the heap early if
// needed.
func (b *Builder) Reserve(extra int) {
	b.grow(extra)
	if b.spill != nil && cap(b.spill)-len(b.spill) < extra {
		grown := make([]byte, len(b.spill), len(b.spill)+extra)
		copy(grown, b.spill)
		b.spill = grown
	}
}

// String returns the accumulated content. It does not reset the builder.
func (b *Builder) String() string {
	if b.spill != nil {
		return string(b.spill)
	}
	return string(b.inline[:b.len])
}

// Slice returns the accumulated content as a Slice. The bytes are copied, so
// later writes to the builder do not affect the returned Slice.
func (b *Builder) Slice() Slice {
	return Slice(b.String())
}
