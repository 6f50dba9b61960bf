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

// Package arena implements a page-allocated object pool with an explicit
// free list, used for every token and AST node produced by the front-end
// (the converter's Function, Mod and Declaration records are ordinary heap
// allocations, not arena slots). Allocations are O(1) and amortized-contiguous; nothing is freed
// individually in the fast path, only at the end of a compilation when the
// whole Arena is dropped.
package arena

// pageCapacity is the number of elements held by a single page before a new
// one is allocated.
const pageCapacity = 256

// page is a fixed-capacity, bump-allocated slice of T. Once created, a page
// is never resized, so pointers handed out by Alloc remain stable for the
// page's lifetime.
type page[T any] struct {
	slots  []T
	offset int
}

func newPage[T any]() *page[T] {
	return &page[T]{slots: make([]T, pageCapacity)}
}

func (p *page[T]) full() bool {
	return p.offset >= len(p.slots)
}

func (p *page[T]) alloc() *T {
	ptr := &p.slots[p.offset]
	p.offset++
	return ptr
}

// Arena allocates values of type T from a list of pages, reusing freed slots
// before bumping into fresh storage. The zero Arena is empty and ready to
// use.
type Arena[T any] struct {
	pages []*page[T]
	free  []*T
}

// New allocates a zero-valued T and returns its address. The returned
// pointer is never nil; callers that need failure semantics (e.g. to
// surface arena.ErrOutOfMemory per the front-end's error taxonomy) should
// wrap Arena in a type that bounds the number of pages it is willing to
// grow to — the default Arena grows without bound, matching Go's GC-backed
// memory model.
func (a *Arena[T]) New() *T {
	if n := len(a.free); n > 0 {
		ptr := a.free[n-1]
		a.free = a.free[:n-1]
		*ptr = *new(T)
		return ptr
	}

	if len(a.pages) == 0 || a.pages[len(a.pages)-1].full() {
		a.pages = append(a.pages, newPage[T]())
	}
	return a.pages[len(a.pages)-1].alloc()
}

// Free returns ptr to the arena's free list so a subsequent New call can
// reuse its storage. It is the caller's responsibility to ensure ptr was
// allocated by this Arena and is not referenced again; Free does not zero
// ptr itself (New does, on reuse) so stale reads after a double-free are
// easier to spot in tests.
func (a *Arena[T]) Free(ptr *T) {
	a.free = append(a.free, ptr)
}

// Len reports the number of live (allocated, not freed) elements. It is
// O(pages) and intended for tests and diagnostics, not hot paths.
func (a *Arena[T]) Len() int {
	total := 0
	for _, p := range a.pages {
		total += p.offset
	}
	return total - len(a.free)
}
