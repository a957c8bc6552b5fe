// Copyright 2025 The atomcore Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

// accumulatorInline is the size of the accumulator's zero-allocation
// inline buffer. Decoded chunks up to this size never touch the heap.
const accumulatorInline = 64

// accumulator is a growable, write-only byte buffer used to stage decoded
// scalar text before it is handed to the writer. Small chunks stay in an
// inline array; once a write would overflow it, the accumulator switches
// to a heap slice and never looks back, the same inline-then-heap growth
// shape the spec's chunk FIFO uses for its own storage.
type accumulator struct {
	inline [accumulatorInline]byte
	heap   []byte
	n      int
	onHeap bool
}

// reset clears the accumulator for reuse without releasing the heap
// buffer, so repeated decode calls don't reallocate on every atom.
func (a *accumulator) reset() {
	a.n = 0
	if a.onHeap {
		a.heap = a.heap[:0]
	}
}

// Len returns the number of bytes currently staged.
func (a *accumulator) Len() int { return a.n }

// Bytes returns the staged bytes. The slice is only valid until the next
// write or reset.
func (a *accumulator) Bytes() []byte {
	if a.onHeap {
		return a.heap
	}
	return a.inline[:a.n]
}

// WriteByte appends a single byte.
func (a *accumulator) WriteByte(b byte) {
	if !a.onHeap && a.n < accumulatorInline {
		a.inline[a.n] = b
		a.n++
		return
	}
	a.spill()
	a.heap = append(a.heap, b)
	a.n++
}

// Write appends p in full.
func (a *accumulator) Write(p []byte) {
	if !a.onHeap && a.n+len(p) <= accumulatorInline {
		copy(a.inline[a.n:], p)
		a.n += len(p)
		return
	}
	a.spill()
	a.heap = append(a.heap, p...)
	a.n += len(p)
}

// WriteRune appends the UTF-8 encoding of r.
func (a *accumulator) WriteRune(r rune) {
	var buf [4]byte
	n := utf8Put(buf[:], r)
	a.Write(buf[:n])
}

// spill migrates the inline buffer's contents to the heap the first time a
// write would overflow it.
func (a *accumulator) spill() {
	if a.onHeap {
		return
	}
	a.heap = append(a.heap[:0], a.inline[:a.n]...)
	a.onHeap = true
}
