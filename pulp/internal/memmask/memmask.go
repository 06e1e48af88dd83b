// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package memmask holds the memory mask used by masked loads and stores.
// Only packages of this module can attach native trampolines to a mask; the
// public package re-exports the type and the plain constructor.
package memmask

import (
	"unsafe"

	"github.com/ajroetker/go-pulp/pulp/internal/trampoline"
)

// LaneMask is implemented by the element mask types.
type LaneMask interface {
	Bits() uint64
}

// MemMask describes which lanes of a masked load or store address live
// memory. It is built by the MaskBetween operations of a backend and is
// immutable.
//
// Backends whose masked instructions cannot be issued from ordinary Go code
// attach a trampoline pair; a masked access then runs the native instruction
// through the trampoline. Otherwise the access proceeds lane by lane. Either
// way the lanes touched are exactly those reported by Bits, which always
// equals Mask().Bits().
type MemMask[M LaneMask] struct {
	mask  M
	bits  uint64
	tramp trampoline.Pair
}

// New wraps an element mask for lane-by-lane masked memory access.
func New[M LaneMask](m M) MemMask[M] {
	return MemMask[M]{mask: m, bits: m.Bits()}
}

// WithTrampoline wraps an element mask whose lanes hold elements of type T
// and attaches the native routines for that lane width. The routines are
// attached only when they exist in this binary and the mask spans a whole
// native register; otherwise the result is the same as New. The caller
// guarantees that the CPU supports the routines.
func WithTrampoline[T any, M LaneMask](m M) MemMask[M] {
	mm := New(m)
	var t T
	if unsafe.Sizeof(m) == trampoline.ImageSize {
		mm.tramp = trampoline.ForLane(unsafe.Sizeof(t))
	}
	return mm
}

// Mask returns the element mask.
func (m MemMask[M]) Mask() M { return m.mask }

// Bits returns the mask with lane i in bit i.
func (m MemMask[M]) Bits() uint64 { return m.bits }

// UsesTrampoline reports whether accesses through m run the native masked
// instructions.
func (m MemMask[M]) UsesTrampoline() bool { return m.tramp.Valid() }

// native returns the trampoline for accessing T lanes of a register of size
// bytes, if m carries one of the matching width.
func (m MemMask[M]) native(lane, size uintptr) (trampoline.Pair, bool) {
	if size != trampoline.ImageSize || m.tramp.LaneSize() != lane {
		return trampoline.Pair{}, false
	}
	return m.tramp, true
}

// Load reads the lanes of ptr selected by m into a new register of type R
// holding T lanes. Unset lanes are zero and their addresses are never formed.
func Load[T, R any, M LaneMask](m MemMask[M], ptr *T) R {
	var (
		r R
		t T
	)
	if p, ok := m.native(unsafe.Sizeof(t), unsafe.Sizeof(r)); ok {
		p.Load(unsafe.Pointer(ptr), m.bits, unsafe.Pointer(&r))
		return r
	}
	x := lanes[T](&r)
	for i := range x {
		if m.bits&(1<<i) != 0 {
			x[i] = *elemAt(ptr, i)
		}
	}
	return r
}

// Store writes the lanes of v selected by m to ptr. The addresses of unset
// lanes are never formed.
func Store[T, R any, M LaneMask](m MemMask[M], ptr *T, v R) {
	var t T
	if p, ok := m.native(unsafe.Sizeof(t), unsafe.Sizeof(v)); ok {
		p.Store(unsafe.Pointer(ptr), m.bits, unsafe.Pointer(&v))
		return
	}
	x := lanes[T](&v)
	for i := range x {
		if m.bits&(1<<i) != 0 {
			*elemAt(ptr, i) = x[i]
		}
	}
}

func lanes[T, R any](r *R) []T {
	var t T
	return unsafe.Slice((*T)(unsafe.Pointer(r)), int(unsafe.Sizeof(*r)/unsafe.Sizeof(t)))
}

func elemAt[T any](p *T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(*p)))
}
