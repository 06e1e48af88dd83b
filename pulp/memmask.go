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

package pulp

import (
	"unsafe"

	"github.com/ajroetker/go-pulp/pulp/internal/memmask"
)

// LaneMask is implemented by the element mask types.
type LaneMask = memmask.LaneMask

// MemMask describes which lanes of a masked load or store address live
// memory. It is built by the MaskBetween operations of a backend and is
// immutable: Bits always equals Mask().Bits().
//
// Masks from backends with native masked instructions run those instructions
// through a trampoline; see UsesTrampoline. Only backends of this module can
// build such masks.
type MemMask[M LaneMask] = memmask.MemMask[M]

// NewMemMask wraps an element mask for masked memory access. Accesses
// through the result proceed lane by lane.
func NewMemMask[M LaneMask](m M) MemMask[M] {
	return memmask.New(m)
}

// clampRange limits [start, end) to [0, n]. An inverted range is empty.
func clampRange(start, end, n int) (int, int) {
	start = max(0, min(start, n))
	end = max(0, min(end, n))
	if start > end {
		start = end
	}
	return start, end
}

func maskLoad[T any, R Register, M LaneMask](m MemMask[M], ptr *T) R {
	return memmask.Load[T, R](m, ptr)
}

func maskStore[T any, R Register, M LaneMask](m MemMask[M], ptr *T, v R) {
	memmask.Store(m, ptr, v)
}

// halves views a complex128 pointer as its two float64 halves, which is how
// C64s lanes are masked.
func halves(p *complex128) *uint64 {
	return (*uint64)(unsafe.Pointer(p))
}
