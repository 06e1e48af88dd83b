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

// Package trampoline reaches the AVX-512 masked load and store instructions
// from code that is not itself compiled for AVX-512.
//
// Each routine is a few instructions of assembly that expects its operands in
// fixed registers: DI holds the memory pointer, SI the 64-byte register image
// and CX the lane mask. [Pair.Load] and [Pair.Store] load those registers
// and jump to the routine instead of calling it, so the routine's RET returns
// straight to their caller. The routines write Z0 and K1 and nothing else; no Go code keeps
// live values in either across a call.
//
// A load routine reads the set lanes from DI, zero-fills the rest and writes
// the full register image to SI. A store routine reads the image at SI and
// writes only the set lanes to DI. Masked-off lanes are never accessed, so DI
// may point at the last few elements of an allocation.
package trampoline

// Pair holds the entry addresses of one load and one store routine for a
// lane width. Pairs come only from [ForLane] and the ForN functions; the zero
// Pair means no trampoline is available.
type Pair struct {
	load, store uintptr
	lane        uintptr
}

// Valid reports whether both entry addresses are set.
func (p Pair) Valid() bool {
	return p.load != 0 && p.store != 0
}

// LaneSize returns the lane width in bytes the routines move, or 0 for an
// invalid Pair.
func (p Pair) LaneSize() uintptr {
	if !p.Valid() {
		return 0
	}
	return p.lane
}

// ForLane returns the routines for lanes of size bytes, or the zero Pair if
// there are none.
func ForLane(size uintptr) Pair {
	switch size {
	case 1:
		return For8()
	case 2:
		return For16()
	case 4:
		return For32()
	case 8:
		return For64()
	default:
		return Pair{}
	}
}

// ImageSize is the size in bytes of the register image exchanged with the
// routines.
const ImageSize = 64
