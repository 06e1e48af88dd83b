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

//go:build amd64 && !noasm

package trampoline

import "unsafe"

// Available reports whether trampolines are compiled into this binary.
const Available = true

// The routines below take their operands in registers and must only be
// entered through callTrampoline.

func maskedLoad8()
func maskedLoad16()
func maskedLoad32()
func maskedLoad64()
func maskedStore8()
func maskedStore16()
func maskedStore32()
func maskedStore64()

// routineAddrs writes the entry addresses of the routines, loads first, in
// order of lane width.
//
//go:noescape
func routineAddrs(out *[8]uintptr)

// callTrampoline jumps to fn with DI = ptr, CX = mask and SI = img.
//
//go:noescape
func callTrampoline(fn uintptr, ptr unsafe.Pointer, mask uint64, img unsafe.Pointer)

var pairs = func() [4]Pair {
	var a [8]uintptr
	routineAddrs(&a)
	return [4]Pair{
		{load: a[0], store: a[4], lane: 1},
		{load: a[1], store: a[5], lane: 2},
		{load: a[2], store: a[6], lane: 4},
		{load: a[3], store: a[7], lane: 8},
	}
}()

// For8 returns the routines for 8-bit lanes. They need AVX512BW.
func For8() Pair { return pairs[0] }

// For16 returns the routines for 16-bit lanes. They need AVX512BW.
func For16() Pair { return pairs[1] }

// For32 returns the routines for 32-bit lanes. They need AVX512F.
func For32() Pair { return pairs[2] }

// For64 returns the routines for 64-bit lanes. They need AVX512F.
func For64() Pair { return pairs[3] }

// Load reads the lanes of ptr set in mask into the ImageSize bytes at img
// and zeroes the others. The caller guarantees that the CPU supports the
// routine's instructions and that every set lane addresses valid memory.
func (p Pair) Load(ptr unsafe.Pointer, mask uint64, img unsafe.Pointer) {
	callTrampoline(p.load, ptr, mask, img)
}

// Store writes the lanes of the image at img set in mask to ptr, under the
// same conditions as Load.
func (p Pair) Store(ptr unsafe.Pointer, mask uint64, img unsafe.Pointer) {
	callTrampoline(p.store, ptr, mask, img)
}
