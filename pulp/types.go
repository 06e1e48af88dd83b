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

import "math/bits"

// Vector types. Each is a register of lanes of one element type; vectors over
// the same register type R convert to one another by reinterpreting bits.

// U8s is a vector of unsigned 8-bit lanes.
type U8s[R Register] struct{ Reg R }

// U8sFromSlice loads up to Lanes[uint8, R]() lanes from xs. Missing lanes are zero.
func U8sFromSlice[R Register](xs []uint8) U8s[R] { return U8s[R]{fromLanes[uint8, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v U8s[R]) Slice() []uint8 { return toLanes[uint8](v.Reg) }

// I8s is a vector of signed 8-bit lanes.
type I8s[R Register] struct{ Reg R }

// I8sFromSlice loads up to Lanes[int8, R]() lanes from xs. Missing lanes are zero.
func I8sFromSlice[R Register](xs []int8) I8s[R] { return I8s[R]{fromLanes[int8, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v I8s[R]) Slice() []int8 { return toLanes[int8](v.Reg) }

// U16s is a vector of unsigned 16-bit lanes.
type U16s[R Register] struct{ Reg R }

// U16sFromSlice loads up to Lanes[uint16, R]() lanes from xs. Missing lanes are zero.
func U16sFromSlice[R Register](xs []uint16) U16s[R] { return U16s[R]{fromLanes[uint16, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v U16s[R]) Slice() []uint16 { return toLanes[uint16](v.Reg) }

// I16s is a vector of signed 16-bit lanes.
type I16s[R Register] struct{ Reg R }

// I16sFromSlice loads up to Lanes[int16, R]() lanes from xs. Missing lanes are zero.
func I16sFromSlice[R Register](xs []int16) I16s[R] { return I16s[R]{fromLanes[int16, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v I16s[R]) Slice() []int16 { return toLanes[int16](v.Reg) }

// U32s is a vector of unsigned 32-bit lanes.
type U32s[R Register] struct{ Reg R }

// U32sFromSlice loads up to Lanes[uint32, R]() lanes from xs. Missing lanes are zero.
func U32sFromSlice[R Register](xs []uint32) U32s[R] { return U32s[R]{fromLanes[uint32, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v U32s[R]) Slice() []uint32 { return toLanes[uint32](v.Reg) }

// I32s is a vector of signed 32-bit lanes.
type I32s[R Register] struct{ Reg R }

// I32sFromSlice loads up to Lanes[int32, R]() lanes from xs. Missing lanes are zero.
func I32sFromSlice[R Register](xs []int32) I32s[R] { return I32s[R]{fromLanes[int32, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v I32s[R]) Slice() []int32 { return toLanes[int32](v.Reg) }

// U64s is a vector of unsigned 64-bit lanes.
type U64s[R Register] struct{ Reg R }

// U64sFromSlice loads up to Lanes[uint64, R]() lanes from xs. Missing lanes are zero.
func U64sFromSlice[R Register](xs []uint64) U64s[R] { return U64s[R]{fromLanes[uint64, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v U64s[R]) Slice() []uint64 { return toLanes[uint64](v.Reg) }

// I64s is a vector of signed 64-bit lanes.
type I64s[R Register] struct{ Reg R }

// I64sFromSlice loads up to Lanes[int64, R]() lanes from xs. Missing lanes are zero.
func I64sFromSlice[R Register](xs []int64) I64s[R] { return I64s[R]{fromLanes[int64, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v I64s[R]) Slice() []int64 { return toLanes[int64](v.Reg) }

// F32s is a vector of float32 lanes.
type F32s[R Register] struct{ Reg R }

// F32sFromSlice loads up to Lanes[float32, R]() lanes from xs. Missing lanes are zero.
func F32sFromSlice[R Register](xs []float32) F32s[R] { return F32s[R]{fromLanes[float32, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v F32s[R]) Slice() []float32 { return toLanes[float32](v.Reg) }

// F64s is a vector of float64 lanes.
type F64s[R Register] struct{ Reg R }

// F64sFromSlice loads up to Lanes[float64, R]() lanes from xs. Missing lanes are zero.
func F64sFromSlice[R Register](xs []float64) F64s[R] { return F64s[R]{fromLanes[float64, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v F64s[R]) Slice() []float64 { return toLanes[float64](v.Reg) }

// C32s is a vector of complex64 lanes.
type C32s[R Register] struct{ Reg R }

// C32sFromSlice loads up to Lanes[complex64, R]() lanes from xs. Missing lanes are zero.
func C32sFromSlice[R Register](xs []complex64) C32s[R] { return C32s[R]{fromLanes[complex64, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v C32s[R]) Slice() []complex64 { return toLanes[complex64](v.Reg) }

// C64s is a vector of complex128 lanes.
type C64s[R Register] struct{ Reg R }

// C64sFromSlice loads up to Lanes[complex128, R]() lanes from xs. Missing lanes are zero.
func C64sFromSlice[R Register](xs []complex128) C64s[R] { return C64s[R]{fromLanes[complex128, R](xs)} }

// Slice returns a copy of the lanes of v.
func (v C64s[R]) Slice() []complex128 { return toLanes[complex128](v.Reg) }

// Mask types. A mask lane has the width of the lanes it selects and is either
// all zeros or all ones; the storage is unexported so that no partial pattern
// can be constructed from outside the package.

// M8s is a mask over 8-bit lanes.
type M8s[R Register] struct{ bits R }

// U8s returns the lanes of m as integers: all ones when set, zero otherwise.
func (m M8s[R]) U8s() U8s[R] { return U8s[R]{m.bits} }

// Bools returns one boolean per lane.
func (m M8s[R]) Bools() []bool { return maskBools[uint8](m.bits) }

// Bits returns the mask with lane i in bit i.
func (m M8s[R]) Bits() uint64 { return maskBits[uint8](m.bits) }

// M8sFromBools builds a mask with lane i set when bs[i] is true. Lanes past
// len(bs) are unset.
func M8sFromBools[R Register](bs []bool) M8s[R] { return M8s[R]{boolsMask[uint8, R](bs)} }

// M8sFromBits builds a mask with lane i set when bit i of b is set.
func M8sFromBits[R Register](b uint64) M8s[R] { return M8s[R]{bitsMask[uint8, R](b)} }

// M16s is a mask over 16-bit lanes.
type M16s[R Register] struct{ bits R }

// U16s returns the lanes of m as integers: all ones when set, zero otherwise.
func (m M16s[R]) U16s() U16s[R] { return U16s[R]{m.bits} }

// Bools returns one boolean per lane.
func (m M16s[R]) Bools() []bool { return maskBools[uint16](m.bits) }

// Bits returns the mask with lane i in bit i.
func (m M16s[R]) Bits() uint64 { return maskBits[uint16](m.bits) }

// M16sFromBools builds a mask with lane i set when bs[i] is true. Lanes past
// len(bs) are unset.
func M16sFromBools[R Register](bs []bool) M16s[R] { return M16s[R]{boolsMask[uint16, R](bs)} }

// M16sFromBits builds a mask with lane i set when bit i of b is set.
func M16sFromBits[R Register](b uint64) M16s[R] { return M16s[R]{bitsMask[uint16, R](b)} }

// M32s is a mask over 32-bit lanes.
type M32s[R Register] struct{ bits R }

// U32s returns the lanes of m as integers: all ones when set, zero otherwise.
func (m M32s[R]) U32s() U32s[R] { return U32s[R]{m.bits} }

// Bools returns one boolean per lane.
func (m M32s[R]) Bools() []bool { return maskBools[uint32](m.bits) }

// Bits returns the mask with lane i in bit i.
func (m M32s[R]) Bits() uint64 { return maskBits[uint32](m.bits) }

// M32sFromBools builds a mask with lane i set when bs[i] is true. Lanes past
// len(bs) are unset.
func M32sFromBools[R Register](bs []bool) M32s[R] { return M32s[R]{boolsMask[uint32, R](bs)} }

// M32sFromBits builds a mask with lane i set when bit i of b is set.
func M32sFromBits[R Register](b uint64) M32s[R] { return M32s[R]{bitsMask[uint32, R](b)} }

// M64s is a mask over 64-bit lanes.
type M64s[R Register] struct{ bits R }

// U64s returns the lanes of m as integers: all ones when set, zero otherwise.
func (m M64s[R]) U64s() U64s[R] { return U64s[R]{m.bits} }

// Bools returns one boolean per lane.
func (m M64s[R]) Bools() []bool { return maskBools[uint64](m.bits) }

// Bits returns the mask with lane i in bit i.
func (m M64s[R]) Bits() uint64 { return maskBits[uint64](m.bits) }

// M64sFromBools builds a mask with lane i set when bs[i] is true. Lanes past
// len(bs) are unset.
func M64sFromBools[R Register](bs []bool) M64s[R] { return M64s[R]{boolsMask[uint64, R](bs)} }

// M64sFromBits builds a mask with lane i set when bit i of b is set.
func M64sFromBits[R Register](b uint64) M64s[R] { return M64s[R]{bitsMask[uint64, R](b)} }

func maskBools[T Unsigned, R Register](r R) []bool {
	ls := lanes[T](&r)
	out := make([]bool, len(ls))
	for i, x := range ls {
		out[i] = x != 0
	}
	return out
}

func maskBits[T Unsigned, R Register](r R) uint64 {
	var b uint64
	for i, x := range lanes[T](&r) {
		if x != 0 {
			b |= 1 << i
		}
	}
	return b
}

func boolsMask[T Unsigned, R Register](bs []bool) R {
	var r R
	ls := lanes[T](&r)
	for i := range min(len(ls), len(bs)) {
		if bs[i] {
			ls[i] = ^T(0)
		}
	}
	return r
}

func bitsMask[T Unsigned, R Register](b uint64) R {
	var r R
	for i, ls := 0, lanes[T](&r); i < len(ls); i++ {
		if b&(1<<i) != 0 {
			ls[i] = ^T(0)
		}
	}
	return r
}

// Bit-mask types hold one bit per lane of a 512-bit register. They are the
// native mask encoding of AVX-512 and are distinct from the element masks;
// converting between the two is explicit.

// B8 is a bit-mask over the 8 64-bit lanes of a 512-bit register.
type B8 uint8

func (b B8) Not() B8 { return ^b }
func (b B8) And(o B8) B8 { return b & o }
func (b B8) Or(o B8) B8 { return b | o }
func (b B8) Xor(o B8) B8 { return b ^ o }
func (b B8) AndNot(o B8) B8 { return b &^ o }

// Bools returns one boolean per lane.
func (b B8) Bools() []bool { return bitBools(uint64(b), 8) }

// FirstTrue returns the index of the lowest set lane, or -1.
func (b B8) FirstTrue() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros8(uint8(b))
}

// Count returns the number of set lanes.
func (b B8) Count() int { return bits.OnesCount8(uint8(b)) }

// M64s expands b into an element mask.
func (b B8) M64s() M64s[Reg512] { return M64sFromBits[Reg512](uint64(b)) }

// B8FromM64s compresses an element mask into a bit-mask.
func B8FromM64s(m M64s[Reg512]) B8 { return B8(m.Bits()) }

// B16 is a bit-mask over the 16 32-bit lanes of a 512-bit register.
type B16 uint16

func (b B16) Not() B16 { return ^b }
func (b B16) And(o B16) B16 { return b & o }
func (b B16) Or(o B16) B16 { return b | o }
func (b B16) Xor(o B16) B16 { return b ^ o }
func (b B16) AndNot(o B16) B16 { return b &^ o }

// Bools returns one boolean per lane.
func (b B16) Bools() []bool { return bitBools(uint64(b), 16) }

// FirstTrue returns the index of the lowest set lane, or -1.
func (b B16) FirstTrue() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros16(uint16(b))
}

// Count returns the number of set lanes.
func (b B16) Count() int { return bits.OnesCount16(uint16(b)) }

// M32s expands b into an element mask.
func (b B16) M32s() M32s[Reg512] { return M32sFromBits[Reg512](uint64(b)) }

// B16FromM32s compresses an element mask into a bit-mask.
func B16FromM32s(m M32s[Reg512]) B16 { return B16(m.Bits()) }

// B32 is a bit-mask over the 32 16-bit lanes of a 512-bit register.
type B32 uint32

func (b B32) Not() B32 { return ^b }
func (b B32) And(o B32) B32 { return b & o }
func (b B32) Or(o B32) B32 { return b | o }
func (b B32) Xor(o B32) B32 { return b ^ o }
func (b B32) AndNot(o B32) B32 { return b &^ o }

// Bools returns one boolean per lane.
func (b B32) Bools() []bool { return bitBools(uint64(b), 32) }

// FirstTrue returns the index of the lowest set lane, or -1.
func (b B32) FirstTrue() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(b))
}

// Count returns the number of set lanes.
func (b B32) Count() int { return bits.OnesCount32(uint32(b)) }

// M16s expands b into an element mask.
func (b B32) M16s() M16s[Reg512] { return M16sFromBits[Reg512](uint64(b)) }

// B32FromM16s compresses an element mask into a bit-mask.
func B32FromM16s(m M16s[Reg512]) B32 { return B32(m.Bits()) }

// B64 is a bit-mask over the 64 8-bit lanes of a 512-bit register.
type B64 uint64

func (b B64) Not() B64 { return ^b }
func (b B64) And(o B64) B64 { return b & o }
func (b B64) Or(o B64) B64 { return b | o }
func (b B64) Xor(o B64) B64 { return b ^ o }
func (b B64) AndNot(o B64) B64 { return b &^ o }

// Bools returns one boolean per lane.
func (b B64) Bools() []bool { return bitBools(uint64(b), 64) }

// FirstTrue returns the index of the lowest set lane, or -1.
func (b B64) FirstTrue() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// Count returns the number of set lanes.
func (b B64) Count() int { return bits.OnesCount64(uint64(b)) }

// M8s expands b into an element mask.
func (b B64) M8s() M8s[Reg512] { return M8sFromBits[Reg512](uint64(b)) }

// B64FromM8s compresses an element mask into a bit-mask.
func B64FromM8s(m M8s[Reg512]) B64 { return B64(m.Bits()) }

func bitBools(b uint64, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = b&(1<<i) != 0
	}
	return out
}
