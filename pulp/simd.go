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

import "github.com/ajroetker/go-pulp/pulp/feature"

// Token is implemented by every capability token. A token value exists only
// when the features it names are present on the running CPU, unless it was
// made with an Unchecked constructor.
type Token interface {
	// Name returns the short name of the backend, for example "v3".
	Name() string

	// Features lists the features the token certifies.
	Features() []feature.Feature

	// Vectorize runs op within the token's feature context.
	Vectorize(op func())
}

// VectorizeWith runs op with s inside s.Vectorize and returns its result.
func VectorizeWith[T any, S Token](s S, op func(S) T) T {
	var out T
	s.Vectorize(func() { out = op(s) })
	return out
}

// Simd is the vector operation set of a backend with registers of type R.
// Method names carry the lane type as a suffix: AddF32s adds F32s vectors.
//
// Every operation is total. Invalid shapes, such as a mask built for another
// register width, do not compile.
type Simd[R Register] interface {
	// Broadcast.
	SplatU8s(v uint8) U8s[R]
	SplatI8s(v int8) I8s[R]
	SplatU16s(v uint16) U16s[R]
	SplatI16s(v int16) I16s[R]
	SplatU32s(v uint32) U32s[R]
	SplatI32s(v int32) I32s[R]
	SplatU64s(v uint64) U64s[R]
	SplatI64s(v int64) I64s[R]
	SplatF32s(v float32) F32s[R]
	SplatF64s(v float64) F64s[R]
	SplatC32s(v complex64) C32s[R]
	SplatC64s(v complex128) C64s[R]

	// Addition and subtraction. Integer lanes wrap on overflow; float and
	// complex lanes follow IEEE 754.
	AddU8s(a, b U8s[R]) U8s[R]
	SubU8s(a, b U8s[R]) U8s[R]
	AddI8s(a, b I8s[R]) I8s[R]
	SubI8s(a, b I8s[R]) I8s[R]
	AddU16s(a, b U16s[R]) U16s[R]
	SubU16s(a, b U16s[R]) U16s[R]
	AddI16s(a, b I16s[R]) I16s[R]
	SubI16s(a, b I16s[R]) I16s[R]
	AddU32s(a, b U32s[R]) U32s[R]
	SubU32s(a, b U32s[R]) U32s[R]
	AddI32s(a, b I32s[R]) I32s[R]
	SubI32s(a, b I32s[R]) I32s[R]
	AddU64s(a, b U64s[R]) U64s[R]
	SubU64s(a, b U64s[R]) U64s[R]
	AddI64s(a, b I64s[R]) I64s[R]
	SubI64s(a, b I64s[R]) I64s[R]
	AddF32s(a, b F32s[R]) F32s[R]
	SubF32s(a, b F32s[R]) F32s[R]
	AddF64s(a, b F64s[R]) F64s[R]
	SubF64s(a, b F64s[R]) F64s[R]
	AddC32s(a, b C32s[R]) C32s[R]
	SubC32s(a, b C32s[R]) C32s[R]
	AddC64s(a, b C64s[R]) C64s[R]
	SubC64s(a, b C64s[R]) C64s[R]

	// Lane-wise multiplication. Integer lanes keep the low half of the product.
	MulU8s(a, b U8s[R]) U8s[R]
	MulU16s(a, b U16s[R]) U16s[R]
	MulU32s(a, b U32s[R]) U32s[R]
	MulU64s(a, b U64s[R]) U64s[R]
	MulI8s(a, b I8s[R]) I8s[R]
	MulI16s(a, b I16s[R]) I16s[R]
	MulI32s(a, b I32s[R]) I32s[R]
	MulI64s(a, b I64s[R]) I64s[R]
	MulF32s(a, b F32s[R]) F32s[R]
	MulF64s(a, b F64s[R]) F64s[R]

	// Division, and a*b+c with a single rounding.
	DivF32s(a, b F32s[R]) F32s[R]
	MulAddF32s(a, b, c F32s[R]) F32s[R]
	DivF64s(a, b F64s[R]) F64s[R]
	MulAddF64s(a, b, c F64s[R]) F64s[R]

	// Negation and absolute value. The absolute value of the most negative
	// integer is itself.
	NegI8s(a I8s[R]) I8s[R]
	NegI16s(a I16s[R]) I16s[R]
	NegI32s(a I32s[R]) I32s[R]
	NegI64s(a I64s[R]) I64s[R]
	NegF32s(a F32s[R]) F32s[R]
	NegF64s(a F64s[R]) F64s[R]
	AbsI8s(a I8s[R]) I8s[R]
	AbsI16s(a I16s[R]) I16s[R]
	AbsI32s(a I32s[R]) I32s[R]
	AbsI64s(a I64s[R]) I64s[R]
	AbsF32s(a F32s[R]) F32s[R]
	AbsF64s(a F64s[R]) F64s[R]

	// Lane-wise minimum and maximum. When a float comparison is unordered the
	// lane of b is returned.
	MinU8s(a, b U8s[R]) U8s[R]
	MaxU8s(a, b U8s[R]) U8s[R]
	MinU16s(a, b U16s[R]) U16s[R]
	MaxU16s(a, b U16s[R]) U16s[R]
	MinU32s(a, b U32s[R]) U32s[R]
	MaxU32s(a, b U32s[R]) U32s[R]
	MinU64s(a, b U64s[R]) U64s[R]
	MaxU64s(a, b U64s[R]) U64s[R]
	MinI8s(a, b I8s[R]) I8s[R]
	MaxI8s(a, b I8s[R]) I8s[R]
	MinI16s(a, b I16s[R]) I16s[R]
	MaxI16s(a, b I16s[R]) I16s[R]
	MinI32s(a, b I32s[R]) I32s[R]
	MaxI32s(a, b I32s[R]) I32s[R]
	MinI64s(a, b I64s[R]) I64s[R]
	MaxI64s(a, b I64s[R]) I64s[R]
	// Float Min and Max follow x86 MINPS/MAXPS, not IEEE minNum/maxNum: a lane
	// where either input is NaN, or where both are zeros, yields b.
	MinF32s(a, b F32s[R]) F32s[R]
	MaxF32s(a, b F32s[R]) F32s[R]
	MinF64s(a, b F64s[R]) F64s[R]
	MaxF64s(a, b F64s[R]) F64s[R]

	// Float rounding and square root. Round rounds half to even.
	SqrtF32s(a F32s[R]) F32s[R]
	SqrtF64s(a F64s[R]) F64s[R]
	FloorF32s(a F32s[R]) F32s[R]
	FloorF64s(a F64s[R]) F64s[R]
	CeilF32s(a F32s[R]) F32s[R]
	CeilF64s(a F64s[R]) F64s[R]
	RoundF32s(a F32s[R]) F32s[R]
	RoundF64s(a F64s[R]) F64s[R]

	// Saturating arithmetic clamps to the range of the lane type.
	SaturatingAddU8s(a, b U8s[R]) U8s[R]
	SaturatingSubU8s(a, b U8s[R]) U8s[R]
	SaturatingAddI8s(a, b I8s[R]) I8s[R]
	SaturatingSubI8s(a, b I8s[R]) I8s[R]
	SaturatingAddU16s(a, b U16s[R]) U16s[R]
	SaturatingSubU16s(a, b U16s[R]) U16s[R]
	SaturatingAddI16s(a, b I16s[R]) I16s[R]
	SaturatingSubI16s(a, b I16s[R]) I16s[R]

	// Comparisons. Each mask lane is set where the relation holds; relations
	// involving NaN do not hold.
	EqualU8s(a, b U8s[R]) M8s[R]
	EqualU16s(a, b U16s[R]) M16s[R]
	EqualU32s(a, b U32s[R]) M32s[R]
	EqualU64s(a, b U64s[R]) M64s[R]
	EqualI8s(a, b I8s[R]) M8s[R]
	EqualI16s(a, b I16s[R]) M16s[R]
	EqualI32s(a, b I32s[R]) M32s[R]
	EqualI64s(a, b I64s[R]) M64s[R]
	EqualF32s(a, b F32s[R]) M32s[R]
	EqualF64s(a, b F64s[R]) M64s[R]
	LessU8s(a, b U8s[R]) M8s[R]
	LessU16s(a, b U16s[R]) M16s[R]
	LessU32s(a, b U32s[R]) M32s[R]
	LessU64s(a, b U64s[R]) M64s[R]
	LessI8s(a, b I8s[R]) M8s[R]
	LessI16s(a, b I16s[R]) M16s[R]
	LessI32s(a, b I32s[R]) M32s[R]
	LessI64s(a, b I64s[R]) M64s[R]
	LessF32s(a, b F32s[R]) M32s[R]
	LessF64s(a, b F64s[R]) M64s[R]
	LessEqualU8s(a, b U8s[R]) M8s[R]
	LessEqualU16s(a, b U16s[R]) M16s[R]
	LessEqualU32s(a, b U32s[R]) M32s[R]
	LessEqualU64s(a, b U64s[R]) M64s[R]
	LessEqualI8s(a, b I8s[R]) M8s[R]
	LessEqualI16s(a, b I16s[R]) M16s[R]
	LessEqualI32s(a, b I32s[R]) M32s[R]
	LessEqualI64s(a, b I64s[R]) M64s[R]
	LessEqualF32s(a, b F32s[R]) M32s[R]
	LessEqualF64s(a, b F64s[R]) M64s[R]
	GreaterU8s(a, b U8s[R]) M8s[R]
	GreaterU16s(a, b U16s[R]) M16s[R]
	GreaterU32s(a, b U32s[R]) M32s[R]
	GreaterU64s(a, b U64s[R]) M64s[R]
	GreaterI8s(a, b I8s[R]) M8s[R]
	GreaterI16s(a, b I16s[R]) M16s[R]
	GreaterI32s(a, b I32s[R]) M32s[R]
	GreaterI64s(a, b I64s[R]) M64s[R]
	GreaterF32s(a, b F32s[R]) M32s[R]
	GreaterF64s(a, b F64s[R]) M64s[R]
	GreaterEqualU8s(a, b U8s[R]) M8s[R]
	GreaterEqualU16s(a, b U16s[R]) M16s[R]
	GreaterEqualU32s(a, b U32s[R]) M32s[R]
	GreaterEqualU64s(a, b U64s[R]) M64s[R]
	GreaterEqualI8s(a, b I8s[R]) M8s[R]
	GreaterEqualI16s(a, b I16s[R]) M16s[R]
	GreaterEqualI32s(a, b I32s[R]) M32s[R]
	GreaterEqualI64s(a, b I64s[R]) M64s[R]
	GreaterEqualF32s(a, b F32s[R]) M32s[R]
	GreaterEqualF64s(a, b F64s[R]) M64s[R]

	// Bitwise operations. AndNot computes a &^ b.
	AndU8s(a, b U8s[R]) U8s[R]
	OrU8s(a, b U8s[R]) U8s[R]
	XorU8s(a, b U8s[R]) U8s[R]
	AndNotU8s(a, b U8s[R]) U8s[R]
	NotU8s(a U8s[R]) U8s[R]
	AndU16s(a, b U16s[R]) U16s[R]
	OrU16s(a, b U16s[R]) U16s[R]
	XorU16s(a, b U16s[R]) U16s[R]
	AndNotU16s(a, b U16s[R]) U16s[R]
	NotU16s(a U16s[R]) U16s[R]
	AndU32s(a, b U32s[R]) U32s[R]
	OrU32s(a, b U32s[R]) U32s[R]
	XorU32s(a, b U32s[R]) U32s[R]
	AndNotU32s(a, b U32s[R]) U32s[R]
	NotU32s(a U32s[R]) U32s[R]
	AndU64s(a, b U64s[R]) U64s[R]
	OrU64s(a, b U64s[R]) U64s[R]
	XorU64s(a, b U64s[R]) U64s[R]
	AndNotU64s(a, b U64s[R]) U64s[R]
	NotU64s(a U64s[R]) U64s[R]

	// Select returns the lanes of a where m is set and the lanes of b elsewhere.
	// Complex lanes are selected by the 64-bit mask lanes covering them.
	SelectU8s(m M8s[R], a, b U8s[R]) U8s[R]
	SelectI8s(m M8s[R], a, b I8s[R]) I8s[R]
	SelectU16s(m M16s[R], a, b U16s[R]) U16s[R]
	SelectI16s(m M16s[R], a, b I16s[R]) I16s[R]
	SelectU32s(m M32s[R], a, b U32s[R]) U32s[R]
	SelectI32s(m M32s[R], a, b I32s[R]) I32s[R]
	SelectU64s(m M64s[R], a, b U64s[R]) U64s[R]
	SelectI64s(m M64s[R], a, b I64s[R]) I64s[R]
	SelectF32s(m M32s[R], a, b F32s[R]) F32s[R]
	SelectF64s(m M64s[R], a, b F64s[R]) F64s[R]
	SelectC32s(m M64s[R], a, b C32s[R]) C32s[R]
	SelectC64s(m M64s[R], a, b C64s[R]) C64s[R]

	// Shifts by n bits. Shr is logical for unsigned lanes and arithmetic for
	// signed lanes. Shifting by the lane width or more leaves zero, or the sign
	// fill for a signed right shift.
	ShlU8s(a U8s[R], n uint) U8s[R]
	ShrU8s(a U8s[R], n uint) U8s[R]
	ShlU16s(a U16s[R], n uint) U16s[R]
	ShrU16s(a U16s[R], n uint) U16s[R]
	ShlU32s(a U32s[R], n uint) U32s[R]
	ShrU32s(a U32s[R], n uint) U32s[R]
	ShlU64s(a U64s[R], n uint) U64s[R]
	ShrU64s(a U64s[R], n uint) U64s[R]
	ShlI8s(a I8s[R], n uint) I8s[R]
	ShrI8s(a I8s[R], n uint) I8s[R]
	ShlI16s(a I16s[R], n uint) I16s[R]
	ShrI16s(a I16s[R], n uint) I16s[R]
	ShlI32s(a I32s[R], n uint) I32s[R]
	ShrI32s(a I32s[R], n uint) I32s[R]
	ShlI64s(a I64s[R], n uint) I64s[R]
	ShrI64s(a I64s[R], n uint) I64s[R]

	// Horizontal reductions. Lanes combine in a fixed pairwise tree: while n > 1
	// lanes remain, lane i is combined with lane i+n/2.
	ReduceSumU8s(a U8s[R]) uint8
	ReduceMinU8s(a U8s[R]) uint8
	ReduceMaxU8s(a U8s[R]) uint8
	ReduceSumU16s(a U16s[R]) uint16
	ReduceMinU16s(a U16s[R]) uint16
	ReduceMaxU16s(a U16s[R]) uint16
	ReduceSumU32s(a U32s[R]) uint32
	ReduceMinU32s(a U32s[R]) uint32
	ReduceMaxU32s(a U32s[R]) uint32
	ReduceSumU64s(a U64s[R]) uint64
	ReduceMinU64s(a U64s[R]) uint64
	ReduceMaxU64s(a U64s[R]) uint64
	ReduceSumI8s(a I8s[R]) int8
	ReduceMinI8s(a I8s[R]) int8
	ReduceMaxI8s(a I8s[R]) int8
	ReduceSumI16s(a I16s[R]) int16
	ReduceMinI16s(a I16s[R]) int16
	ReduceMaxI16s(a I16s[R]) int16
	ReduceSumI32s(a I32s[R]) int32
	ReduceMinI32s(a I32s[R]) int32
	ReduceMaxI32s(a I32s[R]) int32
	ReduceSumI64s(a I64s[R]) int64
	ReduceMinI64s(a I64s[R]) int64
	ReduceMaxI64s(a I64s[R]) int64
	ReduceSumF32s(a F32s[R]) float32
	ReduceMinF32s(a F32s[R]) float32
	ReduceMaxF32s(a F32s[R]) float32
	ReduceSumF64s(a F64s[R]) float64
	ReduceMinF64s(a F64s[R]) float64
	ReduceMaxF64s(a F64s[R]) float64
	ReduceProductF32s(a F32s[R]) float32
	ReduceProductF64s(a F64s[R]) float64

	// Cyclic lane rotation. RotateRight moves lane i to lane (i+k) mod n;
	// RotateLeft moves it to lane (i-k) mod n.
	RotateRightU8s(a U8s[R], k int) U8s[R]
	RotateLeftU8s(a U8s[R], k int) U8s[R]
	RotateRightU16s(a U16s[R], k int) U16s[R]
	RotateLeftU16s(a U16s[R], k int) U16s[R]
	RotateRightU32s(a U32s[R], k int) U32s[R]
	RotateLeftU32s(a U32s[R], k int) U32s[R]
	RotateRightU64s(a U64s[R], k int) U64s[R]
	RotateLeftU64s(a U64s[R], k int) U64s[R]

	// Interleave turns n vectors holding one field each into n vectors holding
	// the records contiguously: field k of record i lands at flat position
	// i*n+k. Deinterleave is its inverse.
	InterleaveU32s2(v [2]U32s[R]) [2]U32s[R]
	DeinterleaveU32s2(v [2]U32s[R]) [2]U32s[R]
	InterleaveU32s3(v [3]U32s[R]) [3]U32s[R]
	DeinterleaveU32s3(v [3]U32s[R]) [3]U32s[R]
	InterleaveU32s4(v [4]U32s[R]) [4]U32s[R]
	DeinterleaveU32s4(v [4]U32s[R]) [4]U32s[R]
	InterleaveU64s2(v [2]U64s[R]) [2]U64s[R]
	DeinterleaveU64s2(v [2]U64s[R]) [2]U64s[R]
	InterleaveU64s3(v [3]U64s[R]) [3]U64s[R]
	DeinterleaveU64s3(v [3]U64s[R]) [3]U64s[R]
	InterleaveU64s4(v [4]U64s[R]) [4]U64s[R]
	DeinterleaveU64s4(v [4]U64s[R]) [4]U64s[R]

	// Widening multiplication returns the low and high halves of each
	// double-width product.
	WideningMulU16s(a, b U16s[R]) (lo, hi U16s[R])
	WideningMulU32s(a, b U32s[R]) (lo, hi U32s[R])
	WideningMulU64s(a, b U64s[R]) (lo, hi U64s[R])
	WideningMulI32s(a, b I32s[R]) (lo, hi I32s[R])

	// Mask logic. FirstTrue returns the index of the lowest set lane, or -1.
	AndM8s(a, b M8s[R]) M8s[R]
	OrM8s(a, b M8s[R]) M8s[R]
	XorM8s(a, b M8s[R]) M8s[R]
	AndNotM8s(a, b M8s[R]) M8s[R]
	NotM8s(a M8s[R]) M8s[R]
	FirstTrueM8s(a M8s[R]) int
	AnyTrueM8s(a M8s[R]) bool
	AllTrueM8s(a M8s[R]) bool
	AndM16s(a, b M16s[R]) M16s[R]
	OrM16s(a, b M16s[R]) M16s[R]
	XorM16s(a, b M16s[R]) M16s[R]
	AndNotM16s(a, b M16s[R]) M16s[R]
	NotM16s(a M16s[R]) M16s[R]
	FirstTrueM16s(a M16s[R]) int
	AnyTrueM16s(a M16s[R]) bool
	AllTrueM16s(a M16s[R]) bool
	AndM32s(a, b M32s[R]) M32s[R]
	OrM32s(a, b M32s[R]) M32s[R]
	XorM32s(a, b M32s[R]) M32s[R]
	AndNotM32s(a, b M32s[R]) M32s[R]
	NotM32s(a M32s[R]) M32s[R]
	FirstTrueM32s(a M32s[R]) int
	AnyTrueM32s(a M32s[R]) bool
	AllTrueM32s(a M32s[R]) bool
	AndM64s(a, b M64s[R]) M64s[R]
	OrM64s(a, b M64s[R]) M64s[R]
	XorM64s(a, b M64s[R]) M64s[R]
	AndNotM64s(a, b M64s[R]) M64s[R]
	NotM64s(a M64s[R]) M64s[R]
	FirstTrueM64s(a M64s[R]) int
	AnyTrueM64s(a M64s[R]) bool
	AllTrueM64s(a M64s[R]) bool

	// MaskBetween builds a memory mask whose set lanes are [start, end), clamped
	// to the lane count. start >= end gives an empty mask.
	MaskBetweenM8s(start, end int) MemMask[M8s[R]]
	MaskBetweenM16s(start, end int) MemMask[M16s[R]]
	MaskBetweenM32s(start, end int) MemMask[M32s[R]]
	MaskBetweenM64s(start, end int) MemMask[M64s[R]]

	// Masked memory access. Only the lanes set in m are read or written; the
	// addresses of unset lanes are never touched, so ptr may point at the last
	// few elements of a buffer. Unset lanes of a load are zero. Every set lane
	// must address valid memory.
	MaskLoadPtrU8s(m MemMask[M8s[R]], ptr *uint8) U8s[R]
	MaskStorePtrU8s(m MemMask[M8s[R]], ptr *uint8, v U8s[R])
	MaskLoadPtrI8s(m MemMask[M8s[R]], ptr *int8) I8s[R]
	MaskStorePtrI8s(m MemMask[M8s[R]], ptr *int8, v I8s[R])
	MaskLoadPtrU16s(m MemMask[M16s[R]], ptr *uint16) U16s[R]
	MaskStorePtrU16s(m MemMask[M16s[R]], ptr *uint16, v U16s[R])
	MaskLoadPtrI16s(m MemMask[M16s[R]], ptr *int16) I16s[R]
	MaskStorePtrI16s(m MemMask[M16s[R]], ptr *int16, v I16s[R])
	MaskLoadPtrU32s(m MemMask[M32s[R]], ptr *uint32) U32s[R]
	MaskStorePtrU32s(m MemMask[M32s[R]], ptr *uint32, v U32s[R])
	MaskLoadPtrI32s(m MemMask[M32s[R]], ptr *int32) I32s[R]
	MaskStorePtrI32s(m MemMask[M32s[R]], ptr *int32, v I32s[R])
	MaskLoadPtrU64s(m MemMask[M64s[R]], ptr *uint64) U64s[R]
	MaskStorePtrU64s(m MemMask[M64s[R]], ptr *uint64, v U64s[R])
	MaskLoadPtrI64s(m MemMask[M64s[R]], ptr *int64) I64s[R]
	MaskStorePtrI64s(m MemMask[M64s[R]], ptr *int64, v I64s[R])
	MaskLoadPtrF32s(m MemMask[M32s[R]], ptr *float32) F32s[R]
	MaskStorePtrF32s(m MemMask[M32s[R]], ptr *float32, v F32s[R])
	MaskLoadPtrF64s(m MemMask[M64s[R]], ptr *float64) F64s[R]
	MaskStorePtrF64s(m MemMask[M64s[R]], ptr *float64, v F64s[R])
	MaskLoadPtrC32s(m MemMask[M64s[R]], ptr *complex64) C32s[R]
	MaskStorePtrC32s(m MemMask[M64s[R]], ptr *complex64, v C32s[R])
	// C64s lanes are masked by 64-bit halves: mask lanes 2i and 2i+1 cover the
	// real and imaginary parts of element i. Use MaskBetweenM64s(2*start, 2*end).
	MaskLoadPtrC64s(m MemMask[M64s[R]], ptr *complex128) C64s[R]
	MaskStorePtrC64s(m MemMask[M64s[R]], ptr *complex128, v C64s[R])

	// Partial slice access moves min(len(xs), lanes) lanes. A partial load
	// zeroes the remaining lanes.
	PartialLoadU32s(xs []uint32) U32s[R]
	PartialStoreU32s(xs []uint32, v U32s[R])
	PartialLoadU64s(xs []uint64) U64s[R]
	PartialStoreU64s(xs []uint64, v U64s[R])
	PartialLoadF32s(xs []float32) F32s[R]
	PartialStoreF32s(xs []float32, v F32s[R])
	PartialLoadF64s(xs []float64) F64s[R]
	PartialStoreF64s(xs []float64, v F64s[R])

	// Complex arithmetic. ConjMul multiplies the conjugate of a by b. Abs2
	// returns |a|² in the real part and zero in the imaginary part.
	MulC32s(a, b C32s[R]) C32s[R]
	ConjMulC32s(a, b C32s[R]) C32s[R]
	MulAddC32s(a, b, c C32s[R]) C32s[R]
	ConjMulAddC32s(a, b, c C32s[R]) C32s[R]
	NegC32s(a C32s[R]) C32s[R]
	ConjC32s(a C32s[R]) C32s[R]
	SwapReImC32s(a C32s[R]) C32s[R]
	Abs2C32s(a C32s[R]) C32s[R]
	ReduceSumC32s(a C32s[R]) complex64
	MulC64s(a, b C64s[R]) C64s[R]
	ConjMulC64s(a, b C64s[R]) C64s[R]
	MulAddC64s(a, b, c C64s[R]) C64s[R]
	ConjMulAddC64s(a, b, c C64s[R]) C64s[R]
	NegC64s(a C64s[R]) C64s[R]
	ConjC64s(a C64s[R]) C64s[R]
	SwapReImC64s(a C64s[R]) C64s[R]
	Abs2C64s(a C64s[R]) C64s[R]
	ReduceSumC64s(a C64s[R]) complex128
}
