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

import "math"

// Fallback implements [Simd] one lane at a time in portable Go. Backend
// tokens embed it and override the operations they accelerate.
type Fallback[R Register] struct{}

var (
	_ Simd[Reg128] = Fallback[Reg128]{}
	_ Simd[Reg256] = Fallback[Reg256]{}
	_ Simd[Reg512] = Fallback[Reg512]{}
)

func (Fallback[R]) SplatU8s(v uint8) U8s[R] {
	return U8s[R]{splat[uint8, R](v)}
}

func (Fallback[R]) SplatI8s(v int8) I8s[R] {
	return I8s[R]{splat[int8, R](v)}
}

func (Fallback[R]) SplatU16s(v uint16) U16s[R] {
	return U16s[R]{splat[uint16, R](v)}
}

func (Fallback[R]) SplatI16s(v int16) I16s[R] {
	return I16s[R]{splat[int16, R](v)}
}

func (Fallback[R]) SplatU32s(v uint32) U32s[R] {
	return U32s[R]{splat[uint32, R](v)}
}

func (Fallback[R]) SplatI32s(v int32) I32s[R] {
	return I32s[R]{splat[int32, R](v)}
}

func (Fallback[R]) SplatU64s(v uint64) U64s[R] {
	return U64s[R]{splat[uint64, R](v)}
}

func (Fallback[R]) SplatI64s(v int64) I64s[R] {
	return I64s[R]{splat[int64, R](v)}
}

func (Fallback[R]) SplatF32s(v float32) F32s[R] {
	return F32s[R]{splat[float32, R](v)}
}

func (Fallback[R]) SplatF64s(v float64) F64s[R] {
	return F64s[R]{splat[float64, R](v)}
}

func (Fallback[R]) SplatC32s(v complex64) C32s[R] {
	return C32s[R]{splat[complex64, R](v)}
}

func (Fallback[R]) SplatC64s(v complex128) C64s[R] {
	return C64s[R]{splat[complex128, R](v)}
}

func (Fallback[R]) AddU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, add[uint8])}
}

func (Fallback[R]) SubU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, sub[uint8])}
}

func (Fallback[R]) AddI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, add[int8])}
}

func (Fallback[R]) SubI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, sub[int8])}
}

func (Fallback[R]) AddU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, add[uint16])}
}

func (Fallback[R]) SubU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, sub[uint16])}
}

func (Fallback[R]) AddI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, add[int16])}
}

func (Fallback[R]) SubI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, sub[int16])}
}

func (Fallback[R]) AddU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint32](a.Reg, b.Reg, add[uint32])}
}

func (Fallback[R]) SubU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint32](a.Reg, b.Reg, sub[uint32])}
}

func (Fallback[R]) AddI32s(a, b I32s[R]) I32s[R] {
	return I32s[R]{binary[int32](a.Reg, b.Reg, add[int32])}
}

func (Fallback[R]) SubI32s(a, b I32s[R]) I32s[R] {
	return I32s[R]{binary[int32](a.Reg, b.Reg, sub[int32])}
}

func (Fallback[R]) AddU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, add[uint64])}
}

func (Fallback[R]) SubU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, sub[uint64])}
}

func (Fallback[R]) AddI64s(a, b I64s[R]) I64s[R] {
	return I64s[R]{binary[int64](a.Reg, b.Reg, add[int64])}
}

func (Fallback[R]) SubI64s(a, b I64s[R]) I64s[R] {
	return I64s[R]{binary[int64](a.Reg, b.Reg, sub[int64])}
}

func (Fallback[R]) AddF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, add[float32])}
}

func (Fallback[R]) SubF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, sub[float32])}
}

func (Fallback[R]) AddF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, add[float64])}
}

func (Fallback[R]) SubF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, sub[float64])}
}

func (Fallback[R]) AddC32s(a, b C32s[R]) C32s[R] {
	return C32s[R]{binary[complex64](a.Reg, b.Reg, add[complex64])}
}

func (Fallback[R]) SubC32s(a, b C32s[R]) C32s[R] {
	return C32s[R]{binary[complex64](a.Reg, b.Reg, sub[complex64])}
}

func (Fallback[R]) AddC64s(a, b C64s[R]) C64s[R] {
	return C64s[R]{binary[complex128](a.Reg, b.Reg, add[complex128])}
}

func (Fallback[R]) SubC64s(a, b C64s[R]) C64s[R] {
	return C64s[R]{binary[complex128](a.Reg, b.Reg, sub[complex128])}
}

func (Fallback[R]) MulU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, mul[uint8])}
}

func (Fallback[R]) MulU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, mul[uint16])}
}

func (Fallback[R]) MulU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint32](a.Reg, b.Reg, mul[uint32])}
}

func (Fallback[R]) MulU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, mul[uint64])}
}

func (Fallback[R]) MulI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, mul[int8])}
}

func (Fallback[R]) MulI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, mul[int16])}
}

func (Fallback[R]) MulI32s(a, b I32s[R]) I32s[R] {
	return I32s[R]{binary[int32](a.Reg, b.Reg, mul[int32])}
}

func (Fallback[R]) MulI64s(a, b I64s[R]) I64s[R] {
	return I64s[R]{binary[int64](a.Reg, b.Reg, mul[int64])}
}

func (Fallback[R]) MulF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, mul[float32])}
}

func (Fallback[R]) MulF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, mul[float64])}
}

func (Fallback[R]) DivF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, div[float32])}
}

func (Fallback[R]) MulAddF32s(a, b, c F32s[R]) F32s[R] {
	return F32s[R]{ternary[float32](a.Reg, b.Reg, c.Reg, fma32)}
}

func (Fallback[R]) DivF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, div[float64])}
}

func (Fallback[R]) MulAddF64s(a, b, c F64s[R]) F64s[R] {
	return F64s[R]{ternary[float64](a.Reg, b.Reg, c.Reg, fma64)}
}

func (Fallback[R]) NegI8s(a I8s[R]) I8s[R] {
	return I8s[R]{unary[int8](a.Reg, neg[int8])}
}

func (Fallback[R]) NegI16s(a I16s[R]) I16s[R] {
	return I16s[R]{unary[int16](a.Reg, neg[int16])}
}

func (Fallback[R]) NegI32s(a I32s[R]) I32s[R] {
	return I32s[R]{unary[int32](a.Reg, neg[int32])}
}

func (Fallback[R]) NegI64s(a I64s[R]) I64s[R] {
	return I64s[R]{unary[int64](a.Reg, neg[int64])}
}

func (Fallback[R]) NegF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, neg[float32])}
}

func (Fallback[R]) NegF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, neg[float64])}
}

func (Fallback[R]) AbsI8s(a I8s[R]) I8s[R] {
	return I8s[R]{unary[int8](a.Reg, absInt[int8])}
}

func (Fallback[R]) AbsI16s(a I16s[R]) I16s[R] {
	return I16s[R]{unary[int16](a.Reg, absInt[int16])}
}

func (Fallback[R]) AbsI32s(a I32s[R]) I32s[R] {
	return I32s[R]{unary[int32](a.Reg, absInt[int32])}
}

func (Fallback[R]) AbsI64s(a I64s[R]) I64s[R] {
	return I64s[R]{unary[int64](a.Reg, absInt[int64])}
}

func (Fallback[R]) AbsF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, abs32)}
}

func (Fallback[R]) AbsF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, math.Abs)}
}

func (Fallback[R]) MinU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, minLane[uint8])}
}

func (Fallback[R]) MaxU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, maxLane[uint8])}
}

func (Fallback[R]) MinU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, minLane[uint16])}
}

func (Fallback[R]) MaxU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, maxLane[uint16])}
}

func (Fallback[R]) MinU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint32](a.Reg, b.Reg, minLane[uint32])}
}

func (Fallback[R]) MaxU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint32](a.Reg, b.Reg, maxLane[uint32])}
}

func (Fallback[R]) MinU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, minLane[uint64])}
}

func (Fallback[R]) MaxU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, maxLane[uint64])}
}

func (Fallback[R]) MinI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, minLane[int8])}
}

func (Fallback[R]) MaxI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, maxLane[int8])}
}

func (Fallback[R]) MinI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, minLane[int16])}
}

func (Fallback[R]) MaxI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, maxLane[int16])}
}

func (Fallback[R]) MinI32s(a, b I32s[R]) I32s[R] {
	return I32s[R]{binary[int32](a.Reg, b.Reg, minLane[int32])}
}

func (Fallback[R]) MaxI32s(a, b I32s[R]) I32s[R] {
	return I32s[R]{binary[int32](a.Reg, b.Reg, maxLane[int32])}
}

func (Fallback[R]) MinI64s(a, b I64s[R]) I64s[R] {
	return I64s[R]{binary[int64](a.Reg, b.Reg, minLane[int64])}
}

func (Fallback[R]) MaxI64s(a, b I64s[R]) I64s[R] {
	return I64s[R]{binary[int64](a.Reg, b.Reg, maxLane[int64])}
}

func (Fallback[R]) MinF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, minLane[float32])}
}

func (Fallback[R]) MaxF32s(a, b F32s[R]) F32s[R] {
	return F32s[R]{binary[float32](a.Reg, b.Reg, maxLane[float32])}
}

func (Fallback[R]) MinF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, minLane[float64])}
}

func (Fallback[R]) MaxF64s(a, b F64s[R]) F64s[R] {
	return F64s[R]{binary[float64](a.Reg, b.Reg, maxLane[float64])}
}

func (Fallback[R]) SqrtF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, sqrt32)}
}

func (Fallback[R]) SqrtF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, math.Sqrt)}
}

func (Fallback[R]) FloorF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, floor32)}
}

func (Fallback[R]) FloorF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, math.Floor)}
}

func (Fallback[R]) CeilF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, ceil32)}
}

func (Fallback[R]) CeilF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, math.Ceil)}
}

func (Fallback[R]) RoundF32s(a F32s[R]) F32s[R] {
	return F32s[R]{unary[float32](a.Reg, round32)}
}

func (Fallback[R]) RoundF64s(a F64s[R]) F64s[R] {
	return F64s[R]{unary[float64](a.Reg, math.RoundToEven)}
}

func (Fallback[R]) SaturatingAddU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, satAddUnsigned[uint8])}
}

func (Fallback[R]) SaturatingSubU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint8](a.Reg, b.Reg, satSubUnsigned[uint8])}
}

func (Fallback[R]) SaturatingAddI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, satAddSigned[int8])}
}

func (Fallback[R]) SaturatingSubI8s(a, b I8s[R]) I8s[R] {
	return I8s[R]{binary[int8](a.Reg, b.Reg, satSubSigned[int8])}
}

func (Fallback[R]) SaturatingAddU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, satAddUnsigned[uint16])}
}

func (Fallback[R]) SaturatingSubU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint16](a.Reg, b.Reg, satSubUnsigned[uint16])}
}

func (Fallback[R]) SaturatingAddI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, satAddSigned[int16])}
}

func (Fallback[R]) SaturatingSubI16s(a, b I16s[R]) I16s[R] {
	return I16s[R]{binary[int16](a.Reg, b.Reg, satSubSigned[int16])}
}

func (Fallback[R]) EqualU8s(a, b U8s[R]) M8s[R] {
	return M8s[R]{compare[uint8, uint8](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualU16s(a, b U16s[R]) M16s[R] {
	return M16s[R]{compare[uint16, uint16](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualU32s(a, b U32s[R]) M32s[R] {
	return M32s[R]{compare[uint32, uint32](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualU64s(a, b U64s[R]) M64s[R] {
	return M64s[R]{compare[uint64, uint64](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualI8s(a, b I8s[R]) M8s[R] {
	return M8s[R]{compare[int8, uint8](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualI16s(a, b I16s[R]) M16s[R] {
	return M16s[R]{compare[int16, uint16](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualI32s(a, b I32s[R]) M32s[R] {
	return M32s[R]{compare[int32, uint32](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualI64s(a, b I64s[R]) M64s[R] {
	return M64s[R]{compare[int64, uint64](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualF32s(a, b F32s[R]) M32s[R] {
	return M32s[R]{compare[float32, uint32](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) EqualF64s(a, b F64s[R]) M64s[R] {
	return M64s[R]{compare[float64, uint64](cmpEq, a.Reg, b.Reg)}
}

func (Fallback[R]) LessU8s(a, b U8s[R]) M8s[R] {
	return M8s[R]{compare[uint8, uint8](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessU16s(a, b U16s[R]) M16s[R] {
	return M16s[R]{compare[uint16, uint16](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessU32s(a, b U32s[R]) M32s[R] {
	return M32s[R]{compare[uint32, uint32](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessU64s(a, b U64s[R]) M64s[R] {
	return M64s[R]{compare[uint64, uint64](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessI8s(a, b I8s[R]) M8s[R] {
	return M8s[R]{compare[int8, uint8](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessI16s(a, b I16s[R]) M16s[R] {
	return M16s[R]{compare[int16, uint16](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessI32s(a, b I32s[R]) M32s[R] {
	return M32s[R]{compare[int32, uint32](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessI64s(a, b I64s[R]) M64s[R] {
	return M64s[R]{compare[int64, uint64](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessF32s(a, b F32s[R]) M32s[R] {
	return M32s[R]{compare[float32, uint32](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessF64s(a, b F64s[R]) M64s[R] {
	return M64s[R]{compare[float64, uint64](cmpLt, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualU8s(a, b U8s[R]) M8s[R] {
	return M8s[R]{compare[uint8, uint8](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualU16s(a, b U16s[R]) M16s[R] {
	return M16s[R]{compare[uint16, uint16](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualU32s(a, b U32s[R]) M32s[R] {
	return M32s[R]{compare[uint32, uint32](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualU64s(a, b U64s[R]) M64s[R] {
	return M64s[R]{compare[uint64, uint64](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualI8s(a, b I8s[R]) M8s[R] {
	return M8s[R]{compare[int8, uint8](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualI16s(a, b I16s[R]) M16s[R] {
	return M16s[R]{compare[int16, uint16](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualI32s(a, b I32s[R]) M32s[R] {
	return M32s[R]{compare[int32, uint32](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualI64s(a, b I64s[R]) M64s[R] {
	return M64s[R]{compare[int64, uint64](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualF32s(a, b F32s[R]) M32s[R] {
	return M32s[R]{compare[float32, uint32](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) LessEqualF64s(a, b F64s[R]) M64s[R] {
	return M64s[R]{compare[float64, uint64](cmpLe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterU8s(a, b U8s[R]) M8s[R] {
	return M8s[R]{compare[uint8, uint8](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterU16s(a, b U16s[R]) M16s[R] {
	return M16s[R]{compare[uint16, uint16](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterU32s(a, b U32s[R]) M32s[R] {
	return M32s[R]{compare[uint32, uint32](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterU64s(a, b U64s[R]) M64s[R] {
	return M64s[R]{compare[uint64, uint64](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterI8s(a, b I8s[R]) M8s[R] {
	return M8s[R]{compare[int8, uint8](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterI16s(a, b I16s[R]) M16s[R] {
	return M16s[R]{compare[int16, uint16](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterI32s(a, b I32s[R]) M32s[R] {
	return M32s[R]{compare[int32, uint32](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterI64s(a, b I64s[R]) M64s[R] {
	return M64s[R]{compare[int64, uint64](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterF32s(a, b F32s[R]) M32s[R] {
	return M32s[R]{compare[float32, uint32](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterF64s(a, b F64s[R]) M64s[R] {
	return M64s[R]{compare[float64, uint64](cmpGt, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualU8s(a, b U8s[R]) M8s[R] {
	return M8s[R]{compare[uint8, uint8](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualU16s(a, b U16s[R]) M16s[R] {
	return M16s[R]{compare[uint16, uint16](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualU32s(a, b U32s[R]) M32s[R] {
	return M32s[R]{compare[uint32, uint32](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualU64s(a, b U64s[R]) M64s[R] {
	return M64s[R]{compare[uint64, uint64](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualI8s(a, b I8s[R]) M8s[R] {
	return M8s[R]{compare[int8, uint8](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualI16s(a, b I16s[R]) M16s[R] {
	return M16s[R]{compare[int16, uint16](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualI32s(a, b I32s[R]) M32s[R] {
	return M32s[R]{compare[int32, uint32](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualI64s(a, b I64s[R]) M64s[R] {
	return M64s[R]{compare[int64, uint64](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualF32s(a, b F32s[R]) M32s[R] {
	return M32s[R]{compare[float32, uint32](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) GreaterEqualF64s(a, b F64s[R]) M64s[R] {
	return M64s[R]{compare[float64, uint64](cmpGe, a.Reg, b.Reg)}
}

func (Fallback[R]) AndU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint64](a.Reg, b.Reg, and)}
}

func (Fallback[R]) OrU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint64](a.Reg, b.Reg, or)}
}

func (Fallback[R]) XorU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint64](a.Reg, b.Reg, xor)}
}

func (Fallback[R]) AndNotU8s(a, b U8s[R]) U8s[R] {
	return U8s[R]{binary[uint64](a.Reg, b.Reg, andNot)}
}

func (Fallback[R]) NotU8s(a U8s[R]) U8s[R] {
	return U8s[R]{unary[uint64](a.Reg, not)}
}

func (Fallback[R]) AndU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint64](a.Reg, b.Reg, and)}
}

func (Fallback[R]) OrU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint64](a.Reg, b.Reg, or)}
}

func (Fallback[R]) XorU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint64](a.Reg, b.Reg, xor)}
}

func (Fallback[R]) AndNotU16s(a, b U16s[R]) U16s[R] {
	return U16s[R]{binary[uint64](a.Reg, b.Reg, andNot)}
}

func (Fallback[R]) NotU16s(a U16s[R]) U16s[R] {
	return U16s[R]{unary[uint64](a.Reg, not)}
}

func (Fallback[R]) AndU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint64](a.Reg, b.Reg, and)}
}

func (Fallback[R]) OrU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint64](a.Reg, b.Reg, or)}
}

func (Fallback[R]) XorU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint64](a.Reg, b.Reg, xor)}
}

func (Fallback[R]) AndNotU32s(a, b U32s[R]) U32s[R] {
	return U32s[R]{binary[uint64](a.Reg, b.Reg, andNot)}
}

func (Fallback[R]) NotU32s(a U32s[R]) U32s[R] {
	return U32s[R]{unary[uint64](a.Reg, not)}
}

func (Fallback[R]) AndU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, and)}
}

func (Fallback[R]) OrU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, or)}
}

func (Fallback[R]) XorU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, xor)}
}

func (Fallback[R]) AndNotU64s(a, b U64s[R]) U64s[R] {
	return U64s[R]{binary[uint64](a.Reg, b.Reg, andNot)}
}

func (Fallback[R]) NotU64s(a U64s[R]) U64s[R] {
	return U64s[R]{unary[uint64](a.Reg, not)}
}

func (Fallback[R]) SelectU8s(m M8s[R], a, b U8s[R]) U8s[R] {
	return U8s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectI8s(m M8s[R], a, b I8s[R]) I8s[R] {
	return I8s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectU16s(m M16s[R], a, b U16s[R]) U16s[R] {
	return U16s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectI16s(m M16s[R], a, b I16s[R]) I16s[R] {
	return I16s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectU32s(m M32s[R], a, b U32s[R]) U32s[R] {
	return U32s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectI32s(m M32s[R], a, b I32s[R]) I32s[R] {
	return I32s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectU64s(m M64s[R], a, b U64s[R]) U64s[R] {
	return U64s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectI64s(m M64s[R], a, b I64s[R]) I64s[R] {
	return I64s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectF32s(m M32s[R], a, b F32s[R]) F32s[R] {
	return F32s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectF64s(m M64s[R], a, b F64s[R]) F64s[R] {
	return F64s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectC32s(m M64s[R], a, b C32s[R]) C32s[R] {
	return C32s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) SelectC64s(m M64s[R], a, b C64s[R]) C64s[R] {
	return C64s[R]{selectBits(m.bits, a.Reg, b.Reg)}
}

func (Fallback[R]) ShlU8s(a U8s[R], n uint) U8s[R] {
	return U8s[R]{unary[uint8](a.Reg, shiftLeft[uint8](n))}
}

func (Fallback[R]) ShrU8s(a U8s[R], n uint) U8s[R] {
	return U8s[R]{unary[uint8](a.Reg, shiftRight[uint8](n))}
}

func (Fallback[R]) ShlU16s(a U16s[R], n uint) U16s[R] {
	return U16s[R]{unary[uint16](a.Reg, shiftLeft[uint16](n))}
}

func (Fallback[R]) ShrU16s(a U16s[R], n uint) U16s[R] {
	return U16s[R]{unary[uint16](a.Reg, shiftRight[uint16](n))}
}

func (Fallback[R]) ShlU32s(a U32s[R], n uint) U32s[R] {
	return U32s[R]{unary[uint32](a.Reg, shiftLeft[uint32](n))}
}

func (Fallback[R]) ShrU32s(a U32s[R], n uint) U32s[R] {
	return U32s[R]{unary[uint32](a.Reg, shiftRight[uint32](n))}
}

func (Fallback[R]) ShlU64s(a U64s[R], n uint) U64s[R] {
	return U64s[R]{unary[uint64](a.Reg, shiftLeft[uint64](n))}
}

func (Fallback[R]) ShrU64s(a U64s[R], n uint) U64s[R] {
	return U64s[R]{unary[uint64](a.Reg, shiftRight[uint64](n))}
}

func (Fallback[R]) ShlI8s(a I8s[R], n uint) I8s[R] {
	return I8s[R]{unary[int8](a.Reg, shiftLeft[int8](n))}
}

func (Fallback[R]) ShrI8s(a I8s[R], n uint) I8s[R] {
	return I8s[R]{unary[int8](a.Reg, shiftRight[int8](n))}
}

func (Fallback[R]) ShlI16s(a I16s[R], n uint) I16s[R] {
	return I16s[R]{unary[int16](a.Reg, shiftLeft[int16](n))}
}

func (Fallback[R]) ShrI16s(a I16s[R], n uint) I16s[R] {
	return I16s[R]{unary[int16](a.Reg, shiftRight[int16](n))}
}

func (Fallback[R]) ShlI32s(a I32s[R], n uint) I32s[R] {
	return I32s[R]{unary[int32](a.Reg, shiftLeft[int32](n))}
}

func (Fallback[R]) ShrI32s(a I32s[R], n uint) I32s[R] {
	return I32s[R]{unary[int32](a.Reg, shiftRight[int32](n))}
}

func (Fallback[R]) ShlI64s(a I64s[R], n uint) I64s[R] {
	return I64s[R]{unary[int64](a.Reg, shiftLeft[int64](n))}
}

func (Fallback[R]) ShrI64s(a I64s[R], n uint) I64s[R] {
	return I64s[R]{unary[int64](a.Reg, shiftRight[int64](n))}
}

func (Fallback[R]) ReduceSumU8s(a U8s[R]) uint8 {
	return reduce[uint8](a.Reg, add[uint8])
}

func (Fallback[R]) ReduceMinU8s(a U8s[R]) uint8 {
	return reduce[uint8](a.Reg, minLane[uint8])
}

func (Fallback[R]) ReduceMaxU8s(a U8s[R]) uint8 {
	return reduce[uint8](a.Reg, maxLane[uint8])
}

func (Fallback[R]) ReduceSumU16s(a U16s[R]) uint16 {
	return reduce[uint16](a.Reg, add[uint16])
}

func (Fallback[R]) ReduceMinU16s(a U16s[R]) uint16 {
	return reduce[uint16](a.Reg, minLane[uint16])
}

func (Fallback[R]) ReduceMaxU16s(a U16s[R]) uint16 {
	return reduce[uint16](a.Reg, maxLane[uint16])
}

func (Fallback[R]) ReduceSumU32s(a U32s[R]) uint32 {
	return reduce[uint32](a.Reg, add[uint32])
}

func (Fallback[R]) ReduceMinU32s(a U32s[R]) uint32 {
	return reduce[uint32](a.Reg, minLane[uint32])
}

func (Fallback[R]) ReduceMaxU32s(a U32s[R]) uint32 {
	return reduce[uint32](a.Reg, maxLane[uint32])
}

func (Fallback[R]) ReduceSumU64s(a U64s[R]) uint64 {
	return reduce[uint64](a.Reg, add[uint64])
}

func (Fallback[R]) ReduceMinU64s(a U64s[R]) uint64 {
	return reduce[uint64](a.Reg, minLane[uint64])
}

func (Fallback[R]) ReduceMaxU64s(a U64s[R]) uint64 {
	return reduce[uint64](a.Reg, maxLane[uint64])
}

func (Fallback[R]) ReduceSumI8s(a I8s[R]) int8 {
	return reduce[int8](a.Reg, add[int8])
}

func (Fallback[R]) ReduceMinI8s(a I8s[R]) int8 {
	return reduce[int8](a.Reg, minLane[int8])
}

func (Fallback[R]) ReduceMaxI8s(a I8s[R]) int8 {
	return reduce[int8](a.Reg, maxLane[int8])
}

func (Fallback[R]) ReduceSumI16s(a I16s[R]) int16 {
	return reduce[int16](a.Reg, add[int16])
}

func (Fallback[R]) ReduceMinI16s(a I16s[R]) int16 {
	return reduce[int16](a.Reg, minLane[int16])
}

func (Fallback[R]) ReduceMaxI16s(a I16s[R]) int16 {
	return reduce[int16](a.Reg, maxLane[int16])
}

func (Fallback[R]) ReduceSumI32s(a I32s[R]) int32 {
	return reduce[int32](a.Reg, add[int32])
}

func (Fallback[R]) ReduceMinI32s(a I32s[R]) int32 {
	return reduce[int32](a.Reg, minLane[int32])
}

func (Fallback[R]) ReduceMaxI32s(a I32s[R]) int32 {
	return reduce[int32](a.Reg, maxLane[int32])
}

func (Fallback[R]) ReduceSumI64s(a I64s[R]) int64 {
	return reduce[int64](a.Reg, add[int64])
}

func (Fallback[R]) ReduceMinI64s(a I64s[R]) int64 {
	return reduce[int64](a.Reg, minLane[int64])
}

func (Fallback[R]) ReduceMaxI64s(a I64s[R]) int64 {
	return reduce[int64](a.Reg, maxLane[int64])
}

func (Fallback[R]) ReduceSumF32s(a F32s[R]) float32 {
	return reduce[float32](a.Reg, add[float32])
}

func (Fallback[R]) ReduceMinF32s(a F32s[R]) float32 {
	return reduce[float32](a.Reg, minLane[float32])
}

func (Fallback[R]) ReduceMaxF32s(a F32s[R]) float32 {
	return reduce[float32](a.Reg, maxLane[float32])
}

func (Fallback[R]) ReduceSumF64s(a F64s[R]) float64 {
	return reduce[float64](a.Reg, add[float64])
}

func (Fallback[R]) ReduceMinF64s(a F64s[R]) float64 {
	return reduce[float64](a.Reg, minLane[float64])
}

func (Fallback[R]) ReduceMaxF64s(a F64s[R]) float64 {
	return reduce[float64](a.Reg, maxLane[float64])
}

func (Fallback[R]) ReduceProductF32s(a F32s[R]) float32 {
	return reduce[float32](a.Reg, mul[float32])
}

func (Fallback[R]) ReduceProductF64s(a F64s[R]) float64 {
	return reduce[float64](a.Reg, mul[float64])
}

func (Fallback[R]) RotateRightU8s(a U8s[R], k int) U8s[R] {
	return U8s[R]{rotateRight[uint8](a.Reg, k)}
}

func (Fallback[R]) RotateLeftU8s(a U8s[R], k int) U8s[R] {
	return U8s[R]{rotateRight[uint8](a.Reg, -k)}
}

func (Fallback[R]) RotateRightU16s(a U16s[R], k int) U16s[R] {
	return U16s[R]{rotateRight[uint16](a.Reg, k)}
}

func (Fallback[R]) RotateLeftU16s(a U16s[R], k int) U16s[R] {
	return U16s[R]{rotateRight[uint16](a.Reg, -k)}
}

func (Fallback[R]) RotateRightU32s(a U32s[R], k int) U32s[R] {
	return U32s[R]{rotateRight[uint32](a.Reg, k)}
}

func (Fallback[R]) RotateLeftU32s(a U32s[R], k int) U32s[R] {
	return U32s[R]{rotateRight[uint32](a.Reg, -k)}
}

func (Fallback[R]) RotateRightU64s(a U64s[R], k int) U64s[R] {
	return U64s[R]{rotateRight[uint64](a.Reg, k)}
}

func (Fallback[R]) RotateLeftU64s(a U64s[R], k int) U64s[R] {
	return U64s[R]{rotateRight[uint64](a.Reg, -k)}
}

func (Fallback[R]) InterleaveU32s2(v [2]U32s[R]) [2]U32s[R] {
	in, out := [2]R{v[0].Reg, v[1].Reg}, [2]R{}
	interleave[uint32](in[:], out[:])
	return [2]U32s[R]{{out[0]}, {out[1]}}
}

func (Fallback[R]) DeinterleaveU32s2(v [2]U32s[R]) [2]U32s[R] {
	in, out := [2]R{v[0].Reg, v[1].Reg}, [2]R{}
	deinterleave[uint32](in[:], out[:])
	return [2]U32s[R]{{out[0]}, {out[1]}}
}

func (Fallback[R]) InterleaveU32s3(v [3]U32s[R]) [3]U32s[R] {
	in, out := [3]R{v[0].Reg, v[1].Reg, v[2].Reg}, [3]R{}
	interleave[uint32](in[:], out[:])
	return [3]U32s[R]{{out[0]}, {out[1]}, {out[2]}}
}

func (Fallback[R]) DeinterleaveU32s3(v [3]U32s[R]) [3]U32s[R] {
	in, out := [3]R{v[0].Reg, v[1].Reg, v[2].Reg}, [3]R{}
	deinterleave[uint32](in[:], out[:])
	return [3]U32s[R]{{out[0]}, {out[1]}, {out[2]}}
}

func (Fallback[R]) InterleaveU32s4(v [4]U32s[R]) [4]U32s[R] {
	in, out := [4]R{v[0].Reg, v[1].Reg, v[2].Reg, v[3].Reg}, [4]R{}
	interleave[uint32](in[:], out[:])
	return [4]U32s[R]{{out[0]}, {out[1]}, {out[2]}, {out[3]}}
}

func (Fallback[R]) DeinterleaveU32s4(v [4]U32s[R]) [4]U32s[R] {
	in, out := [4]R{v[0].Reg, v[1].Reg, v[2].Reg, v[3].Reg}, [4]R{}
	deinterleave[uint32](in[:], out[:])
	return [4]U32s[R]{{out[0]}, {out[1]}, {out[2]}, {out[3]}}
}

func (Fallback[R]) InterleaveU64s2(v [2]U64s[R]) [2]U64s[R] {
	in, out := [2]R{v[0].Reg, v[1].Reg}, [2]R{}
	interleave[uint64](in[:], out[:])
	return [2]U64s[R]{{out[0]}, {out[1]}}
}

func (Fallback[R]) DeinterleaveU64s2(v [2]U64s[R]) [2]U64s[R] {
	in, out := [2]R{v[0].Reg, v[1].Reg}, [2]R{}
	deinterleave[uint64](in[:], out[:])
	return [2]U64s[R]{{out[0]}, {out[1]}}
}

func (Fallback[R]) InterleaveU64s3(v [3]U64s[R]) [3]U64s[R] {
	in, out := [3]R{v[0].Reg, v[1].Reg, v[2].Reg}, [3]R{}
	interleave[uint64](in[:], out[:])
	return [3]U64s[R]{{out[0]}, {out[1]}, {out[2]}}
}

func (Fallback[R]) DeinterleaveU64s3(v [3]U64s[R]) [3]U64s[R] {
	in, out := [3]R{v[0].Reg, v[1].Reg, v[2].Reg}, [3]R{}
	deinterleave[uint64](in[:], out[:])
	return [3]U64s[R]{{out[0]}, {out[1]}, {out[2]}}
}

func (Fallback[R]) InterleaveU64s4(v [4]U64s[R]) [4]U64s[R] {
	in, out := [4]R{v[0].Reg, v[1].Reg, v[2].Reg, v[3].Reg}, [4]R{}
	interleave[uint64](in[:], out[:])
	return [4]U64s[R]{{out[0]}, {out[1]}, {out[2]}, {out[3]}}
}

func (Fallback[R]) DeinterleaveU64s4(v [4]U64s[R]) [4]U64s[R] {
	in, out := [4]R{v[0].Reg, v[1].Reg, v[2].Reg, v[3].Reg}, [4]R{}
	deinterleave[uint64](in[:], out[:])
	return [4]U64s[R]{{out[0]}, {out[1]}, {out[2]}, {out[3]}}
}

func (Fallback[R]) WideningMulU16s(a, b U16s[R]) (lo, hi U16s[R]) {
	l, h := wideningMulU16(a.Reg, b.Reg)
	return U16s[R]{l}, U16s[R]{h}
}

func (Fallback[R]) WideningMulU32s(a, b U32s[R]) (lo, hi U32s[R]) {
	l, h := wideningMulU32(a.Reg, b.Reg)
	return U32s[R]{l}, U32s[R]{h}
}

func (Fallback[R]) WideningMulU64s(a, b U64s[R]) (lo, hi U64s[R]) {
	l, h := wideningMulU64(a.Reg, b.Reg)
	return U64s[R]{l}, U64s[R]{h}
}

func (Fallback[R]) WideningMulI32s(a, b I32s[R]) (lo, hi I32s[R]) {
	l, h := wideningMulI32(a.Reg, b.Reg)
	return I32s[R]{l}, I32s[R]{h}
}

func (Fallback[R]) AndM8s(a, b M8s[R]) M8s[R] {
	return M8s[R]{binary[uint64](a.bits, b.bits, and)}
}

func (Fallback[R]) OrM8s(a, b M8s[R]) M8s[R] {
	return M8s[R]{binary[uint64](a.bits, b.bits, or)}
}

func (Fallback[R]) XorM8s(a, b M8s[R]) M8s[R] {
	return M8s[R]{binary[uint64](a.bits, b.bits, xor)}
}

func (Fallback[R]) AndNotM8s(a, b M8s[R]) M8s[R] {
	return M8s[R]{binary[uint64](a.bits, b.bits, andNot)}
}

func (Fallback[R]) NotM8s(a M8s[R]) M8s[R] {
	return M8s[R]{unary[uint64](a.bits, not)}
}

func (Fallback[R]) FirstTrueM8s(a M8s[R]) int {
	return firstTrue[uint8](a.bits)
}

func (Fallback[R]) AnyTrueM8s(a M8s[R]) bool {
	return anyTrue(a.bits)
}

func (Fallback[R]) AllTrueM8s(a M8s[R]) bool {
	return allTrue(a.bits)
}

func (Fallback[R]) AndM16s(a, b M16s[R]) M16s[R] {
	return M16s[R]{binary[uint64](a.bits, b.bits, and)}
}

func (Fallback[R]) OrM16s(a, b M16s[R]) M16s[R] {
	return M16s[R]{binary[uint64](a.bits, b.bits, or)}
}

func (Fallback[R]) XorM16s(a, b M16s[R]) M16s[R] {
	return M16s[R]{binary[uint64](a.bits, b.bits, xor)}
}

func (Fallback[R]) AndNotM16s(a, b M16s[R]) M16s[R] {
	return M16s[R]{binary[uint64](a.bits, b.bits, andNot)}
}

func (Fallback[R]) NotM16s(a M16s[R]) M16s[R] {
	return M16s[R]{unary[uint64](a.bits, not)}
}

func (Fallback[R]) FirstTrueM16s(a M16s[R]) int {
	return firstTrue[uint16](a.bits)
}

func (Fallback[R]) AnyTrueM16s(a M16s[R]) bool {
	return anyTrue(a.bits)
}

func (Fallback[R]) AllTrueM16s(a M16s[R]) bool {
	return allTrue(a.bits)
}

func (Fallback[R]) AndM32s(a, b M32s[R]) M32s[R] {
	return M32s[R]{binary[uint64](a.bits, b.bits, and)}
}

func (Fallback[R]) OrM32s(a, b M32s[R]) M32s[R] {
	return M32s[R]{binary[uint64](a.bits, b.bits, or)}
}

func (Fallback[R]) XorM32s(a, b M32s[R]) M32s[R] {
	return M32s[R]{binary[uint64](a.bits, b.bits, xor)}
}

func (Fallback[R]) AndNotM32s(a, b M32s[R]) M32s[R] {
	return M32s[R]{binary[uint64](a.bits, b.bits, andNot)}
}

func (Fallback[R]) NotM32s(a M32s[R]) M32s[R] {
	return M32s[R]{unary[uint64](a.bits, not)}
}

func (Fallback[R]) FirstTrueM32s(a M32s[R]) int {
	return firstTrue[uint32](a.bits)
}

func (Fallback[R]) AnyTrueM32s(a M32s[R]) bool {
	return anyTrue(a.bits)
}

func (Fallback[R]) AllTrueM32s(a M32s[R]) bool {
	return allTrue(a.bits)
}

func (Fallback[R]) AndM64s(a, b M64s[R]) M64s[R] {
	return M64s[R]{binary[uint64](a.bits, b.bits, and)}
}

func (Fallback[R]) OrM64s(a, b M64s[R]) M64s[R] {
	return M64s[R]{binary[uint64](a.bits, b.bits, or)}
}

func (Fallback[R]) XorM64s(a, b M64s[R]) M64s[R] {
	return M64s[R]{binary[uint64](a.bits, b.bits, xor)}
}

func (Fallback[R]) AndNotM64s(a, b M64s[R]) M64s[R] {
	return M64s[R]{binary[uint64](a.bits, b.bits, andNot)}
}

func (Fallback[R]) NotM64s(a M64s[R]) M64s[R] {
	return M64s[R]{unary[uint64](a.bits, not)}
}

func (Fallback[R]) FirstTrueM64s(a M64s[R]) int {
	return firstTrue[uint64](a.bits)
}

func (Fallback[R]) AnyTrueM64s(a M64s[R]) bool {
	return anyTrue(a.bits)
}

func (Fallback[R]) AllTrueM64s(a M64s[R]) bool {
	return allTrue(a.bits)
}

func (f Fallback[R]) MaskBetweenM8s(start, end int) MemMask[M8s[R]] {
	lo, hi := clampRange(start, end, Lanes[uint8, R]())
	idx := U8s[R]{laneIndex[uint8, R]()}
	m := f.AndM8s(f.GreaterEqualU8s(idx, f.SplatU8s(uint8(lo))), f.LessU8s(idx, f.SplatU8s(uint8(hi))))
	return NewMemMask(m)
}

func (f Fallback[R]) MaskBetweenM16s(start, end int) MemMask[M16s[R]] {
	lo, hi := clampRange(start, end, Lanes[uint16, R]())
	idx := U16s[R]{laneIndex[uint16, R]()}
	m := f.AndM16s(f.GreaterEqualU16s(idx, f.SplatU16s(uint16(lo))), f.LessU16s(idx, f.SplatU16s(uint16(hi))))
	return NewMemMask(m)
}

func (f Fallback[R]) MaskBetweenM32s(start, end int) MemMask[M32s[R]] {
	lo, hi := clampRange(start, end, Lanes[uint32, R]())
	idx := U32s[R]{laneIndex[uint32, R]()}
	m := f.AndM32s(f.GreaterEqualU32s(idx, f.SplatU32s(uint32(lo))), f.LessU32s(idx, f.SplatU32s(uint32(hi))))
	return NewMemMask(m)
}

func (f Fallback[R]) MaskBetweenM64s(start, end int) MemMask[M64s[R]] {
	lo, hi := clampRange(start, end, Lanes[uint64, R]())
	idx := U64s[R]{laneIndex[uint64, R]()}
	m := f.AndM64s(f.GreaterEqualU64s(idx, f.SplatU64s(uint64(lo))), f.LessU64s(idx, f.SplatU64s(uint64(hi))))
	return NewMemMask(m)
}

func (Fallback[R]) MaskLoadPtrU8s(m MemMask[M8s[R]], ptr *uint8) U8s[R] {
	return U8s[R]{maskLoad[uint8, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrU8s(m MemMask[M8s[R]], ptr *uint8, v U8s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrI8s(m MemMask[M8s[R]], ptr *int8) I8s[R] {
	return I8s[R]{maskLoad[int8, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrI8s(m MemMask[M8s[R]], ptr *int8, v I8s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrU16s(m MemMask[M16s[R]], ptr *uint16) U16s[R] {
	return U16s[R]{maskLoad[uint16, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrU16s(m MemMask[M16s[R]], ptr *uint16, v U16s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrI16s(m MemMask[M16s[R]], ptr *int16) I16s[R] {
	return I16s[R]{maskLoad[int16, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrI16s(m MemMask[M16s[R]], ptr *int16, v I16s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrU32s(m MemMask[M32s[R]], ptr *uint32) U32s[R] {
	return U32s[R]{maskLoad[uint32, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrU32s(m MemMask[M32s[R]], ptr *uint32, v U32s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrI32s(m MemMask[M32s[R]], ptr *int32) I32s[R] {
	return I32s[R]{maskLoad[int32, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrI32s(m MemMask[M32s[R]], ptr *int32, v I32s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrU64s(m MemMask[M64s[R]], ptr *uint64) U64s[R] {
	return U64s[R]{maskLoad[uint64, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrU64s(m MemMask[M64s[R]], ptr *uint64, v U64s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrI64s(m MemMask[M64s[R]], ptr *int64) I64s[R] {
	return I64s[R]{maskLoad[int64, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrI64s(m MemMask[M64s[R]], ptr *int64, v I64s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrF32s(m MemMask[M32s[R]], ptr *float32) F32s[R] {
	return F32s[R]{maskLoad[float32, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrF32s(m MemMask[M32s[R]], ptr *float32, v F32s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrF64s(m MemMask[M64s[R]], ptr *float64) F64s[R] {
	return F64s[R]{maskLoad[float64, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrF64s(m MemMask[M64s[R]], ptr *float64, v F64s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrC32s(m MemMask[M64s[R]], ptr *complex64) C32s[R] {
	return C32s[R]{maskLoad[complex64, R](m, ptr)}
}

func (Fallback[R]) MaskStorePtrC32s(m MemMask[M64s[R]], ptr *complex64, v C32s[R]) {
	maskStore(m, ptr, v.Reg)
}

func (Fallback[R]) MaskLoadPtrC64s(m MemMask[M64s[R]], ptr *complex128) C64s[R] {
	return C64s[R]{maskLoad[uint64, R](m, halves(ptr))}
}

func (Fallback[R]) MaskStorePtrC64s(m MemMask[M64s[R]], ptr *complex128, v C64s[R]) {
	maskStore(m, halves(ptr), v.Reg)
}

func (Fallback[R]) PartialLoadU32s(xs []uint32) U32s[R] {
	return U32s[R]{fromLanes[uint32, R](xs)}
}

func (Fallback[R]) PartialStoreU32s(xs []uint32, v U32s[R]) {
	copy(xs, lanes[uint32](&v.Reg))
}

func (Fallback[R]) PartialLoadU64s(xs []uint64) U64s[R] {
	return U64s[R]{fromLanes[uint64, R](xs)}
}

func (Fallback[R]) PartialStoreU64s(xs []uint64, v U64s[R]) {
	copy(xs, lanes[uint64](&v.Reg))
}

func (Fallback[R]) PartialLoadF32s(xs []float32) F32s[R] {
	return F32s[R]{fromLanes[float32, R](xs)}
}

func (Fallback[R]) PartialStoreF32s(xs []float32, v F32s[R]) {
	copy(xs, lanes[float32](&v.Reg))
}

func (Fallback[R]) PartialLoadF64s(xs []float64) F64s[R] {
	return F64s[R]{fromLanes[float64, R](xs)}
}

func (Fallback[R]) PartialStoreF64s(xs []float64, v F64s[R]) {
	copy(xs, lanes[float64](&v.Reg))
}
