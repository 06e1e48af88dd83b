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

//go:build amd64 && goexperiment.simd

package x86

import (
	"simd/archsimd"
	"unsafe"

	"github.com/ajroetker/go-pulp/pulp"
)

type (
	f32x16 = pulp.F32s[pulp.Reg512]
	f64x8  = pulp.F64s[pulp.Reg512]
)

func f32Lanes16(r *pulp.Reg512) []float32 { return (*[16]float32)(unsafe.Pointer(r))[:] }
func f64Lanes8(r *pulp.Reg512) []float64 { return (*[8]float64)(unsafe.Pointer(r))[:] }

func loadF32x16(v f32x16) archsimd.Float32x16 {
	return archsimd.LoadFloat32x16Slice(f32Lanes16(&v.Reg))
}

func loadF64x8(v f64x8) archsimd.Float64x8 {
	return archsimd.LoadFloat64x8Slice(f64Lanes8(&v.Reg))
}

func storeF32x16(x archsimd.Float32x16) (v f32x16) {
	x.StoreSlice(f32Lanes16(&v.Reg))
	return v
}

func storeF64x8(x archsimd.Float64x8) (v f64x8) {
	x.StoreSlice(f64Lanes8(&v.Reg))
	return v
}

func (V4) SplatF32s(x float32) f32x16 { return storeF32x16(archsimd.BroadcastFloat32x16(x)) }
func (V4) AddF32s(a, b f32x16) f32x16 { return storeF32x16(loadF32x16(a).Add(loadF32x16(b))) }
func (V4) SubF32s(a, b f32x16) f32x16 { return storeF32x16(loadF32x16(a).Sub(loadF32x16(b))) }
func (V4) MulF32s(a, b f32x16) f32x16 { return storeF32x16(loadF32x16(a).Mul(loadF32x16(b))) }
func (V4) DivF32s(a, b f32x16) f32x16 { return storeF32x16(loadF32x16(a).Div(loadF32x16(b))) }
func (V4) SqrtF32s(a f32x16) f32x16 { return storeF32x16(loadF32x16(a).Sqrt()) }

func (V4) MulAddF32s(a, b, c f32x16) f32x16 {
	return storeF32x16(loadF32x16(a).MulAdd(loadF32x16(b), loadF32x16(c)))
}

// LessF32sBits compares the float32 lanes of a and b into a bit-mask.
func (V4) LessF32sBits(a, b f32x16) pulp.B16 {
	return pulp.B16(loadF32x16(a).Less(loadF32x16(b)).ToBits())
}

func (v V4) LessF32s(a, b f32x16) pulp.M32s[pulp.Reg512] { return v.LessF32sBits(a, b).M32s() }

func (V4) SelectF32s(m pulp.M32s[pulp.Reg512], a, b f32x16) f32x16 {
	k := archsimd.Mask32x16FromBits(uint16(m.Bits()))
	return storeF32x16(loadF32x16(a).AsInt32x16().Merge(loadF32x16(b).AsInt32x16(), k).AsFloat32x16())
}

func (V4) SplatF64s(x float64) f64x8 { return storeF64x8(archsimd.BroadcastFloat64x8(x)) }
func (V4) AddF64s(a, b f64x8) f64x8 { return storeF64x8(loadF64x8(a).Add(loadF64x8(b))) }
func (V4) SubF64s(a, b f64x8) f64x8 { return storeF64x8(loadF64x8(a).Sub(loadF64x8(b))) }
func (V4) MulF64s(a, b f64x8) f64x8 { return storeF64x8(loadF64x8(a).Mul(loadF64x8(b))) }
func (V4) DivF64s(a, b f64x8) f64x8 { return storeF64x8(loadF64x8(a).Div(loadF64x8(b))) }

func (V4) MulAddF64s(a, b, c f64x8) f64x8 {
	return storeF64x8(loadF64x8(a).MulAdd(loadF64x8(b), loadF64x8(c)))
}
