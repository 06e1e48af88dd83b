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

// V3 runs its float arithmetic through archsimd when the simd experiment is
// enabled. Reductions and min/max keep the portable lane order so results
// match the scalar backend exactly.

type (
	f32x8 = pulp.F32s[pulp.Reg256]
	f64x4 = pulp.F64s[pulp.Reg256]
)

func f32Lanes8(r *pulp.Reg256) []float32 { return (*[8]float32)(unsafe.Pointer(r))[:] }
func f64Lanes4(r *pulp.Reg256) []float64 { return (*[4]float64)(unsafe.Pointer(r))[:] }

func loadF32x8(v f32x8) archsimd.Float32x8 { return archsimd.LoadFloat32x8Slice(f32Lanes8(&v.Reg)) }
func loadF64x4(v f64x4) archsimd.Float64x4 { return archsimd.LoadFloat64x4Slice(f64Lanes4(&v.Reg)) }

func storeF32x8(x archsimd.Float32x8) (v f32x8) {
	x.StoreSlice(f32Lanes8(&v.Reg))
	return v
}

func storeF64x4(x archsimd.Float64x4) (v f64x4) {
	x.StoreSlice(f64Lanes4(&v.Reg))
	return v
}

func (V3) SplatF32s(x float32) f32x8 { return storeF32x8(archsimd.BroadcastFloat32x8(x)) }
func (V3) AddF32s(a, b f32x8) f32x8 { return storeF32x8(loadF32x8(a).Add(loadF32x8(b))) }
func (V3) SubF32s(a, b f32x8) f32x8 { return storeF32x8(loadF32x8(a).Sub(loadF32x8(b))) }
func (V3) MulF32s(a, b f32x8) f32x8 { return storeF32x8(loadF32x8(a).Mul(loadF32x8(b))) }
func (V3) DivF32s(a, b f32x8) f32x8 { return storeF32x8(loadF32x8(a).Div(loadF32x8(b))) }
func (V3) SqrtF32s(a f32x8) f32x8 { return storeF32x8(loadF32x8(a).Sqrt()) }

func (V3) MulAddF32s(a, b, c f32x8) f32x8 {
	return storeF32x8(loadF32x8(a).MulAdd(loadF32x8(b), loadF32x8(c)))
}

func (V3) LessF32s(a, b f32x8) pulp.M32s[pulp.Reg256] {
	return pulp.M32sFromBits[pulp.Reg256](uint64(loadF32x8(a).Less(loadF32x8(b)).ToBits()))
}

func (V3) GreaterF32s(a, b f32x8) pulp.M32s[pulp.Reg256] {
	return pulp.M32sFromBits[pulp.Reg256](uint64(loadF32x8(a).Greater(loadF32x8(b)).ToBits()))
}

func (V3) EqualF32s(a, b f32x8) pulp.M32s[pulp.Reg256] {
	return pulp.M32sFromBits[pulp.Reg256](uint64(loadF32x8(a).Equal(loadF32x8(b)).ToBits()))
}

func (V3) SelectF32s(m pulp.M32s[pulp.Reg256], a, b f32x8) f32x8 {
	k := archsimd.Mask32x8FromBits(uint8(m.Bits()))
	return storeF32x8(loadF32x8(a).AsInt32x8().Merge(loadF32x8(b).AsInt32x8(), k).AsFloat32x8())
}

func (V3) SplatF64s(x float64) f64x4 { return storeF64x4(archsimd.BroadcastFloat64x4(x)) }
func (V3) AddF64s(a, b f64x4) f64x4 { return storeF64x4(loadF64x4(a).Add(loadF64x4(b))) }
func (V3) SubF64s(a, b f64x4) f64x4 { return storeF64x4(loadF64x4(a).Sub(loadF64x4(b))) }
func (V3) MulF64s(a, b f64x4) f64x4 { return storeF64x4(loadF64x4(a).Mul(loadF64x4(b))) }
func (V3) DivF64s(a, b f64x4) f64x4 { return storeF64x4(loadF64x4(a).Div(loadF64x4(b))) }
func (V3) SqrtF64s(a f64x4) f64x4 { return storeF64x4(loadF64x4(a).Sqrt()) }

func (V3) MulAddF64s(a, b, c f64x4) f64x4 {
	return storeF64x4(loadF64x4(a).MulAdd(loadF64x4(b), loadF64x4(c)))
}
