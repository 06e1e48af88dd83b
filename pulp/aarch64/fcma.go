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

package aarch64

import (
	"math"
	"slices"
	"unsafe"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

// NeonFcma is the token for Advanced SIMD with the FCMA complex-number
// extension.
//
// The zero value is equivalent to NewNeonFcmaUnchecked.
type NeonFcma struct {
	Neon
}

var _ pulp.Simd[pulp.Reg128] = NeonFcma{}

var fcmaFeatures = append(slices.Clone(neonFeatures), feature.FCMA)

// IsAvailableNeonFcma reports whether the running CPU supports Advanced SIMD
// and FCMA.
func IsAvailableNeonFcma() bool { return feature.HasAll(fcmaFeatures...) }

// TryNewNeonFcma returns a NeonFcma token if the CPU supports it.
func TryNewNeonFcma() (NeonFcma, bool) {
	if !IsAvailableNeonFcma() {
		return NeonFcma{}, false
	}
	return NeonFcma{}, true
}

// NewNeonFcmaUnchecked returns a NeonFcma token without checking the CPU.
func NewNeonFcmaUnchecked() NeonFcma { return NeonFcma{} }

func (NeonFcma) Name() string { return "neon-fcma" }
func (NeonFcma) Features() []feature.Feature { return slices.Clone(fcmaFeatures) }

type (
	c32x2 = pulp.C32s[pulp.Reg128]
	c64x1 = pulp.C64s[pulp.Reg128]
)

// rotation selects the FCMLA step. Rotations 0 and 90 together accumulate
// a*b; rotations 0 and 270 accumulate conj(a)*b.
type rotation uint8

const (
	rot0 rotation = iota
	rot90
	rot270
)

// fcmla accumulates one rotation step into acc:
//
//	rot0:   re += a.re*b.re  im += a.re*b.im
//	rot90:  re -= a.im*b.im  im += a.im*b.re
//	rot270: re += a.im*b.im  im -= a.im*b.re
func fcmla(acc, a, b complex128, rot rotation) complex128 {
	re, im := real(acc), imag(acc)
	switch rot {
	case rot0:
		re = math.FMA(real(a), real(b), re)
		im = math.FMA(real(a), imag(b), im)
	case rot90:
		re = math.FMA(-imag(a), imag(b), re)
		im = math.FMA(imag(a), real(b), im)
	case rot270:
		re = math.FMA(imag(a), imag(b), re)
		im = math.FMA(-imag(a), real(b), im)
	}
	return complex(re, im)
}

func cmla32(a, b, c c32x2, second rotation) c32x2 {
	x := (*[2]complex64)(unsafe.Pointer(&a.Reg))
	y := (*[2]complex64)(unsafe.Pointer(&b.Reg))
	z := (*[2]complex64)(unsafe.Pointer(&c.Reg))
	for i := range z {
		acc := fcmla(complex128(z[i]), complex128(x[i]), complex128(y[i]), rot0)
		z[i] = complex64(fcmla(acc, complex128(x[i]), complex128(y[i]), second))
	}
	return c
}

func cmla64(a, b, c c64x1, second rotation) c64x1 {
	x := (*[1]complex128)(unsafe.Pointer(&a.Reg))
	y := (*[1]complex128)(unsafe.Pointer(&b.Reg))
	z := (*[1]complex128)(unsafe.Pointer(&c.Reg))
	z[0] = fcmla(fcmla(z[0], x[0], y[0], rot0), x[0], y[0], second)
	return c
}

func (NeonFcma) MulC32s(a, b c32x2) c32x2 { return cmla32(a, b, c32x2{}, rot90) }
func (NeonFcma) ConjMulC32s(a, b c32x2) c32x2 { return cmla32(a, b, c32x2{}, rot270) }
func (NeonFcma) MulAddC32s(a, b, c c32x2) c32x2 { return cmla32(a, b, c, rot90) }
func (NeonFcma) ConjMulAddC32s(a, b, c c32x2) c32x2 { return cmla32(a, b, c, rot270) }
func (NeonFcma) MulC64s(a, b c64x1) c64x1 { return cmla64(a, b, c64x1{}, rot90) }
func (NeonFcma) ConjMulC64s(a, b c64x1) c64x1 { return cmla64(a, b, c64x1{}, rot270) }
func (NeonFcma) MulAddC64s(a, b, c c64x1) c64x1 { return cmla64(a, b, c, rot90) }
func (NeonFcma) ConjMulAddC64s(a, b, c c64x1) c64x1 { return cmla64(a, b, c, rot270) }
