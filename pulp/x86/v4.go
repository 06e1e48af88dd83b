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

package x86

import (
	"slices"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
	"github.com/ajroetker/go-pulp/pulp/internal/memmask"
)

// V4 is the token for x86-64-v4 processors with the AVX-512 F, BW, CD, DQ
// and VL extensions.
//
// Masks built by V4's MaskBetween operations carry trampolines, so masked
// loads and stores execute VMOVDQU with an opmask and never touch memory of
// unset lanes. Builds with the noasm tag fall back to lane-by-lane access.
//
// The zero value is equivalent to NewV4Unchecked.
type V4 struct {
	pulp.Fallback[pulp.Reg512]
}

var _ pulp.Simd[pulp.Reg512] = V4{}

var v4Features = append(slices.Clone(v3Features),
	feature.AVX512F, feature.AVX512BW, feature.AVX512CD, feature.AVX512DQ, feature.AVX512VL,
)

// IsAvailableV4 reports whether the running CPU supports every V4 feature.
func IsAvailableV4() bool { return feature.HasAll(v4Features...) }

// TryNewV4 returns a V4 token if the CPU supports it.
func TryNewV4() (V4, bool) {
	if !IsAvailableV4() {
		return V4{}, false
	}
	return V4{}, true
}

// NewV4Unchecked returns a V4 token without checking the CPU. Running V4
// operations on a CPU without the V4 features is undefined behavior.
func NewV4Unchecked() V4 { return V4{} }

func (V4) Name() string { return "v4" }
func (V4) Features() []feature.Feature { return slices.Clone(v4Features) }
func (V4) Vectorize(op func()) { op() }

// prefix[n] has the low n bits set.
var prefix = func() (t [65]uint64) {
	for n := 1; n < len(t); n++ {
		t[n] = t[n-1]<<1 | 1
	}
	return t
}()

// between returns the bits of lanes [start, end) of an n-lane register.
func between(start, end, n int) uint64 {
	start = max(0, min(start, n))
	end = max(0, min(end, n))
	if start >= end {
		return 0
	}
	return prefix[end] &^ prefix[start]
}

func (V4) MaskBetweenM8s(start, end int) pulp.MemMask[pulp.M8s[pulp.Reg512]] {
	b := pulp.B64(between(start, end, 64))
	return memmask.WithTrampoline[uint8](b.M8s())
}

func (V4) MaskBetweenM16s(start, end int) pulp.MemMask[pulp.M16s[pulp.Reg512]] {
	b := pulp.B32(between(start, end, 32))
	return memmask.WithTrampoline[uint16](b.M16s())
}

func (V4) MaskBetweenM32s(start, end int) pulp.MemMask[pulp.M32s[pulp.Reg512]] {
	b := pulp.B16(between(start, end, 16))
	return memmask.WithTrampoline[uint32](b.M32s())
}

func (V4) MaskBetweenM64s(start, end int) pulp.MemMask[pulp.M64s[pulp.Reg512]] {
	b := pulp.B8(between(start, end, 8))
	return memmask.WithTrampoline[uint64](b.M64s())
}

// FirstN returns the bit-mask of the first n 32-bit lanes.
func (V4) FirstN(n int) pulp.B16 { return pulp.B16(between(0, n, 16)) }

// SelectF32sBits returns the lanes of a where b is set and of c elsewhere.
func (v V4) SelectF32sBits(b pulp.B16, a, c pulp.F32s[pulp.Reg512]) pulp.F32s[pulp.Reg512] {
	return v.SelectF32s(b.M32s(), a, c)
}

// SelectU32sBits returns the lanes of a where b is set and of c elsewhere.
func (v V4) SelectU32sBits(b pulp.B16, a, c pulp.U32s[pulp.Reg512]) pulp.U32s[pulp.Reg512] {
	return v.SelectU32s(b.M32s(), a, c)
}

// EqualU8sBits compares the 64 byte lanes of a and b.
func (v V4) EqualU8sBits(a, b pulp.U8s[pulp.Reg512]) pulp.B64 {
	return pulp.B64FromM8s(v.EqualU8s(a, b))
}

// EqualU32sBits compares the 32-bit lanes of a and b.
func (v V4) EqualU32sBits(a, b pulp.U32s[pulp.Reg512]) pulp.B16 {
	return pulp.B16FromM32s(v.EqualU32s(a, b))
}

// LessF64sBits compares the float64 lanes of a and b.
func (v V4) LessF64sBits(a, b pulp.F64s[pulp.Reg512]) pulp.B8 {
	return pulp.B8FromM64s(v.LessF64s(a, b))
}
