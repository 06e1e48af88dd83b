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

// Package wasm provides the capability tokens for WebAssembly.
//
// WebAssembly has no runtime feature query. The tokens are available when
// the binary was built for them: the pulp_simd128 build tag enables
// [Simd128] and pulp_relaxed_simd additionally enables [RelaxedSimd].
package wasm

import (
	"slices"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

// Simd128 is the token for the fixed-width 128-bit SIMD proposal.
//
// The zero value is equivalent to NewSimd128Unchecked.
type Simd128 struct {
	pulp.Fallback[pulp.Reg128]
}

var _ pulp.Simd[pulp.Reg128] = Simd128{}

var simd128Features = []feature.Feature{feature.SIMD128}

// IsAvailableSimd128 reports whether the binary was built with SIMD128.
func IsAvailableSimd128() bool { return feature.HasAll(simd128Features...) }

// TryNewSimd128 returns a Simd128 token if SIMD128 is enabled.
func TryNewSimd128() (Simd128, bool) {
	if !IsAvailableSimd128() {
		return Simd128{}, false
	}
	return Simd128{}, true
}

// NewSimd128Unchecked returns a Simd128 token without checking.
func NewSimd128Unchecked() Simd128 { return Simd128{} }

func (Simd128) Name() string { return "simd128" }
func (Simd128) Features() []feature.Feature { return slices.Clone(simd128Features) }
func (Simd128) Vectorize(op func()) { op() }

// RelaxedSimd is the token for SIMD128 plus the relaxed-SIMD proposal. Its
// multiply-add may round twice, as relaxed_madd permits.
//
// The zero value is equivalent to NewRelaxedSimdUnchecked.
type RelaxedSimd struct {
	Simd128
}

var _ pulp.Simd[pulp.Reg128] = RelaxedSimd{}

var relaxedFeatures = append(slices.Clone(simd128Features), feature.RelaxedSIMD)

// IsAvailableRelaxedSimd reports whether the binary was built with SIMD128
// and relaxed SIMD.
func IsAvailableRelaxedSimd() bool { return feature.HasAll(relaxedFeatures...) }

// TryNewRelaxedSimd returns a RelaxedSimd token if relaxed SIMD is enabled.
func TryNewRelaxedSimd() (RelaxedSimd, bool) {
	if !IsAvailableRelaxedSimd() {
		return RelaxedSimd{}, false
	}
	return RelaxedSimd{}, true
}

// NewRelaxedSimdUnchecked returns a RelaxedSimd token without checking.
func NewRelaxedSimdUnchecked() RelaxedSimd { return RelaxedSimd{} }

func (RelaxedSimd) Name() string { return "relaxed-simd" }
func (RelaxedSimd) Features() []feature.Feature { return slices.Clone(relaxedFeatures) }

func (RelaxedSimd) MulAddF32s(a, b, c pulp.F32s[pulp.Reg128]) pulp.F32s[pulp.Reg128] {
	var s Simd128
	return s.AddF32s(s.MulF32s(a, b), c)
}

func (RelaxedSimd) MulAddF64s(a, b, c pulp.F64s[pulp.Reg128]) pulp.F64s[pulp.Reg128] {
	var s Simd128
	return s.AddF64s(s.MulF64s(a, b), c)
}
