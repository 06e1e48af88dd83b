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

package wasm

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

func TestAvailabilityFollowsBuild(t *testing.T) {
	if runtime.GOARCH != "wasm" {
		assert.False(t, IsAvailableSimd128())
		assert.False(t, IsAvailableRelaxedSimd())
	}
	if IsAvailableRelaxedSimd() {
		assert.True(t, IsAvailableSimd128())
	}
	_, ok := TryNewSimd128()
	assert.Equal(t, feature.Static().Has(feature.SIMD128), ok)
}

func TestTokens(t *testing.T) {
	assert.Equal(t, "simd128", NewSimd128Unchecked().Name())
	assert.Equal(t, "relaxed-simd", NewRelaxedSimdUnchecked().Name())
	assert.Equal(t, []feature.Feature{feature.SIMD128, feature.RelaxedSIMD}, NewRelaxedSimdUnchecked().Features())
}

func TestRelaxedMulAdd(t *testing.T) {
	r := NewRelaxedSimdUnchecked()
	got := r.MulAddF32s(r.SplatF32s(2), r.SplatF32s(3), r.SplatF32s(1))
	assert.Equal(t, []float32{7, 7, 7, 7}, got.Slice())
	assert.Equal(t, []float64{-1, -1}, r.MulAddF64s(r.SplatF64s(1), r.SplatF64s(-2), r.SplatF64s(1)).Slice())

	n := pulp.VectorizeWith(r, func(s RelaxedSimd) int { return len(s.SplatU8s(1).Slice()) })
	assert.Equal(t, 16, n)
}
