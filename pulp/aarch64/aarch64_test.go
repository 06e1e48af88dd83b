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
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

func TestTokenSoundness(t *testing.T) {
	if n, ok := TryNewNeon(); ok {
		for _, f := range n.Features() {
			assert.Truef(t, feature.Has(f), "Neon issued without %s", f)
		}
	} else {
		assert.False(t, IsAvailableNeon())
	}
	if n, ok := TryNewNeonFcma(); ok {
		for _, f := range n.Features() {
			assert.Truef(t, feature.Has(f), "NeonFcma issued without %s", f)
		}
		assert.True(t, IsAvailableNeon())
	} else {
		assert.False(t, IsAvailableNeonFcma())
	}
	if runtime.GOARCH == "arm64" {
		assert.True(t, IsAvailableNeon(), "Advanced SIMD is mandatory on arm64")
	}
}

func TestTokenNames(t *testing.T) {
	assert.Equal(t, "neon", NewNeonUnchecked().Name())
	assert.Equal(t, "neon-fcma", NewNeonFcmaUnchecked().Name())
	assert.Equal(t, []feature.Feature{feature.FP, feature.NEON, feature.FCMA}, NewNeonFcmaUnchecked().Features())
}

func flatten[T complex64 | complex128](zs []T) []float64 {
	out := make([]float64, 0, 2*len(zs))
	for _, z := range zs {
		out = append(out, real(complex128(z)), imag(complex128(z)))
	}
	return out
}

func TestFcmaMatchesShuffleKernel(t *testing.T) {
	fc := NewNeonFcmaUnchecked()
	var f pulp.Fallback[pulp.Reg128]
	rng := rand.New(rand.NewPCG(17, 4))
	r32 := func() complex64 { return complex(rng.Float32()*6-3, rng.Float32()*6-3) }
	r64 := func() complex128 { return complex(rng.Float64()*6-3, rng.Float64()*6-3) }
	approx := cmpopts.EquateApprox(1e-5, 1e-5)

	for range 200 {
		a := pulp.C32sFromSlice[pulp.Reg128]([]complex64{r32(), r32()})
		b := pulp.C32sFromSlice[pulp.Reg128]([]complex64{r32(), r32()})
		c := pulp.C32sFromSlice[pulp.Reg128]([]complex64{r32(), r32()})
		for name, pair := range map[string][2]pulp.C32s[pulp.Reg128]{
			"MulC32s":        {f.MulC32s(a, b), fc.MulC32s(a, b)},
			"ConjMulC32s":    {f.ConjMulC32s(a, b), fc.ConjMulC32s(a, b)},
			"MulAddC32s":     {f.MulAddC32s(a, b, c), fc.MulAddC32s(a, b, c)},
			"ConjMulAddC32s": {f.ConjMulAddC32s(a, b, c), fc.ConjMulAddC32s(a, b, c)},
		} {
			if diff := cmp.Diff(flatten(pair[0].Slice()), flatten(pair[1].Slice()), approx); diff != "" {
				t.Fatalf("%s (-shuffle +fcma):\n%s", name, diff)
			}
		}

		x := pulp.C64sFromSlice[pulp.Reg128]([]complex128{r64()})
		y := pulp.C64sFromSlice[pulp.Reg128]([]complex128{r64()})
		z := pulp.C64sFromSlice[pulp.Reg128]([]complex128{r64()})
		want := x.Slice()[0]*y.Slice()[0] + z.Slice()[0]
		assert.InDelta(t, real(want), real(fc.MulAddC64s(x, y, z).Slice()[0]), 1e-12)
		assert.InDelta(t, imag(want), imag(fc.MulAddC64s(x, y, z).Slice()[0]), 1e-12)
		if diff := cmp.Diff(flatten(f.ConjMulC64s(x, y).Slice()), flatten(fc.ConjMulC64s(x, y).Slice()), approx); diff != "" {
			t.Fatalf("ConjMulC64s (-shuffle +fcma):\n%s", diff)
		}
		if diff := cmp.Diff(flatten(f.MulC64s(x, y).Slice()), flatten(fc.MulC64s(x, y).Slice()), approx); diff != "" {
			t.Fatalf("MulC64s (-shuffle +fcma):\n%s", diff)
		}
		if diff := cmp.Diff(flatten(f.ConjMulAddC64s(x, y, z).Slice()), flatten(fc.ConjMulAddC64s(x, y, z).Slice()), approx); diff != "" {
			t.Fatalf("ConjMulAddC64s (-shuffle +fcma):\n%s", diff)
		}
	}
}

func TestFcmlaRotations(t *testing.T) {
	a, b := complex(2.0, 3.0), complex(5.0, 7.0)
	assert.Equal(t, complex(10.0, 14.0), fcmla(0, a, b, rot0))
	assert.Equal(t, a*b, fcmla(fcmla(0, a, b, rot0), a, b, rot90))
	assert.Equal(t, complex(real(a), -imag(a))*b, fcmla(fcmla(0, a, b, rot0), a, b, rot270))
}
