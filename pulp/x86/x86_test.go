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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
	"github.com/ajroetker/go-pulp/pulp/internal/trampoline"
)

func TestTokenSoundness(t *testing.T) {
	if v3, ok := TryNewV3(); ok {
		for _, f := range v3.Features() {
			assert.Truef(t, feature.Has(f), "V3 issued without %s", f)
		}
	} else {
		assert.False(t, IsAvailableV3())
	}
	if v4, ok := TryNewV4(); ok {
		for _, f := range v4.Features() {
			assert.Truef(t, feature.Has(f), "V4 issued without %s", f)
		}
		assert.True(t, IsAvailableV3(), "V4 implies V3")
	} else {
		assert.False(t, IsAvailableV4())
	}
}

func TestTokenFeatures(t *testing.T) {
	v3, v4 := NewV3Unchecked(), NewV4Unchecked()
	assert.Equal(t, "v3", v3.Name())
	assert.Equal(t, "v4", v4.Name())
	assert.Contains(t, v3.Features(), feature.AVX2)
	assert.Contains(t, v3.Features(), feature.FMA)
	assert.NotContains(t, v3.Features(), feature.AVX512F)
	for _, f := range v3.Features() {
		assert.Contains(t, v4.Features(), f)
	}
	assert.Contains(t, v4.Features(), feature.AVX512BW)

	// Callers cannot alter the token's feature list.
	fs := v3.Features()
	fs[0] = feature.NEON
	assert.Equal(t, feature.SSE, v3.Features()[0])

	got := pulp.VectorizeWith(v4, func(V4) int { return pulp.Lanes[float32, pulp.Reg512]() })
	assert.Equal(t, 16, got)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		start, end, n int
		want          uint64
	}{
		{1, 3, 16, 0b110},
		{0, 16, 16, 0xffff},
		{-3, 100, 16, 0xffff},
		{5, 5, 16, 0},
		{9, 2, 16, 0},
		{0, 64, 64, ^uint64(0)},
		{63, 64, 64, 1 << 63},
		{7, 8, 8, 0x80},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, between(tt.start, tt.end, tt.n), "between(%d, %d, %d)", tt.start, tt.end, tt.n)
	}
}

func TestV4MaskBetween(t *testing.T) {
	v := NewV4Unchecked()
	m := v.MaskBetweenM32s(1, 3)
	assert.Equal(t, uint64(0b110), m.Bits())
	assert.Equal(t, uint64(0b110), m.Mask().Bits())
	assert.Equal(t, trampoline.Available, m.UsesTrampoline())

	// Table lookups agree with the portable construction.
	var f pulp.Fallback[pulp.Reg512]
	for _, r := range [][2]int{{0, 0}, {0, 5}, {3, 64}, {-1, 7}, {60, 70}, {8, 2}} {
		assert.Equal(t, f.MaskBetweenM8s(r[0], r[1]).Mask(), v.MaskBetweenM8s(r[0], r[1]).Mask())
		assert.Equal(t, f.MaskBetweenM16s(r[0], r[1]).Mask(), v.MaskBetweenM16s(r[0], r[1]).Mask())
		assert.Equal(t, f.MaskBetweenM32s(r[0], r[1]).Mask(), v.MaskBetweenM32s(r[0], r[1]).Mask())
		assert.Equal(t, f.MaskBetweenM64s(r[0], r[1]).Mask(), v.MaskBetweenM64s(r[0], r[1]).Mask())
	}
	assert.Equal(t, pulp.B16(0x7), v.FirstN(3))
}

func TestV4MaskedAccess(t *testing.T) {
	v, ok := TryNewV4()
	if !ok {
		t.Skip("AVX-512 not available")
	}

	t.Run("Load", func(t *testing.T) {
		buf := []uint32{10, 20, 30, 40}
		got := v.MaskLoadPtrU32s(v.MaskBetweenM32s(1, 3), &buf[0]).Slice()
		want := make([]uint32, 16)
		want[1], want[2] = 20, 30
		assert.Equal(t, want, got)
	})

	t.Run("StoreStaysInBounds", func(t *testing.T) {
		backing := make([]uint16, 40)
		for i := range backing {
			backing[i] = 0xbeef
		}
		buf := backing[:5:5]
		v.MaskStorePtrU16s(v.MaskBetweenM16s(0, 5), &buf[0], v.SplatU16s(7))
		assert.Equal(t, []uint16{7, 7, 7, 7, 7}, buf)
		for i := 5; i < len(backing); i++ {
			require.Equal(t, uint16(0xbeef), backing[i])
		}
	})

	t.Run("AllWidthsMatchFallback", func(t *testing.T) {
		var f pulp.Fallback[pulp.Reg512]
		b8 := make([]uint8, 64)
		b64 := make([]float64, 8)
		for i := range b8 {
			b8[i] = uint8(i * 3)
		}
		for i := range b64 {
			b64[i] = float64(i) + 0.5
		}
		for start := 0; start <= 8; start++ {
			for end := start; end <= 8; end++ {
				mv, mf := v.MaskBetweenM64s(start, end), f.MaskBetweenM64s(start, end)
				require.Equal(t, f.MaskLoadPtrF64s(mf, &b64[0]), v.MaskLoadPtrF64s(mv, &b64[0]))
			}
		}
		for _, r := range [][2]int{{0, 64}, {1, 63}, {31, 33}, {60, 64}} {
			mv, mf := v.MaskBetweenM8s(r[0], r[1]), f.MaskBetweenM8s(r[0], r[1])
			require.Equal(t, f.MaskLoadPtrU8s(mf, &b8[0]), v.MaskLoadPtrU8s(mv, &b8[0]))
		}
		c := []complex64{1 + 1i, 2 + 2i, 3 + 3i}
		got := v.MaskLoadPtrC32s(v.MaskBetweenM64s(0, 3), &c[0]).Slice()
		assert.Equal(t, []complex64{1 + 1i, 2 + 2i, 3 + 3i, 0, 0, 0, 0, 0}, got)
	})
}

func TestV3MatchesFallback(t *testing.T) {
	v3, ok := TryNewV3()
	if !ok {
		t.Skip("x86-64-v3 not available")
	}
	testFloatEquivalence[pulp.Reg256](t, v3)
}

func TestV4MatchesFallback(t *testing.T) {
	v4, ok := TryNewV4()
	if !ok {
		t.Skip("AVX-512 not available")
	}
	testFloatEquivalence[pulp.Reg512](t, v4)

	var f pulp.Fallback[pulp.Reg512]
	a := pulp.F32sFromSlice[pulp.Reg512]([]float32{1, 5, 3, 7, 2, 8, 0, -1, 4, 4, 9, 1, 6, 2, 3, 5})
	b := v4.SplatF32s(4)
	assert.Equal(t, pulp.B16FromM32s(f.LessF32s(a, b)), v4.LessF32sBits(a, b))
	assert.Equal(t, f.SelectF32s(f.LessF32s(a, b), a, b), v4.SelectF32sBits(v4.LessF32sBits(a, b), a, b))
}

func testFloatEquivalence[R pulp.Register](t *testing.T, s pulp.Simd[R]) {
	var f pulp.Fallback[R]
	n := pulp.Lanes[float32, R]()
	rng := rand.New(rand.NewPCG(5, uint64(n)))
	rnd := func() pulp.F32s[R] {
		xs := make([]float32, n)
		for i := range xs {
			xs[i] = rng.Float32()*20 - 10
		}
		return pulp.F32sFromSlice[R](xs)
	}
	approx := cmpopts.EquateApprox(1e-6, 1e-6)
	for range 100 {
		a, b, c := rnd(), rnd(), rnd()
		check := func(name string, want, got pulp.F32s[R]) {
			t.Helper()
			if diff := cmp.Diff(want.Slice(), got.Slice(), approx); diff != "" {
				t.Fatalf("%s mismatch (-fallback +backend):\n%s", name, diff)
			}
		}
		check("Add", f.AddF32s(a, b), s.AddF32s(a, b))
		check("Sub", f.SubF32s(a, b), s.SubF32s(a, b))
		check("Mul", f.MulF32s(a, b), s.MulF32s(a, b))
		check("Div", f.DivF32s(a, b), s.DivF32s(a, b))
		check("MulAdd", f.MulAddF32s(a, b, c), s.MulAddF32s(a, b, c))
		check("Sqrt", f.SqrtF32s(f.MulF32s(a, a)), s.SqrtF32s(s.MulF32s(a, a)))
		check("Splat", f.SplatF32s(1.25), s.SplatF32s(1.25))
		require.Equal(t, f.LessF32s(a, b), s.LessF32s(a, b))
		require.Equal(t, f.SelectF32s(f.LessF32s(a, b), a, c), s.SelectF32s(s.LessF32s(a, b), a, c))
		require.Equal(t, f.ReduceSumF32s(a), s.ReduceSumF32s(a))

		d, e := pulp.F64s[R](a), pulp.F64s[R](b)
		require.Equal(t, f.MaxF64s(d, e), s.MaxF64s(d, e))
	}
}
