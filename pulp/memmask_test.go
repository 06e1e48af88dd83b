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

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBetweenLoad(t *testing.T) {
	s := NewScalarUnchecked()
	buf := []uint32{10, 20, 30, 40}

	m := s.MaskBetweenM32s(1, 3)
	assert.Equal(t, []bool{false, true, true, false}, m.Mask().Bools())
	assert.Equal(t, uint64(0b0110), m.Bits())
	assert.False(t, m.UsesTrampoline())

	got := s.MaskLoadPtrU32s(m, &buf[0])
	assert.Equal(t, []uint32{0, 20, 30, 0}, got.Slice())
}

func TestMaskBetweenClamps(t *testing.T) {
	tests := []struct {
		name string
		run  func(*testing.T)
	}{
		{"Reg128", testMaskBetweenClamps[Reg128](Scalar{})},
		{"Reg256", testMaskBetweenClamps[Reg256](Fallback[Reg256]{})},
		{"Reg512", testMaskBetweenClamps[Reg512](Fallback[Reg512]{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func testMaskBetweenClamps[R Register](s Simd[R]) func(*testing.T) {
	return func(t *testing.T) {
		n32 := Lanes[uint32, R]()
		n8 := Lanes[uint8, R]()

		all := s.MaskBetweenM32s(-5, 1000)
		assert.True(t, s.AllTrueM32s(all.Mask()))
		assert.Equal(t, n32, bits.OnesCount64(all.Bits()))

		for _, r := range [][2]int{{3, 1}, {0, 0}, {n32, n32 + 4}, {-4, 0}} {
			empty := s.MaskBetweenM32s(r[0], r[1])
			assert.Falsef(t, s.AnyTrueM32s(empty.Mask()), "range %v", r)
			assert.Zero(t, empty.Bits())
		}

		bytes := s.MaskBetweenM8s(2, n8)
		assert.Equal(t, n8-2, bits.OnesCount64(bytes.Bits()))
		assert.Equal(t, 2, s.FirstTrueM8s(bytes.Mask()))

		quads := s.MaskBetweenM64s(1, 2)
		assert.Equal(t, uint64(0b10), quads.Bits())
	}
}

func TestMaskedAccessLocality(t *testing.T) {
	tests := []struct {
		name string
		run  func(*testing.T)
	}{
		{"Reg128", testMaskedAccessLocality[Reg128](Scalar{})},
		{"Reg256", testMaskedAccessLocality[Reg256](Fallback[Reg256]{})},
		{"Reg512", testMaskedAccessLocality[Reg512](Fallback[Reg512]{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func testMaskedAccessLocality[R Register](s Simd[R]) func(*testing.T) {
	return func(t *testing.T) {
		n := Lanes[float32, R]()

		// The mask covers the last three elements of a buffer that is
		// shorter than one vector; lanes past the end must stay untouched.
		backing := make([]float32, n+4)
		for i := range backing {
			backing[i] = -1
		}
		buf := backing[:3:3]
		m := s.MaskBetweenM32s(0, len(buf))

		vals := make([]float32, n)
		for i := range vals {
			vals[i] = float32(i + 1)
		}
		s.MaskStorePtrF32s(m, &buf[0], F32sFromSlice[R](vals))
		assert.Equal(t, []float32{1, 2, 3}, buf)
		for i := 3; i < len(backing); i++ {
			require.Equalf(t, float32(-1), backing[i], "element %d written through a clear lane", i)
		}

		got := s.MaskLoadPtrF32s(m, &buf[0]).Slice()
		want := make([]float32, n)
		copy(want, []float32{1, 2, 3})
		assert.Equal(t, want, got)
	}
}

func TestMaskedStoreLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		run  func(*testing.T)
	}{
		{"Reg128", testMaskedStoreLoadRoundTrip[Reg128](Scalar{})},
		{"Reg512", testMaskedStoreLoadRoundTrip[Reg512](Fallback[Reg512]{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

func testMaskedStoreLoadRoundTrip[R Register](s Simd[R]) func(*testing.T) {
	return func(t *testing.T) {
		n := Lanes[uint16, R]()
		for start := 0; start <= n; start++ {
			for end := start; end <= n; end++ {
				m := s.MaskBetweenM16s(start, end)
				buf := make([]uint16, n)
				v := s.AddU16s(U16s[R]{laneIndex[uint16, R]()}, s.SplatU16s(500))
				s.MaskStorePtrU16s(m, &buf[0], v)

				got := s.MaskLoadPtrU16s(m, &buf[0]).Slice()
				for i := range n {
					if i >= start && i < end {
						require.Equal(t, uint16(500+i), got[i])
						require.Equal(t, uint16(500+i), buf[i])
					} else {
						require.Zero(t, got[i])
						require.Zero(t, buf[i])
					}
				}
			}
		}
	}
}

func TestMaskedAccessAllTypes(t *testing.T) {
	s := Fallback[Reg256]{}

	i8 := []int8{-1, -2, -3, -4}
	m8 := s.MaskBetweenM8s(1, 2)
	assert.Equal(t, int8(-2), s.MaskLoadPtrI8s(m8, &i8[0]).Slice()[1])
	assert.Zero(t, s.MaskLoadPtrI8s(m8, &i8[0]).Slice()[0])

	u64 := []uint64{7, 8}
	m64 := s.MaskBetweenM64s(0, 2)
	s.MaskStorePtrU64s(m64, &u64[0], s.SplatU64s(9))
	assert.Equal(t, []uint64{9, 9}, u64)

	c := []complex64{1 + 2i, 3 + 4i, 5 + 6i}
	mc := s.MaskBetweenM64s(0, 3)
	got := s.MaskLoadPtrC32s(mc, &c[0]).Slice()
	assert.Equal(t, []complex64{1 + 2i, 3 + 4i, 5 + 6i, 0}, got)

	f64 := []float64{0.5}
	s.MaskStorePtrF64s(s.MaskBetweenM64s(0, 1), &f64[0], s.SplatF64s(2.5))
	assert.Equal(t, []float64{2.5}, f64)
}

func TestNewMemMask(t *testing.T) {
	m := M32sFromBools[Reg128]([]bool{true, false, false, true})
	mm := NewMemMask(m)
	assert.Equal(t, uint64(0b1001), mm.Bits())
	assert.Equal(t, m, mm.Mask())
	assert.False(t, mm.UsesTrampoline())

	buf := []int32{1, 2, 3, 4}
	got := Scalar{}.MaskLoadPtrI32s(mm, &buf[0])
	assert.Equal(t, []int32{1, 0, 0, 4}, got.Slice())
}

func TestMemMaskBitsMatchMask(t *testing.T) {
	s := Fallback[Reg512]{}
	for start := -1; start <= 65; start += 3 {
		for end := start; end <= 66; end += 5 {
			m8 := s.MaskBetweenM8s(start, end)
			m16 := s.MaskBetweenM16s(start, end)
			m32 := s.MaskBetweenM32s(start, end)
			m64 := s.MaskBetweenM64s(start, end)
			require.Equal(t, m8.Mask().Bits(), m8.Bits())
			require.Equal(t, m16.Mask().Bits(), m16.Bits())
			require.Equal(t, m32.Mask().Bits(), m32.Bits())
			require.Equal(t, m64.Mask().Bits(), m64.Bits())

			// Masks built outside a native backend always go lane by lane.
			require.False(t, m8.UsesTrampoline())
			require.False(t, m32.UsesTrampoline())
			require.False(t, NewMemMask(m64.Mask()).UsesTrampoline())
		}
	}
}

func TestMaskedAccessComplex128(t *testing.T) {
	s := Fallback[Reg512]{}
	backing := []complex128{1 + 2i, 3 + 4i, 5 + 6i, 99}
	buf := backing[:3:3]

	// Mask lanes are float64 halves: elements [0, 3) are halves [0, 6).
	m := s.MaskBetweenM64s(0, 2*len(buf))
	got := s.MaskLoadPtrC64s(m, &buf[0]).Slice()
	assert.Equal(t, []complex128{1 + 2i, 3 + 4i, 5 + 6i, 0}, got)

	s.MaskStorePtrC64s(s.MaskBetweenM64s(2, 6), &buf[0], s.SplatC64s(7-7i))
	assert.Equal(t, []complex128{1 + 2i, 7 - 7i, 7 - 7i, 99}, backing)

	// Only the real half of element 0.
	re := s.MaskLoadPtrC64s(s.MaskBetweenM64s(0, 1), &buf[0]).Slice()
	assert.Equal(t, complex(1, 0), re[0])
}
