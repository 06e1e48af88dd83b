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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestComplexMul(t *testing.T) {
	tests := []struct {
		name string
		run  func(*testing.T)
	}{
		{"Reg128", testComplexMul[Reg128](Scalar{})},
		{"Reg256", testComplexMul[Reg256](Fallback[Reg256]{})},
		{"Reg512", testComplexMul[Reg512](Fallback[Reg512]{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}

// complexParts flattens complex lanes into (re, im) pairs so that go-cmp
// can compare them with a float tolerance.
func complexParts[T complex64 | complex128](zs []T) []float64 {
	out := make([]float64, 0, 2*len(zs))
	for _, z := range zs {
		c := complex128(z)
		out = append(out, real(c), imag(c))
	}
	return out
}

func testComplexMul[R Register](s Simd[R]) func(*testing.T) {
	return func(t *testing.T) {
		rng := rand.New(rand.NewPCG(11, uint64(Width[R]())))
		approx := cmpopts.EquateApprox(1e-5, 1e-5)

		n32 := Lanes[complex64, R]()
		a, b, c := make([]complex64, n32), make([]complex64, n32), make([]complex64, n32)
		for i := range n32 {
			a[i] = complex(rng.Float32()*4-2, rng.Float32()*4-2)
			b[i] = complex(rng.Float32()*4-2, rng.Float32()*4-2)
			c[i] = complex(rng.Float32()*4-2, rng.Float32()*4-2)
		}
		va, vb, vc := C32sFromSlice[R](a), C32sFromSlice[R](b), C32sFromSlice[R](c)

		want := make([]complex64, n32)
		wantConj := make([]complex64, n32)
		for i := range n32 {
			ar, ai := real(a[i]), imag(a[i])
			br, bi := real(b[i]), imag(b[i])
			want[i] = complex(ar*br-ai*bi, ar*bi+ai*br)
			wantConj[i] = complex(ar*br+ai*bi, ar*bi-ai*br)
		}

		mul := s.MulC32s(va, vb)
		if diff := cmp.Diff(complexParts(want), complexParts(mul.Slice()), approx); diff != "" {
			t.Errorf("MulC32s (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(complexParts(wantConj), complexParts(s.ConjMulC32s(va, vb).Slice()), approx); diff != "" {
			t.Errorf("ConjMulC32s (-want +got):\n%s", diff)
		}
		sum := s.AddC32s(mul, vc).Slice()
		if diff := cmp.Diff(complexParts(sum), complexParts(s.MulAddC32s(va, vb, vc).Slice()), approx); diff != "" {
			t.Errorf("MulAddC32s != MulC32s + c (-want +got):\n%s", diff)
		}
		conjSum := s.AddC32s(s.ConjMulC32s(va, vb), vc).Slice()
		if diff := cmp.Diff(complexParts(conjSum), complexParts(s.ConjMulAddC32s(va, vb, vc).Slice()), approx); diff != "" {
			t.Errorf("ConjMulAddC32s != ConjMulC32s + c (-want +got):\n%s", diff)
		}

		n64 := Lanes[complex128, R]()
		x, y, z := make([]complex128, n64), make([]complex128, n64), make([]complex128, n64)
		for i := range n64 {
			x[i] = complex(rng.Float64()*4-2, rng.Float64()*4-2)
			y[i] = complex(rng.Float64()*4-2, rng.Float64()*4-2)
			z[i] = complex(rng.Float64()*4-2, rng.Float64()*4-2)
		}
		vx, vy, vz := C64sFromSlice[R](x), C64sFromSlice[R](y), C64sFromSlice[R](z)
		want64 := make([]complex128, n64)
		for i := range n64 {
			want64[i] = x[i]*y[i] + z[i]
		}
		tight := cmpopts.EquateApprox(1e-12, 1e-12)
		if diff := cmp.Diff(complexParts(want64), complexParts(s.MulAddC64s(vx, vy, vz).Slice()), tight); diff != "" {
			t.Errorf("MulAddC64s (-want +got):\n%s", diff)
		}
		for i := range n64 {
			want64[i] = complex(real(x[i]), -imag(x[i])) * y[i]
		}
		if diff := cmp.Diff(complexParts(want64), complexParts(s.ConjMulC64s(vx, vy).Slice()), tight); diff != "" {
			t.Errorf("ConjMulC64s (-want +got):\n%s", diff)
		}
	}
}

func TestComplexHelpers(t *testing.T) {
	s := Fallback[Reg256]{}
	v := C32sFromSlice[Reg256]([]complex64{3 + 4i, -1 + 2i, 0, 5i})

	assert.Equal(t, []complex64{3 - 4i, -1 - 2i, 0, -5i}, s.ConjC32s(v).Slice())
	assert.Equal(t, []complex64{4 + 3i, 2 - 1i, 0, 5}, s.SwapReImC32s(v).Slice())
	assert.Equal(t, []complex64{25, 5, 0, 25}, s.Abs2C32s(v).Slice())
	assert.Equal(t, complex64(2+11i), s.ReduceSumC32s(v))
	assert.Equal(t, s.SubC32s(s.SplatC32s(0), v).Slice(), s.NegC32s(v).Slice())

	w := C64sFromSlice[Reg256]([]complex128{1 + 1i, 2 - 3i})
	assert.Equal(t, []complex128{1 - 1i, 2 + 3i}, s.ConjC64s(w).Slice())
	assert.Equal(t, complex128(3-2i), s.ReduceSumC64s(w))
	assert.Equal(t, []complex128{2, 13}, s.Abs2C64s(w).Slice())
	assert.Equal(t, []complex128{1 + 1i, -3 + 2i}, s.SwapReImC64s(w).Slice())
}
