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

// Complex lanes are stored as interleaved (re, im) float pairs, so a C32s[R]
// has the layout of an F32s[R] with twice the lanes. Multiplication uses the
// real operations only. For a = x+iy and b = u+iv:
//
//	aa = (x, x)   bb = (y, y)   yx = (v, u)
//	a*b = aa*b + (bb^sign)*yx = (xu - yv, xv + yu)
//
// where sign flips the real lane of each pair. Conjugating a instead flips
// the imaginary lane. The accumulate forms fold c into the second product.

// dupRe copies the real part of each pair into both halves.
func dupRe[T Float, R Register](a R) R {
	x := lanes[T](&a)
	for i := 0; i < len(x); i += 2 {
		x[i+1] = x[i]
	}
	return a
}

// dupIm copies the imaginary part of each pair into both halves.
func dupIm[T Float, R Register](a R) R {
	x := lanes[T](&a)
	for i := 0; i < len(x); i += 2 {
		x[i] = x[i+1]
	}
	return a
}

func swapPairs[T Float, R Register](a R) R {
	x := lanes[T](&a)
	for i := 0; i < len(x); i += 2 {
		x[i], x[i+1] = x[i+1], x[i]
	}
	return a
}

// signMask returns a register with only the sign bit set in the real lanes
// (odd == false) or the imaginary lanes (odd == true). U is the unsigned type
// of the float's width.
func signMask[U Unsigned, R Register](odd bool) R {
	var r R
	x := lanes[U](&r)
	sign := ^(^U(0) >> 1)
	start := 0
	if odd {
		start = 1
	}
	for i := start; i < len(x); i += 2 {
		x[i] = sign
	}
	return r
}

// The sign masks are computed once per register type.
type complexSigns[R Register] struct {
	re32, im32, re64, im64 R
}

func signsOf[R Register]() complexSigns[R] {
	return complexSigns[R]{
		re32: signMask[uint32, R](false),
		im32: signMask[uint32, R](true),
		re64: signMask[uint64, R](false),
		im64: signMask[uint64, R](true),
	}
}

var (
	signs128 = signsOf[Reg128]()
	signs256 = signsOf[Reg256]()
	signs512 = signsOf[Reg512]()
)

func signs[R Register]() *complexSigns[R] {
	var r R
	switch any(r).(type) {
	case Reg128:
		return any(&signs128).(*complexSigns[R])
	case Reg256:
		return any(&signs256).(*complexSigns[R])
	default:
		return any(&signs512).(*complexSigns[R])
	}
}

// cmul32 computes aa*b + (bb^sign)*yx + c on float32 pairs.
func cmul32[R Register](a, b, c, sign R) R {
	aa := dupRe[float32](a)
	bb := binary[uint64](dupIm[float32](a), sign, xor)
	yx := swapPairs[float32](b)
	return ternary[float32](aa, b, ternary[float32](bb, yx, c, fma32), fma32)
}

func cmul64[R Register](a, b, c, sign R) R {
	aa := dupRe[float64](a)
	bb := binary[uint64](dupIm[float64](a), sign, xor)
	yx := swapPairs[float64](b)
	return ternary[float64](aa, b, ternary[float64](bb, yx, c, fma64), fma64)
}

func (Fallback[R]) MulC32s(a, b C32s[R]) C32s[R] {
	var zero R
	return C32s[R]{cmul32(a.Reg, b.Reg, zero, signs[R]().re32)}
}

func (Fallback[R]) ConjMulC32s(a, b C32s[R]) C32s[R] {
	var zero R
	return C32s[R]{cmul32(a.Reg, b.Reg, zero, signs[R]().im32)}
}

func (Fallback[R]) MulAddC32s(a, b, c C32s[R]) C32s[R] {
	return C32s[R]{cmul32(a.Reg, b.Reg, c.Reg, signs[R]().re32)}
}

func (Fallback[R]) ConjMulAddC32s(a, b, c C32s[R]) C32s[R] {
	return C32s[R]{cmul32(a.Reg, b.Reg, c.Reg, signs[R]().im32)}
}

func (Fallback[R]) MulC64s(a, b C64s[R]) C64s[R] {
	var zero R
	return C64s[R]{cmul64(a.Reg, b.Reg, zero, signs[R]().re64)}
}

func (Fallback[R]) ConjMulC64s(a, b C64s[R]) C64s[R] {
	var zero R
	return C64s[R]{cmul64(a.Reg, b.Reg, zero, signs[R]().im64)}
}

func (Fallback[R]) MulAddC64s(a, b, c C64s[R]) C64s[R] {
	return C64s[R]{cmul64(a.Reg, b.Reg, c.Reg, signs[R]().re64)}
}

func (Fallback[R]) ConjMulAddC64s(a, b, c C64s[R]) C64s[R] {
	return C64s[R]{cmul64(a.Reg, b.Reg, c.Reg, signs[R]().im64)}
}

func (Fallback[R]) NegC32s(a C32s[R]) C32s[R] {
	return C32s[R]{unary[complex64](a.Reg, neg[complex64])}
}

func (Fallback[R]) NegC64s(a C64s[R]) C64s[R] {
	return C64s[R]{unary[complex128](a.Reg, neg[complex128])}
}

// Conj flips the sign bit of every imaginary part.
func (Fallback[R]) ConjC32s(a C32s[R]) C32s[R] {
	return C32s[R]{binary[uint64](a.Reg, signs[R]().im32, xor)}
}

func (Fallback[R]) ConjC64s(a C64s[R]) C64s[R] {
	return C64s[R]{binary[uint64](a.Reg, signs[R]().im64, xor)}
}

func (Fallback[R]) SwapReImC32s(a C32s[R]) C32s[R] {
	return C32s[R]{swapPairs[float32](a.Reg)}
}

func (Fallback[R]) SwapReImC64s(a C64s[R]) C64s[R] {
	return C64s[R]{swapPairs[float64](a.Reg)}
}

func (Fallback[R]) Abs2C32s(a C32s[R]) C32s[R] {
	return C32s[R]{unary[complex64](a.Reg, func(z complex64) complex64 {
		re, im := real(z), imag(z)
		return complex(fma32(re, re, im*im), 0)
	})}
}

func (Fallback[R]) Abs2C64s(a C64s[R]) C64s[R] {
	return C64s[R]{unary[complex128](a.Reg, func(z complex128) complex128 {
		re, im := real(z), imag(z)
		return complex(fma64(re, re, im*im), 0)
	})}
}

func (Fallback[R]) ReduceSumC32s(a C32s[R]) complex64 {
	return reduce[complex64](a.Reg, add[complex64])
}

func (Fallback[R]) ReduceSumC64s(a C64s[R]) complex128 {
	return reduce[complex128](a.Reg, add[complex128])
}
