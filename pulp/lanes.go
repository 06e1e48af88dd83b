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
	"math"
	"math/bits"
	"unsafe"

	"github.com/chewxy/math32"
)

// This file holds the lane-at-a-time kernels behind [Fallback]. Each works
// on a register viewed as a slice of lanes and returns a new register; none
// allocate.

func unary[T any, R Register](a R, f func(T) T) R {
	x := lanes[T](&a)
	for i := range x {
		x[i] = f(x[i])
	}
	return a
}

func binary[T any, R Register](a, b R, f func(T, T) T) R {
	x, y := lanes[T](&a), lanes[T](&b)
	for i := range x {
		x[i] = f(x[i], y[i])
	}
	return a
}

func ternary[T any, R Register](a, b, c R, f func(T, T, T) T) R {
	x, y, z := lanes[T](&a), lanes[T](&b), lanes[T](&c)
	for i := range x {
		x[i] = f(x[i], y[i], z[i])
	}
	return a
}

func splat[T any, R Register](v T) R {
	var r R
	x := lanes[T](&r)
	for i := range x {
		x[i] = v
	}
	return r
}

// laneIndex returns the register whose lane i holds i.
func laneIndex[T Integer, R Register]() R {
	var r R
	x := lanes[T](&r)
	for i := range x {
		x[i] = T(i)
	}
	return r
}

func add[T Element](a, b T) T { return a + b }
func sub[T Element](a, b T) T { return a - b }
func mul[T Number](a, b T) T { return a * b }
func div[T Float](a, b T) T { return a / b }
func neg[T Signed | Float | Complex](a T) T { return -a }

func absInt[T Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// minLane and maxLane return b whenever the comparison is unordered, so a NaN
// in either operand yields b.
func minLane[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxLane[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func fma32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func fma64(a, b, c float64) float64 { return math.FMA(a, b, c) }

func abs32(a float32) float32 { return math32.Abs(a) }
func sqrt32(a float32) float32 { return math32.Sqrt(a) }
func floor32(a float32) float32 { return math32.Floor(a) }
func ceil32(a float32) float32 { return math32.Ceil(a) }

// round32 rounds half to even. Every float32 is exact in float64, so the
// result matches a native float32 rounding.
func round32(a float32) float32 {
	if math32.IsNaN(a) {
		return a
	}
	return float32(math.RoundToEven(float64(a)))
}

func and(a, b uint64) uint64 { return a & b }
func or(a, b uint64) uint64 { return a | b }
func xor(a, b uint64) uint64 { return a ^ b }
func andNot(a, b uint64) uint64 { return a &^ b }
func not(a uint64) uint64 { return ^a }

// selectBits picks the bits of a where m is set and of b elsewhere.
func selectBits[R Register](m, a, b R) R {
	x, y, z := words(&a), words(&b), words(&m)
	for i := range x {
		x[i] = x[i]&z[i] | y[i]&^z[i]
	}
	return a
}

func satAddUnsigned[T Unsigned](a, b T) T {
	if s := a + b; s >= a {
		return s
	}
	return ^T(0)
}

func satSubUnsigned[T Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

func satAddSigned[T Signed](a, b T) T { return clampSigned[T](int64(a) + int64(b)) }
func satSubSigned[T Signed](a, b T) T { return clampSigned[T](int64(a) - int64(b)) }

func clampSigned[T Signed](v int64) T {
	var t T
	hi := int64(1)<<(unsafe.Sizeof(t)*8-1) - 1
	lo := -hi - 1
	return T(max(lo, min(hi, v)))
}

// shiftLeft and shiftRight are total: amounts of at least the lane width
// shift every bit out. Right shifts of signed lanes fill with the sign.
func shiftLeft[T Integer](n uint) func(T) T {
	return func(a T) T { return a << n }
}

func shiftRight[T Integer](n uint) func(T) T {
	return func(a T) T { return a >> n }
}

type cmpOp uint8

const (
	cmpEq cmpOp = iota
	cmpLt
	cmpLe
	cmpGt
	cmpGe
)

func cmpLane[T Number](op cmpOp, a, b T) bool {
	switch op {
	case cmpEq:
		return a == b
	case cmpLt:
		return a < b
	case cmpLe:
		return a <= b
	case cmpGt:
		return a > b
	case cmpGe:
		return a >= b
	}
	return false
}

// compare evaluates op lane-wise on T lanes and writes all-ones M lanes where
// it holds. T and M have the same width.
func compare[T Number, M Unsigned, R Register](op cmpOp, a, b R) R {
	var out R
	x, y, m := lanes[T](&a), lanes[T](&b), lanes[M](&out)
	for i := range x {
		if cmpLane(op, x[i], y[i]) {
			m[i] = ^M(0)
		}
	}
	return out
}

// reduce folds the lanes of a with a fixed pairwise tree: while n > 1, lane i
// combines with lane i+n/2 for i < n/2. Lane counts are powers of two.
func reduce[T any, R Register](a R, f func(T, T) T) T {
	x := lanes[T](&a)
	for n := len(x); n > 1; n /= 2 {
		h := n / 2
		for i := range h {
			x[i] = f(x[i], x[i+h])
		}
	}
	return x[0]
}

// rotateRight moves lane i to lane (i+k) mod n. Negative k rotates left.
func rotateRight[T any, R Register](a R, k int) R {
	var out R
	x, y := lanes[T](&a), lanes[T](&out)
	n := len(x)
	k %= n
	if k < 0 {
		k += n
	}
	for i := range x {
		y[(i+k)%n] = x[i]
	}
	return out
}

// interleave turns len(in) vectors of fields (one record per lane) into the
// same records laid out contiguously across out.
func interleave[T any, R Register](in, out []R) {
	n := len(in)
	l := len(lanes[T](&in[0]))
	for i := range l {
		for k := range n {
			f := i*n + k
			lanes[T](&out[f/l])[f%l] = lanes[T](&in[k])[i]
		}
	}
}

// deinterleave is the inverse of interleave.
func deinterleave[T any, R Register](in, out []R) {
	n := len(in)
	l := len(lanes[T](&in[0]))
	for i := range l {
		for k := range n {
			f := i*n + k
			lanes[T](&out[k])[i] = lanes[T](&in[f/l])[f%l]
		}
	}
}

func wideningMulU16[R Register](a, b R) (lo, hi R) {
	x, y := lanes[uint16](&a), lanes[uint16](&b)
	l, h := lanes[uint16](&lo), lanes[uint16](&hi)
	for i := range x {
		p := uint32(x[i]) * uint32(y[i])
		l[i], h[i] = uint16(p), uint16(p>>16)
	}
	return lo, hi
}

func wideningMulU32[R Register](a, b R) (lo, hi R) {
	x, y := lanes[uint32](&a), lanes[uint32](&b)
	l, h := lanes[uint32](&lo), lanes[uint32](&hi)
	for i := range x {
		p := uint64(x[i]) * uint64(y[i])
		l[i], h[i] = uint32(p), uint32(p>>32)
	}
	return lo, hi
}

func wideningMulU64[R Register](a, b R) (lo, hi R) {
	x, y := lanes[uint64](&a), lanes[uint64](&b)
	l, h := lanes[uint64](&lo), lanes[uint64](&hi)
	for i := range x {
		h[i], l[i] = bits.Mul64(x[i], y[i])
	}
	return lo, hi
}

func wideningMulI32[R Register](a, b R) (lo, hi R) {
	x, y := lanes[int32](&a), lanes[int32](&b)
	l, h := lanes[int32](&lo), lanes[int32](&hi)
	for i := range x {
		p := int64(x[i]) * int64(y[i])
		l[i], h[i] = int32(p), int32(p>>32)
	}
	return lo, hi
}

// Mask reductions. Valid masks have all-zero or all-one lanes, so testing
// whole words is enough for any and all.

func firstTrue[M Unsigned, R Register](m R) int {
	b := maskBits[M](m)
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(b)
}

func anyTrue[R Register](m R) bool {
	for _, w := range words(&m) {
		if w != 0 {
			return true
		}
	}
	return false
}

func allTrue[R Register](m R) bool {
	for _, w := range words(&m) {
		if w != ^uint64(0) {
			return false
		}
	}
	return true
}
