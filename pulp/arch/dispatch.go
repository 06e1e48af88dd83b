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

package arch

import (
	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/aarch64"
	"github.com/ajroetker/go-pulp/pulp/wasm"
	"github.com/ajroetker/go-pulp/pulp/x86"
)

// Op is an operation that can run on a backend of any register width.
type Op[T any] interface {
	With128(s pulp.Simd[pulp.Reg128]) T
	With256(s pulp.Simd[pulp.Reg256]) T
	With512(s pulp.Simd[pulp.Reg512]) T
}

// Funcs adapts three functions to [Op]. All three must be set.
type Funcs[T any] struct {
	F128 func(pulp.Simd[pulp.Reg128]) T
	F256 func(pulp.Simd[pulp.Reg256]) T
	F512 func(pulp.Simd[pulp.Reg512]) T
}

func (f Funcs[T]) With128(s pulp.Simd[pulp.Reg128]) T { return f.F128(s) }
func (f Funcs[T]) With256(s pulp.Simd[pulp.Reg256]) T { return f.F256(s) }
func (f Funcs[T]) With512(s pulp.Simd[pulp.Reg512]) T { return f.F512(s) }

// Dispatch runs op on the backend selected by a, inside that token's
// Vectorize.
func Dispatch[T any](a Arch, op Op[T]) T {
	// An Arch only holds kinds that were available when it was built.
	switch a.kind {
	case KindV3:
		return vectorize(x86.NewV3Unchecked(), op.With256)
	case KindV4:
		return vectorize(x86.NewV4Unchecked(), op.With512)
	case KindNeon:
		return vectorize(aarch64.NewNeonUnchecked(), op.With128)
	case KindNeonFcma:
		return vectorize(aarch64.NewNeonFcmaUnchecked(), op.With128)
	case KindSimd128:
		return vectorize(wasm.NewSimd128Unchecked(), op.With128)
	case KindRelaxedSimd:
		return vectorize(wasm.NewRelaxedSimdUnchecked(), op.With128)
	default:
		return vectorize(pulp.NewScalarUnchecked(), op.With128)
	}
}

// Run dispatches op on the backend returned by [New].
func Run[T any](op Op[T]) T {
	return Dispatch(New(), op)
}

type simdToken[R pulp.Register] interface {
	pulp.Token
	pulp.Simd[R]
}

func vectorize[T any, R pulp.Register, S simdToken[R]](s S, f func(pulp.Simd[R]) T) T {
	var out T
	s.Vectorize(func() { out = f(s) })
	return out
}
