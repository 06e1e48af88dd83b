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

// Package pulp is a runtime-dispatched vector abstraction. Arithmetic code is
// written once against the [Simd] interface and executed by whichever backend
// the running processor supports.
//
// A backend is selected through a capability token: a zero-size value whose
// existence certifies that a hardware feature set is present. Tokens are
// obtained with the TryNew functions of the backend packages (x86,
// aarch64, wasm) or through the dispatcher in package arch, which picks
// the most capable token once per process and falls back to [Scalar].
//
// Vector values are plain structs over a fixed-size register ([Reg128],
// [Reg256], [Reg512]). Vectors backed by the same register type have the same
// layout and may be reinterpreted with an ordinary conversion:
//
//	bits := pulp.U32s[R](f) // f is a pulp.F32s[R]
//
// Example kernel:
//
//	func sum[R pulp.Register](s pulp.Simd[R], xs []float32) float32 {
//	    n := pulp.Lanes[float32, R]()
//	    acc := s.SplatF32s(0)
//	    for len(xs) > 0 {
//	        acc = s.AddF32s(acc, s.PartialLoadF32s(xs))
//	        xs = xs[min(n, len(xs)):]
//	    }
//	    return s.ReduceSumF32s(acc)
//	}
package pulp
