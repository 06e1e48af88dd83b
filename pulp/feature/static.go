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
package feature

// Static returns the features the binary was compiled to require. Those are
// guaranteed present whenever the program runs at all, so they are always
// part of the detected set, and they are the whole answer on platforms
// without a runtime query.
func Static() Bitmap {
	var s setter
	if goamd64 >= 1 {
		s.set(SSE, true)
		s.set(SSE2, true)
	}
	if goamd64 >= 2 {
		s.set(SSE3, true)
		s.set(SSSE3, true)
		s.set(SSE41, true)
		s.set(SSE42, true)
		s.set(POPCNT, true)
	}
	if goamd64 >= 3 {
		s.set(AVX, true)
		s.set(AVX2, true)
		s.set(FMA, true)
		s.set(F16C, true)
		s.set(BMI1, true)
		s.set(BMI2, true)
		s.set(LZCNT, true)
		s.set(MOVBE, true)
	}
	if goamd64 >= 4 {
		s.set(AVX512F, true)
		s.set(AVX512BW, true)
		s.set(AVX512CD, true)
		s.set(AVX512DQ, true)
		s.set(AVX512VL, true)
	}
	if isARM64 {
		// ARMv8-A mandates FP and Advanced SIMD.
		s.set(FP, true)
		s.set(NEON, true)
	}
	if isWasm {
		s.set(SIMD128, wasmSIMD128)
		s.set(RelaxedSIMD, wasmSIMD128 && wasmRelaxedSIMD)
	}
	return s.b
}
