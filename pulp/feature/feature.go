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

// Package feature is the catalog of hardware capabilities pulp knows about
// and the process-wide cache of which of them the running CPU provides.
//
// Detection runs lazily on the first query and is cached for the lifetime of
// the process:
//
//	if feature.Has(feature.AVX2) && feature.Has(feature.FMA) {
//	    // safe to run AVX2+FMA code
//	}
package feature

import "strings"

// Feature identifies one named hardware capability. The numeric value is a
// stable bit index into a Bitmap.
type Feature uint8

// x86 features.
const (
	SSE Feature = iota
	SSE2
	SSE3
	SSSE3
	SSE41
	SSE42
	POPCNT
	AVX
	AVX2
	FMA
	F16C
	BMI1
	BMI2
	LZCNT
	MOVBE
	AVX512F
	AVX512BW
	AVX512CD
	AVX512DQ
	AVX512VL
	AVX512IFMA
	AVX512VBMI
	AVX512VNNI
	AVX512BF16
	AVX512FP16
)

// ARM features. They start at a fixed offset so that new x86 entries never
// shift their indices.
const (
	FP Feature = 64 + iota
	NEON
	FP16
	DotProd
	FCMA
	I8MM
	SVE
	SVE2
)

// WebAssembly features.
const (
	SIMD128 Feature = 96 + iota
	RelaxedSIMD
)

// numFeatures bounds every valid index; it must not exceed the Bitmap width.
const numFeatures = 128

var names = map[Feature]string{
	SSE:         "sse",
	SSE2:        "sse2",
	SSE3:        "sse3",
	SSSE3:       "ssse3",
	SSE41:       "sse4.1",
	SSE42:       "sse4.2",
	POPCNT:      "popcnt",
	AVX:         "avx",
	AVX2:        "avx2",
	FMA:         "fma",
	F16C:        "f16c",
	BMI1:        "bmi1",
	BMI2:        "bmi2",
	LZCNT:       "lzcnt",
	MOVBE:       "movbe",
	AVX512F:     "avx512f",
	AVX512BW:    "avx512bw",
	AVX512CD:    "avx512cd",
	AVX512DQ:    "avx512dq",
	AVX512VL:    "avx512vl",
	AVX512IFMA:  "avx512ifma",
	AVX512VBMI:  "avx512vbmi",
	AVX512VNNI:  "avx512vnni",
	AVX512BF16:  "avx512bf16",
	AVX512FP16:  "avx512fp16",
	FP:          "fp",
	NEON:        "neon",
	FP16:        "fp16",
	DotProd:     "dotprod",
	FCMA:        "fcma",
	I8MM:        "i8mm",
	SVE:         "sve",
	SVE2:        "sve2",
	SIMD128:     "simd128",
	RelaxedSIMD: "relaxed-simd",
}

var byName = func() map[string]Feature {
	m := make(map[string]Feature, len(names))
	for f, n := range names {
		m[n] = f
	}
	return m
}()

// String returns the canonical lower-case name of the feature, for example
// "avx2" or "relaxed-simd".
func (f Feature) String() string {
	if n, ok := names[f]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether f is an entry of the catalog.
func (f Feature) Valid() bool {
	_, ok := names[f]
	return ok
}

// Parse looks a feature up by name. Matching ignores case and surrounding
// whitespace.
func Parse(name string) (Feature, bool) {
	f, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// All returns every catalog entry in index order.
func All() []Feature {
	out := make([]Feature, 0, len(names))
	for i := 0; i < numFeatures; i++ {
		if f := Feature(i); f.Valid() {
			out = append(out, f)
		}
	}
	return out
}
