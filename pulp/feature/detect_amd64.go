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

//go:build amd64

package feature

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// query reads the processor identification registers. golang.org/x/sys/cpu
// covers most of the catalog and already accounts for OS support of the wide
// register state; cpuid fills in the bits it does not expose (F16C, LZCNT,
// MOVBE, AVX512-FP16).
func query() (Bitmap, bool) {
	if !cpu.Initialized {
		return Bitmap{}, false
	}
	var s setter
	x := cpu.X86

	s.set(SSE, x.HasSSE2)
	s.set(SSE2, x.HasSSE2)
	s.set(SSE3, x.HasSSE3)
	s.set(SSSE3, x.HasSSSE3)
	s.set(SSE41, x.HasSSE41)
	s.set(SSE42, x.HasSSE42)
	s.set(POPCNT, x.HasPOPCNT)
	s.set(AVX, x.HasAVX)
	s.set(AVX2, x.HasAVX2)
	s.set(FMA, x.HasFMA)
	s.set(BMI1, x.HasBMI1)
	s.set(BMI2, x.HasBMI2)

	// AVX-512 is only reported when the OS saves the opmask and upper ZMM state.
	if x.HasAVX512 {
		s.set(AVX512F, x.HasAVX512F)
		s.set(AVX512BW, x.HasAVX512BW)
		s.set(AVX512CD, x.HasAVX512CD)
		s.set(AVX512DQ, x.HasAVX512DQ)
		s.set(AVX512VL, x.HasAVX512VL)
		s.set(AVX512IFMA, x.HasAVX512IFMA)
		s.set(AVX512VBMI, x.HasAVX512VBMI)
		s.set(AVX512VNNI, x.HasAVX512VNNI)
		s.set(AVX512BF16, x.HasAVX512BF16)
		s.set(AVX512FP16, cpuid.CPU.Supports(cpuid.AVX512FP16))
	}

	// F16C needs the AVX register state as well.
	s.set(F16C, x.HasAVX && cpuid.CPU.Supports(cpuid.F16C))
	s.set(LZCNT, cpuid.CPU.Supports(cpuid.LZCNT))
	s.set(MOVBE, cpuid.CPU.Supports(cpuid.MOVBE))

	return s.b, true
}
