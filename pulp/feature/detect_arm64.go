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

//go:build arm64

package feature

import "golang.org/x/sys/cpu"

// query reads the HWCAP bits the OS exposes through golang.org/x/sys/cpu.
// On darwin those are minimal, so the sysctl results are merged in.
func query() (Bitmap, bool) {
	sb, sok := sysctlQuery()
	if !cpu.Initialized {
		return sb, sok
	}
	s := setter{b: sb}
	a := cpu.ARM64

	s.set(FP, a.HasFP)
	s.set(NEON, a.HasASIMD)
	s.set(FP16, a.HasFPHP && a.HasASIMDHP)
	s.set(DotProd, a.HasASIMDDP)
	s.set(FCMA, a.HasFCMA)
	s.set(I8MM, a.HasI8MM)
	s.set(SVE, a.HasSVE)
	s.set(SVE2, a.HasSVE2)

	return s.b, true
}
