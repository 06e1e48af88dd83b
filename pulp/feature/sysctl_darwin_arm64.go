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

//go:build darwin && arm64

package feature

import "golang.org/x/sys/unix"

// sysctlQuery reads the hw.optional.arm.FEAT_* keys Apple publishes for
// each architectural extension.
func sysctlQuery() (Bitmap, bool) {
	var s setter
	s.set(FP, true)
	s.set(NEON, true)
	s.set(FP16, hasSysctl("hw.optional.arm.FEAT_FP16"))
	s.set(DotProd, hasSysctl("hw.optional.arm.FEAT_DotProd"))
	s.set(FCMA, hasSysctl("hw.optional.arm.FEAT_FCMA"))
	s.set(I8MM, hasSysctl("hw.optional.arm.FEAT_I8MM"))
	return s.b, true
}

func hasSysctl(name string) bool {
	v, err := unix.SysctlUint32(name)
	return err == nil && v == 1
}
