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

//go:build !amd64 || !goexperiment.simd

package x86

import "github.com/ajroetker/go-pulp/pulp"

// LessF32sBits compares the float32 lanes of a and b into a bit-mask.
func (v V4) LessF32sBits(a, b pulp.F32s[pulp.Reg512]) pulp.B16 {
	return pulp.B16FromM32s(v.Fallback.LessF32s(a, b))
}
