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

package x86

import (
	"slices"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

// V3 is the token for x86-64-v3 processors (Haswell and later).
//
// The zero value is equivalent to NewV3Unchecked.
type V3 struct {
	pulp.Fallback[pulp.Reg256]
}

var _ pulp.Simd[pulp.Reg256] = V3{}

var v3Features = []feature.Feature{
	feature.SSE, feature.SSE2, feature.SSE3, feature.SSSE3, feature.SSE41, feature.SSE42,
	feature.POPCNT, feature.AVX, feature.AVX2, feature.FMA, feature.F16C,
	feature.BMI1, feature.BMI2, feature.LZCNT, feature.MOVBE,
}

// IsAvailableV3 reports whether the running CPU supports every V3 feature.
func IsAvailableV3() bool { return feature.HasAll(v3Features...) }

// TryNewV3 returns a V3 token if the CPU supports it.
func TryNewV3() (V3, bool) {
	if !IsAvailableV3() {
		return V3{}, false
	}
	return V3{}, true
}

// NewV3Unchecked returns a V3 token without checking the CPU. Running V3
// operations on a CPU without the V3 features is undefined behavior.
func NewV3Unchecked() V3 { return V3{} }

func (V3) Name() string { return "v3" }
func (V3) Features() []feature.Feature { return slices.Clone(v3Features) }
func (V3) Vectorize(op func()) { op() }
