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

// Package aarch64 provides the capability tokens for 64-bit ARM processors.
//
// [Neon] certifies Advanced SIMD, which every ARMv8-A core has. [NeonFcma]
// adds the complex-number extension (FCMLA), and computes complex products
// with the instruction's rotate-and-accumulate steps instead of the generic
// shuffle-and-sign-mask sequence.
package aarch64

import (
	"slices"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

// Neon is the token for Advanced SIMD on 128-bit registers.
//
// The zero value is equivalent to NewNeonUnchecked.
type Neon struct {
	pulp.Fallback[pulp.Reg128]
}

var _ pulp.Simd[pulp.Reg128] = Neon{}

var neonFeatures = []feature.Feature{feature.FP, feature.NEON}

// IsAvailableNeon reports whether the running CPU supports Advanced SIMD.
func IsAvailableNeon() bool { return feature.HasAll(neonFeatures...) }

// TryNewNeon returns a Neon token if the CPU supports it.
func TryNewNeon() (Neon, bool) {
	if !IsAvailableNeon() {
		return Neon{}, false
	}
	return Neon{}, true
}

// NewNeonUnchecked returns a Neon token without checking the CPU.
func NewNeonUnchecked() Neon { return Neon{} }

func (Neon) Name() string { return "neon" }
func (Neon) Features() []feature.Feature { return slices.Clone(neonFeatures) }
func (Neon) Vectorize(op func()) { op() }
