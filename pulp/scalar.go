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

package pulp

import "github.com/ajroetker/go-pulp/pulp/feature"

// Scalar is the portable backend. It processes 128-bit registers one lane at
// a time and is available on every CPU.
type Scalar struct {
	Fallback[Reg128]
}

var _ Simd[Reg128] = Scalar{}

// IsAvailableScalar always reports true.
func IsAvailableScalar() bool { return true }

// TryNewScalar returns a Scalar token. It never fails.
func TryNewScalar() (Scalar, bool) { return Scalar{}, true }

// NewScalarUnchecked returns a Scalar token.
func NewScalarUnchecked() Scalar { return Scalar{} }

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// Features returns nil: the scalar backend needs no hardware feature.
func (Scalar) Features() []feature.Feature { return nil }

// Vectorize runs op.
func (Scalar) Vectorize(op func()) { op() }
