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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarToken(t *testing.T) {
	require.True(t, IsAvailableScalar())
	s, ok := TryNewScalar()
	require.True(t, ok)
	assert.Equal(t, "scalar", s.Name())
	assert.Empty(t, s.Features())
	assert.Equal(t, NewScalarUnchecked(), s)

	ran := false
	s.Vectorize(func() { ran = true })
	assert.True(t, ran)
}

func TestVectorizeWith(t *testing.T) {
	xs := []float32{1, 2, 3, 4, 5, 6, 7}
	got := VectorizeWith(Scalar{}, func(s Scalar) float32 {
		n := Lanes[float32, Reg128]()
		acc := s.SplatF32s(0)
		for len(xs) > 0 {
			acc = s.AddF32s(acc, s.PartialLoadF32s(xs))
			xs = xs[min(n, len(xs)):]
		}
		return s.ReduceSumF32s(acc)
	})
	assert.Equal(t, float32(28), got)
}
