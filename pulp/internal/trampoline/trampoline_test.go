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


package trampoline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPairIsInvalid(t *testing.T) {
	var p Pair
	assert.False(t, p.Valid())
	assert.Zero(t, p.LaneSize())
}

func TestForLane(t *testing.T) {
	tests := []struct {
		name string
		size uintptr
		want Pair
	}{
		{"Lane8", 1, For8()},
		{"Lane16", 2, For16()},
		{"Lane32", 4, For32()},
		{"Lane64", 8, For64()},
		{"Lane128", 16, Pair{}},
		{"Lane24", 3, Pair{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ForLane(tt.size)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, Available && tt.want.Valid(), p.Valid())
			if p.Valid() {
				assert.Equal(t, tt.size, p.LaneSize())
			}
		})
	}
	for _, size := range []uintptr{1, 2, 4, 8} {
		assert.Equal(t, Available, ForLane(size).Valid())
	}
}
