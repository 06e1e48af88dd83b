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


package memmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pulp/pulp/feature"
	"github.com/ajroetker/go-pulp/pulp/internal/trampoline"
)

// mask512 is a 512-bit mask with 32-bit lanes.
type mask512 [16]uint32

func (m mask512) Bits() uint64 {
	var b uint64
	for i, l := range m {
		if l != 0 {
			b |= 1 << i
		}
	}
	return b
}

// mask128 is a 128-bit mask with 32-bit lanes.
type mask128 [4]uint32

func (m mask128) Bits() uint64 {
	var b uint64
	for i, l := range m {
		if l != 0 {
			b |= 1 << i
		}
	}
	return b
}

func firstN512(n int) mask512 {
	var m mask512
	for i := range n {
		m[i] = ^uint32(0)
	}
	return m
}

func TestBitsFollowMask(t *testing.T) {
	tests := []struct {
		name string
		mm   MemMask[mask512]
	}{
		{"New", New(firstN512(3))},
		{"WithTrampoline", WithTrampoline[uint32](firstN512(3))},
		{"Empty", WithTrampoline[uint32](mask512{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mm.Mask().Bits(), tt.mm.Bits())
		})
	}
}

func TestTrampolineAttachment(t *testing.T) {
	assert.False(t, New(firstN512(16)).UsesTrampoline())
	assert.Equal(t, trampoline.Available, WithTrampoline[uint32](firstN512(16)).UsesTrampoline())

	// Only whole 512-bit registers get the native routines.
	assert.False(t, WithTrampoline[uint32](mask128{1, 1, 0, 0}).UsesTrampoline())

	// There are no routines for 16-byte lanes.
	assert.False(t, WithTrampoline[complex128](firstN512(16)).UsesTrampoline())
}

func TestLoadStoreLaneByLane(t *testing.T) {
	m := New(mask128{0, ^uint32(0), ^uint32(0), 0})
	backing := []uint32{1, 2, 3, 4, 5}
	buf := backing[:3:3]

	got := Load[uint32, [2]uint64](m, &buf[0])
	assert.Equal(t, []uint32{0, 2, 3, 0}, lanes[uint32](&got))

	var v [2]uint64
	copy(lanes[uint32](&v), []uint32{9, 9, 9, 9})
	Store(m, &buf[0], v)
	assert.Equal(t, []uint32{1, 9, 9, 4, 5}, backing)
}

func TestLaneWidthMismatchSkipsTrampoline(t *testing.T) {
	// A mask built for 32-bit lanes used on 64-bit lanes must not run the
	// 32-bit routine: that would move half-width lanes from the wrong offsets.
	m := WithTrampoline[uint32](firstN512(2))
	backing := []uint64{11, 22, 33}
	buf := backing[:2:2]

	got := Load[uint64, [8]uint64](m, &buf[0])
	assert.Equal(t, [8]uint64{11, 22}, got)

	Store(m, &buf[0], [8]uint64{7, 8, 9, 10})
	assert.Equal(t, []uint64{7, 8, 33}, backing)
}

func TestTrampolineMatchesLaneByLane(t *testing.T) {
	if !trampoline.Available || !feature.HasAll(feature.AVX512F, feature.AVX512BW) {
		t.Skip("AVX-512 trampolines not available")
	}
	src := make([]uint32, 16)
	for i := range src {
		src[i] = uint32(100 + i)
	}
	for n := 0; n <= 16; n++ {
		native := WithTrampoline[uint32](firstN512(n))
		require.True(t, native.UsesTrampoline())
		plain := New(firstN512(n))
		buf := src[:n:n]
		var ptr *uint32
		if n > 0 {
			ptr = &buf[0]
		} else {
			ptr = &src[0]
		}
		require.Equalf(t, Load[uint32, [8]uint64](plain, ptr), Load[uint32, [8]uint64](native, ptr), "n=%d", n)
	}
}
