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

import "unsafe"

// Reg128 is the storage of a 128-bit vector register.
type Reg128 [2]uint64

// Reg256 is the storage of a 256-bit vector register.
type Reg256 [4]uint64

// Reg512 is the storage of a 512-bit vector register.
type Reg512 [8]uint64

// Register is the set of register storage types. Every vector, mask and
// backend is parameterized by one of them, so that values built for one
// register width cannot be passed to a backend of another.
type Register interface {
	Reg128 | Reg256 | Reg512
}

// Unsigned is the set of unsigned lane types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of signed integer lane types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the set of integer lane types.
type Integer interface {
	Unsigned | Signed
}

// Float is the set of floating-point lane types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of real lane types.
type Number interface {
	Integer | Float
}

// Complex is the set of complex lane types.
type Complex interface {
	~complex64 | ~complex128
}

// Element is the set of every lane type.
type Element interface {
	Number | Complex
}

// Width returns the size in bytes of the register R.
func Width[R Register]() int {
	var r R
	return int(unsafe.Sizeof(r))
}

// Lanes returns the number of T lanes held by a register R.
func Lanes[T Element, R Register]() int {
	var (
		r R
		t T
	)
	return int(unsafe.Sizeof(r) / unsafe.Sizeof(t))
}

// lanes views the register r as a slice of T lanes. The register's uint64
// words keep every lane type naturally aligned.
func lanes[T any, R Register](r *R) []T {
	var t T
	return unsafe.Slice((*T)(unsafe.Pointer(r)), int(unsafe.Sizeof(*r)/unsafe.Sizeof(t)))
}

// words views the register r as its uint64 words.
func words[R Register](r *R) []uint64 {
	return lanes[uint64](r)
}

// fromLanes copies up to the register's lane count from xs into a new
// register; remaining lanes are zero.
func fromLanes[T any, R Register](xs []T) R {
	var r R
	copy(lanes[T](&r), xs)
	return r
}

// toLanes copies the lanes of r into a new slice.
func toLanes[T any, R Register](r R) []T {
	src := lanes[T](&r)
	out := make([]T, len(src))
	copy(out, src)
	return out
}
