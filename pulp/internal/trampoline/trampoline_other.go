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

//go:build !amd64 || noasm

package trampoline

import "unsafe"

// Available reports whether trampolines are compiled into this binary.
const Available = false

func For8() Pair  { return Pair{} }
func For16() Pair { return Pair{} }
func For32() Pair { return Pair{} }
func For64() Pair { return Pair{} }

// Load is never reached on this platform: every Pair is invalid, so callers
// take their lane-by-lane path instead.
func (Pair) Load(ptr unsafe.Pointer, mask uint64, img unsafe.Pointer) {}

// Store is never reached on this platform.
func (Pair) Store(ptr unsafe.Pointer, mask uint64, img unsafe.Pointer) {}
