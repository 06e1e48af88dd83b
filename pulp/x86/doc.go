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

// Package x86 provides the capability tokens for amd64 processors.
//
// [V3] certifies the x86-64-v3 level (AVX2, FMA, BMI2 and friends) and
// operates on 256-bit registers. [V4] adds the AVX-512 foundation and
// operates on 512-bit registers with one-bit-per-lane masks; its masked loads
// and stores run the native instructions through trampolines.
//
// The tokens compile on every GOARCH so that dispatch code does not need
// build tags, but they are only available on amd64.
package x86
