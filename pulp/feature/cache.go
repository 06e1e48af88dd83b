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

package feature

import "sync/atomic"

// The cache is written by the first detection and read by every query after
// it. Several goroutines may detect concurrently before detected is
// published; they all compute the same bitmap from the same hardware, so the
// duplicate stores are harmless. Bits are never cleared.
var (
	cache    [bitmapWords]atomic.Uint64
	detected atomic.Bool
)

// Has reports whether the running CPU provides f. The first call in the
// process performs the hardware query.
func Has(f Feature) bool {
	if int(f) >= numFeatures {
		return false
	}
	if detected.Load() {
		return cache[f/64].Load()&(1<<(f%64)) != 0
	}
	return detect().Has(f)
}

// HasAll reports whether the running CPU provides every feature in fs.
func HasAll(fs ...Feature) bool {
	for _, f := range fs {
		if !Has(f) {
			return false
		}
	}
	return true
}

// Detected returns the full set of features of the running CPU.
func Detected() Bitmap {
	if !detected.Load() {
		return detect()
	}
	var b Bitmap
	for i := range b {
		b[i] = cache[i].Load()
	}
	return b
}

// IsDetected reports whether the hardware query has completed.
func IsDetected() bool {
	return detected.Load()
}

// detect queries the hardware and publishes the result. Bitmap words are
// stored before the flag so a reader that observes detected sees them.
func detect() Bitmap {
	b := Static()
	if q, ok := query(); ok {
		b = b.Union(q)
	}
	for i := range b {
		cache[i].Store(b[i])
	}
	detected.Store(true)
	return b
}
