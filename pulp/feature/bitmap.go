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

import "strings"

// bitmapWords is the number of 64-bit words in a Bitmap.
const bitmapWords = numFeatures / 64

// Bitmap is a fixed-width set of features, one bit per catalog index.
type Bitmap [bitmapWords]uint64

// Has reports whether f is in the set.
func (b Bitmap) Has(f Feature) bool {
	if int(f) >= numFeatures {
		return false
	}
	return b[f/64]&(1<<(f%64)) != 0
}

// HasAll reports whether every feature in fs is in the set.
func (b Bitmap) HasAll(fs ...Feature) bool {
	for _, f := range fs {
		if !b.Has(f) {
			return false
		}
	}
	return true
}

// With returns a copy of b with f added.
func (b Bitmap) With(f Feature) Bitmap {
	if int(f) < numFeatures {
		b[f/64] |= 1 << (f % 64)
	}
	return b
}

// Union returns the features present in either set.
func (b Bitmap) Union(o Bitmap) Bitmap {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

// Features lists the members of the set in index order.
func (b Bitmap) Features() []Feature {
	var out []Feature
	for _, f := range All() {
		if b.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String returns the member names separated by commas.
func (b Bitmap) String() string {
	fs := b.Features()
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// setter accumulates detected features into a bitmap.
type setter struct{ b Bitmap }

func (s *setter) set(f Feature, present bool) {
	if present {
		s.b = s.b.With(f)
	}
}
