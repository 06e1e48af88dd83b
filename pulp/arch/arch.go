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

// Package arch selects the best backend for the running CPU and dispatches
// operations to it.
//
// The selection is made once per process, on the first call to [New], and
// cached. Operations are values implementing [Op]; since Go methods cannot be
// generic, an Op supplies one method per register width:
//
//	func sum[R pulp.Register](s pulp.Simd[R], xs []float32) float32 { ... }
//
//	total := arch.Run(arch.Funcs[float32]{
//	    F128: func(s pulp.Simd[pulp.Reg128]) float32 { return sum(s, xs) },
//	    F256: func(s pulp.Simd[pulp.Reg256]) float32 { return sum(s, xs) },
//	    F512: func(s pulp.Simd[pulp.Reg512]) float32 { return sum(s, xs) },
//	})
package arch

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/aarch64"
	"github.com/ajroetker/go-pulp/pulp/feature"
	"github.com/ajroetker/go-pulp/pulp/wasm"
	"github.com/ajroetker/go-pulp/pulp/x86"
)

// Kind identifies a backend.
type Kind uint8

const (
	KindScalar Kind = iota
	KindV3
	KindV4
	KindNeon
	KindNeonFcma
	KindSimd128
	KindRelaxedSimd
)

// String returns the backend's token name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindV3:
		return "v3"
	case KindV4:
		return "v4"
	case KindNeon:
		return "neon"
	case KindNeonFcma:
		return "neon-fcma"
	case KindSimd128:
		return "simd128"
	case KindRelaxedSimd:
		return "relaxed-simd"
	default:
		return "unknown"
	}
}

// Width returns the register width of the backend in bytes.
func (k Kind) Width() int {
	switch k {
	case KindV3:
		return pulp.Width[pulp.Reg256]()
	case KindV4:
		return pulp.Width[pulp.Reg512]()
	default:
		return pulp.Width[pulp.Reg128]()
	}
}

// Available reports whether the backend can run on this CPU.
func (k Kind) Available() bool {
	switch k {
	case KindScalar:
		return true
	case KindV3:
		return x86.IsAvailableV3()
	case KindV4:
		return x86.IsAvailableV4()
	case KindNeon:
		return aarch64.IsAvailableNeon()
	case KindNeonFcma:
		return aarch64.IsAvailableNeonFcma()
	case KindSimd128:
		return wasm.IsAvailableSimd128()
	case KindRelaxedSimd:
		return wasm.IsAvailableRelaxedSimd()
	default:
		return false
	}
}

// Kinds returns every backend kind.
func Kinds() []Kind {
	return []Kind{KindScalar, KindV3, KindV4, KindNeon, KindNeonFcma, KindSimd128, KindRelaxedSimd}
}

// Preference returns the backends tried by [New] on goarch, most capable
// first. The scalar backend is implied last.
func Preference(goarch string) []Kind {
	switch goarch {
	case "amd64":
		return []Kind{KindV4, KindV3}
	case "arm64":
		return []Kind{KindNeonFcma, KindNeon}
	case "wasm":
		return []Kind{KindRelaxedSimd, KindSimd128}
	default:
		return nil
	}
}

// Arch is a selected backend. The zero value selects the scalar backend.
type Arch struct {
	kind Kind
}

// selected caches the result of the first selection as kind+1; zero means
// not yet computed. It plays the role of a single atomic byte: sync/atomic
// has no 8-bit type, and only the low byte is ever nonzero. Concurrent first
// calls may all detect, but they compute the same kind and only the first
// store wins.
var selected atomic.Uint32

// New returns the most capable backend available on the running CPU.
func New() Arch {
	if k := selected.Load(); k != 0 {
		return Arch{kind: Kind(k - 1)}
	}
	k := detect()
	if selected.CompareAndSwap(0, uint32(k)+1) {
		logSelection(slog.Default(), k)
	}
	return Arch{kind: Kind(selected.Load() - 1)}
}

func detect() Kind {
	for _, k := range Preference(runtime.GOARCH) {
		if k.Available() {
			return k
		}
	}
	return KindScalar
}

func logSelection(l *slog.Logger, k Kind) {
	l.Debug("pulp: selected backend", "arch", k.String(), "width", k.Width())
}

// Force returns an Arch for kind if that backend is available. It does not
// change the selection made by New.
func Force(kind Kind) (Arch, bool) {
	if !kind.Available() {
		return Arch{}, false
	}
	return Arch{kind: kind}, true
}

// Kind returns the selected backend.
func (a Arch) Kind() Kind { return a.kind }

// Width returns the register width of the selected backend in bytes.
func (a Arch) Width() int { return a.kind.Width() }

func (a Arch) String() string { return a.kind.String() }

// Token returns the capability token of the selected backend.
func (a Arch) Token() pulp.Token {
	switch a.kind {
	case KindV3:
		return x86.NewV3Unchecked()
	case KindV4:
		return x86.NewV4Unchecked()
	case KindNeon:
		return aarch64.NewNeonUnchecked()
	case KindNeonFcma:
		return aarch64.NewNeonFcmaUnchecked()
	case KindSimd128:
		return wasm.NewSimd128Unchecked()
	case KindRelaxedSimd:
		return wasm.NewRelaxedSimdUnchecked()
	default:
		return pulp.NewScalarUnchecked()
	}
}

// Features lists the features certified by the selected backend.
func (a Arch) Features() []feature.Feature { return a.Token().Features() }
