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

package arch

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-pulp/pulp"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

func TestNewIsDeterministic(t *testing.T) {
	first := New()
	assert.Equal(t, first, New())
	assert.Equal(t, detect(), first.Kind())
	assert.True(t, first.Kind().Available())

	var g errgroup.Group
	got := make([]Arch, 32)
	for i := range got {
		g.Go(func() error {
			got[i] = New()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, a := range got {
		assert.Equal(t, first, a)
	}
}

func TestPreferenceOrder(t *testing.T) {
	assert.Equal(t, []Kind{KindV4, KindV3}, Preference("amd64"))
	assert.Equal(t, []Kind{KindNeonFcma, KindNeon}, Preference("arm64"))
	assert.Equal(t, []Kind{KindRelaxedSimd, KindSimd128}, Preference("wasm"))
	assert.Empty(t, Preference("riscv64"))

	// The selection is the first available entry, or scalar.
	want := KindScalar
	for _, k := range Preference(runtime.GOARCH) {
		if k.Available() {
			want = k
			break
		}
	}
	assert.Equal(t, want, New().Kind())
}

func TestKinds(t *testing.T) {
	widths := map[Kind]int{
		KindScalar: 16, KindV3: 32, KindV4: 64, KindNeon: 16,
		KindNeonFcma: 16, KindSimd128: 16, KindRelaxedSimd: 16,
	}
	for _, k := range Kinds() {
		assert.Equal(t, widths[k], k.Width(), k.String())
		a := Arch{kind: k}
		assert.Equal(t, k.String(), a.Token().Name())
		assert.Equal(t, k.String(), a.String())
	}
	assert.Equal(t, "unknown", Kind(200).String())
	assert.False(t, Kind(200).Available())
}

func TestForce(t *testing.T) {
	a, ok := Force(KindScalar)
	require.True(t, ok)
	assert.Equal(t, KindScalar, a.Kind())
	assert.Empty(t, a.Features())

	for _, k := range Kinds() {
		a, ok := Force(k)
		assert.Equal(t, k.Available(), ok, k.String())
		if !ok {
			continue
		}
		// Token soundness through the dispatcher.
		for _, f := range a.Features() {
			assert.Truef(t, feature.Has(f), "%s forced without %s", k, f)
		}
	}
}

func TestZeroArchIsScalar(t *testing.T) {
	var a Arch
	assert.Equal(t, KindScalar, a.Kind())
	name := Dispatch(a, Funcs[string]{
		F128: func(pulp.Simd[pulp.Reg128]) string { return "128" },
		F256: func(pulp.Simd[pulp.Reg256]) string { return "256" },
		F512: func(pulp.Simd[pulp.Reg512]) string { return "512" },
	})
	assert.Equal(t, "128", name)
}

func dot[R pulp.Register](s pulp.Simd[R], a, b []float32) float32 {
	n := pulp.Lanes[float32, R]()
	acc := s.SplatF32s(0)
	for len(a) > 0 {
		acc = s.MulAddF32s(s.PartialLoadF32s(a), s.PartialLoadF32s(b), acc)
		k := min(n, len(a))
		a, b = a[k:], b[k:]
	}
	return s.ReduceSumF32s(acc)
}

func tailSum[R pulp.Register](s pulp.Simd[R], xs []uint32) uint32 {
	n := pulp.Lanes[uint32, R]()
	acc := s.SplatU32s(0)
	for len(xs) > 0 {
		k := min(n, len(xs))
		m := s.MaskBetweenM32s(0, k)
		acc = s.AddU32s(acc, s.MaskLoadPtrU32s(m, &xs[0]))
		xs = xs[k:]
	}
	return s.ReduceSumU32s(acc)
}

func TestScalarVectorEquivalence(t *testing.T) {
	a := make([]float32, 67)
	b := make([]float32, 67)
	xs := make([]uint32, 53)
	for i := range a {
		a[i] = float32(i%7) - 3
		b[i] = float32(i%5) * 0.5
	}
	for i := range xs {
		xs[i] = uint32(i * i)
	}

	dotOp := Funcs[float32]{
		F128: func(s pulp.Simd[pulp.Reg128]) float32 { return dot(s, a, b) },
		F256: func(s pulp.Simd[pulp.Reg256]) float32 { return dot(s, a, b) },
		F512: func(s pulp.Simd[pulp.Reg512]) float32 { return dot(s, a, b) },
	}
	sumOp := Funcs[uint32]{
		F128: func(s pulp.Simd[pulp.Reg128]) uint32 { return tailSum(s, xs) },
		F256: func(s pulp.Simd[pulp.Reg256]) uint32 { return tailSum(s, xs) },
		F512: func(s pulp.Simd[pulp.Reg512]) uint32 { return tailSum(s, xs) },
	}

	scalar, _ := Force(KindScalar)
	wantDot := Dispatch(scalar, dotOp)
	wantSum := Dispatch(scalar, sumOp)

	var ref uint32
	for _, x := range xs {
		ref += x
	}
	require.Equal(t, ref, wantSum)

	approx := cmpopts.EquateApprox(1e-5, 1e-4)
	for _, k := range Kinds() {
		forced, ok := Force(k)
		if !ok {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			if diff := cmp.Diff(wantDot, Dispatch(forced, dotOp), approx); diff != "" {
				t.Errorf("dot (-scalar +%s):\n%s", k, diff)
			}
			assert.Equal(t, wantSum, Dispatch(forced, sumOp))
		})
	}
	assert.Equal(t, wantSum, Run(sumOp))
}

func TestLogSelection(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logSelection(l, KindV3)
	assert.Contains(t, buf.String(), "arch=v3")
	assert.Contains(t, buf.String(), "width=32")
}
