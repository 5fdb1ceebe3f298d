// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stridetest "github.com/kraklabs/stride/internal/testing"
)

func TestProducer_SumInt(t *testing.T) {
	m := 0
	for v := range New(0, 10, 1).All() {
		m += v
	}
	assert.Equal(t, 55, m)
}

func TestProducer_SumFloat(t *testing.T) {
	m := 0.0
	for v := range New(0.0, 10.0, 1.0).All() {
		m += v
	}
	assert.Equal(t, 55.0, m)
}

func TestIntRange_Sum(t *testing.T) {
	assert.Equal(t, 55, Sum(NewInt(0, 10, 1).All()))
}

func TestProducer_Boundaries(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{name: "start equals stop", start: 7, stop: 7, step: 3, want: []int{7}},
		{name: "start after stop", start: 8, stop: 7, step: 1, want: nil},
		{name: "step overshoots stop", start: 0, stop: 10, step: 4, want: []int{0, 4, 8}},
		{name: "step lands on stop", start: 0, stop: 9, step: 3, want: []int{0, 3, 6, 9}},
		{name: "negative bounds", start: -3, stop: -1, step: 1, want: []int{-3, -2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(New(tt.start, tt.stop, tt.step).All())
			assert.Equal(t, tt.want, got)

			gotInt := Collect(NewInt(tt.start, tt.stop, tt.step).All())
			assert.Equal(t, tt.want, gotInt, "IntRange and Producer[int] must agree")
		})
	}
}

func TestProducer_ExhaustionIsTerminal(t *testing.T) {
	p := New(1, 2, 1)

	v, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = p.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	for i := 0; i < 5; i++ {
		v, ok = p.Next()
		assert.False(t, ok, "call %d after exhaustion", i)
		assert.Zero(t, v)
		assert.True(t, p.Exhausted())
	}
	assert.Empty(t, Collect(p.All()))
}

func TestIntRange_ExhaustionIsTerminal(t *testing.T) {
	r := NewInt(5, 5, 1)
	assert.False(t, r.Exhausted())

	v, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	for i := 0; i < 3; i++ {
		_, ok = r.Next()
		assert.False(t, ok)
	}
	assert.True(t, r.Exhausted())
}

func TestProducer_StrictlyIncreasingByStep(t *testing.T) {
	const step = 7
	got := Collect(New[int64](-50, 300, step).All())
	require.NotEmpty(t, got)
	assert.Equal(t, int64(-50), got[0])
	for i := 1; i < len(got); i++ {
		assert.Equal(t, int64(step), got[i]-got[i-1], "gap at index %d", i)
	}
	assert.LessOrEqual(t, got[len(got)-1], int64(300))
	assert.Greater(t, got[len(got)-1]+step, int64(300))
}

func TestProducer_PullMatchesPush(t *testing.T) {
	pulled := stridetest.Drain[float64](t, New(-2.0, 2.0, 0.5), 100)
	pushed := Collect(New(-2.0, 2.0, 0.5).All())
	assert.Equal(t, pushed, pulled)
	assert.Len(t, pulled, 9)
	stridetest.RequireSteps(t, pulled, 0.5)

	ints := stridetest.Drain[int](t, NewInt(3, 30, 9), 100)
	assert.Equal(t, []int{3, 12, 21, 30}, ints)
	stridetest.RequireSteps(t, ints, 9)
}

func TestProducer_Lazy(t *testing.T) {
	// A range that would not fit in memory if it were materialised up front.
	p := New[uint64](0, math.MaxUint64-1, 1)
	for i := uint64(0); i < 3; i++ {
		v, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.False(t, p.Exhausted())
}

func TestProducer_BreakLeavesCursor(t *testing.T) {
	p := New(0, 10, 2)
	for v := range p.All() {
		if v == 4 {
			break
		}
	}
	v, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestProducer_DefinedTypes(t *testing.T) {
	type celsius float64
	got := Collect(New[celsius](-1.5, 1.5, 1.5).All())
	assert.Equal(t, []celsius{-1.5, 0, 1.5}, got)
}

func TestProducer_FloatAccumulation(t *testing.T) {
	// 0.1 is not exact in binary; ten additions land just below 1.0.
	// The producer does not correct for this.
	got := Collect(New(0.0, 1.0, 0.1).All())
	require.Len(t, got, 11)
	last := got[len(got)-1]
	assert.NotEqual(t, 1.0, last)
	assert.InDelta(t, 1.0, last, 1e-9)
}

func TestProducer_NaNBound(t *testing.T) {
	p := New(0.0, math.NaN(), 1.0)
	assert.True(t, p.Exhausted())
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestProducer_OverflowStops(t *testing.T) {
	got := Collect(New[int8](120, math.MaxInt8, 5).All())
	assert.Equal(t, []int8{120, 125}, got)

	gotInt := Collect(NewInt(math.MaxInt-1, math.MaxInt, 1).All())
	assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, gotInt)
}

func TestProducer_NonAdvancingStep(t *testing.T) {
	// A zero step never passes stop; the caller decides when to quit.
	p := New(3, 5, 0)
	for i := 0; i < 100; i++ {
		v, ok := p.Next()
		require.True(t, ok)
		require.Equal(t, 3, v)
	}
	assert.False(t, p.Exhausted())
}

func TestCount(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int64
		wantN             uint64
		wantOK            bool
	}{
		{"zero to ten", 0, 10, 1, 11, true},
		{"single value", 4, 4, 9, 1, true},
		{"empty", 5, 4, 1, 0, true},
		{"uneven step", 0, 10, 4, 3, true},
		{"zero step", 0, 10, 0, 0, false},
		{"negative step", 0, 10, -1, 0, false},
		{"empty with zero step", 5, 4, 0, 0, true},
		{"full int64 span", math.MinInt64, math.MaxInt64, 2, 1 << 63, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Count(tt.start, tt.stop, tt.step)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestCount_MatchesProducer(t *testing.T) {
	for start := -5; start <= 5; start++ {
		for step := 1; step <= 4; step++ {
			n, ok := Count(start, 7, step)
			require.True(t, ok)
			assert.Equal(t, int(n), len(Collect(NewInt(start, 7, step).All())),
				"start=%d step=%d", start, step)
		}
	}
}
