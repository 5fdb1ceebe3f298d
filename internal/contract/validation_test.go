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

package contract

import (
	"math"
	"testing"
)

func TestCheckBounds_Int(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		wantOK            bool
	}{
		{"ascending", 0, 10, 1, true},
		{"single value", 3, 3, 1, true},
		{"empty range", 4, 3, 1, true},
		{"empty range with zero step", 4, 3, 0, true},
		{"zero step", 0, 10, 0, false},
		{"negative step", 0, 10, -2, false},
		{"zero step single value", 3, 3, 0, false},
		{"stop at max int", math.MaxInt - 1, math.MaxInt, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckBounds(tt.start, tt.stop, tt.step)
			if got.OK != tt.wantOK {
				t.Errorf("CheckBounds(%d, %d, %d).OK = %v, want %v (%s)",
					tt.start, tt.stop, tt.step, got.OK, tt.wantOK, got.Message)
			}
			if !got.OK && got.Message == "" {
				t.Error("CheckBounds() should explain a rejection")
			}
		})
	}
}

func TestCheckBounds_Float(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step float64
		wantOK            bool
	}{
		{"ascending", 0, 1, 0.25, true},
		{"NaN stop", 0, math.NaN(), 1, false},
		{"NaN step", 0, 1, math.NaN(), false},
		{"infinite stop", 0, math.Inf(1), 1, false},
		{"negative infinite start", math.Inf(-1), 0, 1, false},
		{"tiny step", 0, 1, 1e-9, true},
		{"step lost at start", 1e16, 1e16, 1, false},
		{"step lost before stop", 0, 1e17, 1, false},
		{"step lost at negative start", -1e17, 0, 1, false},
		{"large bounds with large step", 1e16, 1e17, 1e15, true},
		{"empty range with lost step", 1e17, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckBounds(tt.start, tt.stop, tt.step)
			if got.OK != tt.wantOK {
				t.Errorf("CheckBounds(%v, %v, %v).OK = %v, want %v",
					tt.start, tt.stop, tt.step, got.OK, tt.wantOK)
			}
			if !got.OK && got.Message == "" {
				t.Error("CheckBounds() should explain a rejection")
			}
		})
	}
}

func TestDefaultValueLimit(t *testing.T) {
	if DefaultValueLimit == 0 {
		t.Fatal("DefaultValueLimit must be positive")
	}
}
