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
	"iter"

	"golang.org/x/exp/constraints"
)

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Sum drains seq and returns the total of its values.
func Sum[T Rangeable](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Count returns how many values an integer range over [start, stop] with the
// given step yields, without iterating it. ok is false when the range never
// terminates (step <= 0 with start <= stop) or the count does not fit in a
// uint64.
func Count[T constraints.Integer](start, stop, step T) (n uint64, ok bool) {
	if start > stop {
		return 0, true
	}
	if step <= 0 {
		return 0, false
	}
	// Work in uint64 so that spans like [MinInt64, MaxInt64] do not overflow.
	span := uint64(stop) - uint64(start)
	return span/uint64(step) + 1, span/uint64(step) < ^uint64(0)
}
