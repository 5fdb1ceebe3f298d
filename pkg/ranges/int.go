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

import "iter"

// IntRange is the int-only form of Producer. It behaves exactly like
// Producer[int] and exists for callers that want a concrete type in
// signatures and struct fields.
type IntRange struct {
	current int
	stop    int
	step    int
	wrapped bool
}

// NewInt returns an int range positioned at start.
func NewInt(start, stop, step int) *IntRange {
	return &IntRange{current: start, stop: stop, step: step}
}

// Next returns the cursor value and advances it by step, or false once the
// cursor is past stop.
func (r *IntRange) Next() (int, bool) {
	if r.Exhausted() {
		return 0, false
	}
	v := r.current
	r.current += r.step
	if r.step > 0 && r.current < v {
		r.wrapped = true
	}
	return v, true
}

// Exhausted reports whether the range has no values left.
func (r *IntRange) Exhausted() bool {
	return r.wrapped || r.current > r.stop
}

// All returns a single-use sequence over the remaining values.
func (r *IntRange) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := r.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
