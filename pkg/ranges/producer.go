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

// Rangeable is the set of element types a Producer can walk: ordered types
// that support in-place addition and are copied by value.
type Rangeable interface {
	constraints.Integer | constraints.Float
}

// Producer yields start, start+step, start+2*step, ... while the cursor is
// less than or equal to stop.
//
// The zero value is not useful; construct with New.
type Producer[T Rangeable] struct {
	current T
	stop    T
	step    T

	// wrapped is set when advancing the cursor overflowed the element type.
	wrapped bool
}

// New returns a producer positioned at start. No value is computed until
// Next or All is called.
func New[T Rangeable](start, stop, step T) *Producer[T] {
	return &Producer[T]{
		current: start,
		stop:    stop,
		step:    step,
	}
}

// Next returns the cursor value and advances the cursor by step.
// It returns false once the cursor has passed stop, and keeps returning
// false on every later call.
func (p *Producer[T]) Next() (T, bool) {
	if p.Exhausted() {
		var zero T
		return zero, false
	}
	v := p.current
	p.current += p.step
	if p.step > 0 && p.current < v {
		p.wrapped = true
	}
	return v, true
}

// Exhausted reports whether the producer has no values left.
func (p *Producer[T]) Exhausted() bool {
	// Negated <= so that a NaN bound or cursor reads as exhausted.
	return p.wrapped || !(p.current <= p.stop)
}

// All returns a single-use sequence over the values the producer has not
// yet yielded. Stopping the loop early leaves the cursor on the next
// unproduced value.
func (p *Producer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
