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
	"fmt"
	"math"

	"github.com/kraklabs/stride/pkg/ranges"
)

const (
	// DefaultValueLimit is the number of values a command emits before it
	// gives up on a range.
	DefaultValueLimit uint64 = 1_000_000

	// FloatFormatPrecision is the precision passed to strconv.FormatFloat
	// when rendering float values: the shortest representation that reads
	// back to the same float.
	FloatFormatPrecision = -1
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// CheckBounds reports whether a range over [start, stop] with step
// terminates. An empty range (start > stop) is valid.
//
// A float step smaller than half the spacing of floats at start or stop is
// rejected: adding it leaves the cursor where it is, so the range would
// never pass stop.
func CheckBounds[T ranges.Rangeable](start, stop, step T) *ValidationResult {
	for _, b := range []struct {
		name string
		v    T
	}{{"start", start}, {"stop", stop}, {"step", step}} {
		f := float64(b.v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationResult{
				OK:      false,
				Message: fmt.Sprintf("%s must be a finite number", b.name),
			}
		}
	}

	if start > stop {
		return &ValidationResult{OK: true}
	}
	if step <= 0 {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("step %v never reaches stop %v from start %v", step, stop, start),
		}
	}
	for _, b := range []T{start, stop} {
		if b+step == b {
			return &ValidationResult{
				OK:      false,
				Message: fmt.Sprintf("step %v is too small to change %v at this precision", step, b),
			}
		}
	}
	return &ValidationResult{OK: true}
}
