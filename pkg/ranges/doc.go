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

// Package ranges provides lazy arithmetic ranges over integer and
// floating-point element types.
//
// A range is described by a start value, an inclusive stop bound and a
// step. Values are produced on demand: nothing is computed until the
// consumer asks for the next value.
//
// # Pull Style
//
// Producer exposes a Next method that returns the current value and then
// advances the cursor by step:
//
//	p := ranges.New(0.0, 1.0, 0.25)
//	for {
//	    v, ok := p.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v) // 0, 0.25, 0.5, 0.75, 1
//	}
//
// # Push Style
//
// All returns an iter.Seq over the values that have not been produced yet,
// so a producer can be used directly in a range loop:
//
//	for v := range ranges.NewInt(1, 9, 2).All() {
//	    fmt.Println(v) // 1, 3, 5, 7, 9
//	}
//
// Both styles share the same cursor. A producer is not restartable: once it
// reports exhaustion it never yields a value again.
//
// # Step Contract
//
// The producer does not validate step. A zero or negative step with
// start <= stop never reaches the stop bound and the sequence does not
// terminate. Callers that accept untrusted bounds should check them first
// (stride's CLI does this in internal/contract).
//
// # Element Types
//
// Any type satisfying Rangeable works: every integer and float kind,
// including defined types such as `type Celsius float64`. Floating-point
// accumulation error is inherited from the element type: a step of 0.1
// repeatedly added may land just above or below stop.
package ranges
