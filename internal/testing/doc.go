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

// Package testing provides shared test helpers for stride packages.
//
// Import it under an alias to avoid clashing with the standard library:
//
//	import stridetest "github.com/kraklabs/stride/internal/testing"
//
//	func TestMyRange(t *testing.T) {
//	    got := stridetest.Drain(t, ranges.New(0, 10, 2), 100)
//	    stridetest.RequireSteps(t, got, 2)
//	}
//
// The package deliberately does not import pkg/ranges, so the ranges
// package's own tests can use it.
package testing
