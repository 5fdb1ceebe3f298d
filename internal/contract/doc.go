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

// Package contract holds the limits and bound checks stride applies before
// it drives a range.
//
// pkg/ranges deliberately trusts its caller: a zero or negative step makes
// a producer run forever. The CLI accepts bounds from the command line, so
// it checks them here first:
//
//	res := contract.CheckBounds(start, stop, step)
//	if !res.OK {
//	    return errors.NewInputError("Invalid range", res.Message, "Use a positive step")
//	}
//
// # Value Limit
//
// Even a terminating range can be far larger than anyone wants printed.
// DefaultValueLimit caps how many values a single command emits; the cap
// can be raised with --limit or the STRIDE_LIMIT environment variable.
//
// # Constants
//
//   - DefaultValueLimit: values emitted before a command stops (1,000,000)
//   - FloatFormatPrecision: digits used when printing float values
package contract
