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

package ranges_test

import (
	"fmt"

	"github.com/kraklabs/stride/pkg/ranges"
)

func ExampleNew() {
	p := ranges.New(0.0, 1.0, 0.25)
	for {
		v, ok := p.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 0
	// 0.25
	// 0.5
	// 0.75
	// 1
}

func ExampleIntRange_All() {
	for v := range ranges.NewInt(1, 9, 2).All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 1 3 5 7 9
}

func ExampleSum() {
	fmt.Println(ranges.Sum(ranges.New(0, 10, 1).All()))
	// Output: 55
}
