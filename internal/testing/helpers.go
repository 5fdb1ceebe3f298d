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

package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// Number mirrors the element constraint of pkg/ranges.
type Number interface {
	constraints.Integer | constraints.Float
}

// Puller is anything with a range producer's Next method.
type Puller[T any] interface {
	Next() (T, bool)
}

// Drain pulls values from p until it reports exhaustion. The test fails if
// more than max values are produced, so a non-terminating producer cannot
// hang the test.
func Drain[T any](t testing.TB, p Puller[T], max int) []T {
	t.Helper()

	var out []T
	for {
		v, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, v)
		if len(out) > max {
			t.Fatalf("producer yielded more than %d values; step never reaches stop?", max)
		}
	}
}

// RequireSteps asserts that consecutive values differ by exactly step.
func RequireSteps[T Number](t testing.TB, values []T, step T) {
	t.Helper()

	for i := 1; i < len(values); i++ {
		require.Equalf(t, step, values[i]-values[i-1],
			"values[%d]=%v, values[%d]=%v", i-1, values[i-1], i, values[i])
	}
}

// WriteConfig writes content as .stride.yaml in a fresh temporary
// directory and returns the file path.
func WriteConfig(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".stride.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
