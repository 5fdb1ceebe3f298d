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

package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samber/lo"
)

// ValueWriter streams values separated by sep. Output is buffered; call
// Flush when done.
type ValueWriter struct {
	w   *bufio.Writer
	sep string
	n   int
}

// NewValueWriter returns a ValueWriter on w. An empty sep means newline.
func NewValueWriter(w io.Writer, sep string) *ValueWriter {
	if sep == "" {
		sep = "\n"
	}
	return &ValueWriter{w: bufio.NewWriter(w), sep: sep}
}

// Write appends one value.
func (vw *ValueWriter) Write(v fmt.Stringer) error {
	if vw.n > 0 {
		if _, err := vw.w.WriteString(vw.sep); err != nil {
			return err
		}
	}
	vw.n++
	_, err := vw.w.WriteString(v.String())
	return err
}

// Flush terminates the output with a newline (unless nothing was written)
// and flushes the buffer.
func (vw *ValueWriter) Flush() error {
	if vw.n > 0 {
		if err := vw.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return vw.w.Flush()
}

// Count returns the number of values written.
func (vw *ValueWriter) Count() int {
	return vw.n
}

// Strings renders values with their String methods.
func Strings[T fmt.Stringer](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return v.String() })
}
