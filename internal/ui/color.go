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

// Package ui provides terminal helpers for the stride CLI.
//
// Status lines (success, warnings, info) go to Output, which defaults to
// stderr so that values printed on stdout can be piped cleanly. Colors
// respect the --no-color flag and the NO_COLOR environment variable.
//
// Color usage guidelines:
//   - Red: Errors, failures
//   - Yellow: Warnings, truncated output
//   - Green: Success
//   - Cyan: Info, counts
//   - Bold: Headers, labels
//   - Dim: Less important details, paths
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Output receives status messages.
var Output io.Writer = color.Error

var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors configures global color output. Call it once after flags are
// parsed.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Successf prints a green message with a checkmark prefix.
//
// Example output: "✓ Wrote .stride.yaml"
func Successf(format string, args ...any) {
	_, _ = Green.Fprintf(Output, "✓ "+format+"\n", args...)
}

// Warningf prints a yellow message with a warning symbol prefix.
func Warningf(format string, args ...any) {
	_, _ = Yellow.Fprintf(Output, "⚠ "+format+"\n", args...)
}

// Infof prints a cyan message with an info symbol prefix.
func Infof(format string, args ...any) {
	_, _ = Cyan.Fprintf(Output, "ℹ "+format+"\n", args...)
}

// Header prints a bold header with an underline separator to w.
//
// Example output:
//
//	Range 0..10 step 1
//	==================
func Header(w io.Writer, text string) {
	_, _ = Bold.Fprintln(w, text)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(text))))
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for less important text.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a cyan, comma-grouped count such as "1,000,000".
func CountText(count uint64) string {
	return Cyan.Sprint(humanize.Comma(int64(min(count, 1<<63-1))))
}
