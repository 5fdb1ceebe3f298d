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

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/output"
	"github.com/kraklabs/stride/internal/runner"
	"github.com/kraklabs/stride/internal/ui"
)

// runDescribe executes the 'describe' command: it walks the range once
// and prints its summary.
func runDescribe(ctx context.Context, a *app, args []string) error {
	var f rangeFlags
	fs := newRangeFlagSet("describe", "Summarise the range: count, sum, first and last value.", a, &f)

	plan, err := parseRange(fs, a, &f, args)
	if err != nil {
		return err
	}

	format, err := a.format()
	if err != nil {
		return errors.NewInputError("Invalid output format", err.Error(), "Use --format text, json, yaml or table")
	}

	summary, err := a.runner.Run(ctx, plan, nil)
	if err != nil {
		return err
	}
	if err := summary.SumErr(); err != nil {
		return err
	}

	switch format {
	case output.FormatText:
		err = describeText(a.stdout, summary)
	case output.FormatTable:
		err = output.TableTo(a.stdout, []string{"Field", "Value"}, summaryRows(summary))
	default:
		err = output.Write(a.stdout, format, summary)
	}
	if err != nil {
		return writeError(err)
	}

	if !a.quiet(format) {
		ui.Infof("walked %s values in %s", ui.CountText(summary.Count), summary.Duration.Round(time.Microsecond))
	}
	return nil
}

func summaryRows(s *runner.Summary) [][]string {
	rows := [][]string{
		{"kind", string(s.Kind)},
		{"start", s.Start.String()},
		{"stop", s.Stop.String()},
		{"step", s.Step.String()},
		{"count", strconv.FormatUint(s.Count, 10)},
		{"sum", s.Sum.String()},
	}
	if s.First != nil {
		rows = append(rows, []string{"first", s.First.String()}, []string{"last", s.Last.String()})
	}
	return append(rows, []string{"exhausted", strconv.FormatBool(s.Exhausted)})
}

// describeText lays the summary out in a buffer and writes it in one call.
func describeText(w io.Writer, s *runner.Summary) error {
	var b strings.Builder
	ui.Header(&b, fmt.Sprintf("Range %s..%s step %s (%s)", s.Start, s.Stop, s.Step, s.Kind))
	fmt.Fprintf(&b, "%s %s\n", ui.Label("Values:"), ui.CountText(s.Count))
	fmt.Fprintf(&b, "%s    %s\n", ui.Label("Sum:"), s.Sum)
	if s.First != nil {
		fmt.Fprintf(&b, "%s  %s\n", ui.Label("First:"), s.First)
		fmt.Fprintf(&b, "%s   %s\n", ui.Label("Last:"), s.Last)
	} else {
		fmt.Fprintf(&b, "%s\n", ui.DimText("(empty range)"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
