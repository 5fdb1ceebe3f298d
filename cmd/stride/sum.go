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

	"github.com/schollz/progressbar/v3"

	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/output"
	"github.com/kraklabs/stride/internal/runner"
)

// progressBatch is how many values are produced between progress updates.
const progressBatch = 4096

// SumResult is the machine-readable output of 'sum'.
type SumResult struct {
	Kind  runner.Kind  `json:"kind" yaml:"kind"`
	Count uint64       `json:"count" yaml:"count"`
	Sum   runner.Value `json:"sum" yaml:"sum"`
}

// runSum executes the 'sum' command, printing the total of a range.
//
// On a terminal, long integer ranges show a progress bar (the count is
// known up front) and float ranges a spinner.
//
// Examples:
//
//	stride sum 0 10                  55
//	stride sum --kind float 0 10 1   55
func runSum(ctx context.Context, a *app, args []string) error {
	var f rangeFlags
	fs := newRangeFlagSet("sum", "Print the sum of the range.", a, &f)

	plan, err := parseRange(fs, a, &f, args)
	if err != nil {
		return err
	}

	format, err := a.format()
	if err != nil {
		return errors.NewInputError("Invalid output format", err.Error(), "Use --format text, json, yaml or table")
	}

	var bar *progressbar.ProgressBar
	switch total, known := plan.Count(); {
	case a.quiet(format):
	case known && total > progressBatch:
		bar = NewProgressBar(a.progress, int64(min(total, plan.Limit, 1<<62)), "Summing")
	case !known:
		bar = NewSpinner(a.progress, "Summing")
	}
	progress := newBatchedProgress(bar, progressBatch)

	summary, err := a.runner.Run(ctx, plan, func(runner.Value) error {
		progress.Tick()
		return nil
	})
	progress.Done()
	if err != nil {
		return err
	}
	if err := summary.SumErr(); err != nil {
		return err
	}

	result := SumResult{Kind: summary.Kind, Count: summary.Count, Sum: summary.Sum}
	switch format {
	case output.FormatText:
		_, err = fmt.Fprintln(a.stdout, summary.Sum.String())
	case output.FormatTable:
		err = output.TableTo(a.stdout, []string{"Kind", "Count", "Sum"}, [][]string{
			{string(result.Kind), fmt.Sprint(result.Count), result.Sum.String()},
		})
	default:
		err = output.Write(a.stdout, format, result)
	}
	if err != nil {
		return writeError(err)
	}
	return nil
}
