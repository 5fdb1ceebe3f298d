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
	"strconv"

	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/output"
	"github.com/kraklabs/stride/internal/runner"
	"github.com/kraklabs/stride/internal/ui"
)

// runList executes the 'list' command, printing every value of a range.
//
// Text output is streamed as values are produced, separated by --sep.
// JSON and YAML output a single array; table output numbers each row.
//
// Examples:
//
//	stride list 0 10
//	stride list --sep ", " 1 9 2
//	stride --json list --kind float 0 1 0.25
func runList(ctx context.Context, a *app, args []string) error {
	var f rangeFlags
	fs := newRangeFlagSet("list", "Print every value of the range.", a, &f)
	fs.StringVar(&f.sep, "sep", a.cfg.Separator, "Separator between values in text output")

	plan, err := parseRange(fs, a, &f, args)
	if err != nil {
		return err
	}

	format, err := a.format()
	if err != nil {
		return errors.NewInputError("Invalid output format", err.Error(), "Use --format text, json, yaml or table")
	}

	if format == output.FormatText {
		vw := output.NewValueWriter(a.stdout, f.sep)
		_, runErr := a.runner.Run(ctx, plan, func(v runner.Value) error {
			return vw.Write(v)
		})
		if err := vw.Flush(); err != nil {
			return writeError(err)
		}
		if runErr != nil {
			if !a.quiet(format) {
				ui.Warningf("output stopped after %s values", ui.CountText(uint64(vw.Count())))
			}
			return runErr
		}
		return nil
	}

	var values []runner.Value
	if _, err := a.runner.Run(ctx, plan, func(v runner.Value) error {
		values = append(values, v)
		return nil
	}); err != nil {
		return err
	}
	if values == nil {
		values = []runner.Value{}
	}

	if format == output.FormatTable {
		rows := make([][]string, len(values))
		for i, v := range output.Strings(values) {
			rows[i] = []string{strconv.Itoa(i), v}
		}
		if err := output.TableTo(a.stdout, []string{"#", "Value"}, rows); err != nil {
			return writeError(err)
		}
		return nil
	}

	if err := output.Write(a.stdout, format, values); err != nil {
		return writeError(err)
	}
	return nil
}

// writeError wraps a failure to write results.
func writeError(err error) error {
	return errors.NewOutputError(
		"Cannot write output",
		err.Error(),
		"Check that the output pipe or file is still open",
		err,
	)
}
