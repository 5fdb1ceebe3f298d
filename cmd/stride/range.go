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
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/runner"
)

// rangeFlags holds the options shared by list, sum and describe.
type rangeFlags struct {
	kind  string
	limit uint64
	sep   string
}

// newRangeFlagSet returns a flag set with the shared range options bound
// to f. Commands add their own flags before parsing.
func newRangeFlagSet(name, summary string, a *app, f *rangeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&f.kind, "kind", "k", a.cfg.Kind, "Element kind: int or float")
	fs.Uint64Var(&f.limit, "limit", a.cfg.Limit, "Stop with an error after this many values")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: stride %s [options] START STOP [STEP]

%s

STOP is inclusive. STEP defaults to %s and must be positive.
Put -- before the bounds if a flag follows a negative number.

Options:
%s`, name, summary, a.cfg.Step, fs.FlagUsages())
	}
	return fs
}

// rangeValueFlags lists flags that consume the following argument.
var rangeValueFlags = map[string]bool{
	"--kind": true, "-k": true,
	"--limit": true,
	"--sep":   true,
}

// hoistFlags moves flags ahead of positional arguments and inserts "--"
// between them, so that negative bounds such as -5 are never mistaken for
// shorthand flags.
func hoistFlags(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNumber(a):
			positional = append(positional, a)
		case strings.HasPrefix(a, "-"):
			flags = append(flags, a)
			if rangeValueFlags[a] && i+1 < len(args) {
				flags = append(flags, args[i+1])
				i++
			}
		default:
			positional = append(positional, a)
		}
	}
	return append(append(flags, "--"), positional...)
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseRange parses args with fs and builds the runner plan from the
// positional START STOP [STEP].
func parseRange(fs *flag.FlagSet, a *app, f *rangeFlags, args []string) (*runner.Plan, error) {
	if err := fs.Parse(hoistFlags(args)); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, errors.NewInputError("Invalid option", err.Error(), fmt.Sprintf("Run 'stride %s --help'", fs.Name()))
	}

	pos := fs.Args()
	if len(pos) < 2 || len(pos) > 3 {
		return nil, errors.NewInputError(
			"Invalid arguments",
			fmt.Sprintf("Expected START STOP [STEP], got %d argument(s)", len(pos)),
			fmt.Sprintf("Example: stride %s 0 10 2", fs.Name()),
		)
	}

	kind, err := runner.ParseKind(f.kind)
	if err != nil {
		return nil, errors.NewInputError("Invalid kind", err.Error(), "Use --kind int or --kind float")
	}

	step := a.cfg.Step
	if len(pos) == 3 {
		step = pos[2]
	}

	plan, err := runner.Parse(runner.Request{
		Kind:  kind,
		Start: pos[0],
		Stop:  pos[1],
		Step:  step,
		Limit: f.limit,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("cli.range.parsed",
		"command", fs.Name(),
		"kind", plan.Kind,
		"start", plan.Start.String(),
		"stop", plan.Stop.String(),
		"step", plan.Step.String(),
	)
	return plan, nil
}
