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

// Package runner drives a range from command-line text to values.
//
// It parses user input into a Plan, picks the producer for the plan's kind
// (ranges.IntRange for int, ranges.Producer[float64] for float) and pulls
// values one at a time, handing each to a visit callback. Along the way it
// enforces the value limit, honours context cancellation and records
// metrics.
package runner

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/metrics"
	"github.com/kraklabs/stride/pkg/ranges"
)

// cancelCheckInterval is how many values are produced between context checks.
const cancelCheckInterval = 1024

// Summary describes a completed run.
type Summary struct {
	Kind      Kind          `json:"kind" yaml:"kind"`
	Start     Value         `json:"start" yaml:"start"`
	Stop      Value         `json:"stop" yaml:"stop"`
	Step      Value         `json:"step" yaml:"step"`
	Count     uint64        `json:"count" yaml:"count"`
	Sum       Value         `json:"sum" yaml:"sum"`
	First     *Value        `json:"first,omitempty" yaml:"first,omitempty"`
	Last      *Value        `json:"last,omitempty" yaml:"last,omitempty"`
	Exhausted bool          `json:"exhausted" yaml:"exhausted"`
	Duration  time.Duration `json:"-" yaml:"-"`

	// SumOverflow is set when the total left the range of Kind; Sum is
	// then zero.
	SumOverflow bool `json:"sum_overflow,omitempty" yaml:"sum_overflow,omitempty"`
}

// Runner executes plans.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New returns a Runner. A nil logger uses slog.Default(); nil metrics
// records nothing.
func New(logger *slog.Logger, m *metrics.Metrics) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger, metrics: m}
}

// Run produces every value of plan, calling visit for each in order.
// visit may be nil when only the summary is wanted.
//
// Run stops early with a limit error when the range still has values after
// plan.Limit of them, with ctx.Err() when ctx is cancelled, or with the
// error returned by visit. The summary is returned in every case and
// reflects the values produced so far.
func (r *Runner) Run(ctx context.Context, plan *Plan, visit func(Value) error) (*Summary, error) {
	if visit == nil {
		visit = func(Value) error { return nil }
	}

	sum := &Summary{
		Kind:  plan.Kind,
		Start: plan.Start,
		Stop:  plan.Stop,
		Step:  plan.Step,
	}

	r.logger.Info("runner.run.start",
		"kind", plan.Kind,
		"start", plan.Start.String(),
		"stop", plan.Stop.String(),
		"step", plan.Step.String(),
		"limit", plan.Limit,
	)

	began := time.Now()
	var err error
	if plan.Kind == KindFloat {
		p := ranges.New(plan.Start.Float(), plan.Stop.Float(), plan.Step.Float())
		err = drive(ctx, p.All(), plan.Limit, FloatValue, addFloat, visit, sum)
		sum.Exhausted = err == nil && p.Exhausted()
		if sum.Count == 0 || sum.SumOverflow {
			sum.Sum = FloatValue(0)
		}
	} else {
		p := ranges.NewInt(plan.Start.Int(), plan.Stop.Int(), plan.Step.Int())
		err = drive(ctx, p.All(), plan.Limit, IntValue, addInt, visit, sum)
		sum.Exhausted = err == nil && p.Exhausted()
		if sum.Count == 0 || sum.SumOverflow {
			sum.Sum = IntValue(0)
		}
	}
	sum.Duration = time.Since(began)

	r.metrics.RecordRange(string(plan.Kind), sum.Count, sum.Exhausted, sum.Duration)

	if err != nil {
		r.logger.Warn("runner.run.stopped",
			"kind", plan.Kind,
			"count", sum.Count,
			"err", err,
		)
		return sum, err
	}

	if sum.SumOverflow {
		r.logger.Warn("runner.run.sum_overflow", "kind", plan.Kind, "count", sum.Count)
	}

	r.logger.Info("runner.run.done",
		"kind", plan.Kind,
		"count", sum.Count,
		"sum", sum.Sum.String(),
		"elapsed", sum.Duration,
	)
	return sum, nil
}

// SumErr returns a limit error when the sum overflowed, so commands that
// print the total can refuse to print a wrapped one.
func (s *Summary) SumErr() error {
	if !s.SumOverflow {
		return nil
	}
	return errors.NewLimitError(
		fmt.Sprintf("Sum overflows %s", s.Kind),
		fmt.Sprintf("The total of %s..%s step %s does not fit in a 64-bit %s", s.Start, s.Stop, s.Step, s.Kind),
		"Use --kind float for an approximate sum, or narrow the range",
	)
}

// addInt adds b to a and reports false when the result wrapped.
func addInt(a, b int) (int, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

func addFloat(a, b float64) (float64, bool) {
	return a + b, true
}

// drive pulls values from seq into visit, keeping the running totals in
// sum. It returns a limit error if seq yields a value past limit. Once add
// reports an overflow, the total is dropped and sum.SumOverflow is set;
// values keep flowing to visit.
func drive[T ranges.Rangeable](
	ctx context.Context,
	seq iter.Seq[T],
	limit uint64,
	wrap func(T) Value,
	add func(T, T) (T, bool),
	visit func(Value) error,
	sum *Summary,
) error {
	var total T
	defer func() {
		if sum.Count > 0 && !sum.SumOverflow {
			sum.Sum = wrap(total)
		}
	}()

	for v := range seq {
		if sum.Count%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if sum.Count >= limit {
			return errors.NewLimitError(
				"Range exceeds the value limit",
				fmt.Sprintf("More than %s values would be produced", humanize.Comma(int64(min(limit, 1<<62)))),
				"Narrow the range or raise the limit with --limit",
			)
		}

		val := wrap(v)
		if err := visit(val); err != nil {
			return err
		}

		if sum.Count == 0 {
			first := val
			sum.First = &first
		}
		last := val
		sum.Last = &last
		if !sum.SumOverflow {
			var ok bool
			if total, ok = add(total, v); !ok {
				sum.SumOverflow = true
				var zero T
				total = zero
			}
		}
		sum.Count++
	}
	return nil
}
