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
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// ProgressConfig decides whether progress is drawn and where.
type ProgressConfig struct {
	// Enabled is false under --json, -q, or when stderr is not a TTY.
	Enabled bool

	// Writer receives the bar, normally os.Stderr.
	Writer io.Writer

	NoColor bool
}

// NewProgressConfig builds the progress configuration from the global
// flags and the terminal state of stderr.
func NewProgressConfig(globals GlobalFlags) ProgressConfig {
	return ProgressConfig{
		Enabled: !globals.Quiet && isatty.IsTerminal(os.Stderr.Fd()),
		Writer:  os.Stderr,
		NoColor: globals.NoColor,
	}
}

// NewProgressBar returns a bar for a walk of total values, or nil when
// progress is disabled.
func NewProgressBar(cfg ProgressConfig, total int64, description string) *progressbar.ProgressBar {
	if !cfg.Enabled {
		return nil
	}

	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(cfg.Writer),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("values"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionEnableColorCodes(!cfg.NoColor),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// NewSpinner returns a spinner for walks whose length is not known up
// front (float ranges), or nil when progress is disabled.
func NewSpinner(cfg ProgressConfig, description string) *progressbar.ProgressBar {
	if !cfg.Enabled {
		return nil
	}

	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(cfg.Writer),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(!cfg.NoColor),
	)
}

// batchedProgress forwards ticks to a bar every batch values, so the
// per-value cost stays a counter increment. A nil bar makes every method
// a no-op.
type batchedProgress struct {
	bar     *progressbar.ProgressBar
	batch   int
	pending int
}

func newBatchedProgress(bar *progressbar.ProgressBar, batch int) *batchedProgress {
	return &batchedProgress{bar: bar, batch: max(batch, 1)}
}

// Tick counts one value.
func (b *batchedProgress) Tick() {
	if b.bar == nil {
		return
	}
	b.pending++
	if b.pending >= b.batch {
		_ = b.bar.Add(b.pending)
		b.pending = 0
	}
}

// Done flushes pending ticks and clears the bar.
func (b *batchedProgress) Done() {
	if b.bar == nil {
		return
	}
	if b.pending > 0 {
		_ = b.bar.Add(b.pending)
		b.pending = 0
	}
	_ = b.bar.Finish()
}
