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

// Package main implements the stride CLI, which walks arithmetic ranges.
//
// Usage:
//
//	stride list START STOP [STEP]       Print every value of the range
//	stride sum START STOP [STEP]        Print the sum of the range
//	stride describe START STOP [STEP]   Summarise the range
//	stride init                         Create .stride.yaml
//	stride completion bash|zsh|fish     Generate shell completions
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/stride/internal/config"
	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/metrics"
	"github.com/kraklabs/stride/internal/output"
	"github.com/kraklabs/stride/internal/runner"
	"github.com/kraklabs/stride/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds the flags accepted before the command name.
type GlobalFlags struct {
	ShowVersion     bool
	ConfigPath      string
	JSON            bool
	Format          string
	Quiet           bool
	NoColor         bool
	Verbose         int
	MetricsTextfile string
}

// app is what every command runs against.
type app struct {
	globals  GlobalFlags
	cfg      *config.Config
	runner   *runner.Runner
	metrics  *metrics.Metrics
	progress ProgressConfig
	stdout   io.Writer
	logger   *slog.Logger
}

// format returns the output format: --json, then --format, then config.
func (a *app) format() (output.Format, error) {
	switch {
	case a.globals.JSON:
		return output.FormatJSON, nil
	case a.globals.Format != "":
		return output.ParseFormat(a.globals.Format)
	default:
		return output.ParseFormat(a.cfg.Format)
	}
}

// quiet reports whether status output (progress, hints) is suppressed:
// under -q/--json, or when stdout carries a machine format.
func (a *app) quiet(f output.Format) bool {
	return a.globals.Quiet || f.Machine()
}

const usage = `stride - lazy arithmetic ranges

stride walks the values start, start+step, start+2*step, ... up to and
including stop, for integer or floating-point numbers.

Usage:
  stride [global options] <command> [options]

Commands:
  list        Print every value of a range
  sum         Print the sum of a range
  describe    Summarise a range (count, sum, first, last)
  init        Create .stride.yaml with the default settings
  completion  Generate shell completion script (bash|zsh|fish)

Global Options:
%s
Examples:
  stride list 0 10                   0 1 2 ... 10, one per line
  stride list --sep , 1 9 2          1,3,5,7,9
  stride sum 0 10                    55
  stride sum --kind float 0 1 0.25   2.5
  stride --format table describe 0 100 7
  stride list -- -5 5                Negative bounds also work without --

Environment Variables:
  STRIDE_KIND, STRIDE_STEP, STRIDE_LIMIT, STRIDE_FORMAT, STRIDE_SEPARATOR
  override the matching .stride.yaml settings.
  NO_COLOR disables colored output.

For detailed command help: stride <command> --help
`

// parseGlobals parses the flags before the command name.
func parseGlobals(args []string) (GlobalFlags, []string, error) {
	var g GlobalFlags

	fs := flag.NewFlagSet("stride", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.BoolVar(&g.ShowVersion, "version", false, "Show version and exit")
	fs.StringVar(&g.ConfigPath, "config", "", "Path to .stride.yaml (default: ./.stride.yaml)")
	fs.BoolVar(&g.JSON, "json", false, "Output as JSON (implies --quiet)")
	fs.StringVar(&g.Format, "format", "", "Output format: text, json, yaml or table")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "Suppress progress and status messages")
	fs.BoolVar(&g.NoColor, "no-color", false, "Disable colored output")
	fs.CountVarP(&g.Verbose, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	fs.StringVar(&g.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, usage, fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return g, nil, err
	}
	if g.JSON {
		g.Quiet = true
	}
	return g, fs.Args(), nil
}

// setupLogger installs a tint handler on stderr. Logs stay at warn level
// unless -v is given.
func setupLogger(w *os.File, verbose int, noColor bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor || !isatty.IsTerminal(w.Fd()),
	}))
	slog.SetDefault(logger)
	return logger
}

func main() {
	globals, args, err := parseGlobals(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(errors.ExitSuccess)
	}
	if err != nil {
		errors.FatalError(errors.NewInputError("Invalid global option", err.Error(), "Run 'stride --help'"), false)
	}

	if globals.ShowVersion {
		fmt.Printf("stride version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(errors.ExitSuccess)
	}

	ui.InitColors(globals.NoColor || os.Getenv("NO_COLOR") != "")
	logger := setupLogger(os.Stderr, globals.Verbose, globals.NoColor)

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, usage, "")
		os.Exit(errors.ExitInput)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := run(ctx, globals, args, os.Stdout, logger)
	stop()
	os.Exit(code)
}

// run loads configuration, dispatches the command and reports its error.
// It returns the process exit code.
func run(ctx context.Context, globals GlobalFlags, args []string, stdout io.Writer, logger *slog.Logger) int {
	command, cmdArgs := args[0], args[1:]

	// init and completion must work even when the config file is broken.
	switch command {
	case "init":
		return report(runInit(cmdArgs, globals, stdout, logger), globals)
	case "completion":
		return report(runCompletion(cmdArgs, stdout), globals)
	}

	cfg, err := config.Load(globals.ConfigPath)
	if err != nil {
		return report(errors.NewConfigError(
			"Cannot load stride configuration",
			err.Error(),
			"Fix .stride.yaml or the STRIDE_* variables, or regenerate with: stride init --force",
			err,
		), globals)
	}

	m := metrics.New()
	a := &app{
		globals:  globals,
		cfg:      cfg,
		runner:   runner.New(logger, m),
		metrics:  m,
		progress: NewProgressConfig(globals),
		stdout:   stdout,
		logger:   logger,
	}

	switch command {
	case "list":
		err = runList(ctx, a, cmdArgs)
	case "sum":
		err = runSum(ctx, a, cmdArgs)
	case "describe":
		err = runDescribe(ctx, a, cmdArgs)
	default:
		err = errors.NewInputError(
			"Unknown command",
			fmt.Sprintf("'%s' is not a stride command", command),
			"Run 'stride --help' to list commands",
		)
	}

	if ranges, values, merr := m.Totals(); merr == nil {
		logger.Debug("metrics.totals", "ranges", ranges, "values", values)
	}

	if globals.MetricsTextfile != "" {
		if werr := m.WriteTextfile(globals.MetricsTextfile); werr != nil {
			logger.Warn("metrics.textfile.write", "path", globals.MetricsTextfile, "err", werr)
		}
	}

	return report(err, globals)
}

func report(err error, globals GlobalFlags) int {
	if err == flag.ErrHelp {
		return errors.ExitSuccess
	}
	return errors.Report(os.Stderr, err, globals.JSON)
}
