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
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/stride/internal/bootstrap"
	"github.com/kraklabs/stride/internal/errors"
	"github.com/kraklabs/stride/internal/output"
	"github.com/kraklabs/stride/internal/ui"
)

// InitResult is the --json output of 'init'.
type InitResult struct {
	ConfigPath string `json:"config_path"`
	Created    bool   `json:"created"`
}

// runInit executes the 'init' command, writing .stride.yaml with the
// default settings to the current directory.
//
// An existing file is left untouched unless --force is given.
//
// Examples:
//
//	stride init            Create .stride.yaml
//	stride init --force    Reset .stride.yaml to defaults
func runInit(args []string, globals GlobalFlags, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing .stride.yaml")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: stride init [options]

Creates .stride.yaml in the current directory with the default kind,
step, limit, format and separator. Edit it to change what list, sum and
describe use when no flag is given.

Options:
%s`, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return errors.NewInputError("Invalid option", err.Error(), "Run 'stride init --help'")
	}
	if fs.NArg() > 0 {
		return errors.NewInputError(
			"Invalid arguments",
			fmt.Sprintf("init takes no arguments, got %q", fs.Args()),
			"Run 'stride init' from the directory that should hold .stride.yaml",
		)
	}

	info, err := bootstrap.InitProject(bootstrap.ProjectConfig{Force: *force}, logger)
	if err != nil {
		return errors.NewConfigError(
			"Cannot create .stride.yaml",
			err.Error(),
			"Check that the current directory is writable",
			err,
		)
	}

	if globals.JSON {
		if err := output.JSONTo(stdout, InitResult{ConfigPath: info.ConfigPath, Created: !info.Existed}); err != nil {
			return writeError(err)
		}
		return nil
	}

	if !globals.Quiet {
		if info.Existed {
			ui.Warningf("%s already exists. Use --force to overwrite.", info.ConfigPath)
		} else {
			ui.Successf("Created %s", info.ConfigPath)
		}
	}
	return nil
}
