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

// Package output provides structured output helpers for the stride CLI.
//
// Every writer takes an io.Writer so commands pass os.Stdout and tests
// pass a bytes.Buffer:
//
//	if err := output.Write(os.Stdout, output.FormatYAML, summary); err != nil {
//	    errors.FatalError(err, false)
//	}
//
// Text and table formats are only meaningful for data the caller lays out
// itself; Write handles the machine-readable formats (JSON and YAML).
// ValueWriter streams range values as they are produced.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or table)", s)
	}
}

// Machine reports whether the format is meant for programs rather than people.
func (f Format) Machine() bool {
	return f == FormatJSON || f == FormatYAML
}

// Write encodes data in a machine-readable format.
func Write(w io.Writer, f Format, data any) error {
	switch f {
	case FormatJSON:
		return JSONTo(w, data)
	case FormatYAML:
		return YAMLTo(w, data)
	default:
		return fmt.Errorf("format %q needs a custom layout", f)
	}
}
