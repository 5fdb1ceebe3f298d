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

package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Cannot load configuration",
				Err:     fmt.Errorf("permission denied"),
			},
			want: "Cannot load configuration: permission denied",
		},
		{
			name: "without underlying error",
			err:  &UserError{Message: "Invalid range"},
			want: "Invalid range",
		},
		{
			name: "empty message with underlying error",
			err:  &UserError{Err: fmt.Errorf("some error")},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestExitCodes_Uniqueness verifies that all exit codes are unique.
func TestExitCodes_Uniqueness(t *testing.T) {
	codes := []int{ExitSuccess, ExitConfig, ExitInput, ExitOutput, ExitLimit, ExitInternal}

	seen := make(map[int]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate exit code found: %d", code)
		}
		seen[code] = true
	}
}

// TestConstructors verifies that all constructor functions work correctly.
func TestConstructors(t *testing.T) {
	underlyingErr := fmt.Errorf("underlying error")

	tests := []struct {
		name         string
		got          *UserError
		wantExitCode int
		wantHasErr   bool
	}{
		{"NewConfigError", NewConfigError("msg", "cause", "fix", underlyingErr), ExitConfig, true},
		{"NewConfigError without underlying error", NewConfigError("msg", "cause", "fix", nil), ExitConfig, false},
		{"NewInputError", NewInputError("msg", "cause", "fix"), ExitInput, false},
		{"NewOutputError", NewOutputError("msg", "cause", "fix", underlyingErr), ExitOutput, true},
		{"NewLimitError", NewLimitError("msg", "cause", "fix"), ExitLimit, false},
		{"NewInternalError", NewInternalError("msg", "cause", "fix", underlyingErr), ExitInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Message != "msg" || tt.got.Cause != "cause" || tt.got.Fix != "fix" {
				t.Errorf("fields = (%q, %q, %q), want (msg, cause, fix)", tt.got.Message, tt.got.Cause, tt.got.Fix)
			}
			if tt.got.ExitCode != tt.wantExitCode {
				t.Errorf("ExitCode = %d, want %d", tt.got.ExitCode, tt.wantExitCode)
			}
			if hasErr := tt.got.Err != nil; hasErr != tt.wantHasErr {
				t.Errorf("has underlying error = %v, want %v", hasErr, tt.wantHasErr)
			}
		})
	}
}

// TestErrorChain verifies error wrapping compatibility with stdlib errors package.
func TestErrorChain(t *testing.T) {
	t.Run("errors.Is works with UserError", func(t *testing.T) {
		sentinel := fmt.Errorf("sentinel error")
		userErr := NewOutputError("write failed", "cause", "fix", fmt.Errorf("wrapped: %w", sentinel))

		if !errors.Is(userErr, sentinel) {
			t.Error("errors.Is should find sentinel error in chain")
		}
	})

	t.Run("errors.As finds UserError behind fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("run list: %w", NewLimitError("too many", "", ""))

		var target *UserError
		if !errors.As(wrapped, &target) {
			t.Fatal("errors.As should extract UserError")
		}
		if target.ExitCode != ExitLimit {
			t.Errorf("ExitCode = %d, want %d", target.ExitCode, ExitLimit)
		}
	})
}

// TestUserError_Format verifies the Format() method implementation.
func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name    string
		err     *UserError
		want    []string
		notWant []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message: "Invalid range",
				Cause:   "step 0 never reaches stop 10 from start 0",
				Fix:     "Use a positive step",
			},
			want: []string{"Error: Invalid range", "Cause: step 0 never reaches", "Fix:   Use a positive step"},
		},
		{
			name:    "error without cause",
			err:     &UserError{Message: "Invalid input", Fix: "Use valid format"},
			want:    []string{"Error: Invalid input", "Fix:   Use valid format"},
			notWant: []string{"Cause:"},
		},
		{
			name:    "minimal error (message only)",
			err:     &UserError{Message: "Something failed"},
			want:    []string{"Error: Something failed"},
			notWant: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("Format() output missing %q\nGot: %s", substr, got)
				}
			}
			for _, substr := range tt.notWant {
				if strings.Contains(got, substr) {
					t.Errorf("Format() output should not contain %q\nGot: %s", substr, got)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Error("Format(true) output contains ANSI codes")
			}
		})
	}
}

// TestUserError_Format_NoColorEnv verifies that NO_COLOR environment variable is respected.
func TestUserError_Format_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	err := NewConfigError("Test error", "Test cause", "Test fix", nil)
	if output := err.Format(false); strings.Contains(output, "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

// TestReport verifies output and exit codes for user and plain errors.
func TestReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		if code := Report(&buf, nil, false); code != ExitSuccess {
			t.Errorf("Report(nil) = %d, want %d", code, ExitSuccess)
		}
		if buf.Len() != 0 {
			t.Errorf("Report(nil) wrote %q", buf.String())
		}
	})

	t.Run("user error text", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, NewInputError("Invalid number", "\"abc\" is not an integer", ""), false)
		if code != ExitInput {
			t.Errorf("Report() = %d, want %d", code, ExitInput)
		}
		if !strings.Contains(buf.String(), "Error: Invalid number") {
			t.Errorf("Report() output = %q", buf.String())
		}
	})

	t.Run("wrapped user error json", func(t *testing.T) {
		var buf bytes.Buffer
		err := fmt.Errorf("list: %w", NewLimitError("Range exceeds the value limit", "cause", "fix"))
		code := Report(&buf, err, true)
		if code != ExitLimit {
			t.Errorf("Report() = %d, want %d", code, ExitLimit)
		}

		var got ErrorJSON
		if jsonErr := json.Unmarshal(buf.Bytes(), &got); jsonErr != nil {
			t.Fatalf("Report() did not write JSON: %v\n%s", jsonErr, buf.String())
		}
		if got.Error != "Range exceeds the value limit" || got.ExitCode != ExitLimit {
			t.Errorf("Report() JSON = %+v", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		code := Report(&buf, fmt.Errorf("boom"), false)
		if code != ExitInternal {
			t.Errorf("Report() = %d, want %d", code, ExitInternal)
		}
		if buf.String() != "Error: boom\n" {
			t.Errorf("Report() output = %q, want %q", buf.String(), "Error: boom\n")
		}
	})
}

// TestFatalError_Nil verifies FatalError returns for a nil error.
func TestFatalError_Nil(t *testing.T) {
	FatalError(nil, false)
}
