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

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/stride/internal/contract"
	stridetest "github.com/kraklabs/stride/internal/testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, contract.DefaultValueLimit, cfg.Limit)
}

func TestLoad_File(t *testing.T) {
	path := stridetest.WriteConfig(t, "version: \"1\"\nkind: float\nstep: \"0.5\"\nlimit: 42\nformat: table\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "float", cfg.Kind)
	assert.Equal(t, "0.5", cfg.Step)
	assert.Equal(t, uint64(42), cfg.Limit)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "\n", cfg.Separator, "unset fields keep their defaults")
}

func TestLoad_FileInWorkingDirectory(t *testing.T) {
	path := stridetest.WriteConfig(t, "kind: float\n")
	t.Chdir(filepath.Dir(path))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "float", cfg.Kind)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := stridetest.WriteConfig(t, "kind: float\nlimit: 42\n")
	t.Setenv("STRIDE_KIND", "int")
	t.Setenv("STRIDE_LIMIT", "7")
	t.Setenv("STRIDE_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "int", cfg.Kind)
	assert.Equal(t, uint64(7), cfg.Limit)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad yaml", content: "kind: [int\n"},
		{name: "unknown kind", content: "kind: complex\n"},
		{name: "unknown format", content: "format: xml\n"},
		{name: "zero limit", content: "limit: 0\n"},
		{name: "bad env limit", content: "kind: int\n", env: map[string]string{"STRIDE_LIMIT": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := stridetest.WriteConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	want := Default()
	want.Kind = "float"
	want.Step = "0.25"
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_SeparatorSurvivesReload(t *testing.T) {
	for _, sep := range []string{"\n", "\t", " ", ", ", "\r\n"} {
		t.Run(strconv.Quote(sep), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			cfg := Default()
			cfg.Separator = sep
			require.NoError(t, cfg.Save(path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), "separator: "+strconv.Quote(sep))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sep, got.Separator)
		})
	}
}
