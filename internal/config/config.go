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

// Package config loads stride's defaults from .stride.yaml and the
// environment.
//
// Precedence, highest first: command-line flags (applied by the caller),
// STRIDE_* environment variables, the YAML file, built-in defaults.
//
//	# .stride.yaml
//	version: "1"
//	kind: float
//	step: "0.5"
//	limit: 10000
//	format: table
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/kraklabs/stride/internal/contract"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".stride.yaml"

// EnvPrefix prefixes every environment override (STRIDE_KIND, ...).
const EnvPrefix = "stride"

// Kinds and Formats list the accepted values for Kind and Format.
var (
	Kinds   = []string{"int", "float"}
	Formats = []string{"text", "json", "yaml", "table"}
)

// Config holds the defaults a command falls back to when a flag is unset.
// Environment keys are EnvPrefix plus the upper-cased field name.
type Config struct {
	Version   string `yaml:"version" ignored:"true"`
	Kind      string `yaml:"kind"`
	Step      string `yaml:"step"`
	Limit     uint64 `yaml:"limit"`
	Format    string `yaml:"format"`
	Separator string `yaml:"separator"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:   "1",
		Kind:      "int",
		Step:      "1",
		Limit:     contract.DefaultValueLimit,
		Format:    "text",
		Separator: "\n",
	}
}

// Path returns the default configuration path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the configuration.
//
// An empty path means Path(cwd); if that file does not exist the defaults
// are used. A non-empty path must exist. Environment overrides are applied
// after the file and the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		path = Path(cwd)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No project file; defaults plus environment.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown kinds and formats and a zero limit.
func (c *Config) Validate() error {
	if !slices.Contains(Kinds, c.Kind) {
		return fmt.Errorf("invalid kind %q (want one of %v)", c.Kind, Kinds)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %v)", c.Format, Formats)
	}
	if c.Limit == 0 {
		return fmt.Errorf("limit must be greater than zero")
	}
	if c.Step == "" {
		return fmt.Errorf("step must not be empty")
	}
	return nil
}

// MarshalYAML writes the separator double-quoted. yaml.v3 would otherwise
// emit a newline separator as a block scalar that reads back empty.
func (c Config) MarshalYAML() (any, error) {
	type plain Config
	var node yaml.Node
	if err := node.Encode(plain(c)); err != nil {
		return nil, err
	}
	for i := 1; i < len(node.Content); i += 2 {
		if node.Content[i-1].Value == "separator" {
			node.Content[i].Style = yaml.DoubleQuotedStyle
		}
	}
	return &node, nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
