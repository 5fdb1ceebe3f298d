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

package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/kraklabs/stride/internal/config"
)

// ProjectConfig holds configuration for initializing a project.
type ProjectConfig struct {
	// Dir is the directory that receives .stride.yaml.
	// Defaults to the working directory.
	Dir string

	// Force overwrites an existing configuration file.
	Force bool

	// Config is written instead of config.Default() when set.
	Config *config.Config
}

// ProjectInfo holds information about an initialized project.
type ProjectInfo struct {
	ConfigPath string
	// Existed is true when the file was already present and left alone.
	Existed bool
}

// InitProject writes the project configuration file.
//
// Parameters:
//   - cfg: project configuration
//   - logger: optional logger (nil uses default)
func InitProject(cfg ProjectConfig, logger *slog.Logger) (*ProjectInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		cfg.Dir = cwd
	}
	if cfg.Config == nil {
		cfg.Config = config.Default()
	}
	if err := cfg.Config.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to write invalid config: %w", err)
	}

	path := config.Path(cfg.Dir)

	logger.Info("bootstrap.project.init.start", "config_path", path, "force", cfg.Force)

	_, err := os.Stat(path)
	switch {
	case err == nil && !cfg.Force:
		logger.Info("bootstrap.project.init.exists", "config_path", path)
		return &ProjectInfo{ConfigPath: path, Existed: true}, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if err := cfg.Config.Save(path); err != nil {
		return nil, err
	}

	logger.Info("bootstrap.project.init.success", "config_path", path)

	return &ProjectInfo{ConfigPath: path}, nil
}
