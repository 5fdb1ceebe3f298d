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

// Package bootstrap creates the files a stride project starts from.
//
// InitProject writes a .stride.yaml holding the built-in defaults, so the
// user has something to edit:
//
//	info, err := bootstrap.InitProject(bootstrap.ProjectConfig{
//	    Dir: ".",
//	}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Config written to: %s\n", info.ConfigPath)
//
// # Idempotency
//
// Running InitProject twice does not clobber an edited file: an existing
// file is left untouched and reported through ProjectInfo.Existed unless
// Force is set.
package bootstrap
