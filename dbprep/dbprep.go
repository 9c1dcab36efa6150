// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package dbprep

import (
	"fmt"
)

// EnsureData brings the result schema up to date and, if that
// actually changed the schema version, loads the sample boards.
func EnsureData() error {
	inVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial result schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("couldn't install result schema: %v", err)
	}
	outVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get final result schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("result schema still at version 0, shouldn't be")
	}
	if inVersion != outVersion {
		if err := DataUp(); err != nil {
			return fmt.Errorf("couldn't load sample boards: %v", err)
		}
	}
	return nil
}

// RemoveData tears down the result schema entirely, if it exists.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial result schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("couldn't remove result tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll flushes the cache and rebuilds the result database
// from scratch, sample boards included.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("couldn't clear result database: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("couldn't load result database: %v", err)
	}
	return nil
}
