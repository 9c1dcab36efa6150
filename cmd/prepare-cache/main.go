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

// Clear and re-initialize the slants result cache and its backing
// database.
package main

import (
	"fmt"
	"log"

	"github.com/gokigen/slants/dbprep"
)

func main() {
	log.Printf("Removing existing cache and result database...")
	if err := prepareCache(); err != nil {
		log.Fatalf("Couldn't prepare cache: %v", err)
	}
	log.Printf("Cache and result database re-initialized.")
}

func prepareCache() error {
	if err := dbprep.ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}

	version, err := dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial schema version: %v", err)
	}
	if version > 0 {
		if err := dbprep.SchemaDown(); err != nil {
			return fmt.Errorf("couldn't remove result database: %v", err)
		}
	}
	if err := dbprep.SchemaUp(); err != nil {
		return fmt.Errorf("couldn't install result schema: %v", err)
	}
	version, err = dbprep.SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get upgraded schema version: %v", err)
	}
	if version == 0 {
		return fmt.Errorf("database schema still at version 0, shouldn't be")
	}
	if err := dbprep.DataUp(); err != nil {
		return fmt.Errorf("couldn't load sample data: %v", err)
	}
	return nil
}
