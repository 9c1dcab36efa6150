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

package cache

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gokigen/slants/dbprep"
	"github.com/gokigen/slants/slant"
)

// we create solve_results rows up the wazoo; make sure they don't
// persist past the end of the test run.
func TestMain(m *testing.M) {
	if err := dbprep.ReinitializeAll(); err != nil {
		panic(fmt.Errorf("failed to reinitialize data at startup: %v", err))
	}
	defer func(code int) {
		if code == 0 {
			if err := dbprep.ReinitializeAll(); err != nil {
				panic(fmt.Errorf("failed to reinitialize data at teardown: %v", err))
			}
		}
		os.Exit(code)
	}(m.Run())
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	cid, dbid, err := Connect(ctx)
	if err != nil {
		t.Fatalf("couldn't connect to cache: %v", err)
	}
	if cid != rdURL || dbid != pgURL {
		t.Errorf("connected to wrong cache (%s) or wrong database (%s)", cid, dbid)
	}
	Close()
}

func TestKeyFormat(t *testing.T) {
	got := Key(5, 5, "1c2", 2)
	want := "slants:5x5:1c2:2"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestSolveAndCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, _, err := Connect(ctx); err != nil {
		t.Fatalf("couldn't connect to cache: %v", err)
	}
	defer Close()

	result, err := SolveAndCache(ctx, slant.ProductionRulesOnly, "1c", 1, 1, 2)
	if err != nil {
		t.Fatalf("SolveAndCache: %v", err)
	}
	if result.Status != slant.StatusSolved {
		t.Fatalf("Status = %q, want %q", result.Status, slant.StatusSolved)
	}

	// second call should be served from Redis without re-solving
	cached, found, err := Get(ctx, 1, 1, "1c", 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get: expected a cached result, found none")
	}
	if cached.SolutionString != result.SolutionString {
		t.Errorf("cached SolutionString = %q, want %q", cached.SolutionString, result.SolutionString)
	}
}

func TestGetMissIsNotAnError(t *testing.T) {
	ctx := context.Background()
	if _, _, err := Connect(ctx); err != nil {
		t.Fatalf("couldn't connect to cache: %v", err)
	}
	defer Close()

	_, found, err := Get(ctx, 9, 9, "not-a-real-key", 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("Get: expected no cached result for an unused key")
	}
}
