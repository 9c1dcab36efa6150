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
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gokigen/slants/slant"
)

/*

entries

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp loads the sample solved boards into the database.  Do this
// after SchemaUp.
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown removes the sample data from the database.  Do this
// before SchemaDown.
func DataDown() error {
	return applyFunctions(downFunctions)
}

// applyFunctions applies dataFunctions to the database, each in its
// own transaction, so later ones can rely on the effect of earlier
// ones having been committed.
func applyFunctions(fns []dataFunction) error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL())
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(ctx, tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

insert sample solved boards

*/

type sampleBoard struct {
	width, height, maxTier int
	givens                 string
}

var sampleBoards = []sampleBoard{
	// single cell, corner clue of 1: only Backslash touches that
	// corner, so it's forced immediately.
	{width: 1, height: 1, maxTier: 2, givens: "1c"},
	// two cells in a row, each end corner clued 0: each corner
	// touches exactly one cell, so both diagonals are forced without
	// any chance of the two forming a loop.
	{width: 2, height: 1, maxTier: 2, givens: "0a0c"},
}

// insertSamples solves each sample board and records its result,
// marked is_sample so DataDown can find them again.
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	var count int64
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM solve_results WHERE is_sample = true")
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("database error checking for sample rows: %v", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, sample := range sampleBoards {
		result, err := slant.Solve(slant.Branching, sample.givens, sample.width, sample.height, sample.maxTier)
		if err != nil {
			return fmt.Errorf("sample board %d has invalid givens: %v", i, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO solve_results
			   (width, height, givens, max_tier, status, solution, work_score, max_tier_used, solved_at, is_sample)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true)`,
			sample.width, sample.height, sample.givens, sample.maxTier,
			result.Status, result.SolutionString, result.WorkScore, result.MaxTierUsed, now)
		if err != nil {
			return fmt.Errorf("database error saving sample board %d: %v", i, err)
		}
	}
	return nil
}

// deleteSamples removes every row insertSamples added.
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, "DELETE FROM solve_results WHERE is_sample = true")
	if err != nil {
		return fmt.Errorf("database error deleting sample rows: %v", err)
	}
	return nil
}
