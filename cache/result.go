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
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"

	"github.com/gokigen/slants/slant"
)

// resultTTLSeconds is how long a cached result is trusted in Redis
// before a caller must fall through to Postgres (or re-solve).
const resultTTLSeconds = 86400

// Key computes the cache key for a given board shape, givens string,
// and rule-tier ceiling.  Two Solve calls with the same four
// arguments always produce the same result, so the key need not
// include anything else.
func Key(width, height int, givensString string, maxTier int) string {
	return fmt.Sprintf("slants:%dx%d:%s:%d", width, height, givensString, maxTier)
}

// Get looks up a memoized result, trying Redis first and falling
// back to Postgres.  The boolean return is false if neither store
// had an entry.
func Get(ctx context.Context, width, height int, givensString string, maxTier int) (slant.SolveResult, bool, error) {
	key := Key(width, height, givensString, maxTier)

	var result slant.SolveResult
	var found bool
	err := rdExecute(func(conn redis.Conn) error {
		raw, err := redis.Bytes(conn.Do("GET", key))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &result); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return slant.SolveResult{}, false, err
	}
	if found {
		return result, true, nil
	}

	row := pgPool.QueryRow(ctx,
		`SELECT status, solution, work_score, max_tier_used FROM solve_results
		 WHERE width = $1 AND height = $2 AND givens = $3 AND max_tier = $4`,
		width, height, givensString, maxTier)
	if err := row.Scan(&result.Status, &result.SolutionString, &result.WorkScore, &result.MaxTierUsed); err != nil {
		if err == pgx.ErrNoRows {
			return slant.SolveResult{}, false, nil
		}
		return slant.SolveResult{}, false, err
	}

	// warm Redis for the next caller
	_ = Put(ctx, width, height, givensString, maxTier, result, false)
	return result, true, nil
}

// Put records result for the given board shape, givens string, and
// rule-tier ceiling, in Redis unconditionally and in Postgres only
// when persist is true (Get passes false when it's just refreshing
// the Redis copy of a row that's already durable).
func Put(ctx context.Context, width, height int, givensString string, maxTier int, result slant.SolveResult, persist bool) error {
	key := Key(width, height, givensString, maxTier)
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}

	if err := rdExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SET", key, raw, "EX", resultTTLSeconds)
		return err
	}); err != nil {
		return err
	}

	if !persist {
		return nil
	}

	_, err = pgPool.Exec(ctx,
		`INSERT INTO solve_results (width, height, givens, max_tier, status, solution, work_score, max_tier_used, solved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (width, height, givens, max_tier)
		 DO UPDATE SET status = $5, solution = $6, work_score = $7, max_tier_used = $8, solved_at = $9`,
		width, height, givensString, maxTier,
		result.Status, result.SolutionString, result.WorkScore, result.MaxTierUsed, time.Now().UTC())
	return err
}

// SolveAndCache solves givensString with slant.Solve, recording the
// result durably, unless an equivalent result is already cached.
func SolveAndCache(ctx context.Context, mode slant.Mode, givensString string, width, height, maxTier int) (slant.SolveResult, error) {
	if result, ok, err := Get(ctx, width, height, givensString, maxTier); err != nil {
		return slant.SolveResult{}, err
	} else if ok {
		return result, nil
	}

	result, err := slant.Solve(mode, givensString, width, height, maxTier)
	if err != nil {
		return slant.SolveResult{}, err
	}
	if err := Put(ctx, width, height, givensString, maxTier, result, true); err != nil {
		return result, err
	}
	return result, nil
}
