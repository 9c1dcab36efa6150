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

// Package cache memoizes solver results behind a Redis fast path and
// a durable Postgres table, the same two-tier shape this package's
// Sudoku sibling uses for puzzle storage, retargeted here at solve
// results instead of puzzle state.
package cache

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens both the Redis and Postgres connections this package
// needs, returning the URL each one landed on (for logging by
// callers, the same way storage.Connect did).
func Connect(ctx context.Context) (cacheURL, databaseURL string, err error) {
	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheURL, err = rdConnect()
	if err != nil {
		return "", "", err
	}

	pgInit()
	databaseURL, err = pgConnect(ctx)
	if err != nil {
		return "", "", err
	}
	return cacheURL, databaseURL, nil
}

// Close releases both connections.  Safe to call even if Connect
// partially failed.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

fast path: Redis

*/

var (
	rdc     redis.Conn
	rdURL   string
	rdMutex sync.Mutex
)

func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	rdURL = url
}

func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to cache at %q: %v", rdURL, err)
	}
	rdc = conn
	return rdURL, nil
}

func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute runs body against the live Redis connection, reconnecting
// first if the connection has gone away, and serializes access across
// callers with rdMutex exactly as storage.rdExecute did.
func rdExecute(body func(conn redis.Conn) error) error {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	if _, err := rdc.Do("PING"); err != nil {
		rdClose()
		if _, err := rdConnect(); err != nil {
			return fmt.Errorf("failed to reconnect to cache at %q: %v", rdURL, err)
		}
	}
	return body(rdc)
}

/*

durable path: Postgres

*/

var (
	pgPool *pgxpool.Pool
	pgURL  string
)

func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/slants?sslmode=disable"
	}
	pgURL = url
}

func pgConnect(ctx context.Context) (string, error) {
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %v", pgURL, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return "", fmt.Errorf("couldn't ping db at %q: %v", pgURL, err)
	}
	pgPool = pool
	return pgURL, nil
}

func pgClose() {
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
}
