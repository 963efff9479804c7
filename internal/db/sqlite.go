// Package db provides SQLite connectivity and migration support for the
// metadata store (templates, query history).
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

// OpenSQLite opens a *sql.DB pool for the given SQLite file path.
//
// mode controls write-safety and pool sizing:
//   - "write": MaxOpenConns=1, with _txlock=immediate for serialized writes
//   - "read":  MaxOpenConns=maxOpen (0 defaults to 4)
//
// Both modes use WAL journaling, busy_timeout=5000ms, synchronous=NORMAL,
// and foreign_keys=on.
func OpenSQLite(path string, mode string, maxOpen int) (*sql.DB, error) {
	if mode != "read" && mode != "write" {
		return nil, fmt.Errorf("invalid SQLite mode %q: must be \"read\" or \"write\"", mode)
	}

	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_synchronous", "NORMAL")
	params.Set("_foreign_keys", "on")
	if mode == "write" {
		params.Set("_txlock", "immediate")
	}

	pool, err := sql.Open("sqlite3", path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite (%s): %w", mode, err)
	}

	if mode == "write" {
		pool.SetMaxOpenConns(1)
		pool.SetMaxIdleConns(1)
	} else {
		if maxOpen <= 0 {
			maxOpen = 4
		}
		pool.SetMaxOpenConns(maxOpen)
		pool.SetMaxIdleConns(maxOpen)
	}
	pool.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping sqlite (%s): %w", mode, err)
	}

	return pool, nil
}

// OpenSQLitePair opens a write pool and a read pool for the same SQLite
// file — the recommended configuration for concurrent access from an HTTP
// server.
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = OpenSQLite(path, "write", 0)
	if err != nil {
		return nil, nil, err
	}
	readDB, err = OpenSQLite(path, "read", readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}
	return writeDB, readDB, nil
}
