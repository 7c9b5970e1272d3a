// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Open connects to the configured database. For sqlite the URL is a file
// path (or :memory:) and foreign keys are switched on, since sqlite
// leaves them off per connection.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	driver := "sqlite"
	dsn := databaseURL

	switch databaseType {
	case "postgres":
		driver = "postgres"
	case "sqlite", "":
		dsn = "file:" + databaseURL + "?_pragma=foreign_keys(1)"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if databaseType != "postgres" {
		// Pool of one keeps :memory: databases coherent and sidesteps
		// sqlite writer contention.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
