// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database of the given type and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if dbType == TypeSQLite {
		url = sqliteDSN(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// SQLite serializes writers; one connection also keeps :memory: databases intact
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

// sqliteDSN turns url into a file: URI with foreign keys enforced and times
// stored in SQLite's text format. Pragmas already present are kept.
func sqliteDSN(url string) string {
	if !strings.HasPrefix(url, "file:") {
		url = "file:" + url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	if !strings.Contains(url, "foreign_keys") {
		url += sep + "_pragma=foreign_keys(1)"
		sep = "&"
	}
	if !strings.Contains(url, "_time_format") {
		url += sep + "_time_format=sqlite"
	}
	return url
}
