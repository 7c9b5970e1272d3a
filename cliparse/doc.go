// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: sqlite file path (default: polls.db) or postgres URL
  - AdminUsername: basic-auth admin username (required)
  - AdminPassword: basic-auth admin password (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--admin-user  Admin username
	--admin-pass  Admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_USERNAME → --admin-user
	ADMIN_PASSWORD → --admin-pass

CLI flags take precedence over environment variables. The config is a
plain value passed to constructors; nothing reads it from a global.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_USERNAME must be provided
  - ADMIN_PASSWORD must be provided
  - DATABASE_URL must be provided for postgres (sqlite defaults to polls.db)
*/
package cliparse
