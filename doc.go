// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Poll Kiosk API server.

Poll Kiosk is a presentation-floor survey service: an admin builds
surveys (single-choice and multi-select questions), activates one for
the kiosk clients in the room, and later pulls the collected votes as an
XLSX export with one reconstructed row per respondent.

# Starting the Server

The server reads configuration from environment variables (a local .env
is honored) or CLI flags:

	ADMIN_USERNAME=admin ADMIN_PASSWORD=secret go run main.go

Or with flags:

	go run main.go -p 5000 -d polls.db --admin-user admin --admin-pass secret

# Configuration

Required settings:

  - ADMIN_USERNAME (--admin-user): basic-auth admin username
  - ADMIN_PASSWORD (--admin-pass): basic-auth admin password

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): sqlite path (default: polls.db) or postgres URL

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (voting, surveys, stats, exports)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, basic auth, JSON helpers
  - models: Request/response and domain types
  - auth: Session tokens and credential checks
  - store: All SQL queries
  - db: Connection and schema creation (sqlite/postgres)
  - cliparse: Configuration parsing

The export pipeline is split into pure stages:

  - respondents: vote events → reconstructed respondent rows
  - layout: question list → column plan
  - sheet: one survey block → styled worksheet region
  - export: orchestration + workbook serialization

See package documentation for each component.
*/
package main
