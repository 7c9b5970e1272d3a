// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening

Open connects using the configured driver:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

sqlite (modernc.org/sqlite, pure Go) is the default and matches the
original kiosk deployment; postgres (lib/pq) is available for shared
installs. For sqlite, foreign keys are enabled per connection and the
pool is capped at one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - survey: Survey metadata
  - question: Question text, kind, and JSON-encoded option list
  - vote: Append-only vote events
  - active_survey: Single-row pointer to the survey kiosks show

# Relationships

	survey 1──* question
	question 1──* vote
	active_survey *──1 survey

Questions and votes cascade on survey deletion; clearing a deleted
survey from active_survey uses ON DELETE SET NULL.

# Indexes

Performance indexes on:

  - question.survey_id
  - vote.question_id (the export's single batch read)
*/
package db
