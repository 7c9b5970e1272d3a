// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// databaseType selects the DDL dialect ("sqlite" or "postgres").
func CreateSchema(db *sql.DB, databaseType string) error {
	ddl := schemaSQLite
	if databaseType == "postgres" {
		ddl = schemaPostgres
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaSQLite = `
-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    show_title INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL
);

-- Questions (options stored as a JSON array, like the legacy schema)
CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    survey_id INTEGER NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('single_choice', 'multi_select')),
    options TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_survey_id ON question(survey_id);

-- Votes (append-only)
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    option_index INTEGER NOT NULL,
    session_token TEXT,
    client_address TEXT,
    voted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_question_id ON vote(question_id);

-- Single-row pointer to the survey kiosk clients should show
CREATE TABLE IF NOT EXISTS active_survey (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    survey_id INTEGER REFERENCES survey(id) ON DELETE SET NULL
);
`

const schemaPostgres = `
-- Surveys
CREATE TABLE IF NOT EXISTS survey (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    show_title INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL
);

-- Questions (options stored as a JSON array, like the legacy schema)
CREATE TABLE IF NOT EXISTS question (
    id BIGSERIAL PRIMARY KEY,
    survey_id BIGINT NOT NULL REFERENCES survey(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('single_choice', 'multi_select')),
    options TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_survey_id ON question(survey_id);

-- Votes (append-only)
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    option_index INTEGER NOT NULL,
    session_token TEXT,
    client_address TEXT,
    voted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_question_id ON vote(question_id);

-- Single-row pointer to the survey kiosk clients should show
CREATE TABLE IF NOT EXISTS active_survey (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    survey_id BIGINT REFERENCES survey(id) ON DELETE SET NULL
);
`
