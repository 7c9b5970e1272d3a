// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Poll Kiosk API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - VotingHandler: active survey delivery, sessions, vote submission
  - SurveyHandler: survey CRUD and the active-survey pointer
  - StatsHandler: aggregate counts for the admin panel
  - ExportHandler: XLSX exports (single survey and all surveys)

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(st, cfg)

# Kiosk Flow

Kiosk clients poll the active survey and submit votes:

	GET  /api/current-survey → GetCurrentSurvey (404 when none active)
	POST /api/session        → CreateSession (returns session_token)
	POST /api/vote           → SubmitVote

Votes optionally carry the X-Session-Token header; without it the export
falls back to time-windowed clustering by client address.

# Admin Flow

Admin operations use HTTP basic auth:

	GET    /api/admin/surveys               → ListSurveys
	POST   /api/admin/surveys               → CreateSurvey
	DELETE /api/admin/surveys/{id}          → DeleteSurvey (409 if active)
	POST   /api/admin/set-current-survey    → SetCurrentSurvey
	GET    /api/admin/surveys/{id}/stats    → GetSurveyStats
	GET    /api/admin/surveys/{id}/export   → ExportSurvey (XLSX)
	GET    /api/admin/export                → ExportAll (XLSX)

# Stats

ComputeSurveyStats aggregates raw vote events into per-option counts and
a recent-votes list; the respondent count comes from the same
reconstruction the exports use.
*/
package handlers
