// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Poll Kiosk API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Kiosk (public):

	GET  /api/current-survey - Active survey with questions
	POST /api/session        - Mint a session token
	POST /api/vote           - Submit one vote

Survey management (admin, basic auth):

	GET    /api/admin/surveys            - List surveys
	POST   /api/admin/surveys            - Create survey with questions
	DELETE /api/admin/surveys/{id}       - Delete survey
	POST   /api/admin/set-current-survey - Set or clear the active survey

Stats and exports (admin, basic auth):

	GET /api/admin/surveys/{id}/stats  - Aggregate counts
	GET /api/admin/surveys/{id}/export - One survey as XLSX
	GET /api/admin/export              - All surveys as XLSX

# Handler Initialization

The router creates handler instances with dependency injection:

	votingHandler := handlers.NewVotingHandler(st, cfg)
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	statsHandler := handlers.NewStatsHandler(st, cfg)
	exportHandler := handlers.NewExportHandler(export.New(st, st))

All handlers receive the store and configuration.
*/
package router
