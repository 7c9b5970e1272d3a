// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/export"
	"github.com/Neolvie/PollKiosk/handlers"
	"github.com/Neolvie/PollKiosk/middleware"
	"github.com/Neolvie/PollKiosk/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(st, cfg)
	surveyHandler := handlers.NewSurveyHandler(st, cfg)
	statsHandler := handlers.NewStatsHandler(st, cfg)
	exportHandler := handlers.NewExportHandler(export.New(st, st))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Kiosk operations (public)
	mux.HandleFunc("GET /api/current-survey", middleware.WithLogging(votingHandler.GetCurrentSurvey))
	mux.HandleFunc("POST /api/session", middleware.WithLogging(votingHandler.CreateSession))
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Survey management (admin, basic auth)
	mux.HandleFunc("GET /api/admin/surveys", admin(cfg, surveyHandler.ListSurveys))
	mux.HandleFunc("POST /api/admin/surveys", admin(cfg, surveyHandler.CreateSurvey))
	mux.HandleFunc("DELETE /api/admin/surveys/{id}", admin(cfg, surveyHandler.DeleteSurvey))
	mux.HandleFunc("POST /api/admin/set-current-survey", admin(cfg, surveyHandler.SetCurrentSurvey))

	// Stats and exports (admin, basic auth)
	mux.HandleFunc("GET /api/admin/surveys/{id}/stats", admin(cfg, statsHandler.GetSurveyStats))
	mux.HandleFunc("GET /api/admin/surveys/{id}/export", admin(cfg, exportHandler.ExportSurvey))
	mux.HandleFunc("GET /api/admin/export", admin(cfg, exportHandler.ExportAll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollkiosk API v1"))
	})

	return mux
}

func admin(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.RequireBasicAuth(cfg, next))
}
