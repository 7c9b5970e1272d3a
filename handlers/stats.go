// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/middleware"
	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/respondents"
	"github.com/Neolvie/PollKiosk/store"
)

// Most recent votes shown in the admin panel
const recentVoteLimit = 20

type StatsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewStatsHandler(st *store.Store, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: st, cfg: cfg}
}

// GetSurveyStats handles GET /api/admin/surveys/{id}/stats
func (h *StatsHandler) GetSurveyStats(w http.ResponseWriter, r *http.Request) {
	surveyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	swq, err := h.store.GetSurvey(surveyID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questionIDs := make([]int64, len(swq.Questions))
	for i, q := range swq.Questions {
		questionIDs[i] = q.ID
	}

	events, err := h.store.ListVotes(questionIDs)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows := respondents.Reconstruct(events, respondents.QuestionsByID(swq.Questions))

	middleware.JSONResponse(w, http.StatusOK, models.SurveyStatsResponse{
		Survey:      swq,
		Stats:       ComputeSurveyStats(swq.Questions, events),
		Respondents: len(rows),
	})
}

// ComputeSurveyStats aggregates a survey's vote events into per-question
// option counts plus the most recent votes, newest first.
func ComputeSurveyStats(questions []models.Question, events []models.VoteEvent) models.SurveyStats {
	counts := make(map[int64]map[int]int)
	for _, ev := range events {
		if counts[ev.QuestionID] == nil {
			counts[ev.QuestionID] = make(map[int]int)
		}
		counts[ev.QuestionID][ev.OptionIndex]++
	}

	stats := models.SurveyStats{
		TotalVotes:  len(events),
		Questions:   make([]models.QuestionStats, 0, len(questions)),
		RecentVotes: []models.RecentVote{},
	}

	for _, q := range questions {
		qs := models.QuestionStats{QuestionID: q.ID, Text: q.Text}
		for i, opt := range q.Options {
			qs.Counts = append(qs.Counts, models.OptionCount{
				OptionIndex: i,
				Label:       opt,
				Count:       counts[q.ID][i],
			})
		}
		stats.Questions = append(stats.Questions, qs)
	}

	// Events arrive oldest first; walk backwards for the recent list
	for i := len(events) - 1; i >= 0 && len(stats.RecentVotes) < recentVoteLimit; i-- {
		ev := events[i]
		stats.RecentVotes = append(stats.RecentVotes, models.RecentVote{
			QuestionID:    ev.QuestionID,
			OptionIndex:   ev.OptionIndex,
			ClientAddress: ev.ClientAddress,
			OccurredAt:    ev.OccurredAt,
		})
	}

	return stats
}
