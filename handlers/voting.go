// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Neolvie/PollKiosk/auth"
	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/middleware"
	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// GetCurrentSurvey handles GET /api/current-survey
// Returns the survey kiosk clients should render, or 404 when none is set
func (h *VotingHandler) GetCurrentSurvey(w http.ResponseWriter, r *http.Request) {
	activeID, err := h.store.ActiveSurveyID()
	if err != nil {
		slog.Error("failed to query active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if activeID == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active survey")
		return
	}

	swq, err := h.store.GetSurvey(*activeID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, swq)
}

// CreateSession handles POST /api/session
// Mints a session token the client echoes on subsequent votes, so one
// respondent's answers can be grouped without the IP heuristic
func (h *VotingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	token := auth.GenerateSessionToken()

	slog.Info("session created")

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionToken: token,
	})
}

// SubmitVote handles POST /api/vote
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only the active survey accepts votes
	activeID, err := h.store.ActiveSurveyID()
	if err != nil {
		slog.Error("failed to query active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if activeID == nil || *activeID != req.SurveyID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Survey is not active")
		return
	}

	swq, err := h.store.GetSurvey(req.SurveyID)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var question *models.Question
	for i := range swq.Questions {
		if swq.Questions[i].ID == req.QuestionID {
			question = &swq.Questions[i]
			break
		}
	}
	if question == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found in survey")
		return
	}

	if req.OptionIndex < 0 || req.OptionIndex >= len(question.Options) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option index")
		return
	}

	sessionToken := r.Header.Get("X-Session-Token")
	clientIP := middleware.GetClientIP(r)

	if err := h.store.SaveVote(req.QuestionID, req.OptionIndex, sessionToken, clientIP, time.Now()); err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	slog.Info("vote recorded",
		"survey_id", req.SurveyID,
		"question_id", req.QuestionID,
		"option_index", req.OptionIndex,
		"has_session", sessionToken != "",
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{Success: true})
}
