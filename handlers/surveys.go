// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/middleware"
	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/store"
)

type SurveyHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewSurveyHandler(st *store.Store, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{store: st, cfg: cfg}
}

// ListSurveys handles GET /api/admin/surveys
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.store.ListSurveys()
	if err != nil {
		slog.Error("failed to list surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	currentID, err := h.store.ActiveSurveyID()
	if err != nil {
		slog.Error("failed to query active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SurveyListResponse{
		Surveys:         surveys,
		CurrentSurveyID: currentID,
	})
}

// CreateSurvey handles POST /api/admin/surveys
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Questions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one question is required")
		return
	}

	for i := range req.Questions {
		q := &req.Questions[i]
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "question text is required")
			return
		}

		if q.Kind == "" {
			q.Kind = models.KindSingleChoice
		}
		if q.Kind != models.KindSingleChoice && q.Kind != models.KindMultiSelect {
			middleware.ErrorResponse(w, http.StatusBadRequest, "kind must be single_choice or multi_select")
			return
		}

		// Drop blank options, like the legacy admin panel did
		options := []string{}
		for _, opt := range q.Options {
			if trimmed := strings.TrimSpace(opt); trimmed != "" {
				options = append(options, trimmed)
			}
		}
		if len(options) < 2 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "each question needs at least 2 options")
			return
		}
		q.Options = options
	}

	surveyID, err := h.store.CreateSurvey(req.Title, req.ShowTitle, req.Questions)
	if err != nil {
		slog.Error("failed to create survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create survey")
		return
	}

	slog.Info("survey created", "survey_id", surveyID, "questions", len(req.Questions))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSurveyResponse{
		SurveyID: surveyID,
	})
}

// DeleteSurvey handles DELETE /api/admin/surveys/{id}
func (h *SurveyHandler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	// Don't allow deleting the active survey
	currentID, err := h.store.ActiveSurveyID()
	if err != nil {
		slog.Error("failed to query active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if currentID != nil && *currentID == surveyID {
		middleware.ErrorResponse(w, http.StatusConflict, "Cannot delete active survey")
		return
	}

	if _, err := h.store.GetSurvey(surveyID); errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	} else if err != nil {
		slog.Error("failed to query survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.store.DeleteSurvey(surveyID); err != nil {
		slog.Error("failed to delete survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete survey")
		return
	}

	slog.Info("survey deleted", "survey_id", surveyID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{Success: true})
}

// SetCurrentSurvey handles POST /api/admin/set-current-survey
// A null survey_id clears the active pointer
func (h *SurveyHandler) SetCurrentSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.SetCurrentSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.SurveyID != nil {
		if _, err := h.store.GetSurvey(*req.SurveyID); errors.Is(err, sql.ErrNoRows) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
			return
		} else if err != nil {
			slog.Error("failed to query survey", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := h.store.SetActiveSurvey(req.SurveyID); err != nil {
		slog.Error("failed to set active survey", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set active survey")
		return
	}

	if req.SurveyID != nil {
		slog.Info("active survey changed", "survey_id", *req.SurveyID)
	} else {
		slog.Info("active survey cleared")
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{Success: true})
}
