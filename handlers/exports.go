// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Neolvie/PollKiosk/export"
	"github.com/Neolvie/PollKiosk/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exporter *export.Exporter
}

func NewExportHandler(exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// ExportSurvey handles GET /api/admin/surveys/{id}/export
func (h *ExportHandler) ExportSurvey(w http.ResponseWriter, r *http.Request) {
	surveyID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	data, filename, err := h.exporter.ExportSurvey(surveyID)
	if errors.Is(err, export.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
		return
	}
	if err != nil {
		slog.Error("failed to export survey", "survey_id", surveyID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	slog.Info("survey exported", "survey_id", surveyID, "bytes", len(data))

	writeAttachment(w, data, filename)
}

// ExportAll handles GET /api/admin/export
func (h *ExportHandler) ExportAll(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.exporter.ExportAll()
	if errors.Is(err, export.ErrNoContent) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No surveys to export")
		return
	}
	if err != nil {
		slog.Error("failed to export surveys", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	slog.Info("all surveys exported", "bytes", len(data))

	writeAttachment(w, data, filename)
}

func writeAttachment(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export response", "error", err)
	}
}
