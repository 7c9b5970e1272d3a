// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/Neolvie/PollKiosk/layout"
	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/respondents"
	"github.com/Neolvie/PollKiosk/sheet"
)

var (
	ErrNotFound  = errors.New("survey not found")
	ErrNoContent = errors.New("no surveys to export")
)

const sheetName = "Results"

// SurveyStore supplies survey metadata with questions in persisted order.
type SurveyStore interface {
	GetSurvey(id int64) (models.SurveyWithQuestions, error)
	ListSurveys() ([]models.SurveyWithQuestions, error)
}

// VoteStore supplies the ordered vote event snapshot for a question set.
type VoteStore interface {
	ListVotes(questionIDs []int64) ([]models.VoteEvent, error)
}

// Exporter turns stored surveys and votes into XLSX workbooks. Every
// call recomputes from a fresh snapshot; nothing is cached between
// requests because the vote log grows underneath us.
type Exporter struct {
	surveys SurveyStore
	votes   VoteStore
}

func New(surveys SurveyStore, votes VoteStore) *Exporter {
	return &Exporter{surveys: surveys, votes: votes}
}

// ExportSurvey renders one survey as a workbook and returns the bytes
// plus a suggested filename. Returns ErrNotFound for an unknown id.
func (e *Exporter) ExportSurvey(surveyID int64) ([]byte, string, error) {
	swq, err := e.surveys.GetSurvey(surveyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load survey: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	w, err := sheet.NewWriter(f, sheetName)
	if err != nil {
		return nil, "", err
	}

	if _, err := e.writeSurveyBlock(w, swq, 1); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("survey_%d_%s.xlsx", surveyID, sanitizeTitle(swq.Survey.Title))
	return buf.Bytes(), filename, nil
}

// ExportAll renders every survey into one sheet, one blank separator row
// between blocks, in creation order. A survey whose vote data cannot be
// read is skipped, not fatal. Returns ErrNoContent when no surveys exist.
func (e *Exporter) ExportAll() ([]byte, string, error) {
	surveys, err := e.surveys.ListSurveys()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list surveys: %w", err)
	}
	if len(surveys) == 0 {
		return nil, "", ErrNoContent
	}

	f := excelize.NewFile()
	defer f.Close()

	w, err := sheet.NewWriter(f, sheetName)
	if err != nil {
		return nil, "", err
	}

	row := 1
	wrote := false
	for _, swq := range surveys {
		startRow := row
		if wrote {
			startRow++ // one separator row between blocks
		}
		next, err := e.writeSurveyBlock(w, swq, startRow)
		if err != nil {
			slog.Warn("skipping survey in export", "survey_id", swq.Survey.ID, "error", err)
			continue
		}
		row = next
		wrote = true
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("surveys_export_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// writeSurveyBlock does the reconstruct → plan → render sequence for one
// survey and returns the next free row.
func (e *Exporter) writeSurveyBlock(w *sheet.Writer, swq models.SurveyWithQuestions, startRow int) (int, error) {
	questionIDs := make([]int64, len(swq.Questions))
	for i, q := range swq.Questions {
		questionIDs[i] = q.ID
	}

	events, err := e.votes.ListVotes(questionIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to load votes: %w", err)
	}

	rows := respondents.Reconstruct(events, respondents.QuestionsByID(swq.Questions))
	plan := layout.Plan(swq.Questions)

	return w.WriteBlock(swq.Survey.Title, plan, rows, startRow)
}

// sanitizeTitle collapses a survey title into a filename-safe slug.
func sanitizeTitle(title string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}

	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "survey"
	}

	runes := []rune(slug)
	if len(runes) > 40 {
		slug = strings.Trim(string(runes[:40]), "_")
	}
	return slug
}
