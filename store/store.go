// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Neolvie/PollKiosk/models"
)

// Store wraps the database handle with all queries the service needs.
// Placeholders are written as ascending $n, which binds positionally on
// both lib/pq and modernc.org/sqlite.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateSurvey inserts a survey and its questions in one transaction and
// returns the new survey id.
func (s *Store) CreateSurvey(title string, showTitle bool, questions []models.CreateQuestionRequest) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var surveyID int64
	err = tx.QueryRow(`
		INSERT INTO survey (title, show_title, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, title, boolToInt(showTitle), time.Now()).Scan(&surveyID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert survey: %w", err)
	}

	for i, q := range questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return 0, fmt.Errorf("failed to encode options: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO question (survey_id, position, text, kind, options)
			VALUES ($1, $2, $3, $4, $5)
		`, surveyID, i, q.Text, q.Kind, string(optionsJSON))
		if err != nil {
			return 0, fmt.Errorf("failed to insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit survey: %w", err)
	}

	return surveyID, nil
}

// GetSurvey returns one survey with its questions in persisted order.
// Returns an error wrapping sql.ErrNoRows when the id does not resolve.
func (s *Store) GetSurvey(id int64) (models.SurveyWithQuestions, error) {
	var swq models.SurveyWithQuestions
	var showTitle int

	err := s.db.QueryRow(`
		SELECT id, title, show_title, created_at
		FROM survey
		WHERE id = $1
	`, id).Scan(&swq.Survey.ID, &swq.Survey.Title, &showTitle, &swq.Survey.CreatedAt)
	if err == sql.ErrNoRows {
		return models.SurveyWithQuestions{}, fmt.Errorf("survey %d: %w", id, sql.ErrNoRows)
	}
	if err != nil {
		return models.SurveyWithQuestions{}, fmt.Errorf("failed to query survey: %w", err)
	}
	swq.Survey.ShowTitle = showTitle != 0

	swq.Questions, err = s.questionsForSurvey(id)
	if err != nil {
		return models.SurveyWithQuestions{}, err
	}

	return swq, nil
}

// ListSurveys returns every survey with questions, in creation order.
func (s *Store) ListSurveys() ([]models.SurveyWithQuestions, error) {
	rows, err := s.db.Query(`
		SELECT id, title, show_title, created_at
		FROM survey
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query surveys: %w", err)
	}
	defer rows.Close()

	surveys := []models.SurveyWithQuestions{}
	for rows.Next() {
		var swq models.SurveyWithQuestions
		var showTitle int
		if err := rows.Scan(&swq.Survey.ID, &swq.Survey.Title, &showTitle, &swq.Survey.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		swq.Survey.ShowTitle = showTitle != 0
		surveys = append(surveys, swq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate surveys: %w", err)
	}

	for i := range surveys {
		surveys[i].Questions, err = s.questionsForSurvey(surveys[i].Survey.ID)
		if err != nil {
			return nil, err
		}
	}

	return surveys, nil
}

// DeleteSurvey removes a survey; questions and votes cascade.
func (s *Store) DeleteSurvey(id int64) error {
	_, err := s.db.Exec(`DELETE FROM survey WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	return nil
}

// SaveVote appends one vote event. Empty session token or client address
// is stored as NULL.
func (s *Store) SaveVote(questionID int64, optionIndex int, sessionToken, clientAddress string, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO vote (question_id, option_index, session_token, client_address, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, questionID, optionIndex, nullable(sessionToken), nullable(clientAddress), at)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// ListVotes returns every vote event for the given question ids, ordered
// by occurrence time with insertion order breaking ties. One query, so an
// export reads a consistent snapshot.
func (s *Store) ListVotes(questionIDs []int64) ([]models.VoteEvent, error) {
	if len(questionIDs) == 0 {
		return []models.VoteEvent{}, nil
	}

	placeholders := make([]string, len(questionIDs))
	args := make([]interface{}, len(questionIDs))
	for i, id := range questionIDs {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	rows, err := s.db.Query(`
		SELECT id, question_id, option_index, session_token, client_address, voted_at
		FROM vote
		WHERE question_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY voted_at, id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	events := []models.VoteEvent{}
	for rows.Next() {
		var ev models.VoteEvent
		var token, addr sql.NullString
		if err := rows.Scan(&ev.ID, &ev.QuestionID, &ev.OptionIndex, &token, &addr, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		ev.SessionToken = token.String
		ev.ClientAddress = addr.String
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return events, nil
}

// ActiveSurveyID returns the survey kiosk clients should show, or nil
// when none is set.
func (s *Store) ActiveSurveyID() (*int64, error) {
	var surveyID sql.NullInt64
	err := s.db.QueryRow(`SELECT survey_id FROM active_survey WHERE id = 1`).Scan(&surveyID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active survey: %w", err)
	}
	if !surveyID.Valid {
		return nil, nil
	}
	id := surveyID.Int64
	return &id, nil
}

// SetActiveSurvey updates the single-row active pointer. A nil id clears it.
func (s *Store) SetActiveSurvey(surveyID *int64) error {
	var value sql.NullInt64
	if surveyID != nil {
		value = sql.NullInt64{Int64: *surveyID, Valid: true}
	}
	_, err := s.db.Exec(`
		INSERT INTO active_survey (id, survey_id)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET survey_id = excluded.survey_id
	`, value)
	if err != nil {
		return fmt.Errorf("failed to set active survey: %w", err)
	}
	return nil
}

func (s *Store) questionsForSurvey(surveyID int64) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, survey_id, position, text, kind, options
		FROM question
		WHERE survey_id = $1
		ORDER BY position, id
	`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var optionsJSON string
		if err := rows.Scan(&q.ID, &q.SurveyID, &q.Position, &q.Text, &q.Kind, &optionsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for question %d: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
