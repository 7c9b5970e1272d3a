// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/db"
	"github.com/Neolvie/PollKiosk/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; nothing leaks between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminUsername: "admin",
		AdminPassword: "changeme",
	}
}

// CreateTestSurvey inserts a survey with the given questions and returns
// its id along with the question ids in order.
func CreateTestSurvey(t *testing.T, conn *sql.DB, title string, questions []models.CreateQuestionRequest) (surveyID int64, questionIDs []int64) {
	t.Helper()

	err := conn.QueryRow(`
		INSERT INTO survey (title, show_title, created_at)
		VALUES ($1, 1, $2)
		RETURNING id
	`, title, time.Now()).Scan(&surveyID)
	if err != nil {
		t.Fatalf("Failed to create test survey: %v", err)
	}

	for i, q := range questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			t.Fatalf("Failed to encode options: %v", err)
		}

		var questionID int64
		err = conn.QueryRow(`
			INSERT INTO question (survey_id, position, text, kind, options)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, surveyID, i, q.Text, q.Kind, string(optionsJSON)).Scan(&questionID)
		if err != nil {
			t.Fatalf("Failed to create test question: %v", err)
		}
		questionIDs = append(questionIDs, questionID)
	}

	return surveyID, questionIDs
}

// SetTestActiveSurvey points the active-survey row at the given survey
func SetTestActiveSurvey(t *testing.T, conn *sql.DB, surveyID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO active_survey (id, survey_id)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET survey_id = excluded.survey_id
	`, surveyID)
	if err != nil {
		t.Fatalf("Failed to set active survey: %v", err)
	}
}

// AddTestVote appends one vote event. Empty token/address become NULL.
func AddTestVote(t *testing.T, conn *sql.DB, questionID int64, optionIndex int, sessionToken, clientAddress string, at time.Time) {
	t.Helper()

	var token, addr interface{}
	if sessionToken != "" {
		token = sessionToken
	}
	if clientAddress != "" {
		addr = clientAddress
	}

	_, err := conn.Exec(`
		INSERT INTO vote (question_id, option_index, session_token, client_address, voted_at)
		VALUES ($1, $2, $3, $4, $5)
	`, questionID, optionIndex, token, addr, at)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
