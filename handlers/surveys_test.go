package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/testutil"
)

func TestCreateSurvey(t *testing.T) {
	st, _ := newTestStore(t)
	handler := NewSurveyHandler(st, getTestConfig())

	tests := []struct {
		name           string
		request        models.CreateSurveyRequest
		expectedStatus int
	}{
		{
			name: "valid survey",
			request: models.CreateSurveyRequest{
				Title:     "Feedback",
				ShowTitle: true,
				Questions: []models.CreateQuestionRequest{
					{Text: "Rate us", Kind: models.KindSingleChoice, Options: []string{"Good", "Bad"}},
					{Text: "Features", Kind: models.KindMultiSelect, Options: []string{"X", "Y", "Z"}},
				},
			},
			expectedStatus: 201,
		},
		{
			name: "kind defaults to single choice",
			request: models.CreateSurveyRequest{
				Title: "Defaulted",
				Questions: []models.CreateQuestionRequest{
					{Text: "Q", Options: []string{"A", "B"}},
				},
			},
			expectedStatus: 201,
		},
		{
			name: "blank options dropped but still enough",
			request: models.CreateSurveyRequest{
				Title: "Trimmed",
				Questions: []models.CreateQuestionRequest{
					{Text: "Q", Kind: models.KindSingleChoice, Options: []string{" A ", "", "B", "  "}},
				},
			},
			expectedStatus: 201,
		},
		{
			name: "missing title",
			request: models.CreateSurveyRequest{
				Questions: []models.CreateQuestionRequest{
					{Text: "Q", Kind: models.KindSingleChoice, Options: []string{"A", "B"}},
				},
			},
			expectedStatus: 400,
		},
		{
			name:           "no questions",
			request:        models.CreateSurveyRequest{Title: "Empty"},
			expectedStatus: 400,
		},
		{
			name: "too few options after trimming",
			request: models.CreateSurveyRequest{
				Title: "Thin",
				Questions: []models.CreateQuestionRequest{
					{Text: "Q", Kind: models.KindSingleChoice, Options: []string{"A", "  "}},
				},
			},
			expectedStatus: 400,
		},
		{
			name: "invalid kind",
			request: models.CreateSurveyRequest{
				Title: "Bad kind",
				Questions: []models.CreateQuestionRequest{
					{Text: "Q", Kind: "ranked", Options: []string{"A", "B"}},
				},
			},
			expectedStatus: 400,
		},
		{
			name: "blank question text",
			request: models.CreateSurveyRequest{
				Title: "Blank question",
				Questions: []models.CreateQuestionRequest{
					{Text: "   ", Kind: models.KindSingleChoice, Options: []string{"A", "B"}},
				},
			},
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/admin/surveys", tt.request, nil)
			w := httptest.NewRecorder()

			handler.CreateSurvey(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != 201 {
				return
			}

			var resp models.CreateSurveyResponse
			testutil.AssertJSON(t, w, &resp)

			swq, err := st.GetSurvey(resp.SurveyID)
			if err != nil {
				t.Fatalf("Created survey not readable: %v", err)
			}
			if len(swq.Questions) != len(tt.request.Questions) {
				t.Errorf("Expected %d questions, got %d", len(tt.request.Questions), len(swq.Questions))
			}
			for _, q := range swq.Questions {
				if q.Kind != models.KindSingleChoice && q.Kind != models.KindMultiSelect {
					t.Errorf("Persisted invalid kind %q", q.Kind)
				}
				for _, opt := range q.Options {
					if opt == "" {
						t.Error("Blank option persisted")
					}
				}
			}
		})
	}
}

func TestListSurveys(t *testing.T) {
	st, conn := newTestStore(t)
	handler := NewSurveyHandler(st, getTestConfig())

	firstID, _ := testutil.CreateTestSurvey(t, conn, "First", twoQuestionSurvey())
	secondID, _ := testutil.CreateTestSurvey(t, conn, "Second", twoQuestionSurvey())
	testutil.SetTestActiveSurvey(t, conn, secondID)

	req := testutil.MakeRequest("GET", "/api/admin/surveys", nil, nil)
	w := httptest.NewRecorder()

	handler.ListSurveys(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.SurveyListResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Surveys) != 2 {
		t.Fatalf("Expected 2 surveys, got %d", len(resp.Surveys))
	}
	// Creation order
	if resp.Surveys[0].Survey.ID != firstID || resp.Surveys[1].Survey.ID != secondID {
		t.Errorf("Surveys out of order: %d, %d", resp.Surveys[0].Survey.ID, resp.Surveys[1].Survey.ID)
	}
	if resp.CurrentSurveyID == nil || *resp.CurrentSurveyID != secondID {
		t.Errorf("Expected current survey %d, got %v", secondID, resp.CurrentSurveyID)
	}
}

func TestDeleteSurvey(t *testing.T) {
	st, conn := newTestStore(t)
	handler := NewSurveyHandler(st, getTestConfig())

	activeID, _ := testutil.CreateTestSurvey(t, conn, "Active", twoQuestionSurvey())
	idleID, _ := testutil.CreateTestSurvey(t, conn, "Idle", twoQuestionSurvey())
	testutil.SetTestActiveSurvey(t, conn, activeID)

	tests := []struct {
		name           string
		surveyID       string
		expectedStatus int
	}{
		{"cannot delete active survey", formatID(activeID), 409},
		{"delete idle survey", formatID(idleID), 200},
		{"unknown survey", "99999", 404},
		{"invalid id", "abc", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/api/admin/surveys/"+tt.surveyID, nil, nil)
			req.SetPathValue("id", tt.surveyID)
			w := httptest.NewRecorder()

			handler.DeleteSurvey(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The idle survey is gone, the active one remains
	if _, err := st.GetSurvey(idleID); err == nil {
		t.Error("Expected idle survey to be deleted")
	}
	if _, err := st.GetSurvey(activeID); err != nil {
		t.Errorf("Expected active survey to remain: %v", err)
	}
}

func TestDeleteSurveyCascadesVotes(t *testing.T) {
	st, conn := newTestStore(t)
	handler := NewSurveyHandler(st, getTestConfig())

	surveyID, questionIDs := testutil.CreateTestSurvey(t, conn, "Doomed", twoQuestionSurvey())
	testutil.AddTestVote(t, conn, questionIDs[0], 0, "tok", "10.0.0.1", testBaseTime())

	req := testutil.MakeRequest("DELETE", "/api/admin/surveys/"+formatID(surveyID), nil, nil)
	req.SetPathValue("id", formatID(surveyID))
	w := httptest.NewRecorder()

	handler.DeleteSurvey(w, req)
	testutil.AssertStatus(t, w, 200)

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE question_id = $1`, questionIDs[0]).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected votes to cascade, %d left", count)
	}
}

func TestSetCurrentSurvey(t *testing.T) {
	st, conn := newTestStore(t)
	handler := NewSurveyHandler(st, getTestConfig())

	surveyID, _ := testutil.CreateTestSurvey(t, conn, "Survey", twoQuestionSurvey())

	// Set
	req := testutil.MakeRequest("POST", "/api/admin/set-current-survey",
		models.SetCurrentSurveyRequest{SurveyID: &surveyID}, nil)
	w := httptest.NewRecorder()
	handler.SetCurrentSurvey(w, req)
	testutil.AssertStatus(t, w, 200)

	current, err := st.ActiveSurveyID()
	if err != nil {
		t.Fatalf("Failed to read active survey: %v", err)
	}
	if current == nil || *current != surveyID {
		t.Errorf("Expected active survey %d, got %v", surveyID, current)
	}

	// Unknown id
	unknown := int64(99999)
	req = testutil.MakeRequest("POST", "/api/admin/set-current-survey",
		models.SetCurrentSurveyRequest{SurveyID: &unknown}, nil)
	w = httptest.NewRecorder()
	handler.SetCurrentSurvey(w, req)
	testutil.AssertStatus(t, w, 404)

	// Clear
	req = testutil.MakeRequest("POST", "/api/admin/set-current-survey",
		models.SetCurrentSurveyRequest{}, nil)
	w = httptest.NewRecorder()
	handler.SetCurrentSurvey(w, req)
	testutil.AssertStatus(t, w, 200)

	current, err = st.ActiveSurveyID()
	if err != nil {
		t.Fatalf("Failed to read active survey: %v", err)
	}
	if current != nil {
		t.Errorf("Expected cleared active survey, got %v", *current)
	}
}
