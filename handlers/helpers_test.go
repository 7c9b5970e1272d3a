package handlers

import (
	"database/sql"
	"strconv"
	"testing"
	"time"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/models"
	"github.com/Neolvie/PollKiosk/store"
	"github.com/Neolvie/PollKiosk/testutil"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return testutil.SetupTestDB(t)
}

func getTestConfig() cliparse.Config {
	return testutil.GetTestConfig()
}

func newTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()
	conn := setupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return store.New(conn), conn
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func testBaseTime() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func twoQuestionSurvey() []models.CreateQuestionRequest {
	return []models.CreateQuestionRequest{
		{Text: "Rate us", Kind: models.KindSingleChoice, Options: []string{"Good", "Bad"}},
		{Text: "Features used", Kind: models.KindMultiSelect, Options: []string{"Search", "Export"}},
	}
}
