package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skill-tracker/internal/models"
)

func TestCreateStudyLogEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	_, first := doJSON(t, app, http.MethodPost, "/api/skills", `{"name": "Go"}`)
	_, second := doJSON(t, app, http.MethodPost, "/api/skills", `{"name": "Rust"}`)

	payload := fmt.Sprintf(`{"date": "2024-07-22", "hours": 2.5, "notes": "paired on a CLI", "skill_ids": ["%s", "%s"]}`,
		first["id"], second["id"])
	resp, body := doJSON(t, app, http.MethodPost, "/api/logs", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 2.5, body["hours"])
	assert.Equal(t, "paired on a CLI", body["notes"])

	skills, ok := body["skills"].([]any)
	require.True(t, ok)
	require.Len(t, skills, 2)
	names := map[string]bool{}
	for _, s := range skills {
		names[s.(map[string]any)["name"].(string)] = true
	}
	assert.True(t, names["Go"])
	assert.True(t, names["Rust"])
}

func TestCreateStudyLogEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/logs", `{"hours": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Date is required", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/logs", `{"date": "2024-07-22", "hours": 0}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Hours must be a positive number", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/logs", `{"date": "soon", "hours": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", body["error"])
}

func TestCreateStudyLogEndpointUnknownSkill(t *testing.T) {
	app, db := newTestApp(t)

	payload := fmt.Sprintf(`{"date": "2024-07-22", "hours": 1, "skill_ids": ["%s"]}`, uuid.New())
	resp, body := doJSON(t, app, http.MethodPost, "/api/logs", payload)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "One or more skill IDs not found", body["error"])

	var count int64
	require.NoError(t, db.Model(&models.StudyLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListStudyLogsEndpointLimitCap(t *testing.T) {
	app, db := newTestApp(t)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	logs := make([]models.StudyLog, 0, 105)
	for i := 0; i < 105; i++ {
		logs = append(logs, models.StudyLog{ID: uuid.New(), Date: day.AddDate(0, 0, i), Hours: 1})
	}
	require.NoError(t, db.Create(&logs).Error)

	resp, listed := doJSONArray(t, app, "/api/logs?limit=500")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, listed, 100)

	// Default limit is 50
	resp, listed = doJSONArray(t, app, "/api/logs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, listed, 50)
}

func TestListStudyLogsEndpointInvalidParams(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{
		"/api/logs?limit=abc",
		"/api/logs?offset=-1",
		"/api/logs?date_from=yesterday",
	} {
		resp, body := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid date format or parameter", body["error"])
	}
}

func TestDeleteStudyLogEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	_, created := doJSON(t, app, http.MethodPost, "/api/logs", `{"date": "2024-07-22", "hours": 1}`)
	id := created["id"].(string)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/logs/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Study log deleted successfully", body["message"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/logs/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Study log not found", body["error"])
}

func TestGetStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/skills", `{"name": "Go", "status": "In Progress"}`)
	today := time.Now().UTC().Format("2006-01-02")
	_, _ = doJSON(t, app, http.MethodPost, "/api/logs", fmt.Sprintf(`{"date": "%s", "hours": 2}`, today))

	resp, body := doJSON(t, app, http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	counts, ok := body["skill_counts"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, counts, 3)
	assert.Equal(t, float64(1), counts["In Progress"])

	assert.Equal(t, float64(1), body["daily_streak"])
	assert.Equal(t, float64(2), body["monthly_hours"])

	activity, ok := body["recent_activity"].([]any)
	require.True(t, ok)
	assert.Len(t, activity, 1)
}
