package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
	"skill-tracker/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Skill{}, &models.StudyLog{}))

	skillRepo := repository.NewSkillRepository(db)
	logRepo := repository.NewStudyLogRepository(db)
	skillHandler := NewSkillHandler(services.NewSkillService(skillRepo))
	logHandler := NewStudyLogHandler(services.NewStudyLogService(logRepo, skillRepo))
	statsHandler := NewStatsHandler(services.NewStatsService(skillRepo, logRepo))

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/skills", skillHandler.ListSkills)
	api.Post("/skills", skillHandler.CreateSkill)
	api.Put("/skills/:id", skillHandler.UpdateSkill)
	api.Delete("/skills/:id", skillHandler.DeleteSkill)
	api.Get("/logs", logHandler.ListStudyLogs)
	api.Post("/logs", logHandler.CreateStudyLog)
	api.Delete("/logs/:id", logHandler.DeleteStudyLog)
	api.Get("/stats", statsHandler.GetStats)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "app": "Skill Tracker"})
	})
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONArray(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}
