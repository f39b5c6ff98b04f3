package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skill-tracker/internal/services"
)

type StudyLogHandler struct {
	logService *services.StudyLogService
}

func NewStudyLogHandler(logService *services.StudyLogService) *StudyLogHandler {
	return &StudyLogHandler{logService: logService}
}

// ListStudyLogs returns study logs, most recent first
// @Summary List study logs
// @Description Get study logs ordered by date descending with optional date range and pagination
// @Tags logs
// @Accept json
// @Produce json
// @Param date_from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param date_to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Maximum results (default 50, capped at 100)"
// @Param offset query int false "Results to skip (default 0)"
// @Success 200 {array} models.StudyLog "List of study logs"
// @Failure 400 {object} map[string]interface{} "Invalid date or pagination parameter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /logs [get]
func (h *StudyLogHandler) ListStudyLogs(c *fiber.Ctx) error {
	logs, err := h.logService.ListStudyLogs(services.StudyLogListInput{
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Limit:    c.Query("limit"),
		Offset:   c.Query("offset"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// CreateStudyLog creates a new study log
// @Summary Create a study log
// @Description Record a study session with a date, hours and optional skills
// @Tags logs
// @Accept json
// @Produce json
// @Param log body services.StudyLogInput true "Study log data"
// @Success 201 {object} models.StudyLog "Study log successfully created"
// @Failure 400 {object} map[string]interface{} "Missing or invalid date or hours"
// @Failure 404 {object} map[string]interface{} "One or more skill IDs not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /logs [post]
func (h *StudyLogHandler) CreateStudyLog(c *fiber.Ctx) error {
	var input services.StudyLogInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing study log data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	studyLog, err := h.logService.CreateStudyLog(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(studyLog)
}

// DeleteStudyLog deletes a study log
// @Summary Delete a study log
// @Description Delete a study log and its skill associations
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Study log ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Study log deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Study log not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /logs/{id} [delete]
func (h *StudyLogHandler) DeleteStudyLog(c *fiber.Ctx) error {
	idStr := c.Params("id")
	logID, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid study log UUID format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid UUID"})
	}

	if err := h.logService.DeleteStudyLog(logID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Study log deleted successfully"})
}
