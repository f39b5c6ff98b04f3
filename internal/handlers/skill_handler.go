package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skill-tracker/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// ListSkills returns all skills, optionally filtered
// @Summary List skills
// @Description Get all skills, optionally filtered by category and/or status
// @Tags skills
// @Accept json
// @Produce json
// @Param category query string false "Exact-match category filter"
// @Param status query string false "Status filter (To Learn, In Progress, Learned)"
// @Success 200 {array} models.Skill "List of skills"
// @Failure 400 {object} map[string]interface{} "Invalid status value"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /skills [get]
func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	var category, status *string
	if v := c.Query("category"); v != "" {
		category = &v
	}
	if v := c.Query("status"); v != "" {
		status = &v
	}

	skills, err := h.skillService.ListSkills(category, status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skills)
}

// CreateSkill creates a new skill
// @Summary Create a new skill
// @Description Create a skill with a name, optional category and optional status
// @Tags skills
// @Accept json
// @Produce json
// @Param skill body services.SkillInput true "Skill data"
// @Success 201 {object} models.Skill "Skill successfully created"
// @Failure 400 {object} map[string]interface{} "Missing name or invalid status"
// @Failure 409 {object} map[string]interface{} "Skill name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /skills [post]
func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	var input services.SkillInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing skill data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	skill, err := h.skillService.CreateSkill(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill partially updates a skill
// @Summary Update a skill
// @Description Apply a partial update to a skill; only supplied fields change
// @Tags skills
// @Accept json
// @Produce json
// @Param id path string true "Skill ID" Format(uuid)
// @Param skill body services.SkillInput true "Fields to update"
// @Success 200 {object} models.Skill "Updated skill"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or status"
// @Failure 404 {object} map[string]interface{} "Skill not found"
// @Failure 409 {object} map[string]interface{} "Skill name already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /skills/{id} [put]
func (h *SkillHandler) UpdateSkill(c *fiber.Ctx) error {
	idStr := c.Params("id")
	skillID, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid skill UUID format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid UUID"})
	}

	var input services.SkillInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing skill update data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	skill, err := h.skillService.UpdateSkill(skillID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(skill)
}

// DeleteSkill deletes a skill
// @Summary Delete a skill
// @Description Delete a skill and its study log associations
// @Tags skills
// @Accept json
// @Produce json
// @Param id path string true "Skill ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Skill deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 404 {object} map[string]interface{} "Skill not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *fiber.Ctx) error {
	idStr := c.Params("id")
	skillID, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid skill UUID format: %s - Error: %v", idStr, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid UUID"})
	}

	if err := h.skillService.DeleteSkill(skillID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}
