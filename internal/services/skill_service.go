package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"skill-tracker/internal/apperrors"
	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
)

// SkillInput carries the fields of a skill create or partial update request.
// Nil pointers mean "field not supplied"; an explicit empty category clears it.
type SkillInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// SkillService implements the skill mutation and query operations.
type SkillService struct {
	repo *repository.SkillRepository
}

// NewSkillService creates a new SkillService backed by the given repository.
func NewSkillService(repo *repository.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

// CreateSkill validates the input and persists a new skill.
func (s *SkillService) CreateSkill(input SkillInput) (*models.Skill, error) {
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, apperrors.Validation("Skill name is required")
	}

	status := models.StatusToLearn
	if input.Status != nil && *input.Status != "" {
		parsed, err := models.ParseSkillStatus(*input.Status)
		if err != nil {
			return nil, apperrors.Validation("Invalid status value")
		}
		status = parsed
	}

	exists, err := s.repo.SkillNameExists(name, uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "checking skill name uniqueness")
	}
	if exists {
		return nil, apperrors.Conflict("Skill name already exists")
	}

	skill := &models.Skill{
		ID:       uuid.New(),
		Name:     name,
		Status:   status,
		Category: normalizeCategory(input.Category),
	}
	if err := s.repo.CreateSkill(skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Skill name already exists")
		}
		return nil, errors.Wrap(err, "creating skill")
	}
	return skill, nil
}

// UpdateSkill applies a partial update to an existing skill. Only supplied
// fields change; the name only changes when non-empty after trimming.
func (s *SkillService) UpdateSkill(id uuid.UUID, input SkillInput) (*models.Skill, error) {
	skill, err := s.repo.GetSkill(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Skill not found")
		}
		return nil, errors.Wrap(err, "fetching skill")
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			skill.Name = name
		}
	}
	if input.Category != nil {
		skill.Category = normalizeCategory(input.Category)
	}
	if input.Status != nil {
		parsed, err := models.ParseSkillStatus(*input.Status)
		if err != nil {
			return nil, apperrors.Validation("Invalid status value")
		}
		skill.Status = parsed
	}

	exists, err := s.repo.SkillNameExists(skill.Name, skill.ID)
	if err != nil {
		return nil, errors.Wrap(err, "checking skill name uniqueness")
	}
	if exists {
		return nil, apperrors.Conflict("Skill name already exists")
	}

	if err := s.repo.UpdateSkill(skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Skill name already exists")
		}
		return nil, errors.Wrap(err, "updating skill")
	}
	return skill, nil
}

// DeleteSkill removes a skill and its study log associations.
func (s *SkillService) DeleteSkill(id uuid.UUID) error {
	if _, err := s.repo.GetSkill(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Skill not found")
		}
		return errors.Wrap(err, "fetching skill")
	}
	if err := s.repo.DeleteSkill(id); err != nil {
		return errors.Wrap(err, "deleting skill")
	}
	return nil
}

// ListSkills returns skills optionally filtered by exact category and/or
// status, ordered by category then creation time.
func (s *SkillService) ListSkills(category, status *string) ([]models.Skill, error) {
	var statusFilter *models.SkillStatus
	if status != nil && *status != "" {
		parsed, err := models.ParseSkillStatus(*status)
		if err != nil {
			return nil, apperrors.Validation("Invalid status value")
		}
		statusFilter = &parsed
	}
	if category != nil && *category == "" {
		category = nil
	}

	skills, err := s.repo.ListSkills(category, statusFilter)
	if err != nil {
		return nil, errors.Wrap(err, "listing skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}

// normalizeCategory trims the supplied category and maps empty to "no category".
func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
