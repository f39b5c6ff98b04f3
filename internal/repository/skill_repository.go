package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-tracker/internal/models"
)

// SkillRepository provides methods to interact with the Skill model in the database.
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository instance with the provided GORM database connection.
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// CreateSkill creates a new Skill in the database.
func (r *SkillRepository) CreateSkill(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// GetSkill retrieves a Skill by its ID from the database.
func (r *SkillRepository) GetSkill(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	return &skill, err
}

// GetSkillsByIDs retrieves all Skills whose IDs are in the given set.
func (r *SkillRepository) GetSkillsByIDs(ids []uuid.UUID) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

// ListSkills retrieves Skills filtered by exact category and/or status,
// ordered by category first and creation time second.
func (r *SkillRepository) ListSkills(category *string, status *models.SkillStatus) ([]models.Skill, error) {
	query := r.db.Model(&models.Skill{})
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var skills []models.Skill
	err := query.Order("category").Order("created_at").Find(&skills).Error
	return skills, err
}

// UpdateSkill updates an existing Skill in the database.
func (r *SkillRepository) UpdateSkill(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// DeleteSkill deletes a Skill and its study log associations in one transaction.
func (r *SkillRepository) DeleteSkill(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// First delete all association rows so no link references a deleted skill
		if err := tx.Exec("DELETE FROM study_skill_association WHERE skill_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Skill{}, "id = ?", id).Error
	})
}

// SkillNameExists reports whether a skill with the given name already exists,
// ignoring the skill identified by exclude (for updates).
func (r *SkillRepository) SkillNameExists(name string, exclude uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).
		Where("name = ?", name).
		Where("id <> ?", exclude).
		Count(&count).Error
	return count > 0, err
}

// CountSkillsByStatus returns the number of skills in each status.
func (r *SkillRepository) CountSkillsByStatus() (map[models.SkillStatus]int, error) {
	var rows []struct {
		Status models.SkillStatus
		Count  int
	}
	err := r.db.Model(&models.Skill{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.SkillStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
