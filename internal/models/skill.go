package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SkillStatus is the learning state of a skill. Only the three enumerated
// values are valid; anything else is rejected at the boundary.
type SkillStatus string

const (
	StatusToLearn    SkillStatus = "To Learn"
	StatusInProgress SkillStatus = "In Progress"
	StatusLearned    SkillStatus = "Learned"
)

// AllSkillStatuses lists every valid status in display order.
var AllSkillStatuses = []SkillStatus{StatusToLearn, StatusInProgress, StatusLearned}

// ParseSkillStatus converts a wire string into a SkillStatus.
func ParseSkillStatus(s string) (SkillStatus, error) {
	switch SkillStatus(s) {
	case StatusToLearn, StatusInProgress, StatusLearned:
		return SkillStatus(s), nil
	}
	return "", fmt.Errorf("unknown skill status %q", s)
}

// Skill represents a trackable learning target stored in the database.
type Skill struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string      `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Status    SkillStatus `json:"status" gorm:"size:20;not null"`
	Category  *string     `json:"category" gorm:"size:100"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	StudyLogs []*StudyLog `json:"-" gorm:"many2many:study_skill_association"`
}

// TableName keeps the original singular table name.
func (Skill) TableName() string { return "skill" }
