package models

import (
	"time"

	"github.com/google/uuid"
)

// StudyLog represents one study session. Logs are created and deleted but
// never updated in place.
//
// Date carries a time component for historical reasons: current rows are
// created at midnight UTC from date-only input, while rows migrated from an
// earlier schema sit at noon. All date comparisons therefore work on calendar
// days, never on exact timestamps.
type StudyLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Date      time.Time `json:"date" gorm:"not null"`
	Hours     float64   `json:"hours" gorm:"not null"`
	Notes     *string   `json:"notes"`
	Skills    []Skill   `json:"skills" gorm:"many2many:study_skill_association"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName keeps the original singular table name.
func (StudyLog) TableName() string { return "study_log" }
