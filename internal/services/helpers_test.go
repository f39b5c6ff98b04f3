package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Skill{}, &models.StudyLog{}))
	return db
}

func strPtr(s string) *string { return &s }

func mustCreateSkill(t *testing.T, svc *SkillService, name string) *models.Skill {
	t.Helper()
	skill, err := svc.CreateSkill(SkillInput{Name: &name})
	require.NoError(t, err)
	return skill
}

func mustCreateLog(t *testing.T, repo *repository.StudyLogRepository, date time.Time, hours float64, skills ...models.Skill) *models.StudyLog {
	t.Helper()
	log := &models.StudyLog{
		ID:     uuid.New(),
		Date:   date,
		Hours:  hours,
		Skills: skills,
	}
	require.NoError(t, repo.CreateStudyLog(log))
	return log
}

func associationCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table("study_skill_association").Count(&count).Error)
	return count
}
