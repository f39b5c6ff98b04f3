package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-tracker/internal/models"
)

// StudyLogFilter narrows a study log listing. From and To are calendar-day
// bounds already normalized by the caller (To is exclusive so that legacy
// rows with a noon time component are still matched on their last day).
type StudyLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// StudyLogRepository provides methods to interact with the StudyLog model in the database.
type StudyLogRepository struct {
	db *gorm.DB
}

// NewStudyLogRepository creates a new StudyLogRepository instance with the provided GORM database connection.
func NewStudyLogRepository(db *gorm.DB) *StudyLogRepository {
	return &StudyLogRepository{db: db}
}

// CreateStudyLog persists a study log and its skill associations as one unit.
// Skills must already exist; only association rows are written for them.
func (r *StudyLogRepository) CreateStudyLog(log *models.StudyLog) error {
	return r.db.Omit("Skills.*").Create(log).Error
}

// GetStudyLog retrieves a StudyLog by its ID along with its associated Skills.
func (r *StudyLogRepository) GetStudyLog(id uuid.UUID) (*models.StudyLog, error) {
	var log models.StudyLog
	err := r.db.Preload("Skills").First(&log, "id = ?", id).Error
	return &log, err
}

// ListStudyLogs retrieves study logs ordered by date descending, applying the
// given range and pagination filter.
func (r *StudyLogRepository) ListStudyLogs(filter StudyLogFilter) ([]models.StudyLog, error) {
	query := r.db.Model(&models.StudyLog{}).Preload("Skills")
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date < ?", *filter.To)
	}
	var logs []models.StudyLog
	err := query.Order("date DESC").Limit(filter.Limit).Offset(filter.Offset).Find(&logs).Error
	return logs, err
}

// DeleteStudyLog deletes a StudyLog and its skill associations in one transaction.
func (r *StudyLogRepository) DeleteStudyLog(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM study_skill_association WHERE study_log_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StudyLog{}, "id = ?", id).Error
	})
}

// SumHoursOnOrAfter returns the total hours over logs dated on or after from.
func (r *StudyLogRepository) SumHoursOnOrAfter(from time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.StudyLog{}).
		Where("date >= ?", from).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}

// ListStudyLogsOnOrAfter returns logs dated on or after from, most recent
// first, with skills preloaded.
func (r *StudyLogRepository) ListStudyLogsOnOrAfter(from time.Time) ([]models.StudyLog, error) {
	var logs []models.StudyLog
	err := r.db.Preload("Skills").
		Where("date >= ?", from).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

// ListStudyDates returns the date of every study log, most recent first.
// Deduplication to distinct calendar days happens in the statistics service.
func (r *StudyLogRepository) ListStudyDates() ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&models.StudyLog{}).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}
