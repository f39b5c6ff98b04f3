package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"skill-tracker/internal/apperrors"
	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
)

const (
	dateLayout      = "2006-01-02"
	defaultLogLimit = 50
	maxLogLimit     = 100
)

// StudyLogInput carries the fields of a study log creation request.
type StudyLogInput struct {
	Date     string      `json:"date" validate:"required"`
	Hours    float64     `json:"hours" validate:"required,gt=0"`
	Notes    *string     `json:"notes"`
	SkillIDs []uuid.UUID `json:"skill_ids"`
}

// StudyLogListInput carries the raw query parameters of a study log listing.
type StudyLogListInput struct {
	DateFrom string
	DateTo   string
	Limit    string
	Offset   string
}

// StudyLogService implements the study log mutation and query operations.
type StudyLogService struct {
	repo     *repository.StudyLogRepository
	skills   *repository.SkillRepository
	validate *validator.Validate
}

// NewStudyLogService creates a new StudyLogService backed by the given repositories.
func NewStudyLogService(repo *repository.StudyLogRepository, skills *repository.SkillRepository) *StudyLogService {
	return &StudyLogService{
		repo:     repo,
		skills:   skills,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateStudyLog validates the input, resolves the referenced skills and
// persists the log with its associations as one atomic unit. If any skill id
// does not resolve, nothing is created.
func (s *StudyLogService) CreateStudyLog(input StudyLogInput) (*models.StudyLog, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Date":
				return nil, apperrors.Validation("Date is required")
			case "Hours":
				return nil, apperrors.Validation("Hours must be a positive number")
			}
		}
		return nil, apperrors.Validation("Invalid request payload")
	}

	date, err := time.ParseInLocation(dateLayout, input.Date, time.UTC)
	if err != nil {
		return nil, apperrors.Validation("Invalid date format. Use YYYY-MM-DD")
	}

	skills := []models.Skill{}
	if len(input.SkillIDs) > 0 {
		skills, err = s.skills.GetSkillsByIDs(input.SkillIDs)
		if err != nil {
			return nil, errors.Wrap(err, "resolving skill ids")
		}
		if len(skills) != len(input.SkillIDs) {
			return nil, apperrors.NotFound("One or more skill IDs not found")
		}
	}

	var notes *string
	if input.Notes != nil {
		if trimmed := strings.TrimSpace(*input.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	log := &models.StudyLog{
		ID:     uuid.New(),
		Date:   date,
		Hours:  input.Hours,
		Notes:  notes,
		Skills: skills,
	}
	if err := s.repo.CreateStudyLog(log); err != nil {
		return nil, errors.Wrap(err, "creating study log")
	}
	return log, nil
}

// DeleteStudyLog removes a study log and its skill associations.
func (s *StudyLogService) DeleteStudyLog(id uuid.UUID) error {
	if _, err := s.repo.GetStudyLog(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Study log not found")
		}
		return errors.Wrap(err, "fetching study log")
	}
	if err := s.repo.DeleteStudyLog(id); err != nil {
		return errors.Wrap(err, "deleting study log")
	}
	return nil
}

// ListStudyLogs returns study logs ordered by date descending, applying the
// optional inclusive calendar-day range and pagination parameters.
func (s *StudyLogService) ListStudyLogs(input StudyLogListInput) ([]models.StudyLog, error) {
	filter := repository.StudyLogFilter{Limit: defaultLogLimit}

	if input.DateFrom != "" {
		from, err := time.ParseInLocation(dateLayout, input.DateFrom, time.UTC)
		if err != nil {
			return nil, apperrors.Validation("Invalid date format or parameter")
		}
		filter.From = &from
	}
	if input.DateTo != "" {
		to, err := time.ParseInLocation(dateLayout, input.DateTo, time.UTC)
		if err != nil {
			return nil, apperrors.Validation("Invalid date format or parameter")
		}
		// Inclusive of the whole end day, regardless of time component
		end := to.AddDate(0, 0, 1)
		filter.To = &end
	}
	if input.Limit != "" {
		limit, err := strconv.Atoi(input.Limit)
		if err != nil || limit < 0 {
			return nil, apperrors.Validation("Invalid date format or parameter")
		}
		if limit > maxLogLimit {
			limit = maxLogLimit
		}
		filter.Limit = limit
	}
	if input.Offset != "" {
		offset, err := strconv.Atoi(input.Offset)
		if err != nil || offset < 0 {
			return nil, apperrors.Validation("Invalid date format or parameter")
		}
		filter.Offset = offset
	}

	logs, err := s.repo.ListStudyLogs(filter)
	if err != nil {
		return nil, errors.Wrap(err, "listing study logs")
	}
	if logs == nil {
		logs = []models.StudyLog{}
	}
	for i := range logs {
		if logs[i].Skills == nil {
			logs[i].Skills = []models.Skill{}
		}
	}
	return logs, nil
}
