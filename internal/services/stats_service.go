package services

import (
	"time"

	"github.com/pkg/errors"

	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
)

// StatsService computes aggregate statistics. Everything is derived fresh
// from the store on each request; nothing is cached.
type StatsService struct {
	skills *repository.SkillRepository
	logs   *repository.StudyLogRepository

	// now is overridable in tests so the calendar arithmetic is deterministic.
	now func() time.Time
}

// NewStatsService creates a new StatsService backed by the given repositories.
func NewStatsService(skills *repository.SkillRepository, logs *repository.StudyLogRepository) *StatsService {
	return &StatsService{
		skills: skills,
		logs:   logs,
		now:    time.Now,
	}
}

// GetStats returns the daily streak, weekly and monthly hour sums, skill
// counts per status and the last seven days of activity.
func (s *StatsService) GetStats() (*models.Stats, error) {
	today := dateOf(s.now().UTC())
	weekStart := today.AddDate(0, 0, -daysSinceMonday(today))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	weeklyHours, err := s.logs.SumHoursOnOrAfter(weekStart)
	if err != nil {
		return nil, errors.Wrap(err, "summing weekly hours")
	}
	monthlyHours, err := s.logs.SumHoursOnOrAfter(monthStart)
	if err != nil {
		return nil, errors.Wrap(err, "summing monthly hours")
	}

	counts, err := s.skills.CountSkillsByStatus()
	if err != nil {
		return nil, errors.Wrap(err, "counting skills by status")
	}
	skillCounts := make(map[string]int, len(models.AllSkillStatuses))
	for _, status := range models.AllSkillStatuses {
		skillCounts[string(status)] = counts[status]
	}

	sevenDaysAgo := today.AddDate(0, 0, -6)
	recentLogs, err := s.logs.ListStudyLogsOnOrAfter(sevenDaysAgo)
	if err != nil {
		return nil, errors.Wrap(err, "listing recent activity")
	}
	recentActivity := make([]models.ActivityEntry, 0, len(recentLogs))
	for _, log := range recentLogs {
		recentActivity = append(recentActivity, models.ActivityEntry{
			Date:        log.Date,
			Hours:       log.Hours,
			SkillsCount: len(log.Skills),
		})
	}

	return &models.Stats{
		DailyStreak:    s.calculateDailyStreak(today),
		WeeklyHours:    weeklyHours,
		MonthlyHours:   monthlyHours,
		SkillCounts:    skillCounts,
		RecentActivity: recentActivity,
	}, nil
}

// calculateDailyStreak counts consecutive calendar days with at least one
// study log, walking backward from the most recent study date. The streak is
// intact only if that date is today or yesterday; any failure degrades to 0
// since this is an auxiliary stat.
func (s *StatsService) calculateDailyStreak(today time.Time) int {
	dates, err := s.logs.ListStudyDates()
	if err != nil {
		return 0
	}

	// Collapse timestamps to distinct calendar days, keeping descending order.
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := dateOf(d.UTC())
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return 0
	}

	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 0
	cursor := today
	for _, day := range days {
		if day.Equal(cursor) || day.Equal(cursor.AddDate(0, 0, -1)) {
			streak++
			cursor = day.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

// dateOf truncates a timestamp to its UTC calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysSinceMonday returns how many days have passed since the most recent
// Monday on or before the given day.
func daysSinceMonday(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}
