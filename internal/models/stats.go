package models

import "time"

// Stats is the aggregate view computed fresh from the store on every request.
type Stats struct {
	DailyStreak    int             `json:"daily_streak"`
	WeeklyHours    float64         `json:"weekly_hours"`
	MonthlyHours   float64         `json:"monthly_hours"`
	SkillCounts    map[string]int  `json:"skill_counts"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// ActivityEntry summarizes one study log from the last seven days.
type ActivityEntry struct {
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	SkillsCount int       `json:"skills_count"`
}
