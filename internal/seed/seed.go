// Package seed inserts sample data for development and demos.
package seed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skill-tracker/internal/models"
)

func strPtr(s string) *string { return &s }

// SampleData populates the database with example skills and study logs.
// It is a no-op when skills already exist.
func SampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already contains data. Skipping seed.")
		return nil
	}

	skills := []models.Skill{
		{ID: uuid.New(), Name: "Python Flask", Category: strPtr("Backend"), Status: models.StatusInProgress},
		{ID: uuid.New(), Name: "SQLAlchemy ORM", Category: strPtr("Backend"), Status: models.StatusToLearn},
		{ID: uuid.New(), Name: "REST API Design", Category: strPtr("Backend"), Status: models.StatusLearned},
		{ID: uuid.New(), Name: "Vanilla JavaScript", Category: strPtr("Frontend"), Status: models.StatusInProgress},
		{ID: uuid.New(), Name: "CSS Grid & Flexbox", Category: strPtr("Frontend"), Status: models.StatusLearned},
		{ID: uuid.New(), Name: "React Components", Category: strPtr("Frontend"), Status: models.StatusToLearn},
		{ID: uuid.New(), Name: "Git Version Control", Category: strPtr("DevOps"), Status: models.StatusLearned},
		{ID: uuid.New(), Name: "Docker Containers", Category: strPtr("DevOps"), Status: models.StatusToLearn},
		{ID: uuid.New(), Name: "Problem Solving", Category: strPtr("General"), Status: models.StatusInProgress},
		{ID: uuid.New(), Name: "Code Documentation", Category: strPtr("General"), Status: models.StatusInProgress},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&skills).Error; err != nil {
			return err
		}

		// A few study sessions over the last days so streak and stats have
		// something to show out of the box.
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		logs := []models.StudyLog{
			{
				ID:     uuid.New(),
				Date:   today.AddDate(0, 0, -2),
				Hours:  2.5,
				Notes:  strPtr("Started Flask tutorial, learned about routes and templates"),
				Skills: []models.Skill{skills[0]},
			},
			{
				ID:     uuid.New(),
				Date:   today.AddDate(0, 0, -1),
				Hours:  1.5,
				Notes:  strPtr("Practiced JavaScript DOM manipulation"),
				Skills: []models.Skill{skills[3]},
			},
			{
				ID:     uuid.New(),
				Date:   today,
				Hours:  3.0,
				Notes:  strPtr("Worked on Flask app and styled with CSS Grid"),
				Skills: []models.Skill{skills[0], skills[4]},
			},
		}
		if err := tx.Omit("Skills.*").Create(&logs).Error; err != nil {
			return err
		}
		log.Println("Sample data added successfully!")
		return nil
	})
}
