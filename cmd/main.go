package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	_ "skill-tracker/docs"
	"skill-tracker/internal/config"
	"skill-tracker/internal/handlers"
	"skill-tracker/internal/metrics"
	"skill-tracker/internal/models"
	"skill-tracker/internal/repository"
	"skill-tracker/internal/seed"
	"skill-tracker/internal/services"
)

// @title Skill Tracker API
// @version 1.0
// @description Personal habit-tracking backend for skills and study logs
// @BasePath /api
func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	if cfg.SeedSampleData {
		if err := seed.SampleData(db); err != nil {
			log.Printf("Warning: could not seed sample data: %v", err)
		}
	}

	skillRepo := repository.NewSkillRepository(db)
	logRepo := repository.NewStudyLogRepository(db)
	skillService := services.NewSkillService(skillRepo)
	logService := services.NewStudyLogService(logRepo, skillRepo)
	statsService := services.NewStatsService(skillRepo, logRepo)

	app := fiber.New()
	app.Use(metrics.NewHTTPMetrics().Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Set up routes for skill and study log CRUD operations
	skillHandler := handlers.NewSkillHandler(skillService)
	logHandler := handlers.NewStudyLogHandler(logService)
	statsHandler := handlers.NewStatsHandler(statsService)

	api := app.Group("/api")
	api.Get("/skills", skillHandler.ListSkills)
	api.Post("/skills", skillHandler.CreateSkill)
	api.Put("/skills/:id", skillHandler.UpdateSkill)
	api.Delete("/skills/:id", skillHandler.DeleteSkill)
	api.Get("/logs", logHandler.ListStudyLogs)
	api.Post("/logs", logHandler.CreateStudyLog)
	api.Delete("/logs/:id", logHandler.DeleteStudyLog)
	api.Get("/stats", statsHandler.GetStats)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "app": "Skill Tracker"})
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Skill{}, &models.StudyLog{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}
