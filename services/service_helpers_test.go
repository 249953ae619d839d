package services

import (
	"fmt"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database for one test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Session{},
		&models.JobPosting{},
		&models.Interview{},
		&models.ShortlistCandidate{},
		&models.AdminReport{},
		&models.ActivityLog{},
		&models.Content{},
	); err != nil {
		t.Fatalf("automigration failed: %v", err)
	}

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret",
	}
}
