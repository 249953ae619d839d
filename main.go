// @title           Job Board HTTP Service API
// @version         1.0
// @description     REST backend for the job-board platform: auth, sessions, job postings, interviews, shortlists, reports and content management

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"jobboard-http-service/routes"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
		// Environment variables may already be set another way
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatalf("automigration failed: %v", err)
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	config.Info("starting server on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

// initDB opens the MySQL connection and tunes the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	return db, nil
}

// autoMigrate adds new tables and columns; it never drops anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.Session{},
		&models.JobPosting{},
		&models.Interview{},
		&models.ShortlistCandidate{},
		&models.AdminReport{},
		&models.ActivityLog{},
		&models.Content{},
	)
}

// seedDefaultAdmin creates the bootstrap admin account when the table is
// empty, so the back office is reachable on a fresh database
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		UserID:       uuid.NewString(),
		Name:         "Administrator",
		Email:        "admin@jobboard.local",
		Role:         "admin",
		Status:       "active",
		PasswordHash: string(hash),
	}

	config.Info("seeding default admin account %s", admin.Email)
	return db.Create(&admin).Error
}
