package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// JWT Authentication
	JWTSecretKey string

	// Admin
	DefaultAdminPassword string

	// Static uploads
	UploadDir string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	// Set prefix based on environment type
	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config - use environment-specific variables if available
		DBHost:     getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:     getEnv(prefix+"DB_USER", getEnv("DB_USER", "root")),
		DBPassword: getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "root")),
		DBName:     getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "jobboard_db")),
		DBPort:     getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "3306")),

		// Server config
		ServerPort: getEnv(prefix+"PORT", getEnv("PORT", "5000")),

		// Redis config
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// JWT Config
		JWTSecretKey: getEnv("JWT_SECRET", "jobboard-secret-key-change-in-production"),

		// Admin Config
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "admin123"),

		// Uploads served statically under /uploads
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&multiStatements=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
