package container

import (
	"context"
	"sync"
	"time"

	"jobboard-http-service/config"
	"jobboard-http-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// Business services
	authService        services.InterfaceAuthService
	sessionService     services.InterfaceSessionService
	adminUserService   services.InterfaceAdminUserService
	jobPostingService  services.InterfaceJobPostingService
	interviewService   services.InterfaceInterviewService
	shortlistService   services.InterfaceShortlistService
	reportService      services.InterfaceReportService
	activityLogService services.InterfaceActivityLogService
	contentService     services.InterfaceContentService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection; the service degrades to DB-only reads
	// when the cache is unreachable
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("Redis ping failed: %v, continuing without cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
	}

	// Business services
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)
	c.sessionService = services.NewSessionService(c.db, c.config, c.redisService)
	c.adminUserService = services.NewAdminUserService(c.db, c.config)
	c.jobPostingService = services.NewJobPostingService(c.db, c.config)
	c.interviewService = services.NewInterviewService(c.db, c.config)
	c.shortlistService = services.NewShortlistService(c.db, c.config)
	c.reportService = services.NewReportService(c.db, c.config)
	c.activityLogService = services.NewActivityLogService(c.db, c.config)
	c.contentService = services.NewContentService(c.db, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "auth":
		return c.authService
	case "session":
		return c.sessionService
	case "admin_user":
		return c.adminUserService
	case "job_posting":
		return c.jobPostingService
	case "interview":
		return c.interviewService
	case "shortlist":
		return c.shortlistService
	case "report":
		return c.reportService
	case "activity_log":
		return c.activityLogService
	case "content":
		return c.contentService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
