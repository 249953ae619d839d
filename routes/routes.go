package routes

import (
	"jobboard-http-service/config"
	"jobboard-http-service/controllers"
	_ "jobboard-http-service/docs"
	"jobboard-http-service/middleware"
	"jobboard-http-service/services/container"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Per-IP rate limiting
	r.Use(middleware.RateLimiter())

	// Service container
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// Auth middleware
	middleware.InitAuthMiddleware(cfg)

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static uploads (avatars, resumes)
	r.Static("/uploads", "./"+cfg.UploadDir)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that require no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Health check
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)

	// Auth routes
	api.POST("/auth/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))

	// Session routes
	api.POST("/sessions", controllers.HandleSessionFunc(container, "createSession"))
	api.GET("/sessions/user/:user_id", controllers.HandleSessionFunc(container, "getUserSessions"))
	api.GET("/sessions/:id", controllers.HandleSessionFunc(container, "getSession"))
	api.DELETE("/sessions/:id", controllers.HandleSessionFunc(container, "deleteSession"))

	// Admin user routes
	api.GET("/admin-users", controllers.HandleAdminUserFunc(container, "getAdminUsers"))
	api.GET("/admin-users/:id", controllers.HandleAdminUserFunc(container, "getAdminUser"))
	api.POST("/admin-users", controllers.HandleAdminUserFunc(container, "createAdminUser"))
	api.PUT("/admin-users/:id", controllers.HandleAdminUserFunc(container, "updateAdminUser"))
	api.DELETE("/admin-users/:id", controllers.HandleAdminUserFunc(container, "deleteAdminUser"))

	// Job posting routes; the list view is cached briefly
	api.GET("/job-postings", middleware.Cache(), controllers.HandleJobPostingFunc(container, "getJobPostings"))
	api.GET("/job-postings/:id", controllers.HandleJobPostingFunc(container, "getJobPosting"))
	api.POST("/job-postings", controllers.HandleJobPostingFunc(container, "createJobPosting"))
	api.PUT("/job-postings/:id", controllers.HandleJobPostingFunc(container, "updateJobPosting"))
	api.DELETE("/job-postings/:id", controllers.HandleJobPostingFunc(container, "deleteJobPosting"))

	// Interview routes
	api.GET("/interviews", controllers.HandleInterviewFunc(container, "getInterviews"))
	api.GET("/interviews/:id", controllers.HandleInterviewFunc(container, "getInterview"))
	api.POST("/interviews", controllers.HandleInterviewFunc(container, "createInterview"))
	api.PUT("/interviews/:id", controllers.HandleInterviewFunc(container, "updateInterview"))
	api.DELETE("/interviews/:id", controllers.HandleInterviewFunc(container, "deleteInterview"))

	// Shortlist routes
	api.GET("/shortlist-candidates", controllers.HandleShortlistFunc(container, "getShortlistCandidates"))
	api.GET("/shortlist-candidates/:id", controllers.HandleShortlistFunc(container, "getShortlistCandidate"))
	api.POST("/shortlist-candidates", controllers.HandleShortlistFunc(container, "createShortlistCandidate"))
	api.PUT("/shortlist-candidates/:id", controllers.HandleShortlistFunc(container, "updateShortlistCandidate"))
	api.DELETE("/shortlist-candidates/:id", controllers.HandleShortlistFunc(container, "deleteShortlistCandidate"))

	// Report routes
	api.GET("/reports", controllers.HandleReportFunc(container, "getReports"))
	api.GET("/reports/:id", controllers.HandleReportFunc(container, "getReport"))
	api.POST("/reports", controllers.HandleReportFunc(container, "createReport"))
	api.PUT("/reports/:id", controllers.HandleReportFunc(container, "updateReport"))
	api.DELETE("/reports/:id", controllers.HandleReportFunc(container, "deleteReport"))

	// Activity log routes
	api.GET("/activity-logs", controllers.HandleActivityLogFunc(container, "getActivityLogs"))
	api.GET("/activity-logs/user/:admin_user_id", controllers.HandleActivityLogFunc(container, "getActivityLogsByAdminUser"))
	api.POST("/activity-logs", controllers.HandleActivityLogFunc(container, "createActivityLog"))

	// Content routes
	api.GET("/contents", controllers.HandleContentFunc(container, "getContents"))
	api.GET("/contents/:id", controllers.HandleContentFunc(container, "getContent"))
	api.POST("/contents", controllers.HandleContentFunc(container, "createContent"))
	api.PUT("/contents/:id", controllers.HandleContentFunc(container, "updateContent"))
	api.DELETE("/contents/:id", controllers.HandleContentFunc(container, "deleteContent"))
}

// registerAuthenticatedRoutes registers routes that require a Bearer token
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))
}
