package controllers

import (
	"jobboard-http-service/models"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InterfaceActivityLogController defines the activity log controller interface
type InterfaceActivityLogController interface {
	GetActivityLogs()
	GetActivityLogsByAdminUser()
	CreateActivityLog()
}

// ActivityLogController handles admin activity log requests
type ActivityLogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewActivityLogController creates a new activity log controller
func NewActivityLogController(ctx *gin.Context, container *container.ServiceContainer) *ActivityLogController {
	return &ActivityLogController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateActivityLogRequest represents an activity log entry
type CreateActivityLogRequest struct {
	AdminUserID string `json:"admin_user_id" binding:"required" example:"d4c1f9e2-0b1a-4e1e-9a7b-2f6c3d8e5a41"`
	Action      string `json:"action" binding:"required" example:"deleted job posting"`
	Details     string `json:"details" example:"job_id=7"`
}

// HandleActivityLogFunc returns a Gin handler for the given activity log method
func HandleActivityLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewActivityLogController(ctx, container)

		switch method {
		case "getActivityLogs":
			controller.GetActivityLogs()
		case "getActivityLogsByAdminUser":
			controller.GetActivityLogsByAdminUser()
		case "createActivityLog":
			controller.CreateActivityLog()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetActivityLogs lists log entries newest first, with pagination
// @Summary      List activity logs
// @Tags         ActivityLog
// @Produce      json
// @Param        page query int false "Page number, defaults to 1"
// @Param        page_size query int false "Page size, defaults to 50"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /activity-logs [get]
func (c *ActivityLogController) GetActivityLogs() {
	// Absent query keys keep the defaults
	query := models.PaginationQuery{Page: 1, PageSize: 50}
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 200 {
		query.PageSize = 50
	}

	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	logs, total, err := activityLogService.GetActivityLogs(query.Page, query.PageSize)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"pagination": models.NewPaginationResult(total, query.Page, query.PageSize),
		"data":       logs,
	})
}

// GetActivityLogsByAdminUser lists one admin's log entries newest first
// @Summary      List activity logs for one admin user
// @Tags         ActivityLog
// @Produce      json
// @Param        admin_user_id path string true "Admin user ID"
// @Success      200  {array}   models.ActivityLog
// @Failure      500  {object}  map[string]interface{}
// @Router       /activity-logs/user/{admin_user_id} [get]
func (c *ActivityLogController) GetActivityLogsByAdminUser() {
	adminUserID := c.Ctx.Param("admin_user_id")

	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	logs, err := activityLogService.GetActivityLogsByAdminUser(adminUserID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, logs)
}

// CreateActivityLog appends a log entry; admin_user_id and action are
// required
// @Summary      Append activity log entry
// @Tags         ActivityLog
// @Accept       json
// @Produce      json
// @Param        request body CreateActivityLogRequest true "Log entry fields"
// @Success      201  {object}  models.ActivityLog
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /activity-logs [post]
func (c *ActivityLogController) CreateActivityLog() {
	var req CreateActivityLogRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "admin_user_id and action are required"})
		return
	}

	log := models.ActivityLog{
		AdminUserID: req.AdminUserID,
		Action:      req.Action,
		Details:     req.Details,
	}

	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	if err := activityLogService.CreateActivityLog(&log); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, log)
}
