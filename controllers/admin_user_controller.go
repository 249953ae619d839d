package controllers

import (
	"errors"
	"jobboard-http-service/models"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"jobboard-http-service/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterfaceAdminUserController defines the admin user controller interface
type InterfaceAdminUserController interface {
	GetAdminUsers()
	GetAdminUser()
	CreateAdminUser()
	UpdateAdminUser()
	DeleteAdminUser()
}

// AdminUserController handles back-office user management requests
type AdminUserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminUserController creates a new admin user controller
func NewAdminUserController(ctx *gin.Context, container *container.ServiceContainer) *AdminUserController {
	return &AdminUserController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAdminUserRequest represents an admin user creation request
type CreateAdminUserRequest struct {
	Name      string `json:"name" binding:"required" example:"Jane HR"`
	Email     string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone     string `json:"phone" example:"5550100"`
	Role      string `json:"role" example:"hr"`
	Status    string `json:"status" example:"active"`
	Password  string `json:"password" binding:"required" example:"Secret@123"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateAdminUserRequest represents a full-row admin user update
type UpdateAdminUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatar_url"`
}

// HandleAdminUserFunc returns a Gin handler for the given admin user method
func HandleAdminUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminUserController(ctx, container)

		switch method {
		case "getAdminUsers":
			controller.GetAdminUsers()
		case "getAdminUser":
			controller.GetAdminUser()
		case "createAdminUser":
			controller.CreateAdminUser()
		case "updateAdminUser":
			controller.UpdateAdminUser()
		case "deleteAdminUser":
			controller.DeleteAdminUser()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetAdminUsers lists all admin users
// @Summary      List admin users
// @Tags         AdminUser
// @Produce      json
// @Success      200  {array}   models.AdminUser
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin-users [get]
func (c *AdminUserController) GetAdminUsers() {
	adminUserService := c.Container.GetService("admin_user").(services.InterfaceAdminUserService)
	users, err := adminUserService.GetAllAdminUsers()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, users)
}

// GetAdminUser returns one admin user
// @Summary      Get admin user
// @Tags         AdminUser
// @Produce      json
// @Param        id path string true "Admin user ID"
// @Success      200  {object}  models.AdminUser
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin-users/{id} [get]
func (c *AdminUserController) GetAdminUser() {
	userID := c.Ctx.Param("id")

	adminUserService := c.Container.GetService("admin_user").(services.InterfaceAdminUserService)
	user, err := adminUserService.GetAdminUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrAdminUserNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, user)
}

// CreateAdminUser creates an admin user; the UUID primary key is generated
// here, before the service is called
// @Summary      Create admin user
// @Tags         AdminUser
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminUserRequest true "Admin user fields"
// @Success      201  {object}  models.AdminUser
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin-users [post]
func (c *AdminUserController) CreateAdminUser() {
	var req CreateAdminUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user := models.AdminUser{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       req.Status,
		PasswordHash: hash,
		AvatarURL:    req.AvatarURL,
	}

	adminUserService := c.Container.GetService("admin_user").(services.InterfaceAdminUserService)
	if err := adminUserService.CreateAdminUser(&user); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, user)
}

// UpdateAdminUser overwrites the full row. The stored password hash is kept
// unless a new password is supplied.
// @Summary      Update admin user
// @Tags         AdminUser
// @Accept       json
// @Produce      json
// @Param        id path string true "Admin user ID"
// @Param        request body UpdateAdminUserRequest true "Admin user fields"
// @Success      200  {object}  models.AdminUser
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin-users/{id} [put]
func (c *AdminUserController) UpdateAdminUser() {
	userID := c.Ctx.Param("id")

	var req UpdateAdminUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminUserService := c.Container.GetService("admin_user").(services.InterfaceAdminUserService)
	existing, err := adminUserService.GetAdminUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrAdminUserNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	passwordHash := existing.PasswordHash
	if req.Password != "" {
		passwordHash, err = utils.HashPassword(req.Password)
		if err != nil {
			c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	user := models.AdminUser{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       req.Status,
		PasswordHash: passwordHash,
		AvatarURL:    req.AvatarURL,
		CreatedAt:    existing.CreatedAt,
	}

	if err := adminUserService.UpdateAdminUser(&user); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, user)
}

// DeleteAdminUser deletes unconditionally and reports success either way
// @Summary      Delete admin user
// @Tags         AdminUser
// @Produce      json
// @Param        id path string true "Admin user ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin-users/{id} [delete]
func (c *AdminUserController) DeleteAdminUser() {
	userID := c.Ctx.Param("id")

	adminUserService := c.Container.GetService("admin_user").(services.InterfaceAdminUserService)
	if err := adminUserService.DeleteAdminUser(userID); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
