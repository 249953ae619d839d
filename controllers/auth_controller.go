package controllers

import (
	"errors"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines the authentication controller interface
type InterfaceAuthController interface {
	Register()
	Login()
	Me()
}

// AuthController handles registration and login requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new authentication controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"jdoe"`
	Email    string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"Secret@123"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"Secret@123"`
}

// HandleAuthFunc returns a Gin handler for the given auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// Register creates a job seeker account
// @Summary      Register
// @Description  Create a new job seeker account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.Register(req.Username, req.Email, req.Password); err != nil {
		// Duplicate emails are not distinguished from any other DB failure
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login authenticates against users, then admin_users
// @Summary      Login
// @Description  Authenticate and receive a one-hour JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	token, user, err := authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me returns the claims of the authenticated caller
// @Summary      Current user
// @Description  Introspect the Bearer token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	id, _ := c.Ctx.Get("id")
	email, _ := c.Ctx.Get("email")

	c.Ctx.JSON(http.StatusOK, gin.H{
		"id":    id,
		"email": email,
	})
}
