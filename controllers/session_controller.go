package controllers

import (
	"errors"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InterfaceSessionController defines the session controller interface
type InterfaceSessionController interface {
	CreateSession()
	GetSession()
	DeleteSession()
	GetUserSessions()
}

// SessionController handles session records
type SessionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSessionController creates a new session controller
func NewSessionController(ctx *gin.Context, container *container.ServiceContainer) *SessionController {
	return &SessionController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateSessionRequest represents a session creation request
type CreateSessionRequest struct {
	UserID   string `json:"user_id" binding:"required" example:"d4c1f9e2-0b1a-4e1e-9a7b-2f6c3d8e5a41"`
	UserRole string `json:"user_role" example:"jobseeker"`
}

// HandleSessionFunc returns a Gin handler for the given session method
func HandleSessionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSessionController(ctx, container)

		switch method {
		case "createSession":
			controller.CreateSession()
		case "getSession":
			controller.GetSession()
		case "deleteSession":
			controller.DeleteSession()
		case "getUserSessions":
			controller.GetUserSessions()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// CreateSession issues a session with a fixed one-hour expiry
// @Summary      Create session
// @Description  Issue a server-side session record for a user
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body CreateSessionRequest true "Session parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /sessions [post]
func (c *SessionController) CreateSession() {
	var req CreateSessionRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	session, err := sessionService.CreateSession(req.UserID, req.UserRole, c.Ctx.ClientIP(), c.Ctx.Request.UserAgent())
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{
		"session_id": session.SessionID,
		"expires_at": session.ExpiresAt,
	})
}

// GetSession returns a session row, expired or not
// @Summary      Get session
// @Tags         Session
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /sessions/{id} [get]
func (c *SessionController) GetSession() {
	sessionID := c.Ctx.Param("id")

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	session, err := sessionService.GetSessionByID(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, session)
}

// DeleteSession deletes unconditionally and reports success either way
// @Summary      Delete session
// @Tags         Session
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /sessions/{id} [delete]
func (c *SessionController) DeleteSession() {
	sessionID := c.Ctx.Param("id")

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	if err := sessionService.DeleteSession(sessionID); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// GetUserSessions lists all sessions for a user, including expired ones
// @Summary      List user sessions
// @Tags         Session
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200  {array}   models.Session
// @Failure      500  {object}  map[string]interface{}
// @Router       /sessions/user/{user_id} [get]
func (c *SessionController) GetUserSessions() {
	userID := c.Ctx.Param("user_id")

	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)
	sessions, err := sessionService.GetSessionsByUserID(userID)
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, sessions)
}
