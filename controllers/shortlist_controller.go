package controllers

import (
	"errors"
	"jobboard-http-service/models"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// InterfaceShortlistController defines the shortlist controller interface
type InterfaceShortlistController interface {
	GetShortlistCandidates()
	GetShortlistCandidate()
	CreateShortlistCandidate()
	UpdateShortlistCandidate()
	DeleteShortlistCandidate()
}

// ShortlistController handles shortlisted candidate requests
type ShortlistController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewShortlistController creates a new shortlist controller
func NewShortlistController(ctx *gin.Context, container *container.ServiceContainer) *ShortlistController {
	return &ShortlistController{
		Ctx:       ctx,
		Container: container,
	}
}

// ShortlistCandidateRequest represents a shortlist create/update request
type ShortlistCandidateRequest struct {
	CandidateID    string `json:"candidate_id" binding:"required"`
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	CandidateImage string `json:"candidate_image"`
	JobID          uint   `json:"job_id" binding:"required"`
	JobTitle       string `json:"job_title"`
	Status         string `json:"status" example:"Shortlisted"`
}

// HandleShortlistFunc returns a Gin handler for the given shortlist method
func HandleShortlistFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewShortlistController(ctx, container)

		switch method {
		case "getShortlistCandidates":
			controller.GetShortlistCandidates()
		case "getShortlistCandidate":
			controller.GetShortlistCandidate()
		case "createShortlistCandidate":
			controller.CreateShortlistCandidate()
		case "updateShortlistCandidate":
			controller.UpdateShortlistCandidate()
		case "deleteShortlistCandidate":
			controller.DeleteShortlistCandidate()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetShortlistCandidates lists all shortlisted candidates
// @Summary      List shortlisted candidates
// @Tags         Shortlist
// @Produce      json
// @Success      200  {array}   models.ShortlistCandidate
// @Failure      500  {object}  map[string]interface{}
// @Router       /shortlist-candidates [get]
func (c *ShortlistController) GetShortlistCandidates() {
	shortlistService := c.Container.GetService("shortlist").(services.InterfaceShortlistService)
	candidates, err := shortlistService.GetAllShortlistCandidates()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, candidates)
}

// GetShortlistCandidate returns one shortlist row
// @Summary      Get shortlisted candidate
// @Tags         Shortlist
// @Produce      json
// @Param        id path int true "Shortlist ID"
// @Success      200  {object}  models.ShortlistCandidate
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /shortlist-candidates/{id} [get]
func (c *ShortlistController) GetShortlistCandidate() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shortlist id"})
		return
	}

	shortlistService := c.Container.GetService("shortlist").(services.InterfaceShortlistService)
	candidate, err := shortlistService.GetShortlistCandidateByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrShortlistCandidateNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Shortlist candidate not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, candidate)
}

// CreateShortlistCandidate inserts a shortlist row
// @Summary      Create shortlisted candidate
// @Tags         Shortlist
// @Accept       json
// @Produce      json
// @Param        request body ShortlistCandidateRequest true "Shortlist fields"
// @Success      201  {object}  models.ShortlistCandidate
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /shortlist-candidates [post]
func (c *ShortlistController) CreateShortlistCandidate() {
	var req ShortlistCandidateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := models.ShortlistCandidate{
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidateImage: req.CandidateImage,
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		Status:         req.Status,
	}

	shortlistService := c.Container.GetService("shortlist").(services.InterfaceShortlistService)
	if err := shortlistService.CreateShortlistCandidate(&candidate); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, candidate)
}

// UpdateShortlistCandidate overwrites the full row
// @Summary      Update shortlisted candidate
// @Tags         Shortlist
// @Accept       json
// @Produce      json
// @Param        id path int true "Shortlist ID"
// @Param        request body ShortlistCandidateRequest true "Shortlist fields"
// @Success      200  {object}  models.ShortlistCandidate
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /shortlist-candidates/{id} [put]
func (c *ShortlistController) UpdateShortlistCandidate() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shortlist id"})
		return
	}

	var req ShortlistCandidateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidate := models.ShortlistCandidate{
		ID:             uint(id),
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidateImage: req.CandidateImage,
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		Status:         req.Status,
	}

	shortlistService := c.Container.GetService("shortlist").(services.InterfaceShortlistService)
	if err := shortlistService.UpdateShortlistCandidate(&candidate); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, candidate)
}

// DeleteShortlistCandidate deletes unconditionally and reports success
// either way
// @Summary      Delete shortlisted candidate
// @Tags         Shortlist
// @Produce      json
// @Param        id path int true "Shortlist ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /shortlist-candidates/{id} [delete]
func (c *ShortlistController) DeleteShortlistCandidate() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shortlist id"})
		return
	}

	shortlistService := c.Container.GetService("shortlist").(services.InterfaceShortlistService)
	if err := shortlistService.DeleteShortlistCandidate(uint(id)); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Shortlist candidate deleted"})
}
