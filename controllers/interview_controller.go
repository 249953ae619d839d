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

// InterfaceInterviewController defines the interview controller interface
type InterfaceInterviewController interface {
	GetInterviews()
	GetInterview()
	CreateInterview()
	UpdateInterview()
	DeleteInterview()
}

// InterviewController handles interview scheduling requests
type InterviewController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewInterviewController creates a new interview controller
func NewInterviewController(ctx *gin.Context, container *container.ServiceContainer) *InterviewController {
	return &InterviewController{
		Ctx:       ctx,
		Container: container,
	}
}

// InterviewRequest is the canonical interview payload. Field names are
// snake_case only; clients must not rely on camelCase variants.
type InterviewRequest struct {
	CandidateID    string `json:"candidate_id" binding:"required" example:"d4c1f9e2-0b1a-4e1e-9a7b-2f6c3d8e5a41"`
	CandidateName  string `json:"candidate_name" example:"John Doe"`
	CandidateEmail string `json:"candidate_email" example:"john@example.com"`
	CandidateImage string `json:"candidate_image"`
	JobID          uint   `json:"job_id" binding:"required" example:"7"`
	JobTitle       string `json:"job_title" example:"Backend Engineer"`
	InterviewerID  string `json:"interviewer_id"`
	Interviewer    string `json:"interviewer" example:"Jane HR"`
	Date           string `json:"date" example:"2025-03-14"`
	Time           string `json:"time" example:"10:30"`
	Status         string `json:"status" example:"Scheduled"`
	StatusColor    string `json:"status_color" example:"blue"`
}

// HandleInterviewFunc returns a Gin handler for the given interview method
func HandleInterviewFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewInterviewController(ctx, container)

		switch method {
		case "getInterviews":
			controller.GetInterviews()
		case "getInterview":
			controller.GetInterview()
		case "createInterview":
			controller.CreateInterview()
		case "updateInterview":
			controller.UpdateInterview()
		case "deleteInterview":
			controller.DeleteInterview()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetInterviews lists all interviews
// @Summary      List interviews
// @Tags         Interview
// @Produce      json
// @Success      200  {array}   models.Interview
// @Failure      500  {object}  map[string]interface{}
// @Router       /interviews [get]
func (c *InterviewController) GetInterviews() {
	interviewService := c.Container.GetService("interview").(services.InterfaceInterviewService)
	interviews, err := interviewService.GetAllInterviews()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, interviews)
}

// GetInterview returns one interview
// @Summary      Get interview
// @Tags         Interview
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      200  {object}  models.Interview
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /interviews/{id} [get]
func (c *InterviewController) GetInterview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview id"})
		return
	}

	interviewService := c.Container.GetService("interview").(services.InterfaceInterviewService)
	interview, err := interviewService.GetInterviewByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInterviewNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, interview)
}

// CreateInterview schedules an interview and shortlists the candidate.
// The response is 201 once the interview row is in, whatever happens to
// the shortlist row.
// @Summary      Create interview
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        request body InterviewRequest true "Interview fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /interviews [post]
func (c *InterviewController) CreateInterview() {
	var req InterviewRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interview := models.Interview{
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidateImage: req.CandidateImage,
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		InterviewerID:  req.InterviewerID,
		Interviewer:    req.Interviewer,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
		StatusColor:    req.StatusColor,
	}

	interviewService := c.Container.GetService("interview").(services.InterfaceInterviewService)
	if err := interviewService.CreateInterview(&interview); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, gin.H{"message": "Interview scheduled successfully"})
}

// UpdateInterview overwrites the full row; the shortlist row is untouched
// @Summary      Update interview
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        id path int true "Interview ID"
// @Param        request body InterviewRequest true "Interview fields"
// @Success      200  {object}  models.Interview
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /interviews/{id} [put]
func (c *InterviewController) UpdateInterview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview id"})
		return
	}

	var req InterviewRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interview := models.Interview{
		ID:             uint(id),
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidateImage: req.CandidateImage,
		JobID:          req.JobID,
		JobTitle:       req.JobTitle,
		InterviewerID:  req.InterviewerID,
		Interviewer:    req.Interviewer,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
		StatusColor:    req.StatusColor,
	}

	interviewService := c.Container.GetService("interview").(services.InterfaceInterviewService)
	if err := interviewService.UpdateInterview(&interview); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, interview)
}

// DeleteInterview deletes unconditionally and reports success either way
// @Summary      Delete interview
// @Tags         Interview
// @Produce      json
// @Param        id path int true "Interview ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /interviews/{id} [delete]
func (c *InterviewController) DeleteInterview() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview id"})
		return
	}

	interviewService := c.Container.GetService("interview").(services.InterfaceInterviewService)
	if err := interviewService.DeleteInterview(uint(id)); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}
