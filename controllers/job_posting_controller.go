package controllers

import (
	"errors"
	"jobboard-http-service/models"
	"jobboard-http-service/services"
	"jobboard-http-service/services/container"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// InterfaceJobPostingController defines the job posting controller interface
type InterfaceJobPostingController interface {
	GetJobPostings()
	GetJobPosting()
	CreateJobPosting()
	UpdateJobPosting()
	DeleteJobPosting()
}

// JobPostingController handles job posting requests
type JobPostingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJobPostingController creates a new job posting controller
func NewJobPostingController(ctx *gin.Context, container *container.ServiceContainer) *JobPostingController {
	return &JobPostingController{
		Ctx:       ctx,
		Container: container,
	}
}

// JobPostingRequest represents a job posting create/update request
type JobPostingRequest struct {
	Title       string     `json:"title" binding:"required" example:"Backend Engineer"`
	Department  string     `json:"department" example:"Engineering"`
	Location    string     `json:"location" example:"Remote"`
	Description string     `json:"description"`
	Status      string     `json:"status" example:"open"`
	PostedDate  *time.Time `json:"postedDate"`
}

// HandleJobPostingFunc returns a Gin handler for the given job posting method
func HandleJobPostingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJobPostingController(ctx, container)

		switch method {
		case "getJobPostings":
			controller.GetJobPostings()
		case "getJobPosting":
			controller.GetJobPosting()
		case "createJobPosting":
			controller.CreateJobPosting()
		case "updateJobPosting":
			controller.UpdateJobPosting()
		case "deleteJobPosting":
			controller.DeleteJobPosting()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetJobPostings lists all job postings
// @Summary      List job postings
// @Tags         JobPosting
// @Produce      json
// @Success      200  {array}   models.JobPosting
// @Failure      500  {object}  map[string]interface{}
// @Router       /job-postings [get]
func (c *JobPostingController) GetJobPostings() {
	jobPostingService := c.Container.GetService("job_posting").(services.InterfaceJobPostingService)
	postings, err := jobPostingService.GetAllJobPostings()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, postings)
}

// GetJobPosting returns one job posting
// @Summary      Get job posting
// @Tags         JobPosting
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200  {object}  models.JobPosting
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /job-postings/{id} [get]
func (c *JobPostingController) GetJobPosting() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	jobPostingService := c.Container.GetService("job_posting").(services.InterfaceJobPostingService)
	posting, err := jobPostingService.GetJobPostingByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobPostingNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Job posting not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, posting)
}

// CreateJobPosting creates a job posting; postedDate defaults to now
// @Summary      Create job posting
// @Tags         JobPosting
// @Accept       json
// @Produce      json
// @Param        request body JobPostingRequest true "Job posting fields"
// @Success      201  {object}  models.JobPosting
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /job-postings [post]
func (c *JobPostingController) CreateJobPosting() {
	var req JobPostingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posting := models.JobPosting{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.PostedDate != nil {
		posting.PostedDate = *req.PostedDate
	}

	jobPostingService := c.Container.GetService("job_posting").(services.InterfaceJobPostingService)
	if err := jobPostingService.CreateJobPosting(&posting); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, posting)
}

// UpdateJobPosting overwrites the full row
// @Summary      Update job posting
// @Tags         JobPosting
// @Accept       json
// @Produce      json
// @Param        id path int true "Job ID"
// @Param        request body JobPostingRequest true "Job posting fields"
// @Success      200  {object}  models.JobPosting
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /job-postings/{id} [put]
func (c *JobPostingController) UpdateJobPosting() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	var req JobPostingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posting := models.JobPosting{
		JobID:       uint(id),
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Description: req.Description,
		Status:      req.Status,
	}
	if req.PostedDate != nil {
		posting.PostedDate = *req.PostedDate
	}

	jobPostingService := c.Container.GetService("job_posting").(services.InterfaceJobPostingService)
	if err := jobPostingService.UpdateJobPosting(&posting); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, posting)
}

// DeleteJobPosting deletes unconditionally and reports success either way
// @Summary      Delete job posting
// @Tags         JobPosting
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /job-postings/{id} [delete]
func (c *JobPostingController) DeleteJobPosting() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	jobPostingService := c.Container.GetService("job_posting").(services.InterfaceJobPostingService)
	if err := jobPostingService.DeleteJobPosting(uint(id)); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Job posting deleted"})
}
