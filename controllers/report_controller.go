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

// InterfaceReportController defines the report controller interface
type InterfaceReportController interface {
	GetReports()
	GetReport()
	CreateReport()
	UpdateReport()
	DeleteReport()
}

// ReportController handles admin report requests
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// ReportRequest represents a report create/update request. Skills travel
// as a string array; values must not contain commas.
type ReportRequest struct {
	CandidateName string   `json:"candidate_name" binding:"required" example:"John Doe"`
	Email         string   `json:"email" example:"john@example.com"`
	Phone         string   `json:"phone"`
	Position      string   `json:"position" example:"Backend Engineer"`
	Experience    string   `json:"experience" example:"4 years"`
	Skills        []string `json:"skills" example:"Go,SQL"`
	Status        string   `json:"status"`
}

// HandleReportFunc returns a Gin handler for the given report method
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "getReports":
			controller.GetReports()
		case "getReport":
			controller.GetReport()
		case "createReport":
			controller.CreateReport()
		case "updateReport":
			controller.UpdateReport()
		case "deleteReport":
			controller.DeleteReport()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetReports lists all reports
// @Summary      List reports
// @Tags         Report
// @Produce      json
// @Success      200  {array}   models.AdminReport
// @Failure      500  {object}  map[string]interface{}
// @Router       /reports [get]
func (c *ReportController) GetReports() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	reports, err := reportService.GetAllReports()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, reports)
}

// GetReport returns one report
// @Summary      Get report
// @Tags         Report
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  models.AdminReport
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /reports/{id} [get]
func (c *ReportController) GetReport() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	report, err := reportService.GetReportByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, report)
}

// CreateReport inserts a report
// @Summary      Create report
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        request body ReportRequest true "Report fields"
// @Success      201  {object}  models.AdminReport
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /reports [post]
func (c *ReportController) CreateReport() {
	var req ReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.AdminReport{
		CandidateName: req.CandidateName,
		Email:         req.Email,
		Phone:         req.Phone,
		Position:      req.Position,
		Experience:    req.Experience,
		SkillList:     req.Skills,
		Status:        req.Status,
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	if err := reportService.CreateReport(&report); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, report)
}

// UpdateReport overwrites the full row
// @Summary      Update report
// @Tags         Report
// @Accept       json
// @Produce      json
// @Param        id path int true "Report ID"
// @Param        request body ReportRequest true "Report fields"
// @Success      200  {object}  models.AdminReport
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /reports/{id} [put]
func (c *ReportController) UpdateReport() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	var req ReportRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.AdminReport{
		ID:            uint(id),
		CandidateName: req.CandidateName,
		Email:         req.Email,
		Phone:         req.Phone,
		Position:      req.Position,
		Experience:    req.Experience,
		SkillList:     req.Skills,
		Status:        req.Status,
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	if err := reportService.UpdateReport(&report); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, report)
}

// DeleteReport deletes unconditionally and reports success either way
// @Summary      Delete report
// @Tags         Report
// @Produce      json
// @Param        id path int true "Report ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /reports/{id} [delete]
func (c *ReportController) DeleteReport() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	if err := reportService.DeleteReport(uint(id)); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Report deleted"})
}
