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

// InterfaceContentController defines the content controller interface
type InterfaceContentController interface {
	GetContents()
	GetContent()
	CreateContent()
	UpdateContent()
	DeleteContent()
}

// ContentController handles managed content requests
type ContentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContentController creates a new content controller
func NewContentController(ctx *gin.Context, container *container.ServiceContainer) *ContentController {
	return &ContentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContentRequest represents a content create/update request
type ContentRequest struct {
	Slug   string `json:"slug" binding:"required" example:"landing-hero"`
	Title  string `json:"title" example:"Find your next role"`
	Body   string `json:"body"`
	Status string `json:"status" example:"published"`
}

// HandleContentFunc returns a Gin handler for the given content method
func HandleContentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContentController(ctx, container)

		switch method {
		case "getContents":
			controller.GetContents()
		case "getContent":
			controller.GetContent()
		case "createContent":
			controller.CreateContent()
		case "updateContent":
			controller.UpdateContent()
		case "deleteContent":
			controller.DeleteContent()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		}
	}
}

// GetContents lists all content blocks
// @Summary      List content blocks
// @Tags         Content
// @Produce      json
// @Success      200  {array}   models.Content
// @Failure      500  {object}  map[string]interface{}
// @Router       /contents [get]
func (c *ContentController) GetContents() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	contents, err := contentService.GetAllContents()
	if err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, contents)
}

// GetContent returns one content block
// @Summary      Get content block
// @Tags         Content
// @Produce      json
// @Param        id path int true "Content ID"
// @Success      200  {object}  models.Content
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /contents/{id} [get]
func (c *ContentController) GetContent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content id"})
		return
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	content, err := contentService.GetContentByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			c.Ctx.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, content)
}

// CreateContent inserts a content block
// @Summary      Create content block
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        request body ContentRequest true "Content fields"
// @Success      201  {object}  models.Content
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /contents [post]
func (c *ContentController) CreateContent() {
	var req ContentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := models.Content{
		Slug:   req.Slug,
		Title:  req.Title,
		Body:   req.Body,
		Status: req.Status,
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	if err := contentService.CreateContent(&content); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusCreated, content)
}

// UpdateContent overwrites the full row
// @Summary      Update content block
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        id path int true "Content ID"
// @Param        request body ContentRequest true "Content fields"
// @Success      200  {object}  models.Content
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /contents/{id} [put]
func (c *ContentController) UpdateContent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content id"})
		return
	}

	var req ContentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := models.Content{
		ID:     uint(id),
		Slug:   req.Slug,
		Title:  req.Title,
		Body:   req.Body,
		Status: req.Status,
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	if err := contentService.UpdateContent(&content); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, content)
}

// DeleteContent deletes unconditionally and reports success either way
// @Summary      Delete content block
// @Tags         Content
// @Produce      json
// @Param        id path int true "Content ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /contents/{id} [delete]
func (c *ContentController) DeleteContent() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		c.Ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content id"})
		return
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	if err := contentService.DeleteContent(uint(id)); err != nil {
		c.Ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Ctx.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}
