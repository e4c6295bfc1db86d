package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sectiontrack/internal/app/models"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
	"github.com/yigit/sectiontrack/internal/app/services"
	"github.com/yigit/sectiontrack/internal/middleware"
)

// SectionController handles section-related operations
type SectionController struct {
	sectionService services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService services.SectionService) *SectionController {
	return &SectionController{
		sectionService: sectionService,
	}
}

// ListSections retrieves all sections
// @Summary List sections
// @Description Retrieves every section with its course, mentor, capacity and description
// @Tags sections
// @Produce json
// @Success 200 {array} models.Section "Sections retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
	sections, err := c.sectionService.ListSections(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if sections == nil {
		sections = []*models.Section{}
	}
	ctx.JSON(http.StatusOK, sections)
}

// GetSection retrieves a section by ID
// @Summary Get section details
// @Tags sections
// @Produce json
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {object} models.Section "Section retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID format"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [get]
func (c *SectionController) GetSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	section, err := c.sectionService.GetSection(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, section)
}

// ListRoster retrieves the active students of a section
// @Summary List active students in a section
// @Description Withdrawn (inactive) students are not included
// @Tags sections
// @Produce json
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Success 200 {array} models.Student "Roster retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID format"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id}/students [get]
func (c *SectionController) ListRoster(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	students, err := c.sectionService.ListRoster(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []*models.Student{}
	}
	ctx.JSON(http.StatusOK, students)
}

// UpdateSection updates the capacity and/or description of a section
// @Summary Update a section
// @Description Applies capacity and description when supplied; omitted or null fields are left unchanged. Responds 201 with no body.
// @Tags sections
// @Accept json
// @Param id path int true "Section ID" Format(int64) minimum(1)
// @Param request body dto.UpdateSectionRequest false "Fields to change"
// @Success 201 "Section updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections/{id} [post]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "section")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if !bindOptionalJSON(ctx, &req, "Invalid section data") {
		return
	}

	update := services.SectionUpdate{
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := c.sectionService.UpdateSection(ctx.Request.Context(), id, update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// TODO: switch to 200 once existing clients stop relying on 201 here
	ctx.Status(http.StatusCreated)
}
