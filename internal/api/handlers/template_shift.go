package handlers

import (
	"net/http"

	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateShiftHandler handles HTTP requests for the weekly template catalog
type TemplateShiftHandler struct {
	service *service.TemplateShiftService
}

// NewTemplateShiftHandler creates a new template shift handler
func NewTemplateShiftHandler(service *service.TemplateShiftService) *TemplateShiftHandler {
	return &TemplateShiftHandler{service: service}
}

// CreateTemplateShift handles POST /api/v1/template-shifts
// @Summary Create a weekly template slot
// @Tags template-shifts
// @Accept json
// @Produce json
// @Param template body service.TemplateShiftRequest true "Template data"
// @Success 201 {object} models.TemplateShift
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /template-shifts [post]
func (h *TemplateShiftHandler) CreateTemplateShift(c *gin.Context) {
	var req service.TemplateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	tpl, err := h.service.CreateTemplateShift(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// ListTemplateShifts handles GET /api/v1/template-shifts?role=CODE
func (h *TemplateShiftHandler) ListTemplateShifts(c *gin.Context) {
	templates, err := h.service.ListTemplateShifts(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplateShift handles GET /api/v1/template-shifts/:id
func (h *TemplateShiftHandler) GetTemplateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	tpl, err := h.service.GetTemplateShift(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// UpdateTemplateShift handles PUT /api/v1/template-shifts/:id
func (h *TemplateShiftHandler) UpdateTemplateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.TemplateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	tpl, err := h.service.UpdateTemplateShift(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplateShift handles DELETE /api/v1/template-shifts/:id
func (h *TemplateShiftHandler) DeleteTemplateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteTemplateShift(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template shift deleted"})
}
