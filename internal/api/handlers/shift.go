package handlers

import (
	"net/http"

	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shifts and the publish flow
type ShiftHandler struct {
	shifts    *service.ShiftService
	publisher *service.PublisherService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shifts *service.ShiftService, publisher *service.PublisherService) *ShiftHandler {
	return &ShiftHandler{shifts: shifts, publisher: publisher}
}

// CreateShift handles POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	shift, err := h.shifts.CreateShift(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /api/v1/shifts/:id
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	shift, err := h.shifts.GetShift(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// UpdateShift handles PATCH /api/v1/shifts/:id
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	shift, err := h.shifts.UpdateShift(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.shifts.DeleteShift(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shift deleted"})
}

// PublishWeeks handles POST /api/v1/shifts/publish
// @Summary Publish one or more weeks for a role
// @Description Materializes shifts from the weekly templates and reconciles
// @Description already published weeks against the current catalog.
// @Tags shifts
// @Accept json
// @Produce json
// @Param publish body service.PublishWeeksRequest true "Role and week list"
// @Success 200 {object} service.PublishResult
// @Failure 400 {object} map[string]interface{} "Invalid weeks or dates"
// @Failure 404 {object} map[string]interface{} "Unknown role"
// @Failure 409 {object} map[string]interface{} "Overlap rejected by policy"
// @Security BearerAuth
// @Router /shifts/publish [post]
func (h *ShiftHandler) PublishWeeks(c *gin.Context) {
	var req service.PublishWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	result, err := h.publisher.PublishWeeks(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateMonth handles POST /api/v1/shifts/generate-month
// @Summary Generate missing shifts for a whole month across all roles
// @Tags shifts
// @Accept json
// @Produce json
// @Param month body service.GenerateMonthRequest true "Year and month"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /shifts/generate-month [post]
func (h *ShiftHandler) GenerateMonth(c *gin.Context) {
	var req service.GenerateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	created, err := h.publisher.GenerateMonth(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// GetWeekShifts handles GET /api/v1/shifts/week?start=YYYY-MM-DD
func (h *ShiftHandler) GetWeekShifts(c *gin.Context) {
	views, err := h.shifts.GetWeekShifts(c.Query("start"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetMonthShifts handles GET /api/v1/shifts/month?year=&month=
func (h *ShiftHandler) GetMonthShifts(c *gin.Context) {
	views, err := h.shifts.GetMonthShifts(queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPublishedWeeks handles GET /api/v1/shifts/published-weeks?role=&year=&month=
func (h *ShiftHandler) GetPublishedWeeks(c *gin.Context) {
	weeks, err := h.shifts.GetPublishedWeeks(c.Query("role"), queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"published_weeks": weeks})
}

// AvailableCollaborators handles GET /api/v1/shifts/:id/collaborators
// @Summary List substitution candidates for a shift
// @Description Users holding the shift's role, excluding the current holder.
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {array} models.User
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/collaborators [get]
func (h *ShiftHandler) AvailableCollaborators(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	users, err := h.shifts.AvailableCollaborators(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
