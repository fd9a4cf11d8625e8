package handlers

import (
	"net/http"

	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseTypeHandler handles HTTP requests for the course catalog
type CourseTypeHandler struct {
	service *service.CourseTypeService
}

// NewCourseTypeHandler creates a new course type handler
func NewCourseTypeHandler(service *service.CourseTypeService) *CourseTypeHandler {
	return &CourseTypeHandler{service: service}
}

// CreateCourseType handles POST /api/v1/course-types
func (h *CourseTypeHandler) CreateCourseType(c *gin.Context) {
	var req service.CourseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	course, err := h.service.CreateCourseType(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ListCourseTypes handles GET /api/v1/course-types
func (h *CourseTypeHandler) ListCourseTypes(c *gin.Context) {
	courses, err := h.service.ListCourseTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseType handles GET /api/v1/course-types/:id
func (h *CourseTypeHandler) GetCourseType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	course, err := h.service.GetCourseType(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// UpdateCourseType handles PUT /api/v1/course-types/:id
func (h *CourseTypeHandler) UpdateCourseType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req service.CourseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	course, err := h.service.UpdateCourseType(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourseType handles DELETE /api/v1/course-types/:id
func (h *CourseTypeHandler) DeleteCourseType(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCourseType(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "course type deleted"})
}
