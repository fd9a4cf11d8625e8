package handlers

import (
	"net/http"

	"shift-planner-backend/internal/auth"
	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReplacementHandler handles HTTP requests for the coverage request ledger
type ReplacementHandler struct {
	service *service.ReplacementService
}

// NewReplacementHandler creates a new replacement handler
func NewReplacementHandler(service *service.ReplacementService) *ReplacementHandler {
	return &ReplacementHandler{service: service}
}

// CreateRequests handles POST /api/v1/shifts/:id/replacements
// @Summary Ask one or more collaborators to cover a shift
// @Description Opens one pending request per target. A partial ask carries a
// @Description clock window that must lie within the shift.
// @Tags replacements
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param request body service.CreateRequestsInput true "Targets and optional window"
// @Success 201 {object} map[string]interface{} "IDs of the created requests"
// @Failure 400 {object} map[string]interface{} "No targets or bad window"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/replacements [post]
func (h *ReplacementHandler) CreateRequests(c *gin.Context) {
	shiftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var input service.CreateRequestsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	input.ShiftID = shiftID
	if callerID, ok := auth.GetUserID(c); ok {
		input.CallerID = &callerID
	}

	ids, err := h.service.CreateRequests(&input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"requests": ids})
}

// RespondRequest represents a response to a pending request
type RespondRequest struct {
	Action string `json:"action" binding:"required"`
}

// Respond handles POST /api/v1/replacements/:id/respond
// @Summary Accept or reject a pending coverage request
// @Description Acceptance runs the resolution engine: total requests transfer
// @Description the shift, partial requests split it, competing requests are
// @Description cancelled and stranded partials re-homed.
// @Tags replacements
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param response body RespondRequest true "accept or reject"
// @Success 200 {object} service.RespondResult
// @Failure 400 {object} map[string]interface{} "Invalid action"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request already handled"
// @Security BearerAuth
// @Router /replacements/{id}/respond [post]
func (h *ReplacementHandler) Respond(c *gin.Context) {
	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	callerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller identity required"})
		return
	}

	result, err := h.service.Respond(requestID, req.Action, callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListSent handles GET /api/v1/replacements/sent?pending=&year=&month=
func (h *ReplacementHandler) ListSent(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller identity required"})
		return
	}
	views, err := h.service.ListSent(userID, c.Query("pending") == "true",
		queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListReceived handles GET /api/v1/replacements/received?pending=&year=&month=
func (h *ReplacementHandler) ListReceived(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "caller identity required"})
		return
	}
	views, err := h.service.ListReceived(userID, c.Query("pending") == "true",
		queryInt(c, "year", 0), queryInt(c, "month", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// PropagateToTemplate handles POST /api/v1/replacements/:id/propagate
// @Summary Make an accepted total substitution permanent in the templates
// @Tags replacements
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Request or template slot not found"
// @Failure 409 {object} map[string]interface{} "Request not an accepted total"
// @Security BearerAuth
// @Router /replacements/{id}/propagate [post]
func (h *ReplacementHandler) PropagateToTemplate(c *gin.Context) {
	requestID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.PropagateToTemplate(requestID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template updated"})
}
