package handlers

import (
	"net/http"

	"shift-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PayRateHandler handles HTTP requests for compensation
type PayRateHandler struct {
	service *service.PayRateService
}

// NewPayRateHandler creates a new pay rate handler
func NewPayRateHandler(service *service.PayRateService) *PayRateHandler {
	return &PayRateHandler{service: service}
}

// SetPayRate handles PUT /api/v1/pay-rates
// @Summary Create or update the rate for a user and role
// @Tags pay-rates
// @Accept json
// @Produce json
// @Param rate body service.PayRateRequest true "Rate data"
// @Success 200 {object} models.PayRate
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /pay-rates [put]
func (h *PayRateHandler) SetPayRate(c *gin.Context) {
	var req service.PayRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	rate, err := h.service.SetPayRate(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// GetUserRates handles GET /api/v1/users/:id/pay-rates
func (h *PayRateHandler) GetUserRates(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rates, err := h.service.GetUserRates(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

// DeletePayRate handles DELETE /api/v1/pay-rates/:id
func (h *PayRateHandler) DeletePayRate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeletePayRate(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pay rate deleted"})
}

// MonthlyAccounting handles GET /api/v1/users/:id/accounting
// @Summary Monthly payroll summary for a user
// @Tags pay-rates
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} service.MonthlyAccounting
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Security BearerAuth
// @Router /users/{id}/accounting [get]
func (h *PayRateHandler) MonthlyAccounting(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	year := queryInt(c, "year", 0)
	month := queryInt(c, "month", 0)
	summary, err := h.service.ComputeMonthlyAccounting(id, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
