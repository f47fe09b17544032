package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// AdminHandler serves the platform admin views: alerts, settlements and system health
type AdminHandler struct {
	alertUsecase        *usecases.AlertUsecase
	settlementUsecase   *usecases.SettlementUsecase
	systemHealthUsecase *usecases.SystemHealthUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	alertUsecase *usecases.AlertUsecase,
	settlementUsecase *usecases.SettlementUsecase,
	systemHealthUsecase *usecases.SystemHealthUsecase,
) *AdminHandler {
	return &AdminHandler{
		alertUsecase:        alertUsecase,
		settlementUsecase:   settlementUsecase,
		systemHealthUsecase: systemHealthUsecase,
	}
}

// ListAlerts lists alerts filtered by status and severity
// GET /api/alerts
func (h *AdminHandler) ListAlerts(c *gin.Context) {
	var filter entities.AlertFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	alerts, err := h.alertUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, alerts, len(alerts))
}

// UpdateAlert changes an alert's status
// PATCH /api/alerts/:id
func (h *AdminHandler) UpdateAlert(c *gin.Context) {
	var input entities.UpdateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	alert, err := h.alertUsecase.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Alert updated successfully", alert)
}

// ListSettlements lists settlements filtered by status
// GET /api/settlements
func (h *AdminHandler) ListSettlements(c *gin.Context) {
	var filter entities.SettlementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	settlements, err := h.settlementUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, settlements, len(settlements))
}

// GetSystemHealth returns the platform health block
// GET /api/system-health
func (h *AdminHandler) GetSystemHealth(c *gin.Context) {
	health, err := h.systemHealthUsecase.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, health)
}
