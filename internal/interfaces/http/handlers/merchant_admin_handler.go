package handlers

import (
	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// MerchantAdminHandler serves the merchant admin dashboard
type MerchantAdminHandler struct {
	usecase *usecases.MerchantAdminUsecase
}

func NewMerchantAdminHandler(usecase *usecases.MerchantAdminUsecase) *MerchantAdminHandler {
	return &MerchantAdminHandler{usecase: usecase}
}

// GET /api/merchant-admin/collections
func (h *MerchantAdminHandler) GetCollections(c *gin.Context) {
	serveBlock(c, h.usecase.Collections)
}

// GET /api/merchant-admin/retry-analytics
func (h *MerchantAdminHandler) GetRetryAnalytics(c *gin.Context) {
	serveBlock(c, h.usecase.RetryAnalytics)
}

// ListChurnPredictions lists churn predictions, optionally by risk_level
// GET /api/merchant-admin/churn-predictions
func (h *MerchantAdminHandler) ListChurnPredictions(c *gin.Context) {
	var filter entities.ChurnPredictionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	predictions, err := h.usecase.ChurnPredictions(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, predictions, len(predictions))
}

// GET /api/merchant-admin/lco-performance
func (h *MerchantAdminHandler) GetLCOPerformance(c *gin.Context) {
	serveBlock(c, h.usecase.LCOPerformance)
}

// GET /api/merchant-admin/reminders
func (h *MerchantAdminHandler) GetReminders(c *gin.Context) {
	serveBlock(c, h.usecase.Reminders)
}

// GET /api/merchant-admin/revenue-forecast
func (h *MerchantAdminHandler) GetRevenueForecast(c *gin.Context) {
	serveBlock(c, h.usecase.RevenueForecast)
}
