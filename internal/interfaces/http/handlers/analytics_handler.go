package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// AnalyticsHandler serves the platform analytics aggregates
type AnalyticsHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// GetOverview returns platform totals
// GET /api/analytics/overview
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.analyticsUsecase.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, overview)
}

// GetMerchantPerformance ranks approved merchants by TPV
// GET /api/analytics/merchants
func (h *AnalyticsHandler) GetMerchantPerformance(c *gin.Context) {
	ranked, err := h.analyticsUsecase.MerchantPerformance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ranked)
}

// GetVerticals groups approved merchants by vertical
// GET /api/analytics/verticals
func (h *AnalyticsHandler) GetVerticals(c *gin.Context) {
	verticals, err := h.analyticsUsecase.Verticals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, verticals)
}
