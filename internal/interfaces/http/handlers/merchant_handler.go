package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// MerchantHandler handles merchant endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// ListMerchants lists merchants, optionally filtered by kyc_status and vertical
// GET /api/merchants
func (h *MerchantHandler) ListMerchants(c *gin.Context) {
	var filter entities.MerchantFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	merchants, err := h.merchantUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, merchants, len(merchants))
}

// GetMerchant returns one merchant
// GET /api/merchants/:id
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	merchant, err := h.merchantUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// CreateMerchant onboards a merchant in pending KYC state
// POST /api/merchants
func (h *MerchantHandler) CreateMerchant(c *gin.Context) {
	var input entities.CreateMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	merchant, err := h.merchantUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Merchant created successfully", merchant)
}

// UpdateKYCStatus records a KYC decision
// PATCH /api/merchants/:id/kyc
func (h *MerchantHandler) UpdateKYCStatus(c *gin.Context) {
	var input entities.UpdateKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	merchant, err := h.merchantUsecase.UpdateKYCStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, usecases.KYCMessage(merchant.KYCStatus), merchant)
}
