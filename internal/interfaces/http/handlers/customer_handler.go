package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// CustomerHandler serves the subscriber self-service portal
type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase}
}

// GET /api/customer/profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	serveBlock(c, h.customerUsecase.Profile)
}

// GET /api/customer/payments
func (h *CustomerHandler) GetPayments(c *gin.Context) {
	serveBlock(c, h.customerUsecase.Payments)
}

// GET /api/customer/reminders
func (h *CustomerHandler) GetReminders(c *gin.Context) {
	serveBlock(c, h.customerUsecase.Reminders)
}

// MakePayment issues a payment order for the requested amount
// POST /api/customer/make-payment
func (h *CustomerHandler) MakePayment(c *gin.Context) {
	var input entities.MakePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	order := h.customerUsecase.MakePayment(c.Request.Context(), &input)
	response.Message(c, http.StatusOK, "Payment initiated", order)
}

// EnableAutopay acknowledges an AutoPay mandate request
// POST /api/customer/enable-autopay
func (h *CustomerHandler) EnableAutopay(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "AutoPay enabled successfully", nil)
}

// ToggleAutopay echoes the requested AutoPay state
// PATCH /api/customer/toggle-autopay
func (h *CustomerHandler) ToggleAutopay(c *gin.Context) {
	var input entities.ToggleAutopayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	state, msg := h.customerUsecase.ToggleAutopay(c.Request.Context(), &input)
	response.Message(c, http.StatusOK, msg, state)
}
