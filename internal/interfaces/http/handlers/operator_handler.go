package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/domain/entities"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
)

// OperatorHandler serves the LCO operator dashboard and its quick actions
type OperatorHandler struct {
	operatorUsecase *usecases.OperatorUsecase
}

// NewOperatorHandler creates a new operator handler
func NewOperatorHandler(operatorUsecase *usecases.OperatorUsecase) *OperatorHandler {
	return &OperatorHandler{operatorUsecase: operatorUsecase}
}

// ListSubscribers lists subscribers filtered by status and risk_level
// GET /api/operator/subscribers
func (h *OperatorHandler) ListSubscribers(c *gin.Context) {
	var filter entities.SubscriberFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, err)
		return
	}

	subscribers, err := h.operatorUsecase.Subscribers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, subscribers, len(subscribers))
}

// GET /api/operator/collections
func (h *OperatorHandler) GetCollections(c *gin.Context) {
	serveBlock(c, h.operatorUsecase.Collections)
}

// GET /api/operator/settlements
func (h *OperatorHandler) GetSettlements(c *gin.Context) {
	serveBlock(c, h.operatorUsecase.Settlements)
}

// SendReminder POST /api/operator/send-reminder
func (h *OperatorHandler) SendReminder(c *gin.Context) {
	h.quickAction(c, entities.OperatorActionSendReminder)
}

// TriggerRetry POST /api/operator/trigger-retry
func (h *OperatorHandler) TriggerRetry(c *gin.Context) {
	h.quickAction(c, entities.OperatorActionTriggerRetry)
}

// PauseService POST /api/operator/pause-service
func (h *OperatorHandler) PauseService(c *gin.Context) {
	h.quickAction(c, entities.OperatorActionPauseService)
}

func (h *OperatorHandler) quickAction(c *gin.Context, action entities.OperatorAction) {
	var input entities.SubscriberActionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	msg, err := h.operatorUsecase.QuickAction(c.Request.Context(), action, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, msg, nil)
}
