package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"subversepay.backend/internal/infrastructure/memory"
	"subversepay.backend/internal/infrastructure/seed"
	"subversepay.backend/internal/interfaces/http/handlers"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
	"subversepay.backend/pkg/utils"
)

var fixedNow = time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"details"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	response.UseJSONFieldNames()

	store := memory.NewStore(seed.Load(fixedNow))
	merchantRepo := memory.NewMerchantRepository(store)
	alertRepo := memory.NewAlertRepository(store)
	dashboardRepo := memory.NewDashboardRepository(store)
	clock := func() time.Time { return fixedNow }

	merchantHandler := handlers.NewMerchantHandler(
		usecases.NewMerchantUsecase(merchantRepo, utils.NewSequenceGenerator("m-", 0), clock))
	analyticsHandler := handlers.NewAnalyticsHandler(
		usecases.NewAnalyticsUsecase(merchantRepo, alertRepo, 14.2))
	adminHandler := handlers.NewAdminHandler(
		usecases.NewAlertUsecase(alertRepo),
		usecases.NewSettlementUsecase(memory.NewSettlementRepository(store)),
		usecases.NewSystemHealthUsecase(dashboardRepo),
	)
	merchantAdminHandler := handlers.NewMerchantAdminHandler(
		usecases.NewMerchantAdminUsecase(dashboardRepo, memory.NewChurnPredictionRepository(store)))
	operatorHandler := handlers.NewOperatorHandler(
		usecases.NewOperatorUsecase(dashboardRepo, memory.NewSubscriberRepository(store)))
	customerHandler := handlers.NewCustomerHandler(usecases.NewCustomerUsecase(dashboardRepo, clock))

	r := gin.New()
	api := r.Group("/api")
	api.GET("/merchants", merchantHandler.ListMerchants)
	api.GET("/merchants/:id", merchantHandler.GetMerchant)
	api.POST("/merchants", merchantHandler.CreateMerchant)
	api.PATCH("/merchants/:id/kyc", merchantHandler.UpdateKYCStatus)

	api.GET("/analytics/overview", analyticsHandler.GetOverview)
	api.GET("/analytics/merchants", analyticsHandler.GetMerchantPerformance)
	api.GET("/analytics/verticals", analyticsHandler.GetVerticals)

	api.GET("/alerts", adminHandler.ListAlerts)
	api.PATCH("/alerts/:id", adminHandler.UpdateAlert)
	api.GET("/settlements", adminHandler.ListSettlements)
	api.GET("/system-health", adminHandler.GetSystemHealth)

	api.GET("/merchant-admin/collections", merchantAdminHandler.GetCollections)
	api.GET("/merchant-admin/retry-analytics", merchantAdminHandler.GetRetryAnalytics)
	api.GET("/merchant-admin/churn-predictions", merchantAdminHandler.ListChurnPredictions)
	api.GET("/merchant-admin/lco-performance", merchantAdminHandler.GetLCOPerformance)
	api.GET("/merchant-admin/reminders", merchantAdminHandler.GetReminders)
	api.GET("/merchant-admin/revenue-forecast", merchantAdminHandler.GetRevenueForecast)

	api.GET("/operator/subscribers", operatorHandler.ListSubscribers)
	api.GET("/operator/collections", operatorHandler.GetCollections)
	api.GET("/operator/settlements", operatorHandler.GetSettlements)
	api.POST("/operator/send-reminder", operatorHandler.SendReminder)
	api.POST("/operator/trigger-retry", operatorHandler.TriggerRetry)
	api.POST("/operator/pause-service", operatorHandler.PauseService)

	api.GET("/customer/profile", customerHandler.GetProfile)
	api.GET("/customer/payments", customerHandler.GetPayments)
	api.GET("/customer/reminders", customerHandler.GetReminders)
	api.POST("/customer/make-payment", customerHandler.MakePayment)
	api.POST("/customer/enable-autopay", customerHandler.EnableAutopay)
	api.PATCH("/customer/toggle-autopay", customerHandler.ToggleAutopay)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
