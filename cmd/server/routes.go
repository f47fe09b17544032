package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subversepay.backend/internal/config"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/interfaces/http/handlers"
	"subversepay.backend/internal/interfaces/http/middleware"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/internal/usecases"
	"subversepay.backend/pkg/metrics"
	"subversepay.backend/pkg/utils"
)

const (
	serviceName    = "subversepay-backend"
	serviceVersion = "0.1.0"
)

type routeDeps struct {
	merchantHandler      *handlers.MerchantHandler
	analyticsHandler     *handlers.AnalyticsHandler
	adminHandler         *handlers.AdminHandler
	merchantAdminHandler *handlers.MerchantAdminHandler
	operatorHandler      *handlers.OperatorHandler
	customerHandler      *handlers.CustomerHandler
	idempotency          gin.HandlerFunc
	metrics              *metrics.Metrics
}

func buildRouteDeps(cfg *config.Config, store *storeDeps) routeDeps {
	var m *metrics.Metrics
	if cfg.HTTP.MetricsEnabled {
		m = metrics.New()
	}

	merchantUsecase := usecases.NewMerchantUsecase(store.merchants, utils.UUIDGenerator{}, now)
	analyticsUsecase := usecases.NewAnalyticsUsecase(store.merchants, store.alerts, cfg.Analytics.PlatformMonthlyGrowth)
	alertUsecase := usecases.NewAlertUsecase(store.alerts)
	settlementUsecase := usecases.NewSettlementUsecase(store.settlements)
	systemHealthUsecase := usecases.NewSystemHealthUsecase(store.dashboard)
	merchantAdminUsecase := usecases.NewMerchantAdminUsecase(store.dashboard, store.churnPredictions)
	operatorUsecase := usecases.NewOperatorUsecase(store.dashboard, store.subscribers)
	customerUsecase := usecases.NewCustomerUsecase(store.dashboard, now)

	return routeDeps{
		merchantHandler:      handlers.NewMerchantHandler(merchantUsecase),
		analyticsHandler:     handlers.NewAnalyticsHandler(analyticsUsecase),
		adminHandler:         handlers.NewAdminHandler(alertUsecase, settlementUsecase, systemHealthUsecase),
		merchantAdminHandler: handlers.NewMerchantAdminHandler(merchantAdminUsecase),
		operatorHandler:      handlers.NewOperatorHandler(operatorUsecase),
		customerHandler:      handlers.NewCustomerHandler(customerUsecase),
		idempotency:          middleware.IdempotencyMiddleware(m),
		metrics:              m,
	}
}

func newRouter(cfg *config.Config, d routeDeps) *gin.Engine {
	response.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	if d.metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.metrics))
	}
	r.Use(middleware.RecoveryMiddleware())

	applyCORSMiddleware(r, cfg.HTTP.CORSAllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, d.metrics)
	registerAPIRoutes(r, d)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, domainerrors.EndpointNotFound())
	})
	return r
}

func applyCORSMiddleware(r *gin.Engine, allowed []string) {
	r.Use(middleware.CORSMiddleware(allowed))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	if m == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(m.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	idempotent := d.idempotency
	if idempotent == nil {
		idempotent = func(c *gin.Context) { c.Next() }
	}

	api := r.Group("/api")
	{
		merchants := api.Group("/merchants")
		{
			merchants.GET("", d.merchantHandler.ListMerchants)
			merchants.POST("", idempotent, d.merchantHandler.CreateMerchant)
			merchants.GET("/:id", d.merchantHandler.GetMerchant)
			merchants.PATCH("/:id/kyc", d.merchantHandler.UpdateKYCStatus)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/overview", d.analyticsHandler.GetOverview)
			analytics.GET("/merchants", d.analyticsHandler.GetMerchantPerformance)
			analytics.GET("/verticals", d.analyticsHandler.GetVerticals)
		}

		api.GET("/alerts", d.adminHandler.ListAlerts)
		api.PATCH("/alerts/:id", d.adminHandler.UpdateAlert)
		api.GET("/settlements", d.adminHandler.ListSettlements)
		api.GET("/system-health", d.adminHandler.GetSystemHealth)

		merchantAdmin := api.Group("/merchant-admin")
		{
			merchantAdmin.GET("/collections", d.merchantAdminHandler.GetCollections)
			merchantAdmin.GET("/retry-analytics", d.merchantAdminHandler.GetRetryAnalytics)
			merchantAdmin.GET("/churn-predictions", d.merchantAdminHandler.ListChurnPredictions)
			merchantAdmin.GET("/lco-performance", d.merchantAdminHandler.GetLCOPerformance)
			merchantAdmin.GET("/reminders", d.merchantAdminHandler.GetReminders)
			merchantAdmin.GET("/revenue-forecast", d.merchantAdminHandler.GetRevenueForecast)
		}

		operator := api.Group("/operator")
		{
			operator.GET("/subscribers", d.operatorHandler.ListSubscribers)
			operator.GET("/collections", d.operatorHandler.GetCollections)
			operator.GET("/settlements", d.operatorHandler.GetSettlements)
			operator.POST("/send-reminder", d.operatorHandler.SendReminder)
			operator.POST("/trigger-retry", d.operatorHandler.TriggerRetry)
			operator.POST("/pause-service", d.operatorHandler.PauseService)
		}

		customer := api.Group("/customer")
		{
			customer.GET("/profile", d.customerHandler.GetProfile)
			customer.GET("/payments", d.customerHandler.GetPayments)
			customer.GET("/reminders", d.customerHandler.GetReminders)
			customer.POST("/make-payment", idempotent, d.customerHandler.MakePayment)
			customer.POST("/enable-autopay", d.customerHandler.EnableAutopay)
			customer.PATCH("/toggle-autopay", d.customerHandler.ToggleAutopay)
		}
	}
}
