package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subversepay.backend/internal/interfaces/http/handlers"
	"subversepay.backend/internal/interfaces/http/middleware"
	redispkg "subversepay.backend/pkg/redis"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	withMainHooks(t)
	gin.SetMode(gin.TestMode)

	cfg := baseTestConfig()
	store, err := buildStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(store.close)
	return newRouter(cfg, buildRouteDeps(cfg, store))
}

func serve(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAPIRoutes_RegistersEveryEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIRoutes(r, routeDeps{
		merchantHandler:      &handlers.MerchantHandler{},
		analyticsHandler:     &handlers.AnalyticsHandler{},
		adminHandler:         &handlers.AdminHandler{},
		merchantAdminHandler: &handlers.MerchantAdminHandler{},
		operatorHandler:      &handlers.OperatorHandler{},
		customerHandler:      &handlers.CustomerHandler{},
	})

	expects := []struct {
		method string
		path   string
	}{
		{"GET", "/api/merchants"},
		{"POST", "/api/merchants"},
		{"GET", "/api/merchants/:id"},
		{"PATCH", "/api/merchants/:id/kyc"},
		{"GET", "/api/analytics/overview"},
		{"GET", "/api/analytics/merchants"},
		{"GET", "/api/analytics/verticals"},
		{"GET", "/api/alerts"},
		{"PATCH", "/api/alerts/:id"},
		{"GET", "/api/settlements"},
		{"GET", "/api/system-health"},
		{"GET", "/api/merchant-admin/collections"},
		{"GET", "/api/merchant-admin/retry-analytics"},
		{"GET", "/api/merchant-admin/churn-predictions"},
		{"GET", "/api/merchant-admin/lco-performance"},
		{"GET", "/api/merchant-admin/reminders"},
		{"GET", "/api/merchant-admin/revenue-forecast"},
		{"GET", "/api/operator/subscribers"},
		{"GET", "/api/operator/collections"},
		{"GET", "/api/operator/settlements"},
		{"POST", "/api/operator/send-reminder"},
		{"POST", "/api/operator/trigger-retry"},
		{"POST", "/api/operator/pause-service"},
		{"GET", "/api/customer/profile"},
		{"GET", "/api/customer/payments"},
		{"GET", "/api/customer/reminders"},
		{"POST", "/api/customer/make-payment"},
		{"POST", "/api/customer/enable-autopay"},
		{"PATCH", "/api/customer/toggle-autopay"},
	}

	routes := r.Routes()
	require.Len(t, routes, len(expects))
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		assert.True(t, found, "route %s %s not registered", exp.method, exp.path)
	}
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	r := newTestServer(t)

	for _, c := range []struct{ method, path string }{
		{http.MethodGet, "/api/unknown"},
		{http.MethodPost, "/api/operator/unknown-action"},
		{http.MethodDelete, "/api/merchants/1"},
	} {
		w := serve(r, c.method, c.path, "")
		require.Equal(t, http.StatusNotFound, w.Code, c.path)
		assert.JSONEq(t, `{"success":false,"error":"Endpoint not found"}`, w.Body.String())
	}
}

func TestRouter_HealthMetricsAndRequestID(t *testing.T) {
	r := newTestServer(t)

	w := serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, http.MethodGet, "/api/merchants/1", "", middleware.RequestIDHeader, "trace-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "trace-1", w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/merchants/:id"`)
}

func TestRouter_EndToEndAnalyticsAfterMutations(t *testing.T) {
	r := newTestServer(t)

	w := serve(r, http.MethodPost, "/api/merchants", `{"name":"CityGym","vertical":"Gym/Fitness"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID        string `json:"id"`
			KYCStatus string `json:"kyc_status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "pending", created.Data.KYCStatus)

	w = serve(r, http.MethodPatch, "/api/merchants/"+created.Data.ID+"/kyc", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/analytics/merchants", "")
	var ranked struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ranked))
	require.Len(t, ranked.Data, 5)
	assert.Equal(t, "CityGym", ranked.Data[4].Name, "zero TPV ranks last")
}

func TestRouter_IdempotentCreateWithRedis(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)
	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() {
		_ = cli.Close()
		redispkg.SetClient(nil)
	})

	r := newTestServer(t)
	body := `{"name":"StreamBox OTT","vertical":"OTT"}`

	first := serve(r, http.MethodPost, "/api/merchants", body, middleware.IdempotencyHeader, "create-1")
	require.Equal(t, http.StatusCreated, first.Code)
	second := serve(r, http.MethodPost, "/api/merchants", body, middleware.IdempotencyHeader, "create-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyHit))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	w := serve(r, http.MethodGet, "/api/merchants?vertical=OTT", "")
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}
