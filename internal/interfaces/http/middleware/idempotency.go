package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/pkg/logger"
	"subversepay.backend/pkg/metrics"
	"subversepay.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	IdempotencyHit    = "X-Idempotency-Hit"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

// Outcome labels reported to metrics.
const (
	OutcomeStored   = "stored"
	OutcomeReplayed = "replayed"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	redisEnabled = redis.Enabled
	redisGet     = redis.Get
	redisSet     = redis.Set
	redisSetNX   = redis.SetNX
	redisDel     = redis.Del
)

// ErrIdempotencyConflict is reported while a request with the same key is still running.
var ErrIdempotencyConflict = domainerrors.NewAppError(http.StatusConflict, "Request already in progress", nil)

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the first successful response for a repeated
// Idempotency-Key. Keys are scoped by route. Without Redis it is a no-op.
func IdempotencyMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	observe := func(outcome string) {
		if m != nil {
			m.Idempotency(outcome)
		}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || !redisEnabled() {
			c.Next()
			return
		}

		storageKey := "idempotency:" + c.FullPath() + ":" + key
		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		switch {
		case err == nil && val == processingMarker:
			observe(OutcomeConflict)
			response.Error(c, ErrIdempotencyConflict)
			return
		case err == nil:
			var stored storedResponse
			if jsonErr := json.Unmarshal([]byte(val), &stored); jsonErr != nil || stored.Status == 0 {
				logger.Warn(ctx, "Discarding unreadable idempotency record", zap.String("key", storageKey))
				observe(OutcomeError)
				c.Next()
				return
			}
			observe(OutcomeReplayed)
			c.Header(IdempotencyHit, "true")
			c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
			c.Abort()
			return
		case !errors.Is(err, redis.Nil):
			logger.Warn(ctx, "Idempotency lookup failed, processing without it", zap.Error(err))
			observe(OutcomeError)
			c.Next()
			return
		}

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !acquired {
			observe(OutcomeConflict)
			response.Error(c, ErrIdempotencyConflict)
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 && json.Valid(w.body.Bytes()) {
			record, _ := json.Marshal(storedResponse{Status: status, Body: w.body.Bytes()})
			if err := redisSet(ctx, storageKey, string(record), RetentionDuration); err != nil {
				logger.Warn(ctx, "Failed to store idempotent response", zap.Error(err))
				observe(OutcomeError)
				return
			}
			observe(OutcomeStored)
			return
		}
		// Remove key so retry is possible
		_ = redisDel(ctx, storageKey)
	}
}
