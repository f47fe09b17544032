package middleware

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "subversepay.backend/internal/domain/errors"
	"subversepay.backend/internal/interfaces/http/response"
	"subversepay.backend/pkg/logger"
)

// RecoveryMiddleware turns a panic into a 500 envelope and logs it with the stack.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		response.Error(c, domainerrors.InternalError(fmt.Errorf("%v", recovered)))
	})
}
