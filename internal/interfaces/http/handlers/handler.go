package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"subversepay.backend/internal/interfaces/http/response"
)

// serveBlock answers a read-only dashboard block with 200 or the mapped error.
func serveBlock[T any](c *gin.Context, fetch func(context.Context) (T, error)) {
	data, err := fetch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}
