package handlers

import (
	"net/http"

	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "bad_request", "empty request body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
		return false
	}
	return true
}
