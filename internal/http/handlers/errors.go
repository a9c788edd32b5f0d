package handlers

import (
	"net/http"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Missing booking
// fields and conflicts stay 4xx so the client blocks progression; catalog
// unavailability is 503 and meant to render as a non-blocking notice.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsMissingField(err):
		respondError(c, http.StatusUnprocessableEntity, "missing_booking_field", err.Error())
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsAuth(err):
		respondError(c, http.StatusUnauthorized, "auth_required", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsUnavailable(err):
		respondError(c, http.StatusServiceUnavailable, "catalog_unavailable", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
