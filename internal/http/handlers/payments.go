package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/babludoman333/rail-easy-seats/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type checkoutRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

var paymentMethods = map[string]bool{
	"upi":         true,
	"card":        true,
	"net_banking": true,
}

// Checkout simulates the payment step. No gateway is wired; every valid
// request succeeds and returns a reference the client attaches to the
// confirmation call.
func Checkout(c *gin.Context) {
	var req checkoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if req.Amount <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "amount must be positive")
		return
	}
	method := strings.ToLower(strings.TrimSpace(req.Method))
	if !paymentMethods[method] {
		respondError(c, http.StatusBadRequest, "validation_error", "unsupported payment method")
		return
	}

	ref := "PAY-" + uuid.NewString()
	utils.LogEvent(requestID(c), "payment", "succeeded", "ref="+ref)

	c.JSON(http.StatusOK, gin.H{
		"payment_ref": ref,
		"status":      "succeeded",
		"amount":      req.Amount,
		"method":      method,
		"paid_at":     time.Now().UTC().Format(time.RFC3339),
	})
}
