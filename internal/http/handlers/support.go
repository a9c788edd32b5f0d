package handlers

import (
	"net/http"

	"github.com/babludoman333/rail-easy-seats/internal/services"

	"github.com/gin-gonic/gin"
)

func ListFAQs(c *gin.Context) {
	svc := services.SupportService{}
	c.JSON(http.StatusOK, gin.H{"faqs": svc.ListFAQs()})
}

type askRequest struct {
	Message string `json:"message"`
}

func AskSupport(c *gin.Context) {
	var req askRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.SupportService{}
	answer, matched := svc.Answer(req.Message)
	c.JSON(http.StatusOK, gin.H{"answer": answer, "matched": matched})
}
