package handlers

import (
	"net/http"
	"strconv"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/services"

	"github.com/gin-gonic/gin"
)

// ListCoaches handles GET /api/trains/:id/coaches.
func ListCoaches(c *gin.Context) {
	trainID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || trainID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid train id")
		return
	}

	svc := services.CatalogService{}
	coaches, err := svc.ListCoaches(trainID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"train_id": trainID, "coaches": coaches})
}

// SeatCatalogByQuery handles GET /api/trains/:id/seats?coach=S1: the plain
// catalog fetch with no prior selection.
func SeatCatalogByQuery(c *gin.Context) {
	trainID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || trainID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid train id")
		return
	}

	svc := services.CatalogService{}
	catalog, err := svc.FetchCatalog(trainID, c.Query("coach"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	views, _ := services.AnnotateCatalog(catalog, nil)
	c.JSON(http.StatusOK, gin.H{
		"train_id": trainID,
		"coach":    c.Query("coach"),
		"seats":    views,
	})
}

type seatCatalogRequest struct {
	Selection []string `json:"selection"`
}

// SeatCatalog handles POST /api/trains/:id/coaches/:coach/seats. The body
// carries the caller's current selection; the response returns every seat
// annotated plus the reconciled selection. Fetching with an empty body is the
// plain catalog fetch.
func SeatCatalog(c *gin.Context) {
	trainID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || trainID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid train id")
		return
	}
	coach := c.Param("coach")

	var req seatCatalogRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "bad_request", "invalid payload: "+err.Error())
			return
		}
	}

	svc := services.CatalogService{}
	catalog, err := svc.FetchCatalog(trainID, coach)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	views, sel := services.AnnotateCatalog(catalog, domain.Selection(req.Selection))
	c.JSON(http.StatusOK, gin.H{
		"train_id":  trainID,
		"coach":     coach,
		"seats":     views,
		"selection": sel,
	})
}
