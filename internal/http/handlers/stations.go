package handlers

import (
	"net/http"
	"strings"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/services"
	"github.com/babludoman333/rail-easy-seats/internal/utils"

	"github.com/gin-gonic/gin"
)

func ListStations(c *gin.Context) {
	svc := services.SearchService{}
	stations, err := svc.ListStations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

type stationRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	City  string `json:"city"`
	State string `json:"state"`
}

// CreateStation is admin-only, enforced by the router group.
func CreateStation(c *gin.Context) {
	var req stationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = utils.NormalizeSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if req.Name == "" || req.Code == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "station name and code are required")
		return
	}

	repo := repositories.StationRepository{}
	id, err := repo.Insert(models.Station{
		Name:  req.Name,
		Code:  req.Code,
		City:  strings.TrimSpace(req.City),
		State: strings.TrimSpace(req.State),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "station could not be saved")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "code": req.Code})
}
