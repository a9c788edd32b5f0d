package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/services"
	"github.com/babludoman333/rail-easy-seats/internal/utils"

	"github.com/gin-gonic/gin"
)

// SearchTrains handles GET /api/trains/search?from=&to=&date=YYYY-MM-DD.
func SearchTrains(c *gin.Context) {
	fromID, _ := strconv.ParseInt(c.Query("from"), 10, 64)
	toID, _ := strconv.ParseInt(c.Query("to"), 10, 64)
	date := c.Query("date")

	svc := services.SearchService{}
	trains, err := svc.SearchTrains(fromID, toID, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": trains, "count": len(trains)})
}

func GetTrain(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid train id")
		return
	}

	repo := repositories.TrainRepository{}
	train, err := repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "train not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"train": train})
}

type trainRequest struct {
	Number        string             `json:"number"`
	Name          string             `json:"name"`
	FromStationID int64              `json:"from_station_id"`
	ToStationID   int64              `json:"to_station_id"`
	DepartureTime string             `json:"departure_time"`
	ArrivalTime   string             `json:"arrival_time"`
	Duration      string             `json:"duration"`
	Price         float64            `json:"price"`
	TotalSeats    int                `json:"total_seats"`
	OperatingDays []string           `json:"operating_days"`
	ClassPrices   map[string]float64 `json:"class_prices"`
}

// CreateTrain is admin-only. Class prices are keyed by class code and every
// key must be one of the known codes; unknown codes are rejected outright
// rather than silently repriced.
func CreateTrain(c *gin.Context) {
	var req trainRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Number = strings.TrimSpace(req.Number)
	req.Name = utils.NormalizeSpace(req.Name)
	if req.Number == "" || req.Name == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "train number and name are required")
		return
	}
	if req.FromStationID <= 0 || req.ToStationID <= 0 || req.FromStationID == req.ToStationID {
		respondError(c, http.StatusBadRequest, "validation_error", "distinct from and to stations are required")
		return
	}
	if req.Price < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "price cannot be negative")
		return
	}
	for code := range req.ClassPrices {
		if !models.IsClassCode(code) {
			respondError(c, http.StatusBadRequest, "validation_error", "unknown class code: "+code)
			return
		}
	}

	repo := repositories.TrainRepository{}
	id, err := repo.Insert(models.Train{
		Number:        req.Number,
		Name:          req.Name,
		FromStationID: req.FromStationID,
		ToStationID:   req.ToStationID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Duration:      req.Duration,
		Price:         req.Price,
		TotalSeats:    req.TotalSeats,
		OperatingDays: models.StringList(req.OperatingDays),
		ClassPrices:   models.ClassPrices(req.ClassPrices),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "train could not be saved")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "number": req.Number})
}

type seedSeatsRequest struct {
	Coaches []services.CoachConfig `json:"coaches"`
}

// SeedSeats is admin-only: POST /api/admin/trains/:id/seats.
func SeedSeats(c *gin.Context) {
	trainID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || trainID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid train id")
		return
	}

	var req seedSeatsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.SeatMapService{RequestID: requestID(c)}
	total, err := svc.SeedCoaches(trainID, req.Coaches)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"train_id": trainID, "seats_created": total})
}
