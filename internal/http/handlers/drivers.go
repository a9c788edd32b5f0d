package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"
	"github.com/babludoman333/rail-easy-seats/internal/services"

	"github.com/gin-gonic/gin"
)

// Driver dashboard endpoints. The router mounts these behind RequireAuth; the
// service layer creates the driver profile on first touch.

func DriverProfile(c *gin.Context) {
	svc := services.CabService{RequestID: requestID(c)}
	profile, err := svc.DriverProfile(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type vehicleRequest struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	LicenseNumber string `json:"license_number"`
}

func UpdateDriverVehicle(c *gin.Context) {
	var req vehicleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.VehicleNumber) == "" || strings.TrimSpace(req.VehicleType) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "vehicle number and type are required")
		return
	}

	svc := services.CabService{RequestID: requestID(c)}
	if err := svc.UpdateDriverVehicle(middleware.UserID(c), req.VehicleNumber, req.VehicleType, req.LicenseNumber); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle details updated"})
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func SetDriverAvailability(c *gin.Context) {
	var req availabilityRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CabService{RequestID: requestID(c)}
	if err := svc.SetDriverAvailability(middleware.UserID(c), req.Available); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": req.Available})
}

func OpenRides(c *gin.Context) {
	svc := services.CabService{RequestID: requestID(c)}
	rides, err := svc.ListOpenRides()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides, "count": len(rides)})
}

func DriverRides(c *gin.Context) {
	svc := services.CabService{RequestID: requestID(c)}
	rides, err := svc.ListDriverRides(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides, "count": len(rides)})
}

func rideID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid ride id")
		return 0, false
	}
	return id, true
}

func AcceptRide(c *gin.Context) {
	id, ok := rideID(c)
	if !ok {
		return
	}

	svc := services.CabService{RequestID: requestID(c)}
	if err := svc.AcceptRide(middleware.UserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ride accepted"})
}

func CompleteRide(c *gin.Context) {
	id, ok := rideID(c)
	if !ok {
		return
	}

	svc := services.CabService{RequestID: requestID(c)}
	if err := svc.CompleteRide(middleware.UserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ride completed"})
}
