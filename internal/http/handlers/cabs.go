package handlers

import (
	"net/http"

	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"
	"github.com/babludoman333/rail-easy-seats/internal/services"

	"github.com/gin-gonic/gin"
)

func BookCab(c *gin.Context) {
	var req services.CabRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.CabService{RequestID: requestID(c)}
	ride, err := svc.CreateRide(middleware.UserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ride": ride, "booking_id": ride.BookingID})
}

func MyCabRides(c *gin.Context) {
	svc := services.CabService{RequestID: requestID(c)}
	rides, err := svc.ListRidesForUser(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides, "count": len(rides)})
}
