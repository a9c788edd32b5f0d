package handlers

import (
	"net/http"
	"strconv"

	"github.com/babludoman333/rail-easy-seats/internal/http/middleware"
	"github.com/babludoman333/rail-easy-seats/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type quoteRequest struct {
	TrainID     int64    `json:"train_id"`
	Class       string   `json:"class"`
	SeatNumbers []string `json:"seat_numbers"`
}

// QuoteBooking recomputes the booking summary server-side: fare per seat for
// the chosen class, seat count times fare, plus the flat booking fee.
func QuoteBooking(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: requestID(c)}
	quote, err := svc.QuoteBooking(req.TrainID, req.Class, req.SeatNumbers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

type holdRequest struct {
	TrainID     int64    `json:"train_id"`
	Coach       string   `json:"coach"`
	SeatNumbers []string `json:"seat_numbers"`
}

// HoldSeats parks the selection in Redis and hands back the hold token the
// client must echo on confirmation. All-or-nothing: a partial grab releases
// what it took and reports the conflict.
func HoldSeats(c *gin.Context) {
	var req holdRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TrainID <= 0 || req.Coach == "" || len(req.SeatNumbers) == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "train, coach and seats are required")
		return
	}

	token := uuid.NewString()
	holds := services.HoldService{}
	ok, err := holds.TryHold(c.Request.Context(), req.TrainID, req.Coach, req.SeatNumbers, token)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "hold failed")
		return
	}
	if !ok {
		respondError(c, http.StatusConflict, "conflict", "one or more seats are held by another booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"hold_token": token, "seat_numbers": req.SeatNumbers})
}

func ConfirmBooking(c *gin.Context) {
	var req services.ConfirmRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: requestID(c)}
	booking, err := svc.ConfirmBooking(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking, "pnr": booking.BookingID})
}

func MyBookings(c *gin.Context) {
	svc := services.BookingService{RequestID: requestID(c)}
	bookings, err := svc.ListByUser(middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// PNRStatus is public; a PNR is its own bearer credential.
func PNRStatus(c *gin.Context) {
	svc := services.BookingService{RequestID: requestID(c)}
	booking, err := svc.GetByPNR(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DownloadTicket streams the e-ticket PDF for a PNR.
func DownloadTicket(c *gin.Context) {
	svc := services.TicketService{
		Bookings:  services.BookingService{RequestID: requestID(c)},
		RequestID: requestID(c),
	}
	pdfBytes, filename, err := svc.GenerateTicket(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Length", strconv.Itoa(len(pdfBytes)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
