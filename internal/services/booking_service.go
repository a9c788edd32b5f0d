package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	TrainRepo   repositories.TrainRepository
	SeatRepo    repositories.SeatRepository
	Holds       HoldService
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) trains() repositories.TrainRepository {
	if s.TrainRepo.DB != nil {
		return s.TrainRepo
	}
	return repositories.TrainRepository{DB: s.db()}
}

func (s BookingService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.db()}
}

// Quote is the server-side recompute of the booking summary. The review
// screen and the persisted record both come from this arithmetic, so the two
// can never drift apart.
type Quote struct {
	TrainID     int64    `json:"train_id"`
	Class       string   `json:"class"`
	ClassCode   string   `json:"class_code"`
	SeatNumbers []string `json:"seat_numbers"`
	FarePerSeat float64  `json:"fare_per_seat"`
	BaseFare    float64  `json:"base_fare"`
	BookingFee  float64  `json:"booking_fee"`
	TotalAmount float64  `json:"total_amount"`
}

func (s BookingService) QuoteBooking(trainID int64, classLabel string, seatNumbers []string) (Quote, error) {
	var q Quote
	if len(seatNumbers) == 0 {
		return q, domain.ValidationError{Field: "seat_numbers", Msg: "select at least one seat"}
	}

	train, err := s.trains().GetByID(trainID)
	if err != nil {
		if err == sql.ErrNoRows {
			return q, domain.NotFoundError{Resource: "train", Err: err}
		}
		return q, domain.InternalError{Err: err}
	}

	sel := domain.Selection(seatNumbers)
	fare := domain.FarePerSeat(train, classLabel)
	total := domain.Total(sel, fare, domain.BookingFee)

	return Quote{
		TrainID:     trainID,
		Class:       strings.TrimSpace(classLabel),
		ClassCode:   domain.ClassCode(classLabel),
		SeatNumbers: sel,
		FarePerSeat: fare,
		BaseFare:    total - domain.BookingFee,
		BookingFee:  domain.BookingFee,
		TotalAmount: total,
	}, nil
}

// ConfirmRequest is the raw confirmation payload; age stays free text until
// assembly so a bad value fails the parse, not the handler binding.
type ConfirmRequest struct {
	TrainID         int64    `json:"train_id"`
	JourneyDate     string   `json:"journey_date"`
	Coach           string   `json:"coach"`
	Class           string   `json:"class"`
	SeatNumbers     []string `json:"seat_numbers"`
	PassengerName   string   `json:"passenger_name"`
	PassengerAge    string   `json:"passenger_age"`
	PassengerGender string   `json:"passenger_gender"`
	HoldToken       string   `json:"hold_token"`
}

// ConfirmBooking validates, re-prices, flips seat availability with a
// compare-and-swap and writes the booking — all before any confirmed state is
// returned. A seat lost to a concurrent booker rolls the whole thing back.
func (s BookingService) ConfirmBooking(ctx context.Context, userID int64, req ConfirmRequest) (models.Booking, error) {
	var out models.Booking

	if userID <= 0 {
		return out, domain.AuthError{}
	}

	train, err := s.trains().GetByID(req.TrainID)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "train", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	fare := domain.FarePerSeat(train, req.Class)
	sel := domain.Selection(req.SeatNumbers)
	total := domain.Total(sel, fare, domain.BookingFee)

	booking, err := domain.AssembleBooking(domain.BookingDraft{
		BookingID:       domain.NewPNR(time.Now()),
		UserID:          userID,
		TrainID:         req.TrainID,
		PassengerName:   req.PassengerName,
		PassengerAge:    req.PassengerAge,
		PassengerGender: req.PassengerGender,
		JourneyDate:     req.JourneyDate,
		SeatNumbers:     req.SeatNumbers,
		Coach:           req.Coach,
		Class:           req.Class,
		ClassPrice:      fare,
		TotalAmount:     total,
	})
	if err != nil {
		return out, err
	}

	// Advisory hold check; cheap early exit before the transaction.
	if held, err := s.Holds.HeldByOther(ctx, booking.TrainID, booking.Coach, booking.SeatNumbers, req.HoldToken); err == nil && held {
		return out, domain.ConflictError{Resource: "seat", Msg: "one or more seats are held by another booking"}
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	flipped, err := s.seats().MarkBookedTx(tx, booking.TrainID, booking.Coach, booking.SeatNumbers)
	if err != nil {
		return out, domain.InternalError{Msg: "booking could not be saved", Err: err}
	}
	if flipped != int64(len(booking.SeatNumbers)) {
		return out, domain.ConflictError{Resource: "seat", Msg: "seat no longer available"}
	}

	id, err := s.bookings().InsertTx(tx, booking)
	if err != nil {
		return out, domain.InternalError{Msg: "booking could not be saved", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return out, domain.InternalError{Msg: "booking could not be saved", Err: err}
	}

	booking.ID = id
	_ = s.Holds.Release(ctx, booking.TrainID, booking.Coach, booking.SeatNumbers, req.HoldToken)

	utils.LogEvent(s.RequestID, "booking", "confirmed", "pnr="+booking.BookingID)
	return booking, nil
}

func (s BookingService) ListByUser(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.AuthError{}
	}
	bookings, err := s.bookings().ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return bookings, nil
}

func (s BookingService) GetByPNR(pnr string) (models.Booking, error) {
	var out models.Booking
	if strings.TrimSpace(pnr) == "" {
		return out, domain.ValidationError{Field: "pnr", Msg: "PNR is required"}
	}
	booking, err := s.bookings().GetByPNR(pnr)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	return booking, nil
}
