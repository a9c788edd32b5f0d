package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

// BookingDraft carries raw session state into assembly. Age stays a string
// here because it arrives from a free-text form field.
type BookingDraft struct {
	BookingID       string
	UserID          int64
	TrainID         int64
	PassengerName   string
	PassengerAge    string
	PassengerGender string
	JourneyDate     string
	SeatNumbers     []string
	Coach           string
	Class           string
	ClassPrice      float64
	TotalAmount     float64
}

// AssembleBooking validates the draft and shapes the persisted record.
// Any absent or unparseable required field returns a MissingFieldError and
// nothing is written; partial records must never reach the store.
func AssembleBooking(d BookingDraft) (models.Booking, error) {
	var b models.Booking

	if strings.TrimSpace(d.BookingID) == "" {
		return b, MissingFieldError{Field: "booking_id"}
	}
	if d.UserID <= 0 {
		return b, MissingFieldError{Field: "user_id"}
	}
	if d.TrainID <= 0 {
		return b, MissingFieldError{Field: "train_id"}
	}
	if strings.TrimSpace(d.PassengerName) == "" {
		return b, MissingFieldError{Field: "passenger_name"}
	}
	age, err := strconv.Atoi(strings.TrimSpace(d.PassengerAge))
	if err != nil || age <= 0 {
		return b, MissingFieldError{Field: "passenger_age", Err: err}
	}
	if strings.TrimSpace(d.PassengerGender) == "" {
		return b, MissingFieldError{Field: "passenger_gender"}
	}
	if strings.TrimSpace(d.JourneyDate) == "" {
		return b, MissingFieldError{Field: "journey_date"}
	}
	if len(d.SeatNumbers) == 0 {
		return b, MissingFieldError{Field: "seat_numbers"}
	}
	if strings.TrimSpace(d.Coach) == "" {
		return b, MissingFieldError{Field: "coach"}
	}
	if strings.TrimSpace(d.Class) == "" {
		return b, MissingFieldError{Field: "class"}
	}
	if d.TotalAmount <= 0 {
		return b, MissingFieldError{Field: "total_amount"}
	}

	seats := make(models.StringList, 0, len(d.SeatNumbers))
	for _, s := range d.SeatNumbers {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		seats = append(seats, s)
	}
	if len(seats) == 0 {
		return b, MissingFieldError{Field: "seat_numbers"}
	}

	b = models.Booking{
		BookingID:       strings.TrimSpace(d.BookingID),
		UserID:          d.UserID,
		TrainID:         d.TrainID,
		PassengerName:   strings.TrimSpace(d.PassengerName),
		PassengerAge:    age,
		PassengerGender: strings.TrimSpace(d.PassengerGender),
		JourneyDate:     strings.TrimSpace(d.JourneyDate),
		SeatNumbers:     seats,
		Coach:           strings.ToUpper(strings.TrimSpace(d.Coach)),
		Class:           strings.TrimSpace(d.Class),
		ClassPrice:      d.ClassPrice,
		TotalAmount:     d.TotalAmount,
		Status:          "confirmed",
		CreatedAt:       time.Now(),
	}
	return b, nil
}

// NewPNR mirrors the observed booking-id format: "RE" + millisecond timestamp.
func NewPNR(now time.Time) string {
	return "RE" + strconv.FormatInt(now.UnixMilli(), 10)
}
