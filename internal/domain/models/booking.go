package models

import "time"

// Booking is the persisted record assembled at confirmation time. Once
// written it is never mutated here; cancellation is handled elsewhere.
type Booking struct {
	ID              int64      `json:"id"`
	BookingID       string     `json:"booking_id"` // PNR
	UserID          int64      `json:"user_id"`
	TrainID         int64      `json:"train_id"`
	PassengerName   string     `json:"passenger_name"`
	PassengerAge    int        `json:"passenger_age"`
	PassengerGender string     `json:"passenger_gender"`
	JourneyDate     string     `json:"journey_date"`
	SeatNumbers     StringList `json:"seat_numbers"`
	Coach           string     `json:"coach"`
	Class           string     `json:"class"`
	ClassPrice      float64    `json:"class_price"`
	TotalAmount     float64    `json:"total_amount"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`

	// Joined train + station data for PNR lookup and ticket rendering.
	Train *Train `json:"train,omitempty"`
}
