package models

import "strings"

// Seat is one berth in one coach. Seat numbers are unique per coach only and
// carry the berth marker as a suffix (LB/MB/UB/SL/SU).
type Seat struct {
	ID          int64  `json:"id"`
	TrainID     int64  `json:"train_id"`
	Coach       string `json:"coach"`
	SeatNumber  string `json:"seat_number"`
	Class       string `json:"class"`
	IsAvailable bool   `json:"is_available"`
}

// BerthType decodes the marker substring in a seat number.
func (s Seat) BerthType() string {
	switch {
	case strings.Contains(s.SeatNumber, "LB"):
		return "Lower Berth"
	case strings.Contains(s.SeatNumber, "MB"):
		return "Middle Berth"
	case strings.Contains(s.SeatNumber, "UB"):
		return "Upper Berth"
	case strings.Contains(s.SeatNumber, "SL"):
		return "Side Lower"
	case strings.Contains(s.SeatNumber, "SU"):
		return "Side Upper"
	default:
		return "Seat"
	}
}
