package domain

import (
	"strings"
	"testing"
	"time"
)

func validDraft() BookingDraft {
	return BookingDraft{
		BookingID:       "RE1700000000000",
		UserID:          7,
		TrainID:         3,
		PassengerName:   "Asha Rao",
		PassengerAge:    "34",
		PassengerGender: "female",
		JourneyDate:     "2026-09-15",
		SeatNumbers:     []string{" 1-lb ", "2-MB"},
		Coach:           "s1",
		Class:           "Sleeper",
		ClassPrice:      450,
		TotalAmount:     950,
	}
}

func TestAssembleBooking_HappyPathNormalizes(t *testing.T) {
	b, err := AssembleBooking(validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != "confirmed" {
		t.Fatalf("status = %q, want confirmed", b.Status)
	}
	if b.Coach != "S1" {
		t.Fatalf("coach not uppercased: %q", b.Coach)
	}
	if b.SeatNumbers[0] != "1-LB" || b.SeatNumbers[1] != "2-MB" {
		t.Fatalf("seat numbers not normalized: %v", b.SeatNumbers)
	}
	if b.PassengerAge != 34 {
		t.Fatalf("age = %d, want 34", b.PassengerAge)
	}
}

func TestAssembleBooking_EachMissingFieldRejected(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*BookingDraft)
	}{
		{"booking_id", func(d *BookingDraft) { d.BookingID = "  " }},
		{"user_id", func(d *BookingDraft) { d.UserID = 0 }},
		{"train_id", func(d *BookingDraft) { d.TrainID = 0 }},
		{"passenger_name", func(d *BookingDraft) { d.PassengerName = "" }},
		{"passenger_age", func(d *BookingDraft) { d.PassengerAge = "" }},
		{"passenger_gender", func(d *BookingDraft) { d.PassengerGender = "" }},
		{"journey_date", func(d *BookingDraft) { d.JourneyDate = "" }},
		{"seat_numbers", func(d *BookingDraft) { d.SeatNumbers = nil }},
		{"coach", func(d *BookingDraft) { d.Coach = "" }},
		{"class", func(d *BookingDraft) { d.Class = "" }},
		{"total_amount", func(d *BookingDraft) { d.TotalAmount = 0 }},
	}

	for _, c := range cases {
		d := validDraft()
		c.mutate(&d)
		_, err := AssembleBooking(d)
		if !IsMissingField(err) {
			t.Errorf("%s: expected MissingFieldError, got %v", c.field, err)
			continue
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Errorf("%s: error does not name the field: %v", c.field, err)
		}
	}
}

func TestAssembleBooking_NonNumericAgeRejected(t *testing.T) {
	for _, age := range []string{"thirty", "12.5", "-3", "0"} {
		d := validDraft()
		d.PassengerAge = age
		if _, err := AssembleBooking(d); !IsMissingField(err) {
			t.Errorf("age %q: expected MissingFieldError, got %v", age, err)
		}
	}
}

func TestAssembleBooking_BlankSeatEntriesDropped(t *testing.T) {
	d := validDraft()
	d.SeatNumbers = []string{"  ", ""}
	if _, err := AssembleBooking(d); !IsMissingField(err) {
		t.Fatalf("expected MissingFieldError for blank-only seats, got %v", err)
	}
}

func TestNewPNR_Format(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := NewPNR(now); got != "RE1700000000000" {
		t.Fatalf("got %q", got)
	}
}
