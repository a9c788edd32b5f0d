package services

import (
	"context"
	"testing"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var trainCols = []string{
	"id", "number", "name", "from_station_id", "to_station_id",
	"departure_time", "arrival_time", "duration", "price", "total_seats",
	"operating_days", "class_prices",
	"fs_id", "fs_name", "fs_code", "fs_city", "fs_state",
	"ts_id", "ts_name", "ts_code", "ts_city", "ts_state",
}

func expressRow() *sqlmock.Rows {
	return sqlmock.NewRows(trainCols).AddRow(
		3, "12951", "Rajdhani Express", 1, 2,
		"16:25", "08:15", "15h 50m", 500.0, 400,
		`["Mon","Wed","Fri"]`, `{"3A":1200,"SL":450}`,
		1, "Mumbai Central", "MMCT", "Mumbai", "Maharashtra",
		2, "New Delhi", "NDLS", "Delhi", "Delhi",
	)
}

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		TrainRepo:   repositories.TrainRepository{DB: db},
		SeatRepo:    repositories.SeatRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func TestQuoteBooking_ClassTablePricing(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM trains t").WithArgs(int64(3)).WillReturnRows(expressRow())

	q, err := svc.QuoteBooking(3, "AC Three-Tier", []string{"1-LB", "2-MB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.FarePerSeat != 1200 {
		t.Fatalf("fare = %v, want 1200", q.FarePerSeat)
	}
	if q.BookingFee != 50 {
		t.Fatalf("fee = %v, want 50", q.BookingFee)
	}
	if q.TotalAmount != 2*1200+50 {
		t.Fatalf("total = %v, want %v", q.TotalAmount, 2*1200+50)
	}
	if q.ClassCode != "3A" {
		t.Fatalf("class code = %q, want 3A", q.ClassCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQuoteBooking_EmptySelectionRejected(t *testing.T) {
	svc, _, done := newBookingService(t)
	defer done()

	_, err := svc.QuoteBooking(3, "Sleeper", nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func confirmRequest() ConfirmRequest {
	return ConfirmRequest{
		TrainID:         3,
		JourneyDate:     "2026-09-16",
		Coach:           "B1",
		Class:           "AC Three-Tier",
		SeatNumbers:     []string{"1-LB", "2-MB"},
		PassengerName:   "Asha Rao",
		PassengerAge:    "34",
		PassengerGender: "female",
	}
}

func TestConfirmBooking_WritesBeforeReturning(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM trains t").WithArgs(int64(3)).WillReturnRows(expressRow())
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	booking, err := svc.ConfirmBooking(context.Background(), 7, confirmRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.ID != 11 {
		t.Fatalf("booking id = %d, want 11", booking.ID)
	}
	if booking.Status != "confirmed" {
		t.Fatalf("status = %q", booking.Status)
	}
	if booking.TotalAmount != 2*1200+50 {
		t.Fatalf("total = %v", booking.TotalAmount)
	}
	if len(booking.BookingID) < 3 || booking.BookingID[:2] != "RE" {
		t.Fatalf("pnr format wrong: %q", booking.BookingID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmBooking_SeatRaceRollsBack(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM trains t").WithArgs(int64(3)).WillReturnRows(expressRow())
	mock.ExpectBegin()
	// Only one of two seats still available: the whole booking must fail.
	mock.ExpectExec("UPDATE seats").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := svc.ConfirmBooking(context.Background(), 7, confirmRequest())
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmBooking_BadAgeNeverTouchesSeats(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM trains t").WithArgs(int64(3)).WillReturnRows(expressRow())
	// No Begin/Exec expected: assembly fails before the transaction.

	req := confirmRequest()
	req.PassengerAge = "thirty"
	_, err := svc.ConfirmBooking(context.Background(), 7, req)
	if !domain.IsMissingField(err) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConfirmBooking_UnauthenticatedRejected(t *testing.T) {
	svc, _, done := newBookingService(t)
	defer done()

	_, err := svc.ConfirmBooking(context.Background(), 0, confirmRequest())
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
