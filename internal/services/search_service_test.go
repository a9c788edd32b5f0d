package services

import (
	"testing"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newSearchService(t *testing.T) (SearchService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := SearchService{
		StationRepo: repositories.StationRepository{DB: db},
		TrainRepo:   repositories.TrainRepository{DB: db},
		DB:          db,
	}
	return svc, mock, func() { db.Close() }
}

func routeRows() *sqlmock.Rows {
	rows := sqlmock.NewRows(trainCols)
	// Runs Mon/Wed/Fri.
	rows.AddRow(3, "12951", "Rajdhani Express", 1, 2,
		"16:25", "08:15", "15h 50m", 500.0, 400,
		`["Mon","Wed","Fri"]`, `{"3A":1200,"SL":450}`,
		1, "Mumbai Central", "MMCT", "Mumbai", "Maharashtra",
		2, "New Delhi", "NDLS", "Delhi", "Delhi")
	// Sunday-only special.
	rows.AddRow(4, "22221", "Weekend Special", 1, 2,
		"22:00", "14:00", "16h 00m", 600.0, 350,
		`["Sun"]`, nil,
		1, "Mumbai Central", "MMCT", "Mumbai", "Maharashtra",
		2, "New Delhi", "NDLS", "Delhi", "Delhi")
	// No operating days recorded: runs daily.
	rows.AddRow(5, "12009", "Shatabdi Express", 1, 2,
		"06:00", "12:10", "6h 10m", 800.0, 300,
		nil, `{"CC":950,"EC":1400}`,
		1, "Mumbai Central", "MMCT", "Mumbai", "Maharashtra",
		2, "New Delhi", "NDLS", "Delhi", "Delhi")
	return rows
}

func TestSearchTrains_WeekdayFilter(t *testing.T) {
	svc, mock, done := newSearchService(t)
	defer done()

	mock.ExpectQuery("FROM trains t").WithArgs(int64(1), int64(2)).WillReturnRows(routeRows())

	// 2026-09-16 is a Wednesday.
	trains, err := svc.SearchTrains(1, 2, "2026-09-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trains) != 2 {
		t.Fatalf("got %d trains, want 2", len(trains))
	}
	if trains[0].Number != "12951" || trains[1].Number != "12009" {
		t.Fatalf("wrong trains: %s, %s", trains[0].Number, trains[1].Number)
	}
	if trains[0].FromStation == nil || trains[0].FromStation.Code != "MMCT" {
		t.Fatalf("station join missing: %+v", trains[0].FromStation)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchTrains_SameStationRejected(t *testing.T) {
	svc, _, done := newSearchService(t)
	defer done()

	if _, err := svc.SearchTrains(1, 1, "2026-09-16"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSearchTrains_BadDateRejected(t *testing.T) {
	svc, _, done := newSearchService(t)
	defer done()

	if _, err := svc.SearchTrains(1, 2, "16-09-2026"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
