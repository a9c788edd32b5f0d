package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMarkBookedTx_OnlyAvailableRowsFlip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE seats").
		WithArgs(int64(3), "B1", "1-LB", "2-MB").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	repo := SeatRepository{DB: db}
	flipped, err := repo.MarkBookedTx(tx, 3, "b1", []string{"1-LB", "2-MB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flipped != 1 {
		t.Fatalf("flipped = %d, want 1", flipped)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMarkBookedTx_EmptySeatListNoQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	tx, _ := db.Begin()

	repo := SeatRepository{DB: db}
	flipped, err := repo.MarkBookedTx(tx, 3, "B1", nil)
	if err != nil || flipped != 0 {
		t.Fatalf("got flipped=%d err=%v", flipped, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
