package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type SeatRepository struct {
	DB *sql.DB
}

func (r SeatRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByTrainCoach is the seat-catalog fetch: every coach or train change
// re-runs it and the result replaces the previous catalog wholesale.
func (r SeatRepository) ListByTrainCoach(trainID int64, coach string) ([]models.Seat, error) {
	rows, err := r.db().Query(`
		SELECT id, train_id, coach, seat_number, class, is_available
		FROM seats
		WHERE train_id = ? AND coach = ?
		ORDER BY seat_number ASC
	`, trainID, strings.ToUpper(strings.TrimSpace(coach)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.TrainID, &s.Coach, &s.SeatNumber, &s.Class, &s.IsAvailable); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SeatRepository) ListCoaches(trainID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT DISTINCT coach
		FROM seats
		WHERE train_id = ?
		ORDER BY coach ASC
	`, trainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r SeatRepository) InsertBatch(seats []models.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	stmt := `INSERT INTO seats (train_id, coach, seat_number, class, is_available) VALUES `
	placeholders := make([]string, 0, len(seats))
	args := make([]any, 0, len(seats)*5)
	for _, s := range seats {
		placeholders = append(placeholders, "(?,?,?,?,?)")
		args = append(args, s.TrainID, s.Coach, s.SeatNumber, s.Class, s.IsAvailable)
	}
	_, err := r.db().Exec(stmt+strings.Join(placeholders, ","), args...)
	return err
}

// MarkBookedTx flips availability for the given seats inside tx, but only for
// rows still available. Returns the number of rows flipped; a caller seeing
// fewer rows than seats knows someone else got there first and must roll back.
func (r SeatRepository) MarkBookedTx(tx *sql.Tx, trainID int64, coach string, seatNumbers []string) (int64, error) {
	if len(seatNumbers) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(seatNumbers)), ",")
	args := make([]any, 0, len(seatNumbers)+2)
	args = append(args, trainID, strings.ToUpper(strings.TrimSpace(coach)))
	for _, s := range seatNumbers {
		args = append(args, s)
	}

	res, err := tx.Exec(fmt.Sprintf(`
		UPDATE seats
		SET is_available = 0
		WHERE train_id = ? AND coach = ? AND seat_number IN (%s) AND is_available = 1
	`, placeholders), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
