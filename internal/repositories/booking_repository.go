package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	b.id, b.booking_id, b.user_id, b.train_id,
	b.passenger_name, b.passenger_age, b.passenger_gender,
	b.journey_date, b.seat_numbers, b.coach, b.class,
	b.class_price, b.total_amount, b.status, b.created_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.BookingID, &b.UserID, &b.TrainID,
		&b.PassengerName, &b.PassengerAge, &b.PassengerGender,
		&b.JourneyDate, &b.SeatNumbers, &b.Coach, &b.Class,
		&b.ClassPrice, &b.TotalAmount, &b.Status, &b.CreatedAt,
	)
	return b, err
}

// InsertTx writes the assembled record inside the same transaction that
// flips seat availability, so a lost race leaves no booking row behind.
func (r BookingRepository) InsertTx(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings
			(booking_id, user_id, train_id, passenger_name, passenger_age,
			 passenger_gender, journey_date, seat_numbers, coach, class,
			 class_price, total_amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.BookingID, b.UserID, b.TrainID, b.PassengerName, b.PassengerAge,
		b.PassengerGender, b.JourneyDate, b.SeatNumbers, b.Coach, b.Class,
		b.ClassPrice, b.TotalAmount, b.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM bookings b
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByPNR resolves a booking with its train and station join for the PNR
// status screen and ticket rendering.
func (r BookingRepository) GetByPNR(pnr string) (models.Booking, error) {
	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`,
			t.id, t.number, t.name, t.from_station_id, t.to_station_id,
			t.departure_time, t.arrival_time, t.duration, t.price, t.total_seats,
			t.operating_days, t.class_prices,
			fs.id, fs.name, fs.code, fs.city, fs.state,
			ts.id, ts.name, ts.code, ts.city, ts.state
		FROM bookings b
		JOIN trains t ON t.id = b.train_id
		JOIN stations fs ON fs.id = t.from_station_id
		JOIN stations ts ON ts.id = t.to_station_id
		WHERE b.booking_id = ?
	`, strings.ToUpper(strings.TrimSpace(pnr)))

	var (
		b        models.Booking
		t        models.Train
		from, to models.Station
	)
	err := row.Scan(
		&b.ID, &b.BookingID, &b.UserID, &b.TrainID,
		&b.PassengerName, &b.PassengerAge, &b.PassengerGender,
		&b.JourneyDate, &b.SeatNumbers, &b.Coach, &b.Class,
		&b.ClassPrice, &b.TotalAmount, &b.Status, &b.CreatedAt,
		&t.ID, &t.Number, &t.Name, &t.FromStationID, &t.ToStationID,
		&t.DepartureTime, &t.ArrivalTime, &t.Duration, &t.Price, &t.TotalSeats,
		&t.OperatingDays, &t.ClassPrices,
		&from.ID, &from.Name, &from.Code, &from.City, &from.State,
		&to.ID, &to.Name, &to.Code, &to.City, &to.State,
	)
	if err != nil {
		return b, err
	}
	t.FromStation = &from
	t.ToStation = &to
	b.Train = &t
	return b, nil
}
