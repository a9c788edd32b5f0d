package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type CabRepository struct {
	DB *sql.DB
}

func (r CabRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const cabColumns = `
	id, booking_id, user_id, driver_id, pickup_location, drop_location,
	vehicle_type, price, status, created_at, updated_at`

func scanCab(row interface{ Scan(...any) error }) (models.CabBooking, error) {
	var (
		c      models.CabBooking
		driver sql.NullInt64
	)
	err := row.Scan(
		&c.ID, &c.BookingID, &c.UserID, &driver, &c.PickupLocation, &c.DropLocation,
		&c.VehicleType, &c.Price, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if driver.Valid {
		c.DriverID = &driver.Int64
	}
	return c, err
}

func (r CabRepository) Insert(c models.CabBooking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO cab_bookings
			(booking_id, user_id, pickup_location, drop_location, vehicle_type, price, status)
		VALUES (?, ?, ?, ?, ?, ?, 'pending')
	`,
		c.BookingID, c.UserID,
		strings.TrimSpace(c.PickupLocation),
		strings.TrimSpace(c.DropLocation),
		strings.TrimSpace(c.VehicleType),
		c.Price,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CabRepository) GetByID(id int64) (models.CabBooking, error) {
	row := r.db().QueryRow(`SELECT `+cabColumns+` FROM cab_bookings WHERE id = ?`, id)
	return scanCab(row)
}

func (r CabRepository) ListByUser(userID int64) ([]models.CabBooking, error) {
	return r.list(`WHERE user_id = ?`, userID)
}

// ListOpen returns unassigned pending rides for the driver dashboard.
func (r CabRepository) ListOpen() ([]models.CabBooking, error) {
	return r.list(`WHERE status = 'pending' AND driver_id IS NULL`)
}

func (r CabRepository) ListByDriver(driverID int64) ([]models.CabBooking, error) {
	return r.list(`WHERE driver_id = ?`, driverID)
}

func (r CabRepository) list(where string, args ...any) ([]models.CabBooking, error) {
	rows, err := r.db().Query(`SELECT `+cabColumns+` FROM cab_bookings `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CabBooking{}
	for rows.Next() {
		c, err := scanCab(rows)
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Accept assigns a pending ride to a driver; the status guard keeps two
// drivers from grabbing the same ride.
func (r CabRepository) Accept(rideID, driverID int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE cab_bookings
		SET driver_id = ?, status = 'accepted'
		WHERE id = ? AND status = 'pending' AND driver_id IS NULL
	`, driverID, rideID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (r CabRepository) Complete(rideID, driverID int64) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE cab_bookings
		SET status = 'completed'
		WHERE id = ? AND driver_id = ? AND status = 'accepted'
	`, rideID, driverID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}
