package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DriverRepository) GetByUserID(userID int64) (models.DriverProfile, error) {
	var p models.DriverProfile
	err := r.db().QueryRow(`
		SELECT id, user_id, vehicle_number, vehicle_type, license_number,
		       is_available, rating, total_rides, total_earnings
		FROM driver_profiles
		WHERE user_id = ?
	`, userID).Scan(
		&p.ID, &p.UserID, &p.VehicleNumber, &p.VehicleType, &p.LicenseNumber,
		&p.IsAvailable, &p.Rating, &p.TotalRides, &p.TotalEarnings,
	)
	return p, err
}

func (r DriverRepository) EnsureProfile(userID int64) error {
	_, err := r.db().Exec(`
		INSERT INTO driver_profiles (user_id)
		VALUES (?)
		ON DUPLICATE KEY UPDATE user_id = user_id
	`, userID)
	return err
}

func (r DriverRepository) UpdateVehicle(userID int64, vehicleNumber, vehicleType, licenseNumber string) error {
	_, err := r.db().Exec(`
		UPDATE driver_profiles
		SET vehicle_number = ?, vehicle_type = ?, license_number = ?
		WHERE user_id = ?
	`,
		strings.ToUpper(strings.TrimSpace(vehicleNumber)),
		strings.TrimSpace(vehicleType),
		strings.ToUpper(strings.TrimSpace(licenseNumber)),
		userID,
	)
	return err
}

func (r DriverRepository) SetAvailability(userID int64, available bool) error {
	_, err := r.db().Exec(`
		UPDATE driver_profiles
		SET is_available = ?
		WHERE user_id = ?
	`, available, userID)
	return err
}

// AddCompletedRide bumps the ride counter and earnings in one statement.
func (r DriverRepository) AddCompletedRide(driverID int64, fare float64) error {
	_, err := r.db().Exec(`
		UPDATE driver_profiles
		SET total_rides = total_rides + 1,
		    total_earnings = total_earnings + ?
		WHERE id = ?
	`, fare, driverID)
	return err
}
