package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/utils"
)

// CabService covers the loosely bolted-on cab add-on: riders post rides,
// drivers accept and complete them.
type CabService struct {
	CabRepo    repositories.CabRepository
	DriverRepo repositories.DriverRepository
	DB         *sql.DB
	RequestID  string
}

func (s CabService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CabService) cabs() repositories.CabRepository {
	if s.CabRepo.DB != nil {
		return s.CabRepo
	}
	return repositories.CabRepository{DB: s.db()}
}

func (s CabService) drivers() repositories.DriverRepository {
	if s.DriverRepo.DB != nil {
		return s.DriverRepo
	}
	return repositories.DriverRepository{DB: s.db()}
}

type CabRequest struct {
	PickupLocation string  `json:"pickup_location"`
	DropLocation   string  `json:"drop_location"`
	VehicleType    string  `json:"vehicle_type"`
	Price          float64 `json:"price"`
}

func (s CabService) CreateRide(userID int64, req CabRequest) (models.CabBooking, error) {
	var out models.CabBooking
	if userID <= 0 {
		return out, domain.AuthError{}
	}
	if strings.TrimSpace(req.PickupLocation) == "" || strings.TrimSpace(req.DropLocation) == "" {
		return out, domain.ValidationError{Field: "location", Msg: "pickup and drop are required"}
	}
	if strings.TrimSpace(req.VehicleType) == "" {
		return out, domain.ValidationError{Field: "vehicle_type", Msg: "vehicle type is required"}
	}
	if req.Price <= 0 {
		return out, domain.ValidationError{Field: "price", Msg: "price must be positive"}
	}

	ride := models.CabBooking{
		BookingID:      "CAB" + domain.NewPNR(time.Now())[2:],
		UserID:         userID,
		PickupLocation: utils.NormalizeSpace(req.PickupLocation),
		DropLocation:   utils.NormalizeSpace(req.DropLocation),
		VehicleType:    req.VehicleType,
		Price:          req.Price,
		Status:         "pending",
	}

	id, err := s.cabs().Insert(ride)
	if err != nil {
		return out, domain.InternalError{Msg: "ride could not be saved", Err: err}
	}
	ride.ID = id

	utils.LogEvent(s.RequestID, "cab", "created", "booking_id="+ride.BookingID)
	return ride, nil
}

func (s CabService) ListRidesForUser(userID int64) ([]models.CabBooking, error) {
	if userID <= 0 {
		return nil, domain.AuthError{}
	}
	rides, err := s.cabs().ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return rides, nil
}

// Driver-side operations. Every call resolves the profile first so a
// non-driver account can never touch rides.

func (s CabService) DriverProfile(userID int64) (models.DriverProfile, error) {
	var out models.DriverProfile
	if userID <= 0 {
		return out, domain.AuthError{}
	}
	if err := s.drivers().EnsureProfile(userID); err != nil {
		return out, domain.InternalError{Err: err}
	}
	p, err := s.drivers().GetByUserID(userID)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	return p, nil
}

func (s CabService) UpdateDriverVehicle(userID int64, vehicleNumber, vehicleType, licenseNumber string) error {
	if _, err := s.DriverProfile(userID); err != nil {
		return err
	}
	if err := s.drivers().UpdateVehicle(userID, vehicleNumber, vehicleType, licenseNumber); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s CabService) SetDriverAvailability(userID int64, available bool) error {
	if _, err := s.DriverProfile(userID); err != nil {
		return err
	}
	if err := s.drivers().SetAvailability(userID, available); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (s CabService) ListOpenRides() ([]models.CabBooking, error) {
	rides, err := s.cabs().ListOpen()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return rides, nil
}

func (s CabService) ListDriverRides(userID int64) ([]models.CabBooking, error) {
	p, err := s.DriverProfile(userID)
	if err != nil {
		return nil, err
	}
	rides, err := s.cabs().ListByDriver(p.ID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return rides, nil
}

func (s CabService) AcceptRide(userID, rideID int64) error {
	p, err := s.DriverProfile(userID)
	if err != nil {
		return err
	}
	ok, err := s.cabs().Accept(rideID, p.ID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !ok {
		return domain.ConflictError{Resource: "ride", Msg: "ride already taken or not pending"}
	}
	utils.LogEvent(s.RequestID, "cab", "accepted", "ride accepted by driver")
	return nil
}

// CompleteRide closes the ride and credits the fare to the driver's totals.
func (s CabService) CompleteRide(userID, rideID int64) error {
	p, err := s.DriverProfile(userID)
	if err != nil {
		return err
	}
	ride, err := s.cabs().GetByID(rideID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "ride", Err: err}
		}
		return domain.InternalError{Err: err}
	}

	ok, err := s.cabs().Complete(rideID, p.ID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if !ok {
		return domain.ConflictError{Resource: "ride", Msg: "ride is not in progress for this driver"}
	}

	if err := s.drivers().AddCompletedRide(p.ID, ride.Price); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
