package models

import "time"

// CabBooking is the ancillary cab ride attached to the rail product.
type CabBooking struct {
	ID             int64     `json:"id"`
	BookingID      string    `json:"booking_id"`
	UserID         int64     `json:"user_id"`
	DriverID       *int64    `json:"driver_id,omitempty"`
	PickupLocation string    `json:"pickup_location"`
	DropLocation   string    `json:"drop_location"`
	VehicleType    string    `json:"vehicle_type"`
	Price          float64   `json:"price"`
	Status         string    `json:"status"` // pending | accepted | completed | cancelled
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DriverProfile struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	VehicleNumber string  `json:"vehicle_number"`
	VehicleType   string  `json:"vehicle_type"`
	LicenseNumber string  `json:"license_number"`
	IsAvailable   bool    `json:"is_available"`
	Rating        float64 `json:"rating"`
	TotalRides    int     `json:"total_rides"`
	TotalEarnings float64 `json:"total_earnings"`
}
