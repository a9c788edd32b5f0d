package models

// User is the authenticated identity behind bookings and driver profiles.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // user | driver | admin
}
