package models

// Station is immutable reference data, created through the admin endpoints.
type Station struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	City  string `json:"city"`
	State string `json:"state"`
}
