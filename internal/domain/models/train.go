package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ClassCodes is the closed set of fare classes a train can price.
var ClassCodes = []string{"1A", "2A", "3A", "3E", "SL", "CC", "EC", "2S"}

func IsClassCode(code string) bool {
	for _, c := range ClassCodes {
		if c == code {
			return true
		}
	}
	return false
}

// ClassPrices maps a class code to a per-seat fare. Stored as JSON; unknown
// codes are dropped at scan time so stale rows cannot leak invalid keys into
// fare resolution.
type ClassPrices map[string]float64

func (p *ClassPrices) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("class_prices: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*p = nil
		return nil
	}
	decoded := map[string]float64{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("class_prices: %w", err)
	}
	out := ClassPrices{}
	for code, price := range decoded {
		if IsClassCode(code) {
			out[code] = price
		}
	}
	if len(out) == 0 {
		*p = nil
		return nil
	}
	*p = out
	return nil
}

func (p ClassPrices) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return json.Marshal(p)
}

// StringList stores a JSON array in a TEXT column (operating days, seat lists).
type StringList []string

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("string list: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

type Train struct {
	ID            int64       `json:"id"`
	Number        string      `json:"number"`
	Name          string      `json:"name"`
	FromStationID int64       `json:"from_station_id"`
	ToStationID   int64       `json:"to_station_id"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	Duration      string      `json:"duration"`
	Price         float64     `json:"price"`
	TotalSeats    int         `json:"total_seats"`
	OperatingDays StringList  `json:"operating_days"`
	ClassPrices   ClassPrices `json:"class_prices,omitempty"`

	// Joined station fields, filled by search queries.
	FromStation *Station `json:"from_station,omitempty"`
	ToStation   *Station `json:"to_station,omitempty"`
}
