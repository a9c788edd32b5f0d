package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type TrainRepository struct {
	DB *sql.DB
}

func (r TrainRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const trainColumns = `
	t.id, t.number, t.name, t.from_station_id, t.to_station_id,
	t.departure_time, t.arrival_time, t.duration, t.price, t.total_seats,
	t.operating_days, t.class_prices,
	fs.id, fs.name, fs.code, fs.city, fs.state,
	ts.id, ts.name, ts.code, ts.city, ts.state`

const trainJoins = `
	FROM trains t
	JOIN stations fs ON fs.id = t.from_station_id
	JOIN stations ts ON ts.id = t.to_station_id`

func scanTrain(row interface{ Scan(...any) error }) (models.Train, error) {
	var (
		t        models.Train
		from, to models.Station
	)
	err := row.Scan(
		&t.ID, &t.Number, &t.Name, &t.FromStationID, &t.ToStationID,
		&t.DepartureTime, &t.ArrivalTime, &t.Duration, &t.Price, &t.TotalSeats,
		&t.OperatingDays, &t.ClassPrices,
		&from.ID, &from.Name, &from.Code, &from.City, &from.State,
		&to.ID, &to.Name, &to.Code, &to.City, &to.State,
	)
	if err != nil {
		return t, err
	}
	t.FromStation = &from
	t.ToStation = &to
	return t, nil
}

func (r TrainRepository) GetByID(id int64) (models.Train, error) {
	row := r.db().QueryRow(`SELECT `+trainColumns+trainJoins+` WHERE t.id = ?`, id)
	return scanTrain(row)
}

// ListByRoute returns every train on a station pair; weekday filtering happens
// in the search service against operating_days.
func (r TrainRepository) ListByRoute(fromStationID, toStationID int64) ([]models.Train, error) {
	rows, err := r.db().Query(`
		SELECT `+trainColumns+trainJoins+`
		WHERE t.from_station_id = ? AND t.to_station_id = ?
		ORDER BY t.departure_time ASC
	`, fromStationID, toStationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TrainRepository) Insert(t models.Train) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trains
			(number, name, from_station_id, to_station_id, departure_time,
			 arrival_time, duration, price, total_seats, operating_days, class_prices)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		strings.TrimSpace(t.Number),
		strings.TrimSpace(t.Name),
		t.FromStationID,
		t.ToStationID,
		strings.TrimSpace(t.DepartureTime),
		strings.TrimSpace(t.ArrivalTime),
		strings.TrimSpace(t.Duration),
		t.Price,
		t.TotalSeats,
		t.OperatingDays,
		t.ClassPrices,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
