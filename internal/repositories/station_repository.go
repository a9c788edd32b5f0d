package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type StationRepository struct {
	DB *sql.DB
}

func (r StationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StationRepository) List() ([]models.Station, error) {
	rows, err := r.db().Query(`
		SELECT id, name, code, city, state
		FROM stations
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Station{}
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.State); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StationRepository) GetByID(id int64) (models.Station, error) {
	var s models.Station
	err := r.db().QueryRow(`
		SELECT id, name, code, city, state
		FROM stations
		WHERE id = ?
	`, id).Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.State)
	return s, err
}

func (r StationRepository) Insert(s models.Station) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO stations (name, code, city, state)
		VALUES (?, ?, ?, ?)
	`,
		strings.TrimSpace(s.Name),
		strings.ToUpper(strings.TrimSpace(s.Code)),
		strings.TrimSpace(s.City),
		strings.TrimSpace(s.State),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
