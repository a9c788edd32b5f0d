package services

import (
	"database/sql"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/utils"
)

type SearchService struct {
	StationRepo repositories.StationRepository
	TrainRepo   repositories.TrainRepository
	DB          *sql.DB
}

func (s SearchService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SearchService) stations() repositories.StationRepository {
	if s.StationRepo.DB != nil {
		return s.StationRepo
	}
	return repositories.StationRepository{DB: s.db()}
}

func (s SearchService) trains() repositories.TrainRepository {
	if s.TrainRepo.DB != nil {
		return s.TrainRepo
	}
	return repositories.TrainRepository{DB: s.db()}
}

func (s SearchService) ListStations() ([]models.Station, error) {
	stations, err := s.stations().List()
	if err != nil {
		return nil, domain.UnavailableError{Resource: "station directory", Err: err}
	}
	return stations, nil
}

// SearchTrains returns trains on the route that run on the journey date's
// weekday. An empty operating_days list means the train runs daily.
func (s SearchService) SearchTrains(fromStationID, toStationID int64, journeyDate string) ([]models.Train, error) {
	if fromStationID <= 0 || toStationID <= 0 {
		return nil, domain.ValidationError{Field: "station", Msg: "from and to stations are required"}
	}
	if fromStationID == toStationID {
		return nil, domain.ValidationError{Field: "station", Msg: "origin and destination must differ"}
	}

	date, err := utils.ParseDate(journeyDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "journey date must be YYYY-MM-DD", Err: err}
	}

	trains, err := s.trains().ListByRoute(fromStationID, toStationID)
	if err != nil {
		return nil, domain.UnavailableError{Resource: "train directory", Err: err}
	}

	weekday := utils.ShortWeekday(date)
	out := []models.Train{}
	for _, t := range trains {
		if len(t.OperatingDays) == 0 || t.OperatingDays.Contains(weekday) {
			out = append(out, t)
		}
	}
	return out, nil
}
