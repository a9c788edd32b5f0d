package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
	"github.com/babludoman333/rail-easy-seats/internal/utils"
)

// SeatMapService seeds coaches with seat rows. Berth markers repeat in the
// classic sleeper bay of eight: LB MB UB LB MB UB SL SU; sitting classes get
// plain window/aisle numbering without markers.
type SeatMapService struct {
	SeatRepo  repositories.SeatRepository
	TrainRepo repositories.TrainRepository
	DB        *sql.DB
	RequestID string
}

func (s SeatMapService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SeatMapService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.db()}
}

func (s SeatMapService) trains() repositories.TrainRepository {
	if s.TrainRepo.DB != nil {
		return s.TrainRepo
	}
	return repositories.TrainRepository{DB: s.db()}
}

var berthCycle = []string{"LB", "MB", "UB", "LB", "MB", "UB", "SL", "SU"}

func berthedClass(classLabel string) bool {
	code := domain.ClassCode(classLabel)
	switch code {
	case "CC", "EC", "2S":
		return false
	default:
		return true
	}
}

// SeatNumbers produces the seat-number strings for one coach.
func SeatNumbers(classLabel string, count int) []string {
	out := make([]string, 0, count)
	withBerths := berthedClass(classLabel)
	for i := 1; i <= count; i++ {
		if withBerths {
			out = append(out, fmt.Sprintf("%d-%s", i, berthCycle[(i-1)%len(berthCycle)]))
		} else {
			out = append(out, fmt.Sprintf("%d", i))
		}
	}
	return out
}

type CoachConfig struct {
	Coach string `json:"coach"`
	Class string `json:"class"`
	Seats int    `json:"seats"`
}

// SeedCoaches creates seat rows for each configured coach on a train.
func (s SeatMapService) SeedCoaches(trainID int64, configs []CoachConfig) (int, error) {
	if len(configs) == 0 {
		return 0, domain.ValidationError{Field: "coaches", Msg: "at least one coach is required"}
	}
	if _, err := s.trains().GetByID(trainID); err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.NotFoundError{Resource: "train", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}

	total := 0
	for _, cfg := range configs {
		coach := strings.ToUpper(strings.TrimSpace(cfg.Coach))
		if coach == "" {
			return total, domain.ValidationError{Field: "coach", Msg: "coach label is required"}
		}
		if cfg.Seats <= 0 || cfg.Seats > 120 {
			return total, domain.ValidationError{Field: "seats", Msg: "seats per coach must be between 1 and 120"}
		}

		rows := make([]models.Seat, 0, cfg.Seats)
		for _, num := range SeatNumbers(cfg.Class, cfg.Seats) {
			rows = append(rows, models.Seat{
				TrainID:     trainID,
				Coach:       coach,
				SeatNumber:  num,
				Class:       strings.TrimSpace(cfg.Class),
				IsAvailable: true,
			})
		}
		if err := s.seats().InsertBatch(rows); err != nil {
			return total, domain.InternalError{Msg: "seat seeding failed", Err: err}
		}
		total += len(rows)
	}

	utils.LogEvent(s.RequestID, "seatmap", "seeded", fmt.Sprintf("train_id=%d seats=%d", trainID, total))
	return total, nil
}
