package services

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
	"github.com/babludoman333/rail-easy-seats/internal/repositories"
)

// CatalogService serves the per-coach seat catalog the selection reducer
// runs against. Each fetch replaces the prior catalog; nothing is merged.
type CatalogService struct {
	SeatRepo repositories.SeatRepository
	DB       *sql.DB
}

func (s CatalogService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CatalogService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.db()}
}

// SeatView is one catalog entry annotated with its render state for the
// caller's current selection.
type SeatView struct {
	models.Seat
	Status    domain.SeatState `json:"status"`
	BerthType string           `json:"berth_type"`
}

func (s CatalogService) FetchCatalog(trainID int64, coach string) ([]models.Seat, error) {
	if trainID <= 0 || strings.TrimSpace(coach) == "" {
		return nil, domain.ValidationError{Field: "coach", Msg: "train and coach are required"}
	}
	seats, err := s.seats().ListByTrainCoach(trainID, coach)
	if err != nil {
		return nil, domain.UnavailableError{Resource: "seat catalog", Err: err}
	}
	return seats, nil
}

func (s CatalogService) ListCoaches(trainID int64) ([]string, error) {
	coaches, err := s.seats().ListCoaches(trainID)
	if err != nil {
		return nil, domain.UnavailableError{Resource: "seat catalog", Err: err}
	}
	return coaches, nil
}

// AnnotateCatalog reconciles a prior selection against a fresh catalog and
// returns the render states. A selected seat taken by someone else between
// fetches comes back as booked, not selected.
func AnnotateCatalog(catalog []models.Seat, sel domain.Selection) ([]SeatView, domain.Selection) {
	sel = domain.ReconcileSelection(sel, catalog)
	out := make([]SeatView, 0, len(catalog))
	for _, seat := range catalog {
		out = append(out, SeatView{
			Seat:      seat,
			Status:    domain.SeatStatus(seat, sel),
			BerthType: seat.BerthType(),
		})
	}
	return out, sel
}
