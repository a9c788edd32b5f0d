package domain

import (
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

// Selection is the ordered set of seat numbers a user has toggled on for the
// current train+coach context. Seat numbers are coach-scoped, so switching
// coach invalidates the whole selection (callers start from an empty one).
type Selection []string

type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatBooked    SeatState = "booked"
	SeatSelected  SeatState = "selected"
)

func (sel Selection) Contains(seatNumber string) bool {
	for _, s := range sel {
		if s == seatNumber {
			return true
		}
	}
	return false
}

// ToggleSeat flips seatNumber in the selection against the given catalog.
// Unknown or unavailable seats are rejected silently: the UI never renders
// them as clickable, but the reducer must stay defensive.
func ToggleSeat(seatNumber string, catalog []models.Seat, sel Selection) Selection {
	var seat *models.Seat
	for i := range catalog {
		if catalog[i].SeatNumber == seatNumber {
			seat = &catalog[i]
			break
		}
	}
	if seat == nil || !seat.IsAvailable {
		return sel
	}

	if sel.Contains(seatNumber) {
		out := make(Selection, 0, len(sel)-1)
		for _, s := range sel {
			if s != seatNumber {
				out = append(out, s)
			}
		}
		return out
	}

	out := make(Selection, 0, len(sel)+1)
	out = append(out, sel...)
	out = append(out, seatNumber)
	return out
}

// SeatStatus reports how a seat should render. A seat whose availability flag
// is off is booked no matter what the selection says; selection wins over
// plain availability.
func SeatStatus(seat models.Seat, sel Selection) SeatState {
	if !seat.IsAvailable {
		return SeatBooked
	}
	if sel.Contains(seat.SeatNumber) {
		return SeatSelected
	}
	return SeatAvailable
}

// ReconcileSelection drops selection members no longer present-and-available
// in the latest catalog fetch. Callers run this whenever the catalog changes.
func ReconcileSelection(sel Selection, catalog []models.Seat) Selection {
	avail := make(map[string]bool, len(catalog))
	for _, s := range catalog {
		if s.IsAvailable {
			avail[s.SeatNumber] = true
		}
	}
	out := make(Selection, 0, len(sel))
	for _, s := range sel {
		if avail[s] {
			out = append(out, s)
		}
	}
	return out
}
