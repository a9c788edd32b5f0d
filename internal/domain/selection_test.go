package domain

import (
	"reflect"
	"testing"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

func seatCatalog() []models.Seat {
	return []models.Seat{
		{TrainID: 1, Coach: "S1", SeatNumber: "1-LB", IsAvailable: true},
		{TrainID: 1, Coach: "S1", SeatNumber: "2-MB", IsAvailable: true},
		{TrainID: 1, Coach: "S1", SeatNumber: "3-UB", IsAvailable: false},
		{TrainID: 1, Coach: "S1", SeatNumber: "7-SL", IsAvailable: true},
	}
}

func TestToggleSeat_AddKeepsOrder(t *testing.T) {
	catalog := seatCatalog()

	sel := ToggleSeat("2-MB", catalog, nil)
	sel = ToggleSeat("1-LB", catalog, sel)
	sel = ToggleSeat("7-SL", catalog, sel)

	want := Selection{"2-MB", "1-LB", "7-SL"}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("selection order wrong: got %v want %v", sel, want)
	}
}

func TestToggleSeat_RemoveMiddlePreservesRest(t *testing.T) {
	catalog := seatCatalog()
	sel := Selection{"2-MB", "1-LB", "7-SL"}

	sel = ToggleSeat("1-LB", catalog, sel)

	want := Selection{"2-MB", "7-SL"}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("got %v want %v", sel, want)
	}
}

func TestToggleSeat_BookedSeatIgnored(t *testing.T) {
	catalog := seatCatalog()
	sel := Selection{"1-LB"}

	got := ToggleSeat("3-UB", catalog, sel)
	if !reflect.DeepEqual(got, sel) {
		t.Fatalf("booked seat altered selection: got %v want %v", got, sel)
	}
}

func TestToggleSeat_UnknownSeatIgnored(t *testing.T) {
	catalog := seatCatalog()
	sel := Selection{"1-LB"}

	got := ToggleSeat("99-UB", catalog, sel)
	if !reflect.DeepEqual(got, sel) {
		t.Fatalf("unknown seat altered selection: got %v want %v", got, sel)
	}
}

func TestToggleSeat_DoubleToggleRoundTrips(t *testing.T) {
	catalog := seatCatalog()

	sel := ToggleSeat("1-LB", catalog, Selection{"2-MB"})
	sel = ToggleSeat("1-LB", catalog, sel)

	want := Selection{"2-MB"}
	if !reflect.DeepEqual(sel, want) {
		t.Fatalf("double toggle not identity: got %v want %v", sel, want)
	}
}

func TestSeatStatus_BookedWinsOverSelection(t *testing.T) {
	seat := models.Seat{SeatNumber: "3-UB", IsAvailable: false}
	// A stale selection may still hold the seat; booked must win.
	if got := SeatStatus(seat, Selection{"3-UB"}); got != SeatBooked {
		t.Fatalf("got %q want %q", got, SeatBooked)
	}
}

func TestSeatStatus_SelectedAndAvailable(t *testing.T) {
	seat := models.Seat{SeatNumber: "1-LB", IsAvailable: true}
	if got := SeatStatus(seat, Selection{"1-LB"}); got != SeatSelected {
		t.Fatalf("got %q want %q", got, SeatSelected)
	}
	if got := SeatStatus(seat, nil); got != SeatAvailable {
		t.Fatalf("got %q want %q", got, SeatAvailable)
	}
}

func TestReconcileSelection_DropsTakenAndVanishedSeats(t *testing.T) {
	sel := Selection{"1-LB", "3-UB", "99-SU", "7-SL"}

	got := ReconcileSelection(sel, seatCatalog())

	want := Selection{"1-LB", "7-SL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestReconcileSelection_EmptyCatalogClearsSelection(t *testing.T) {
	got := ReconcileSelection(Selection{"1-LB"}, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

// Full selection walk: pick two seats, lose one to another booker on refresh,
// re-toggle a replacement, and check the rendered states along the way.
func TestSelectionFlow_RefreshAfterConcurrentBooking(t *testing.T) {
	catalog := seatCatalog()

	sel := ToggleSeat("1-LB", catalog, nil)
	sel = ToggleSeat("2-MB", catalog, sel)
	if len(sel) != 2 {
		t.Fatalf("expected 2 selected, got %v", sel)
	}

	// Someone books 2-MB; fresh fetch shows it unavailable.
	refreshed := seatCatalog()
	refreshed[1].IsAvailable = false

	sel = ReconcileSelection(sel, refreshed)
	if !reflect.DeepEqual(sel, Selection{"1-LB"}) {
		t.Fatalf("taken seat survived reconcile: %v", sel)
	}
	if got := SeatStatus(refreshed[1], sel); got != SeatBooked {
		t.Fatalf("taken seat renders %q, want %q", got, SeatBooked)
	}

	sel = ToggleSeat("7-SL", refreshed, sel)
	if !reflect.DeepEqual(sel, Selection{"1-LB", "7-SL"}) {
		t.Fatalf("replacement toggle failed: %v", sel)
	}
}

// Switching coach starts from an empty selection; the old coach's seat
// numbers must not leak through the new catalog.
func TestSelectionFlow_CoachSwitchStartsEmpty(t *testing.T) {
	coachB := []models.Seat{
		{TrainID: 1, Coach: "S2", SeatNumber: "1-LB", IsAvailable: true},
		{TrainID: 1, Coach: "S2", SeatNumber: "4-LB", IsAvailable: true},
	}

	sel := ToggleSeat("4-LB", coachB, nil)
	if !reflect.DeepEqual(sel, Selection{"4-LB"}) {
		t.Fatalf("got %v", sel)
	}
}
