package services

import (
	"reflect"
	"testing"

	"github.com/babludoman333/rail-easy-seats/internal/domain"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

func TestAnnotateCatalog_StatesAndReconcile(t *testing.T) {
	catalog := []models.Seat{
		{SeatNumber: "1-LB", IsAvailable: true},
		{SeatNumber: "2-MB", IsAvailable: false},
		{SeatNumber: "3-UB", IsAvailable: true},
	}
	// 2-MB was selected before someone else booked it.
	views, sel := AnnotateCatalog(catalog, domain.Selection{"1-LB", "2-MB"})

	if !reflect.DeepEqual(sel, domain.Selection{"1-LB"}) {
		t.Fatalf("reconciled selection = %v", sel)
	}
	if views[0].Status != domain.SeatSelected {
		t.Fatalf("1-LB status = %q", views[0].Status)
	}
	if views[1].Status != domain.SeatBooked {
		t.Fatalf("2-MB status = %q", views[1].Status)
	}
	if views[2].Status != domain.SeatAvailable {
		t.Fatalf("3-UB status = %q", views[2].Status)
	}
	if views[0].BerthType != "Lower Berth" {
		t.Fatalf("berth = %q", views[0].BerthType)
	}
}
