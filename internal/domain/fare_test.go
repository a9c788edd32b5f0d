package domain

import (
	"testing"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

func TestClassCode_KnownLabels(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"AC First Class", "1A"},
		{"AC Two-Tier", "2A"},
		{"AC Three-Tier", "3A"},
		{"AC Three-Tier Economy", "3E"},
		{"Sleeper", "SL"},
		{"Chair Car", "CC"},
		{"Executive Chair Car", "EC"},
		{"Second Sitting", "2S"},
	}
	for _, c := range cases {
		if got := ClassCode(c.label); got != c.want {
			t.Errorf("ClassCode(%q) = %q, want %q", c.label, got, c.want)
		}
	}
}

func TestClassCode_UnknownLabelFallsBackToSleeper(t *testing.T) {
	for _, label := range []string{"Garuda Class", "", "  ", "sleeper"} {
		if got := ClassCode(label); got != "SL" {
			t.Errorf("ClassCode(%q) = %q, want SL", label, got)
		}
	}
}

func TestFarePerSeat_UsesClassTable(t *testing.T) {
	train := models.Train{
		Price:       500,
		ClassPrices: models.ClassPrices{"3A": 1200, "SL": 450},
	}
	if got := FarePerSeat(train, "AC Three-Tier"); got != 1200 {
		t.Fatalf("got %v want 1200", got)
	}
}

func TestFarePerSeat_UnknownLabelPricesAsSleeper(t *testing.T) {
	train := models.Train{
		Price:       500,
		ClassPrices: models.ClassPrices{"3A": 1200, "SL": 450},
	}
	if got := FarePerSeat(train, "Garuda Class"); got != 450 {
		t.Fatalf("got %v want 450 (SL price)", got)
	}
}

func TestFarePerSeat_MissingCodeFallsBackToTrainPrice(t *testing.T) {
	train := models.Train{
		Price:       500,
		ClassPrices: models.ClassPrices{"3A": 1200},
	}
	if got := FarePerSeat(train, "Sleeper"); got != 500 {
		t.Fatalf("got %v want 500", got)
	}
}

func TestFarePerSeat_NoTableUsesTrainPrice(t *testing.T) {
	train := models.Train{Price: 750}
	if got := FarePerSeat(train, "AC First Class"); got != 750 {
		t.Fatalf("got %v want 750", got)
	}
}
