package services

import (
	"reflect"
	"testing"
)

func TestSeatNumbers_SleeperBayCycle(t *testing.T) {
	got := SeatNumbers("Sleeper", 10)
	want := []string{"1-LB", "2-MB", "3-UB", "4-LB", "5-MB", "6-UB", "7-SL", "8-SU", "9-LB", "10-MB"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSeatNumbers_SittingClassesPlainNumbers(t *testing.T) {
	for _, class := range []string{"Chair Car", "Executive Chair Car", "Second Sitting"} {
		got := SeatNumbers(class, 3)
		want := []string{"1", "2", "3"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v want %v", class, got, want)
		}
	}
}

func TestSeatNumbers_UnknownClassGetsBerths(t *testing.T) {
	// Unknown labels price as Sleeper, so they berth as Sleeper too.
	got := SeatNumbers("Garuda Class", 2)
	want := []string{"1-LB", "2-MB"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
