package domain

import "testing"

func TestTotal_SeatsTimesFarePlusFee(t *testing.T) {
	sel := Selection{"1-LB", "2-MB", "7-SL"}
	if got := Total(sel, 450, BookingFee); got != 3*450+50 {
		t.Fatalf("got %v want %v", got, 3*450+50)
	}
}

func TestTotal_EmptySelectionIsFeeAlone(t *testing.T) {
	if got := Total(nil, 1200, BookingFee); got != BookingFee {
		t.Fatalf("got %v want %v", got, BookingFee)
	}
}

func TestTotal_FeeChargedOncePerBooking(t *testing.T) {
	one := Total(Selection{"1"}, 100, BookingFee)
	two := Total(Selection{"1", "2"}, 100, BookingFee)
	if two-one != 100 {
		t.Fatalf("adding a seat changed total by %v, want 100", two-one)
	}
}
