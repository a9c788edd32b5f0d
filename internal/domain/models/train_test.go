package models

import "testing"

func TestClassPricesScan_DropsUnknownCodes(t *testing.T) {
	var p ClassPrices
	if err := p.Scan([]byte(`{"3A":1200,"XX":999,"SL":450}`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(p) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(p), p)
	}
	if _, ok := p["XX"]; ok {
		t.Fatalf("unknown code survived scan")
	}
}

func TestClassPricesScan_NullAndEmpty(t *testing.T) {
	var p ClassPrices
	if err := p.Scan(nil); err != nil || p != nil {
		t.Fatalf("nil scan: p=%v err=%v", p, err)
	}
	if err := p.Scan(""); err != nil || p != nil {
		t.Fatalf("empty scan: p=%v err=%v", p, err)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	l := StringList{"Mon", "Wed", "Fri"}
	v, err := l.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var back StringList
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(back) != 3 || !back.Contains("Wed") {
		t.Fatalf("got %v", back)
	}
}

func TestSeatBerthType(t *testing.T) {
	cases := map[string]string{
		"1-LB": "Lower Berth",
		"2-MB": "Middle Berth",
		"3-UB": "Upper Berth",
		"7-SL": "Side Lower",
		"8-SU": "Side Upper",
		"12":   "Seat",
	}
	for num, want := range cases {
		if got := (Seat{SeatNumber: num}).BerthType(); got != want {
			t.Errorf("%s: got %q want %q", num, got, want)
		}
	}
}
