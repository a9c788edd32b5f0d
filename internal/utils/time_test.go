package utils

import "testing"

func TestShortWeekday(t *testing.T) {
	d, err := ParseDate("2026-09-16")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := ShortWeekday(d); got != "Wed" {
		t.Fatalf("got %q want Wed", got)
	}
}

func TestLongDate_PassesThroughBadInput(t *testing.T) {
	if got := LongDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("got %q", got)
	}
	if got := LongDate("2026-09-16"); got != "Wednesday, 16 September 2026" {
		t.Fatalf("got %q", got)
	}
}
