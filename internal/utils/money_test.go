package utils

import "testing"

func TestFormatINR_IndianGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0"},
		{450, "Rs 450"},
		{2450, "Rs 2,450"},
		{123456, "Rs 1,23,456"},
		{12345678, "Rs 1,23,45,678"},
		{999.5, "Rs 999.50"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Errorf("FormatINR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
