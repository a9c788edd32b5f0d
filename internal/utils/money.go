package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping (1,23,456).
// Fractional paise are kept only when present.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	frac := amount - float64(whole)

	out := "Rs " + sign + groupIndian(whole)
	if frac > 0.004 {
		out += fmt.Sprintf(".%02d", int(math.Round(frac*100)))
	}
	return out
}

func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
