package domain

import (
	"strings"

	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

// DefaultClassCode is what unrecognized class labels resolve to. Sleeper is
// the cheapest widely available class, so a bad label never overcharges.
const DefaultClassCode = "SL"

var classCodes = map[string]string{
	"AC First Class":        "1A",
	"AC Two-Tier":           "2A",
	"AC Three-Tier":         "3A",
	"AC Three-Tier Economy": "3E",
	"Sleeper":               "SL",
	"Chair Car":             "CC",
	"Executive Chair Car":   "EC",
	"Second Sitting":        "2S",
}

// ClassCode maps a human-readable class label to its fare-table key.
// Unrecognized labels resolve to the Sleeper code; this is a documented
// default, not an error.
func ClassCode(label string) string {
	if code, ok := classCodes[strings.TrimSpace(label)]; ok {
		return code
	}
	return DefaultClassCode
}

// FarePerSeat resolves the per-seat price for a class label on a train.
// Missing price tables or missing codes fall back to the train's flat price;
// absence of pricing data is recoverable, never an error.
func FarePerSeat(train models.Train, label string) float64 {
	code := ClassCode(label)
	if price, ok := train.ClassPrices[code]; ok {
		return price
	}
	return train.Price
}
