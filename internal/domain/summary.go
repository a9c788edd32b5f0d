package domain

// BookingFee is charged exactly once per booking regardless of seat count.
const BookingFee float64 = 50

// Total is the amount shown on the review screen and the amount persisted.
// Both paths must call this; recomputing the sum inline is how the screens
// drift apart. An empty selection yields the fee alone; blocking progression
// on an empty selection is the caller's job.
func Total(sel Selection, farePerSeat, bookingFee float64) float64 {
	return float64(len(sel))*farePerSeat + bookingFee
}
