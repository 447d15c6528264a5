package pricing

import (
	"math"
	"time"

	"github.com/staylodge/staylodge-backend/internal/rate"
)

// NightCount returns the number of nights between check-in and check-out.
func NightCount(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// Quote computes the total price of a stay. It iterates each night in
// [checkIn, checkOut), starts from the room's base price and applies the
// first matching rate: rates must be ordered room-specific first, newest
// first, which ListForStay guarantees. The result is a point-in-time
// snapshot; later rate changes never affect it.
func Quote(basePrice int64, checkIn, checkOut time.Time, rates []*rate.PeakSeasonRate) int64 {
	var total int64
	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		nightly := basePrice
		for _, r := range rates {
			if !r.AppliesTo(night) {
				continue
			}
			switch r.AdjustmentType {
			case rate.AdjustmentPercentage:
				nightly = int64(math.Round(float64(nightly) * (1 + r.AdjustmentValue/100)))
			case rate.AdjustmentNominal:
				nightly += int64(math.Round(r.AdjustmentValue))
			}
			break
		}
		total += nightly
	}
	return total
}
