package pricing

import (
	"testing"
	"time"

	"github.com/staylodge/staylodge-backend/internal/rate"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestNightCount(t *testing.T) {
	assert.Equal(t, 2, NightCount(date(2026, 1, 10), date(2026, 1, 12)))
	assert.Equal(t, 1, NightCount(date(2026, 1, 10), date(2026, 1, 11)))
}

func TestQuote_NoRates(t *testing.T) {
	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 12), nil)
	assert.Equal(t, int64(1_000_000), total)
}

func TestQuote_PercentageCoversAllNights(t *testing.T) {
	rates := []*rate.PeakSeasonRate{
		{
			StartDate:       date(2026, 1, 1),
			EndDate:         date(2026, 2, 1),
			AdjustmentType:  rate.AdjustmentPercentage,
			AdjustmentValue: 10,
		},
	}

	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 12), rates)
	assert.Equal(t, int64(1_100_000), total)
}

func TestQuote_NominalCoversAllNights(t *testing.T) {
	rates := []*rate.PeakSeasonRate{
		{
			StartDate:       date(2026, 1, 1),
			EndDate:         date(2026, 2, 1),
			AdjustmentType:  rate.AdjustmentNominal,
			AdjustmentValue: 75_000,
		},
	}

	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 12), rates)
	assert.Equal(t, int64(1_150_000), total)
}

func TestQuote_PartialOverlap(t *testing.T) {
	// Rate covers only the first night of a two-night stay.
	rates := []*rate.PeakSeasonRate{
		{
			StartDate:       date(2026, 1, 10),
			EndDate:         date(2026, 1, 11),
			AdjustmentType:  rate.AdjustmentPercentage,
			AdjustmentValue: 20,
		},
	}

	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 12), rates)
	assert.Equal(t, int64(600_000+500_000), total)
}

func TestQuote_EndDateIsExclusive(t *testing.T) {
	// A stay whose only night is the rate's end_date pays the base price.
	rates := []*rate.PeakSeasonRate{
		{
			StartDate:       date(2026, 1, 5),
			EndDate:         date(2026, 1, 10),
			AdjustmentType:  rate.AdjustmentPercentage,
			AdjustmentValue: 50,
		},
	}

	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 11), rates)
	assert.Equal(t, int64(500_000), total)
}

func TestQuote_RoomSpecificWinsOverPropertyWide(t *testing.T) {
	// ListForStay orders room-specific rates first; only the first matching
	// rate applies per night.
	rates := []*rate.PeakSeasonRate{
		{
			RoomID:          strPtr("room-1"),
			StartDate:       date(2026, 1, 1),
			EndDate:         date(2026, 2, 1),
			AdjustmentType:  rate.AdjustmentNominal,
			AdjustmentValue: 100_000,
		},
		{
			StartDate:       date(2026, 1, 1),
			EndDate:         date(2026, 2, 1),
			AdjustmentType:  rate.AdjustmentPercentage,
			AdjustmentValue: 50,
		},
	}

	total := Quote(500_000, date(2026, 1, 10), date(2026, 1, 12), rates)
	assert.Equal(t, int64(2*600_000), total)
}

func TestQuote_PercentageRoundsPerNight(t *testing.T) {
	rates := []*rate.PeakSeasonRate{
		{
			StartDate:       date(2026, 1, 1),
			EndDate:         date(2026, 2, 1),
			AdjustmentType:  rate.AdjustmentPercentage,
			AdjustmentValue: 10,
		},
	}

	// 333 * 1.10 = 366.3, rounds to 366 per night.
	total := Quote(333, date(2026, 1, 10), date(2026, 1, 13), rates)
	assert.Equal(t, int64(3*366), total)
}
