package catalog

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"stock-advisor/internal/dto"
)

const dateLayout = "2006-01-02"

// historySeed derives a stable per-ticker seed so regenerated histories are
// identical across process restarts.
func historySeed(ticker string) int64 {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	return int64(h.Sum64())
}

// nextBusinessDay advances to the next weekday.
func nextBusinessDay(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// synthesizeBar generates one daily OHLCV bar following the previous close.
// low <= open,close <= high holds by construction.
func synthesizeBar(rng *rand.Rand, prevClose, drift, dailyVol, avgVolume float64, date time.Time) dto.PricePoint {
	ret := drift/252 + dailyVol*rng.NormFloat64()
	close := prevClose * (1 + ret)
	if close < 0.01 {
		close = 0.01
	}

	open := prevClose * (1 + dailyVol*0.3*rng.NormFloat64())
	if open < 0.01 {
		open = 0.01
	}

	spread := math.Abs(rng.NormFloat64()) * dailyVol * 0.5
	if spread > 0.5 {
		spread = 0.5
	}
	high := math.Max(open, close) * (1 + spread)
	low := math.Min(open, close) * (1 - spread)

	volume := avgVolume * (0.6 + 0.8*rng.Float64())

	return dto.PricePoint{
		Date:   date.Format(dateLayout),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}
}

// generateHistory builds a deterministic synthetic daily history of `days`
// business-day bars ending at `end`.
func generateHistory(ticker string, basePrice, drift, dailyVol, avgVolume float64, days int, end time.Time) []dto.PricePoint {
	rng := rand.New(rand.NewSource(historySeed(ticker)))

	// Walk the calendar backwards to find the first bar date.
	dates := make([]time.Time, 0, days)
	day := end
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, -1)
	}
	for len(dates) < days {
		dates = append(dates, day)
		day = day.AddDate(0, 0, -1)
		for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			day = day.AddDate(0, 0, -1)
		}
	}
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}

	history := make([]dto.PricePoint, 0, days)
	prevClose := basePrice
	for _, d := range dates {
		bar := synthesizeBar(rng, prevClose, drift, dailyVol, avgVolume, d)
		history = append(history, bar)
		prevClose = bar.Close
	}
	return history
}
