package journal

import (
	"sort"
	"time"
)

// Band classifies a rolling mean into one of three fixed ranges.
type Band string

// Band values. Thresholds are fixed: mean > 3.5 is positive, mean < 2.5
// is negative, anything else is neutral. No hysteresis.
const (
	BandPositive Band = "positive"
	BandNeutral  Band = "neutral"
	BandNegative Band = "negative"
)

// TrendPoint is the mean of a numeric field over one calendar day.
type TrendPoint struct {
	Day  time.Time `json:"day"`
	Mean float64   `json:"mean"`
}

// Summary holds rolling-window statistics for one record kind.
type Summary struct {
	Count int          `json:"count"`
	Mean  float64      `json:"mean"`
	Trend []TrendPoint `json:"trend"`
	Band  Band         `json:"band"`
}

// Summarize computes count, mean, per-day trend, and band over the records
// whose timestamp falls inside the trailing window of windowDays days.
//
// The mean of an empty window is 0 and the band is neutral: an empty
// journal carries no signal, so it must not read as negative even though
// 0 sits below the negative threshold. Per-day trend means are real-valued
// and emitted ascending by day; days without records produce no point.
func Summarize[R Record](records []R, field func(R) float64, now time.Time, windowDays int) Summary {
	cutoff := now.AddDate(0, 0, -windowDays)

	var windowed []R
	for _, rec := range records {
		if !rec.When().Before(cutoff) {
			windowed = append(windowed, rec)
		}
	}

	s := Summary{Count: len(windowed)}
	if s.Count == 0 {
		s.Band = BandNeutral
		return s
	}

	var sum float64
	daySums := make(map[time.Time]float64)
	dayCounts := make(map[time.Time]int)
	for _, rec := range windowed {
		v := field(rec)
		sum += v
		day := startOfDay(rec.When(), now)
		daySums[day] += v
		dayCounts[day]++
	}

	s.Mean = sum / float64(s.Count)
	s.Band = classifyBand(s.Mean)

	days := make([]time.Time, 0, len(daySums))
	for day := range daySums {
		days = append(days, day)
	}
	sort.Slice(days, func(i, k int) bool { return days[i].Before(days[k]) })

	for _, day := range days {
		s.Trend = append(s.Trend, TrendPoint{
			Day:  day,
			Mean: daySums[day] / float64(dayCounts[day]),
		})
	}
	return s
}

// classifyBand is a pure function of the mean.
func classifyBand(mean float64) Band {
	switch {
	case mean > 3.5:
		return BandPositive
	case mean < 2.5:
		return BandNegative
	default:
		return BandNeutral
	}
}

// EnergySummary computes the rolling summary over energy ratings.
func (j *Journal) EnergySummary() (Summary, error) {
	records, err := j.ListEnergy()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, func(r EnergyRecord) float64 { return float64(r.Rating) }, timeNow(), j.cfg.SummaryWindowDays), nil
}

// SleepSummary computes the rolling summary over hours slept.
func (j *Journal) SleepSummary() (Summary, error) {
	records, err := j.ListSleep()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(records, func(r SleepRecord) float64 { return r.HoursSlept }, timeNow(), j.cfg.SummaryWindowDays), nil
}
