package journal

import (
	"sort"
	"time"
)

// DayBucket groups the records of one local calendar day under a
// human-readable label.
type DayBucket[R Record] struct {
	Day     time.Time
	Label   string
	Records []R
}

// BucketByDay groups records by local calendar day (keyed by midnight in
// now's location) and orders the buckets most recent day first. Order
// within a bucket preserves the input (store iteration) order. Labels are
// "Today", "Yesterday", or the long-form date.
func BucketByDay[R Record](records []R, now time.Time) []DayBucket[R] {
	byDay := make(map[time.Time][]R)
	for _, rec := range records {
		day := startOfDay(rec.When(), now)
		byDay[day] = append(byDay[day], rec)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, k int) bool { return days[i].After(days[k]) })

	buckets := make([]DayBucket[R], 0, len(days))
	for _, day := range days {
		buckets = append(buckets, DayBucket[R]{
			Day:     day,
			Label:   DayLabel(day, now),
			Records: byDay[day],
		})
	}
	return buckets
}

// DayLabel names a bucket day relative to now: "Today", "Yesterday",
// or a long-form calendar date like "Monday, January 15, 2024".
func DayLabel(day, now time.Time) string {
	today := startOfDay(now, now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Monday, January 2, 2006")
	}
}

// EnergyHistory recomputes the day-bucketed energy view from the current
// store snapshot. Callers re-pull after any successful mutation.
func (j *Journal) EnergyHistory() ([]DayBucket[EnergyRecord], error) {
	records, err := j.ListEnergy()
	if err != nil {
		return nil, err
	}
	return BucketByDay(records, timeNow()), nil
}

// SleepHistory recomputes the day-bucketed sleep view from the current
// store snapshot.
func (j *Journal) SleepHistory() ([]DayBucket[SleepRecord], error) {
	records, err := j.ListSleep()
	if err != nil {
		return nil, err
	}
	return BucketByDay(records, timeNow()), nil
}
