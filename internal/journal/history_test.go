package journal_test

import (
	"testing"
	"time"

	"github.com/nvaldez/pulse/internal/journal"
)

func energyAt(at time.Time, rating int) journal.EnergyRecord {
	return journal.EnergyRecord{ID: at.Format(time.RFC3339), Rating: rating, LoggedAt: at}
}

func TestBucketByDay_GroupsAndOrders(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, loc)

	records := []journal.EnergyRecord{
		energyAt(time.Date(2024, 1, 15, 9, 0, 0, 0, loc), 2),
		energyAt(time.Date(2024, 1, 15, 23, 0, 0, 0, loc), 4),
		energyAt(time.Date(2024, 1, 14, 9, 0, 0, 0, loc), 3),
	}

	buckets := journal.BucketByDay(records, now)
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}

	// Most recent day first.
	if got, want := buckets[0].Day, time.Date(2024, 1, 15, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("buckets[0].Day = %v, want %v", got, want)
	}
	if len(buckets[0].Records) != 2 {
		t.Errorf("buckets[0] records = %d, want 2", len(buckets[0].Records))
	}
	if got, want := buckets[1].Day, time.Date(2024, 1, 14, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("buckets[1].Day = %v, want %v", got, want)
	}
	if len(buckets[1].Records) != 1 {
		t.Errorf("buckets[1] records = %d, want 1", len(buckets[1].Records))
	}

	// Within a day, input (insertion) order is preserved.
	if buckets[0].Records[0].Rating != 2 || buckets[0].Records[1].Rating != 4 {
		t.Errorf("within-day order = [%d %d], want [2 4]",
			buckets[0].Records[0].Rating, buckets[0].Records[1].Rating)
	}
}

func TestBucketByDay_Empty(t *testing.T) {
	buckets := journal.BucketByDay[journal.EnergyRecord](nil, time.Now())
	if len(buckets) != 0 {
		t.Errorf("buckets = %d, want 0", len(buckets))
	}
}

func TestDayLabel(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, loc)

	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"today", time.Date(2024, 1, 15, 0, 0, 0, 0, loc), "Today"},
		{"yesterday", time.Date(2024, 1, 14, 0, 0, 0, 0, loc), "Yesterday"},
		{"older", time.Date(2024, 1, 10, 0, 0, 0, 0, loc), "Wednesday, January 10, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := journal.DayLabel(tt.day, now); got != tt.want {
				t.Errorf("DayLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnergyHistory_RecomputedFromSnapshot(t *testing.T) {
	j := newTestJournal(t)

	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.Local)
	logEnergyAt(t, j, 3, base)

	freezeTime(t, base.Add(6*time.Hour))
	buckets, err := j.EnergyHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("buckets = %d, want 1", len(buckets))
	}
	if buckets[0].Label != "Today" {
		t.Errorf("label = %q, want Today", buckets[0].Label)
	}

	// A later mutation shows up on the next pull.
	logEnergyAt(t, j, 4, base.Add(26*time.Hour))
	freezeTime(t, base.Add(27*time.Hour))
	buckets, err = j.EnergyHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets after second log = %d, want 2", len(buckets))
	}
	if buckets[0].Label != "Today" || buckets[1].Label != "Yesterday" {
		t.Errorf("labels = [%q %q], want [Today Yesterday]", buckets[0].Label, buckets[1].Label)
	}
}

func TestSleepHistory_BucketsByLocalDay(t *testing.T) {
	j := newTestJournal(t)

	base := time.Date(2024, 1, 15, 7, 30, 0, 0, time.Local)
	logSleepAt(t, j, 6, base.Add(-24*time.Hour))
	logSleepAt(t, j, 8, base)

	freezeTime(t, base.Add(time.Hour))
	buckets, err := j.SleepHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}
	if buckets[0].Records[0].HoursSlept != 8 {
		t.Errorf("most recent bucket hours = %v, want 8", buckets[0].Records[0].HoursSlept)
	}
}
