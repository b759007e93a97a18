package journal

import "time"

// timeNow is a package-level variable for testability.
// Tests can replace this to control time in assertions.
var timeNow = time.Now

// startOfDay returns local midnight of the calendar day containing t,
// in the location of ref.
func startOfDay(t time.Time, ref time.Time) time.Time {
	local := t.In(ref.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ref.Location())
}
