package explorer

import "time"

// LastFriday returns the most recent Friday strictly before the given day.
// It is the default start of the weekly mining window.
func LastFriday(now time.Time) time.Time {
	day := now.AddDate(0, 0, -1)
	for day.Weekday() != time.Friday {
		day = day.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}
