package prayer

import (
	"fmt"
	"time"
)

// Countdown is the whole time remaining until a target time-of-day.
// Hours is unbounded above; Minutes is always 0..59. A zero Countdown is a
// valid result (the target is this very minute), not an error.
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// CountdownTo computes the time remaining from now until the next occurrence
// of the target "HH:MM". A target earlier in the day than now resolves to
// tomorrow, so a 23:00 countdown to a 04:30 Subuh spans midnight. The
// difference is floored to whole minutes.
func CountdownTo(target string, now time.Time) (Countdown, error) {
	candidate, err := instantAt(target, now)
	if err != nil {
		return Countdown{}, err
	}
	if candidate.Before(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}

	totalMinutes := int(candidate.Sub(now) / time.Minute)
	return Countdown{
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}, nil
}

// FormatCountdown renders a countdown the way the schedule screen shows it.
// A zero countdown still reads "0 menit lagi".
func FormatCountdown(c Countdown) string {
	if c.Hours > 0 {
		return fmt.Sprintf("%d jam %d menit lagi", c.Hours, c.Minutes)
	}
	return fmt.Sprintf("%d menit lagi", c.Minutes)
}
