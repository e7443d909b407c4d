package prayer

import (
	"fmt"
	"time"

	"github.com/islamku/muadzin/internal/model"
)

// NextPrayerResult names the soonest obligatory prayer still pending today,
// or tomorrow's first prayer once all of today's have passed. Time is the
// prayer's wall-clock "HH:MM" unchanged; on wraparound it refers to the next
// calendar day and callers needing a concrete instant must apply the rollover
// themselves (CountdownTo does).
type NextPrayerResult struct {
	Name model.PrayerName `json:"name"`
	Time string           `json:"time"`
}

// NextPrayer walks the five obligatory prayers in canonical order and returns
// the first whose time-of-day is strictly after now. A prayer whose time
// equals now counts as already passed. When none remains, it wraps around to
// Subuh.
func NextPrayer(s model.DailySchedule, now time.Time) (NextPrayerResult, error) {
	current := minutesOfDay(now.Hour(), now.Minute())

	var first *NextPrayerResult
	for _, name := range model.ObligatoryPrayers {
		clock := s.TimeOf(name)
		h, m, err := ParseClock(clock)
		if err != nil {
			return NextPrayerResult{}, fmt.Errorf("schedule entry %s: %w", name, err)
		}
		if first == nil {
			first = &NextPrayerResult{Name: name, Time: clock}
		}
		if minutesOfDay(h, m) > current {
			return NextPrayerResult{Name: name, Time: clock}, nil
		}
	}

	// All of today's prayers have passed; the next occurrence is tomorrow's
	// first obligatory prayer.
	return *first, nil
}
