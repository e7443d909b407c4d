package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/islamku/muadzin/internal/model"
)

// ParseClock parses a wall-clock "HH:MM" string as returned by the schedule
// provider. A trailing annotation after a space (e.g. "04:35 (WIB)") is
// ignored.
func ParseClock(raw string) (hour, minute int, err error) {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q", raw)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %q", raw)
	}

	return hour, minute, nil
}

// instantAt places an "HH:MM" time-of-day on the calendar day of ref.
func instantAt(clock string, ref time.Time) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), h, m, 0, 0, ref.Location()), nil
}

// minutesOfDay expresses a clock value as minutes since midnight.
func minutesOfDay(hour, minute int) int {
	return hour*60 + minute
}

// ValidateOrder checks the schedule invariant: entries must be non-decreasing
// in canonical prayer order within the day.
func ValidateOrder(s model.DailySchedule) error {
	prev := -1
	prevName := model.PrayerName("")
	for _, name := range model.AllPrayers {
		clock := s.TimeOf(name)
		if clock == "" {
			continue
		}
		h, m, err := ParseClock(clock)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		cur := minutesOfDay(h, m)
		if cur < prev {
			return fmt.Errorf("%s (%s) precedes %s", name, clock, prevName)
		}
		prev = cur
		prevName = name
	}
	return nil
}
