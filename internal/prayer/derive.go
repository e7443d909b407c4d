package prayer

import "time"

// FireTime derives the absolute instant a reminder should fire: today's date
// at the prayer's time-of-day, minus the lead offset. The subtraction is
// calendar arithmetic, so a lead that crosses midnight downward lands on the
// previous day (Subuh "00:10" with a 30-minute lead fires yesterday 23:40).
func FireTime(prayerTime string, leadMinutes int, now time.Time) (time.Time, error) {
	at, err := instantAt(prayerTime, now)
	if err != nil {
		return time.Time{}, err
	}
	return at.Add(-time.Duration(leadMinutes) * time.Minute), nil
}
