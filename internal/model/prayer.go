package model

// PrayerName identifies one entry of the daily schedule.
type PrayerName string

const (
	Imsak   PrayerName = "Imsak"
	Subuh   PrayerName = "Subuh"
	Terbit  PrayerName = "Terbit"
	Dhuha   PrayerName = "Dhuha"
	Dzuhur  PrayerName = "Dzuhur"
	Ashar   PrayerName = "Ashar"
	Maghrib PrayerName = "Maghrib"
	Isya    PrayerName = "Isya"
)

// AllPrayers lists every schedule entry in canonical chronological order.
var AllPrayers = []PrayerName{Imsak, Subuh, Terbit, Dhuha, Dzuhur, Ashar, Maghrib, Isya}

// ObligatoryPrayers are the five prayers that participate in next-prayer
// resolution and reminder scheduling. The rest are informational only.
var ObligatoryPrayers = []PrayerName{Subuh, Dzuhur, Ashar, Maghrib, Isya}

// IsObligatory reports whether name is one of the five daily prayers.
func (p PrayerName) IsObligatory() bool {
	for _, name := range ObligatoryPrayers {
		if p == name {
			return true
		}
	}
	return false
}

// DailySchedule is one calendar day's prayer times for one city.
// Times are wall-clock "HH:MM" strings local to the city. A schedule is
// immutable once fetched; the next fetch supersedes it.
type DailySchedule struct {
	CityID  string `json:"city_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Terbit  string `json:"terbit"`
	Dhuha   string `json:"dhuha"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

// TimeOf returns the "HH:MM" string for the named prayer, or "" for an
// unknown name.
func (s DailySchedule) TimeOf(name PrayerName) string {
	switch name {
	case Imsak:
		return s.Imsak
	case Subuh:
		return s.Subuh
	case Terbit:
		return s.Terbit
	case Dhuha:
		return s.Dhuha
	case Dzuhur:
		return s.Dzuhur
	case Ashar:
		return s.Ashar
	case Maghrib:
		return s.Maghrib
	case Isya:
		return s.Isya
	}
	return ""
}
