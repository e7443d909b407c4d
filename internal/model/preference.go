package model

// Sound profiles for reminder notifications. The pre-dawn prayer uses its
// own adzan recording; every other prayer shares the common one.
const (
	SoundAdzan       = "adzan"
	SoundAdzanShubuh = "adzan_shubuh"
	SoundDefault     = "default"
)

// ValidLeadMinutes is the fixed set of offsets a reminder may fire before a
// prayer's time-of-day. Zero means "at the prayer time".
var ValidLeadMinutes = []int{30, 15, 5, 0}

// NotificationPreference is one user's reminder configuration for a single
// obligatory prayer. At most one record exists per prayer name; an absent
// record means the prayer's reminders are disabled.
type NotificationPreference struct {
	PrayerName   PrayerName `json:"prayer_name" db:"prayer_name"`
	Enabled      bool       `json:"enabled" db:"enabled"`
	SoundProfile string     `json:"sound_profile" db:"sound_profile"`
	LeadMinutes  []int      `json:"lead_minutes"`
}

// SoundFor resolves the sound a reminder should carry: the adzan recording
// at the prayer instant itself, the platform default for early reminders.
func (p NotificationPreference) SoundFor(leadMinutes int) string {
	if leadMinutes != 0 {
		return SoundDefault
	}
	if p.PrayerName == Subuh {
		return SoundAdzanShubuh
	}
	return SoundAdzan
}
