package model

import "time"

// DisplayState is the live next-prayer line pushed to display devices. It is
// recomputed every minute from the cached schedule and replaces the previous
// state wholesale.
type DisplayState struct {
	NextPrayer PrayerName `json:"next_prayer"`
	PrayerTime string     `json:"prayer_time"`
	Hours      int        `json:"hours"`
	Minutes    int        `json:"minutes"`
	Text       string     `json:"text"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
