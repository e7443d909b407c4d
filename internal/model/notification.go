package model

import "github.com/google/uuid"

// NotificationChannel is the delivery channel every prayer reminder uses.
const NotificationChannel = "prayer-times"

// NotificationData is the payload attached to a reminder so the receiving
// device can tell which prayer and offset it belongs to.
type NotificationData struct {
	PrayerName  PrayerName `json:"prayer_name"`
	LeadMinutes int        `json:"lead_minutes"`
}

// ScheduledNotification is one instruction to fire a reminder after a delay.
// Instructions are derived fresh on every scheduling pass and are never
// persisted; the previous batch is cancelled wholesale before a new one is
// registered.
type ScheduledNotification struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	FireDelaySeconds int64            `json:"fire_delay_seconds"`
	SoundProfile     string           `json:"sound_profile"`
	Channel          string           `json:"channel"`
	Data             NotificationData `json:"data"`
}
