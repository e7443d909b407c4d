package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/prayer"
)

// PassResult counts what one scheduling pass did. Skipped covers fire
// instants already in the past; Failed covers per-reminder registration
// errors, which do not abort the batch.
type PassResult struct {
	Registered int `json:"registered"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// Scheduler turns a day's schedule plus the user's reminder preferences into
// a registered batch of notifications.
type Scheduler struct {
	notifier Notifier
}

func NewScheduler(notifier Notifier) *Scheduler {
	return &Scheduler{notifier: notifier}
}

// Run executes one full-replace scheduling pass: cancel everything previously
// registered, then register one reminder per enabled (prayer, lead) pair
// whose fire instant is still ahead of now. Cancellation is awaited before
// any registration, so the pass reads as one step to concurrent observers and
// running it twice with the same inputs leaves an equivalent reminder set.
func (s *Scheduler) Run(ctx context.Context, schedule model.DailySchedule, prefs []model.NotificationPreference, now time.Time) (PassResult, error) {
	if err := s.notifier.CancelAll(ctx); err != nil {
		// Without a clean cancel the full-replace guarantee is gone; abort.
		return PassResult{}, fmt.Errorf("cancel pending reminders: %w", err)
	}

	var result PassResult
	for _, pref := range prefs {
		if !pref.Enabled || !pref.PrayerName.IsObligatory() {
			continue
		}

		prayerTime := schedule.TimeOf(pref.PrayerName)
		leads := pref.LeadMinutes
		if len(leads) == 0 {
			leads = model.ValidLeadMinutes
		}

		for _, lead := range leads {
			fireAt, err := prayer.FireTime(prayerTime, lead, now)
			if err != nil {
				log.Error().Err(err).
					Str("prayer", string(pref.PrayerName)).
					Int("lead_minutes", lead).
					Msg("could not derive reminder time")
				result.Failed++
				continue
			}

			delay := int64(fireAt.Sub(now) / time.Second)
			if delay <= 0 {
				result.Skipped++
				continue
			}

			// The stored profile names the adzan recording for the on-time
			// reminder; lead reminders always chime with the default.
			sound := pref.SoundFor(lead)
			if lead == 0 && pref.SoundProfile != "" {
				sound = pref.SoundProfile
			}

			n := model.ScheduledNotification{
				ID:               uuid.New(),
				Title:            prayer.ReminderTitle(pref.PrayerName),
				Body:             prayer.ReminderBody(pref.PrayerName, lead),
				FireDelaySeconds: delay,
				SoundProfile:     sound,
				Channel:          model.NotificationChannel,
				Data: model.NotificationData{
					PrayerName:  pref.PrayerName,
					LeadMinutes: lead,
				},
			}

			if err := s.notifier.Register(ctx, n); err != nil {
				// Best effort: log and keep scheduling the rest of the batch.
				log.Error().Err(err).
					Str("prayer", string(pref.PrayerName)).
					Int("lead_minutes", lead).
					Msg("failed to register reminder")
				result.Failed++
				continue
			}
			result.Registered++
		}
	}

	log.Info().
		Int("registered", result.Registered).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("scheduling pass complete")
	return result, nil
}
