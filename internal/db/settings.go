package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
)

// The settings table holds a single row; the fixed id keeps the upsert honest.
const settingsRowID = 1

// returns nil when no city has been configured yet.
func (s *pgStore) GetSelectedCity() (*model.SelectedCity, error) {
	var city model.SelectedCity
	query := `
	SELECT city_id, lokasi, updated_at
	FROM settings
	WHERE id = $1;
	`
	err := s.db.Get(&city, query, settingsRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Error().Err(err).Msg("failed to get selected city")
		return nil, err
	}
	return &city, nil
}

func (s *pgStore) SetSelectedCity(cityID, lokasi string) error {
	query := `
	INSERT INTO settings (id, city_id, lokasi, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (id) DO UPDATE
	SET city_id = EXCLUDED.city_id,
	    lokasi = EXCLUDED.lokasi,
	    updated_at = now();
	`
	if _, err := s.db.Exec(query, settingsRowID, cityID, lokasi); err != nil {
		log.Error().Err(err).Msg("failed to set selected city")
		return err
	}
	return nil
}

// preferenceRow is the table shape; lead minutes live in an int array column.
type preferenceRow struct {
	PrayerName   string        `db:"prayer_name"`
	Enabled      bool          `db:"enabled"`
	SoundProfile string        `db:"sound_profile"`
	LeadMinutes  pq.Int64Array `db:"lead_minutes"`
}

func (s *pgStore) ListNotificationPreferences() ([]model.NotificationPreference, error) {
	var rows []preferenceRow
	query := `
	SELECT prayer_name, enabled, sound_profile, lead_minutes
	FROM notification_preferences
	ORDER BY prayer_name;
	`
	if err := s.db.Select(&rows, query); err != nil {
		log.Error().Err(err).Msg("failed to list notification preferences")
		return nil, err
	}

	prefs := make([]model.NotificationPreference, 0, len(rows))
	for _, row := range rows {
		leads := make([]int, 0, len(row.LeadMinutes))
		for _, l := range row.LeadMinutes {
			leads = append(leads, int(l))
		}
		prefs = append(prefs, model.NotificationPreference{
			PrayerName:   model.PrayerName(row.PrayerName),
			Enabled:      row.Enabled,
			SoundProfile: row.SoundProfile,
			LeadMinutes:  leads,
		})
	}
	return prefs, nil
}

// replaces the whole preference set in one transaction, mirroring the
// full-replace semantics the scheduler applies to reminders.
func (s *pgStore) ReplaceNotificationPreferences(prefs []model.NotificationPreference) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin preference replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notification_preferences;`); err != nil {
		log.Error().Err(err).Msg("failed to clear notification preferences")
		return err
	}

	query := `
	INSERT INTO notification_preferences (prayer_name, enabled, sound_profile, lead_minutes)
	VALUES ($1, $2, $3, $4);
	`
	for _, pref := range prefs {
		leads := make(pq.Int64Array, 0, len(pref.LeadMinutes))
		for _, l := range pref.LeadMinutes {
			leads = append(leads, int64(l))
		}
		if _, err := tx.Exec(query, string(pref.PrayerName), pref.Enabled, pref.SoundProfile, leads); err != nil {
			log.Error().Err(err).Str("prayer", string(pref.PrayerName)).Msg("failed to insert notification preference")
			return err
		}
	}

	return tx.Commit()
}
