package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamku/muadzin/internal/model"
)

var jakarta = time.FixedZone("WIB", 7*3600)

// fakeNotifier records instructions so tests can inspect the effective
// reminder set after one or more passes.
type fakeNotifier struct {
	pending     []model.ScheduledNotification
	cancels     int
	cancelErr   error
	registerErr map[model.PrayerName]error
}

func (f *fakeNotifier) CancelAll(ctx context.Context) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancels++
	f.pending = nil
	return nil
}

func (f *fakeNotifier) Register(ctx context.Context, n model.ScheduledNotification) error {
	if err := f.registerErr[n.Data.PrayerName]; err != nil {
		return err
	}
	f.pending = append(f.pending, n)
	return nil
}

func testSchedule() model.DailySchedule {
	return model.DailySchedule{
		CityID:  "1301",
		Date:    "2026-08-31",
		Subuh:   "04:35",
		Dzuhur:  "12:01",
		Ashar:   "15:24",
		Maghrib: "18:02",
		Isya:    "19:12",
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.August, 31, hour, minute, 0, 0, jakarta)
}

func TestRunRegistersEnabledPreferences(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Dzuhur, Enabled: true, LeadMinutes: []int{15}},
	}

	result, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)

	assert.Equal(t, PassResult{Registered: 1}, result)
	require.Len(t, fake.pending, 1)

	n := fake.pending[0]
	assert.Equal(t, "Waktu Dzuhur", n.Title)
	assert.Equal(t, model.Dzuhur, n.Data.PrayerName)
	assert.Equal(t, 15, n.Data.LeadMinutes)
	assert.Equal(t, model.NotificationChannel, n.Channel)
	assert.Equal(t, model.SoundDefault, n.SoundProfile)
	// 09:00 -> fire 11:46 is 2h46m ahead.
	assert.Equal(t, int64(2*3600+46*60), n.FireDelaySeconds)
}

func TestRunSkipsPastFireInstants(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Dzuhur, Enabled: true, LeadMinutes: []int{15}},
	}

	// Fire instant 11:46 already passed at 11:50.
	result, err := s.Run(context.Background(), testSchedule(), prefs, at(11, 50))
	require.NoError(t, err)

	assert.Equal(t, PassResult{Skipped: 1}, result)
	assert.Empty(t, fake.pending)
}

func TestRunFullLeadSetByDefault(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Maghrib, Enabled: true},
	}

	result, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Registered)
	leads := make(map[int]string)
	for _, n := range fake.pending {
		leads[n.Data.LeadMinutes] = n.SoundProfile
	}
	assert.Equal(t, map[int]string{
		30: model.SoundDefault,
		15: model.SoundDefault,
		5:  model.SoundDefault,
		0:  model.SoundAdzan,
	}, leads)
}

func TestRunSubuhSoundProfile(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Subuh, Enabled: true, LeadMinutes: []int{0}},
	}

	_, err := s.Run(context.Background(), testSchedule(), prefs, at(1, 0))
	require.NoError(t, err)
	require.Len(t, fake.pending, 1)
	assert.Equal(t, model.SoundAdzanShubuh, fake.pending[0].SoundProfile)
}

func TestRunHonorsStoredSoundProfile(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	// The persisted profile wins for the on-time reminder; lead reminders
	// keep the default chime.
	prefs := []model.NotificationPreference{
		{PrayerName: model.Maghrib, Enabled: true, SoundProfile: model.SoundAdzanShubuh, LeadMinutes: []int{15, 0}},
	}

	_, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)
	require.Len(t, fake.pending, 2)

	sounds := make(map[int]string)
	for _, n := range fake.pending {
		sounds[n.Data.LeadMinutes] = n.SoundProfile
	}
	assert.Equal(t, map[int]string{
		15: model.SoundDefault,
		0:  model.SoundAdzanShubuh,
	}, sounds)
}

func TestRunIgnoresDisabledAndNonObligatory(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Dzuhur, Enabled: false, LeadMinutes: []int{15}},
		{PrayerName: model.Terbit, Enabled: true, LeadMinutes: []int{15}},
	}

	result, err := s.Run(context.Background(), testSchedule(), prefs, at(1, 0))
	require.NoError(t, err)
	assert.Equal(t, PassResult{}, result)
	assert.Empty(t, fake.pending)
}

func TestRunIsIdempotent(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Ashar, Enabled: true, LeadMinutes: []int{30, 5}},
		{PrayerName: model.Isya, Enabled: true, LeadMinutes: []int{0}},
	}

	_, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)
	_, err = s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)

	// Full replace: the second pass cancels the first, never duplicates it.
	assert.Equal(t, 2, fake.cancels)
	require.Len(t, fake.pending, 3)

	seen := make(map[model.NotificationData]bool)
	for _, n := range fake.pending {
		assert.False(t, seen[n.Data], "duplicate reminder for %+v", n.Data)
		seen[n.Data] = true
	}
}

func TestRunContinuesPastRegistrationFailure(t *testing.T) {
	fake := &fakeNotifier{
		registerErr: map[model.PrayerName]error{model.Ashar: errors.New("broker down")},
	}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Ashar, Enabled: true, LeadMinutes: []int{15}},
		{PrayerName: model.Isya, Enabled: true, LeadMinutes: []int{15}},
	}

	result, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	require.NoError(t, err)

	assert.Equal(t, PassResult{Registered: 1, Failed: 1}, result)
	require.Len(t, fake.pending, 1)
	assert.Equal(t, model.Isya, fake.pending[0].Data.PrayerName)
}

func TestRunAbortsWhenCancelFails(t *testing.T) {
	fake := &fakeNotifier{cancelErr: errors.New("broker down")}
	s := NewScheduler(fake)

	prefs := []model.NotificationPreference{
		{PrayerName: model.Isya, Enabled: true, LeadMinutes: []int{15}},
	}

	_, err := s.Run(context.Background(), testSchedule(), prefs, at(9, 0))
	assert.Error(t, err)
	assert.Empty(t, fake.pending)
}

func TestRunCountsMalformedTimesAsFailures(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake)

	schedule := testSchedule()
	schedule.Maghrib = ""

	prefs := []model.NotificationPreference{
		{PrayerName: model.Maghrib, Enabled: true, LeadMinutes: []int{15}},
	}

	result, err := s.Run(context.Background(), schedule, prefs, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, PassResult{Failed: 1}, result)
}
