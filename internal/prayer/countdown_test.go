package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownTo(t *testing.T) {
	tests := []struct {
		name   string
		target string
		now    time.Time
		want   Countdown
	}{
		{name: "same afternoon", target: "15:24", now: at(13, 0), want: Countdown{Hours: 2, Minutes: 24}},
		{name: "wraps past midnight", target: "04:35", now: at(20, 0), want: Countdown{Hours: 8, Minutes: 35}},
		{name: "target equals now", target: "13:00", now: at(13, 0), want: Countdown{Hours: 0, Minutes: 0}},
		{name: "one minute left", target: "13:01", now: at(13, 0), want: Countdown{Hours: 0, Minutes: 1}},
		{name: "late evening to subuh", target: "04:30", now: at(23, 0), want: Countdown{Hours: 5, Minutes: 30}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountdownTo(tc.target, tc.now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// The returned pair must always equal the floored whole-minute difference to
// the resolved instant, with minutes in 0..59.
func TestCountdownIdentity(t *testing.T) {
	targets := []string{"04:35", "12:01", "15:24", "18:02", "19:12", "00:00", "23:59"}

	for _, target := range targets {
		for _, now := range []time.Time{at(0, 0), at(11, 47), at(13, 0), at(22, 30)} {
			got, err := CountdownTo(target, now)
			require.NoError(t, err)

			resolved, err := instantAt(target, now)
			require.NoError(t, err)
			if resolved.Before(now) {
				resolved = resolved.AddDate(0, 0, 1)
			}
			wantTotal := int(resolved.Sub(now).Minutes())

			assert.Equal(t, wantTotal, got.Hours*60+got.Minutes, "target %s now %v", target, now)
			assert.GreaterOrEqual(t, got.Minutes, 0)
			assert.LessOrEqual(t, got.Minutes, 59)
			assert.GreaterOrEqual(t, got.Hours, 0)
		}
	}
}

func TestCountdownSecondsAreFloored(t *testing.T) {
	now := time.Date(2026, time.August, 31, 13, 0, 30, 0, jakarta)
	got, err := CountdownTo("15:24", now)
	require.NoError(t, err)
	// 2h23m30s remaining floors to 2h23m.
	assert.Equal(t, Countdown{Hours: 2, Minutes: 23}, got)
}

func TestCountdownToMalformedTarget(t *testing.T) {
	_, err := CountdownTo("sometime", at(13, 0))
	assert.Error(t, err)
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "2 jam 24 menit lagi", FormatCountdown(Countdown{Hours: 2, Minutes: 24}))
	assert.Equal(t, "5 menit lagi", FormatCountdown(Countdown{Hours: 0, Minutes: 5}))
	assert.Equal(t, "0 menit lagi", FormatCountdown(Countdown{}))
}
