package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/notify"
)

// Result is what one refresh invocation reports to its host, so the host can
// adapt its invocation frequency.
type Result string

const (
	// ResultNewData means a schedule was fetched and reminders re-registered.
	ResultNewData Result = "new-data-applied"
	// ResultNoData means no city is configured; nothing to refresh.
	ResultNoData Result = "no-data-available"
	// ResultFailed means the fetch or scheduling pass errored.
	ResultFailed Result = "failed"
	// ResultBusy means a prior invocation is still running and this one was
	// coalesced into a no-op.
	ResultBusy Result = "busy"
)

// MinimumInterval is the floor for the background refresh cadence.
const MinimumInterval = 15 * time.Minute

// Fetcher retrieves one day's schedule for a city.
type Fetcher interface {
	FetchSchedule(ctx context.Context, cityID string, date time.Time) (model.DailySchedule, error)
}

// ScheduleCache stores fetched schedules for the display ticker to read.
type ScheduleCache interface {
	SetSchedule(ctx context.Context, s model.DailySchedule, now time.Time) error
	GetSchedule(ctx context.Context, cityID, date string) (model.DailySchedule, bool, error)
}

// Settings is the slice of the store the loop reads. It never writes;
// settings change only through user interaction on the API side.
type Settings interface {
	GetSelectedCity() (*model.SelectedCity, error)
	ListNotificationPreferences() ([]model.NotificationPreference, error)
}

// PassRunner executes one full-replace scheduling pass.
type PassRunner interface {
	Run(ctx context.Context, schedule model.DailySchedule, prefs []model.NotificationPreference, now time.Time) (notify.PassResult, error)
}

// Loop periodically re-runs the fetch-and-schedule pipeline: read settings,
// fetch today's schedule, cache it, re-register reminders.
type Loop struct {
	settings  Settings
	fetcher   Fetcher
	cache     ScheduleCache
	scheduler PassRunner

	interval time.Duration
	now      func() time.Time

	busy     sync.Mutex
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(settings Settings, fetcher Fetcher, cache ScheduleCache, scheduler PassRunner, interval time.Duration) *Loop {
	if interval < MinimumInterval {
		interval = MinimumInterval
	}
	return &Loop{
		settings:  settings,
		fetcher:   fetcher,
		cache:     cache,
		scheduler: scheduler,
		interval:  interval,
		now:       time.Now,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the background task: one run immediately, then one per
// interval until Stop or ctx cancellation.
func (l *Loop) Start(ctx context.Context) {
	log.Info().Dur("interval", l.interval).Msg("starting schedule refresh loop")
	go l.run(ctx)
}

// Stop ends the background task. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		log.Info().Msg("stopping schedule refresh loop")
		close(l.stopChan)
	})
}

func (l *Loop) run(ctx context.Context) {
	l.RunOnce(ctx)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.RunOnce(ctx)
		case <-l.stopChan:
			log.Info().Msg("schedule refresh loop stopped")
			return
		case <-ctx.Done():
			log.Info().Msg("schedule refresh loop cancelled")
			return
		}
	}
}

// RunOnce performs a single refresh invocation. Concurrent callers (the
// ticker and the manual API trigger) are coalesced: whoever finds the busy
// flag held gets ResultBusy and does nothing. Each invocation moves
// Idle -> Fetching -> Scheduling -> Idle, short-circuiting back to Idle when
// no city is configured or a stage fails.
func (l *Loop) RunOnce(ctx context.Context) Result {
	if !l.busy.TryLock() {
		log.Debug().Msg("refresh already in progress, coalescing")
		return ResultBusy
	}
	defer l.busy.Unlock()

	city, err := l.settings.GetSelectedCity()
	if err != nil {
		log.Error().Err(err).Msg("refresh: could not read selected city")
		return ResultFailed
	}
	if city == nil {
		log.Info().Msg("refresh: no city configured")
		return ResultNoData
	}

	now := l.now()
	schedule, err := l.fetcher.FetchSchedule(ctx, city.CityID, now)
	if err != nil {
		log.Error().Err(err).Str("city_id", city.CityID).Msg("refresh: schedule fetch failed")
		return ResultFailed
	}

	if err := l.cache.SetSchedule(ctx, schedule, now); err != nil {
		// The cache only feeds the display ticker; reminders still go out.
		log.Warn().Err(err).Msg("refresh: could not cache schedule")
	}

	prefs, err := l.settings.ListNotificationPreferences()
	if err != nil {
		log.Error().Err(err).Msg("refresh: could not read preferences")
		return ResultFailed
	}

	pass, err := l.scheduler.Run(ctx, schedule, prefs, now)
	if err != nil {
		log.Error().Err(err).Msg("refresh: scheduling pass failed")
		return ResultFailed
	}

	log.Info().
		Str("city_id", city.CityID).
		Str("date", schedule.Date).
		Int("registered", pass.Registered).
		Msg("refresh complete")
	return ResultNewData
}
