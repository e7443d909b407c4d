package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/prayer"
)

// DisplayInterval is how often the countdown line is recomputed.
const DisplayInterval = 60 * time.Second

// Display receives the recomputed countdown line.
type Display interface {
	Update(ctx context.Context, state model.DisplayState) error
}

// Ticker drives the live countdown: every minute it re-resolves the next
// prayer from the already-cached schedule and pushes the result to the
// display. It never fetches; an empty cache simply means no update until the
// refresh loop has run.
type Ticker struct {
	settings Settings
	cache    ScheduleCache
	display  Display

	interval time.Duration
	now      func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewTicker(settings Settings, cache ScheduleCache, display Display) *Ticker {
	return &Ticker{
		settings: settings,
		cache:    cache,
		display:  display,
		interval: DisplayInterval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

func (t *Ticker) Start(ctx context.Context) {
	log.Info().Dur("interval", t.interval).Msg("starting countdown ticker")
	go t.run(ctx)
}

// Stop de-registers the repeating tick. A tick already in flight finishes on
// its own and its result is discarded by the subscriber side.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		log.Info().Msg("stopping countdown ticker")
		close(t.stopChan)
	})
}

func (t *Ticker) run(ctx context.Context) {
	t.Tick(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.Tick(ctx)
		case <-t.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Tick recomputes the countdown once. Exported so the API layer and tests can
// share the exact computation the loop performs.
func (t *Ticker) Tick(ctx context.Context) {
	city, err := t.settings.GetSelectedCity()
	if err != nil || city == nil {
		return
	}

	now := t.now()
	schedule, ok, err := t.cache.GetSchedule(ctx, city.CityID, now.Format("2006-01-02"))
	if err != nil {
		log.Warn().Err(err).Msg("countdown tick: cache read failed")
		return
	}
	if !ok {
		// Nothing cached yet; the refresh loop owns fetching.
		return
	}

	next, err := prayer.NextPrayer(schedule, now)
	if err != nil {
		log.Error().Err(err).Msg("countdown tick: unresolvable schedule")
		return
	}
	countdown, err := prayer.CountdownTo(next.Time, now)
	if err != nil {
		log.Error().Err(err).Msg("countdown tick: countdown failed")
		return
	}

	state := model.DisplayState{
		NextPrayer: next.Name,
		PrayerTime: next.Time,
		Hours:      countdown.Hours,
		Minutes:    countdown.Minutes,
		Text:       prayer.FormatCountdown(countdown),
		UpdatedAt:  now,
	}
	if err := t.display.Update(ctx, state); err != nil {
		log.Warn().Err(err).Msg("countdown tick: display update failed")
	}
}
