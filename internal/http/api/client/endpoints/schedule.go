package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/db"
	"github.com/islamku/muadzin/internal/http/api"
	"github.com/islamku/muadzin/internal/http/api/client/packets"
	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/myquran"
	"github.com/islamku/muadzin/internal/prayer"
	"github.com/islamku/muadzin/internal/refresh"
)

type ScheduleController struct {
	store   db.Store
	cache   refresh.ScheduleCache
	fetcher refresh.Fetcher
	now     func() time.Time
}

func NewScheduleController(store db.Store, cache refresh.ScheduleCache, fetcher refresh.Fetcher) *ScheduleController {
	return &ScheduleController{store: store, cache: cache, fetcher: fetcher, now: time.Now}
}

// ScheduleModule mounts the public schedule endpoints.
func ScheduleModule(store db.Store, cache refresh.ScheduleCache, fetcher refresh.Fetcher) api.Module {
	ctl := NewScheduleController(store, cache, fetcher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/schedule/today", ctl.getToday)
		c.PUBLIC_GET("/schedule/next", ctl.getNext)
	})
}

// GET /api/client/schedule/today
func (s *ScheduleController) getToday(ctx *gin.Context) (any, *api.APIError) {
	city, schedule, apiErr := s.todaySchedule(ctx, s.now())
	if apiErr != nil {
		return nil, apiErr
	}

	return packets.ScheduleResponse{
		CityID:  schedule.CityID,
		Lokasi:  city.Lokasi,
		Date:    schedule.Date,
		Imsak:   schedule.Imsak,
		Subuh:   schedule.Subuh,
		Terbit:  schedule.Terbit,
		Dhuha:   schedule.Dhuha,
		Dzuhur:  schedule.Dzuhur,
		Ashar:   schedule.Ashar,
		Maghrib: schedule.Maghrib,
		Isya:    schedule.Isya,
	}, nil
}

// GET /api/client/schedule/next?now=RFC3339
func (s *ScheduleController) getNext(ctx *gin.Context) (any, *api.APIError) {
	now := s.now()
	if raw := ctx.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "now must be RFC3339"}
		}
		now = parsed
	}

	_, schedule, apiErr := s.todaySchedule(ctx, now)
	if apiErr != nil {
		return nil, apiErr
	}

	next, err := prayer.NextPrayer(schedule, now)
	if err != nil {
		log.Error().Err(err).Msg("schedule has unresolvable entries")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "schedule unavailable"}
	}
	countdown, err := prayer.CountdownTo(next.Time, now)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "schedule unavailable"}
	}

	return packets.NextPrayerResponse{
		Name: string(next.Name),
		Time: next.Time,
		Countdown: packets.CountdownResponse{
			Hours:   countdown.Hours,
			Minutes: countdown.Minutes,
		},
		Text: prayer.FormatCountdown(countdown),
	}, nil
}

// todaySchedule resolves the configured city's schedule for the day holding
// now, serving from cache and falling back to one fetch on a miss.
func (s *ScheduleController) todaySchedule(ctx *gin.Context, now time.Time) (*model.SelectedCity, model.DailySchedule, *api.APIError) {
	city, err := s.store.GetSelectedCity()
	if err != nil {
		return nil, model.DailySchedule{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read city"}
	}
	if city == nil {
		return nil, model.DailySchedule{}, &api.APIError{Code: http.StatusConflict, Message: "no city configured"}
	}

	reqCtx := ctx.Request.Context()

	schedule, ok, err := s.cache.GetSchedule(reqCtx, city.CityID, now.Format("2006-01-02"))
	if err != nil {
		log.Warn().Err(err).Msg("schedule cache read failed")
	}
	if ok {
		return city, schedule, nil
	}

	schedule, err = s.fetcher.FetchSchedule(reqCtx, city.CityID, now)
	if err != nil {
		var fetchErr *myquran.FetchError
		if errors.As(err, &fetchErr) {
			log.Error().Err(err).Str("city_id", city.CityID).Msg("schedule fetch failed")
		}
		return nil, model.DailySchedule{}, &api.APIError{Code: http.StatusBadGateway, Message: "schedule unavailable"}
	}

	if err := s.cache.SetSchedule(reqCtx, schedule, now); err != nil {
		log.Warn().Err(err).Msg("could not cache schedule")
	}
	return city, schedule, nil
}
