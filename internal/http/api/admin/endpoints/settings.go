package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/db"
	"github.com/islamku/muadzin/internal/http/api"
	"github.com/islamku/muadzin/internal/http/api/admin/packets"
	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/refresh"
)

// Refresher triggers one fetch-and-schedule pass. Satisfied by *refresh.Loop.
type Refresher interface {
	RunOnce(ctx context.Context) refresh.Result
}

type SettingsController struct {
	store     db.Store
	refresher Refresher
}

func NewSettingsController(store db.Store, refresher Refresher) *SettingsController {
	return &SettingsController{store: store, refresher: refresher}
}

// SettingsModule mounts the city and reminder-preference endpoints.
func SettingsModule(store db.Store, refresher Refresher) api.Module {
	ctl := NewSettingsController(store, refresher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings/city", ctl.getCity)
		c.PUT("/settings/city", ctl.setCity)
		c.GET("/settings/preferences", ctl.listPreferences)
		c.PUT("/settings/preferences", ctl.replacePreferences)
	})
}

// GET /api/admin/settings/city
func (s *SettingsController) getCity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	city, err := s.store.GetSelectedCity()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read city"}
	}
	if city == nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "no city configured"}
	}

	return packets.CityResponse{
		CityID:    city.CityID,
		Lokasi:    city.Lokasi,
		UpdatedAt: city.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// PUT /api/admin/settings/city
func (s *SettingsController) setCity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SetCityRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.SetSelectedCity(request.CityID, request.Lokasi); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store city"}
	}

	// Selecting a city immediately refreshes the schedule and reminders, the
	// same as the periodic task would on its next run. Coalescing makes a
	// concurrent tick harmless.
	go s.refresher.RunOnce(context.WithoutCancel(ctx))

	log.Info().Str("city_id", request.CityID).Str("lokasi", request.Lokasi).Msg("selected city updated")
	return gin.H{"success": "city updated"}, nil
}

// GET /api/admin/settings/preferences
func (s *SettingsController) listPreferences(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	prefs, err := s.store.ListNotificationPreferences()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read preferences"}
	}

	response := make([]packets.PreferenceResponse, 0, len(prefs))
	for _, pref := range prefs {
		response = append(response, packets.PreferenceResponse{
			PrayerName:   string(pref.PrayerName),
			Enabled:      pref.Enabled,
			SoundProfile: pref.SoundProfile,
			LeadMinutes:  pref.LeadMinutes,
		})
	}
	return response, nil
}

// PUT /api/admin/settings/preferences
func (s *SettingsController) replacePreferences(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReplacePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	prefs, apiErr := validatePreferences(request.Preferences)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.store.ReplaceNotificationPreferences(prefs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store preferences"}
	}

	go s.refresher.RunOnce(context.WithoutCancel(ctx))

	log.Info().Int("count", len(prefs)).Msg("reminder preferences replaced")
	return gin.H{"success": "preferences updated"}, nil
}

func validatePreferences(requests []packets.PreferenceRequest) ([]model.NotificationPreference, *api.APIError) {
	seen := make(map[model.PrayerName]bool)
	prefs := make([]model.NotificationPreference, 0, len(requests))

	for _, req := range requests {
		name := model.PrayerName(req.PrayerName)
		if !name.IsObligatory() {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name: " + req.PrayerName}
		}
		if seen[name] {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "duplicate preference for " + req.PrayerName}
		}
		seen[name] = true

		for _, lead := range req.LeadMinutes {
			if !validLead(lead) {
				return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid lead minutes for " + req.PrayerName}
			}
		}

		leads := req.LeadMinutes
		if len(leads) == 0 {
			leads = model.ValidLeadMinutes
		}

		pref := model.NotificationPreference{
			PrayerName:  name,
			Enabled:     req.Enabled,
			LeadMinutes: leads,
		}
		// The stored profile names the adzan recording played at lead zero.
		pref.SoundProfile = pref.SoundFor(0)
		prefs = append(prefs, pref)
	}
	return prefs, nil
}

func validLead(lead int) bool {
	for _, l := range model.ValidLeadMinutes {
		if lead == l {
			return true
		}
	}
	return false
}
