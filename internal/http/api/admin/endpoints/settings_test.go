package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/refresh"
)

func TestGetCity_NotConfigured(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/admin/settings/city", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetCity_StoresAndTriggersRefresh(t *testing.T) {
	store := newFakeStore()
	refresher := &fakeRefresher{result: refresh.ResultNewData}
	r := newTestRouter(store, refresher)
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/city", token, gin.H{
		"city_id": "1204",
		"lokasi":  "KOTA BANDUNG",
	})
	require.Equal(t, http.StatusOK, w.Code)

	city, err := store.GetSelectedCity()
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "1204", city.CityID)
	assert.Equal(t, "KOTA BANDUNG", city.Lokasi)

	// The scheduling pass runs in the background after the write.
	require.Eventually(t, func() bool {
		return refresher.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	w = doJSON(t, r, http.MethodGet, "/api/admin/settings/city", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CityID string `json:"city_id"`
		Lokasi string `json:"lokasi"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1204", resp.CityID)
	assert.Equal(t, "KOTA BANDUNG", resp.Lokasi)
}

func TestSetCity_MissingCityID(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/city", token, gin.H{
		"lokasi": "KOTA BANDUNG",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplacePreferences_DefaultsAndSounds(t *testing.T) {
	store := newFakeStore()
	refresher := &fakeRefresher{result: refresh.ResultNewData}
	r := newTestRouter(store, refresher)
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/preferences", token, gin.H{
		"preferences": []gin.H{
			{"prayer_name": "Subuh", "enabled": true},
			{"prayer_name": "Maghrib", "enabled": true, "lead_minutes": []int{15, 0}},
			{"prayer_name": "Isya", "enabled": false},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	prefs := store.storedPrefs()
	require.Len(t, prefs, 3)

	byName := map[model.PrayerName]model.NotificationPreference{}
	for _, p := range prefs {
		byName[p.PrayerName] = p
	}

	// An omitted lead list means every supported lead.
	assert.Equal(t, model.ValidLeadMinutes, byName[model.Subuh].LeadMinutes)
	assert.Equal(t, []int{15, 0}, byName[model.Maghrib].LeadMinutes)

	assert.Equal(t, model.SoundAdzanShubuh, byName[model.Subuh].SoundProfile)
	assert.Equal(t, model.SoundAdzan, byName[model.Maghrib].SoundProfile)
	assert.False(t, byName[model.Isya].Enabled)

	require.Eventually(t, func() bool {
		return refresher.calls.Load() == 1
	}, time.Second, 10*time.Millisecond)

	// The stored set reads back exactly as written.
	w = doJSON(t, r, http.MethodGet, "/api/admin/settings/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []struct {
		PrayerName  string `json:"prayer_name"`
		LeadMinutes []int  `json:"lead_minutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
}

func TestReplacePreferences_RejectsUnknownPrayer(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/preferences", token, gin.H{
		"preferences": []gin.H{
			{"prayer_name": "Terbit", "enabled": true},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplacePreferences_RejectsDuplicates(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/preferences", token, gin.H{
		"preferences": []gin.H{
			{"prayer_name": "Dzuhur", "enabled": true},
			{"prayer_name": "Dzuhur", "enabled": false},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReplacePreferences_RejectsInvalidLead(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/admin/settings/preferences", token, gin.H{
		"preferences": []gin.H{
			{"prayer_name": "Ashar", "enabled": true, "lead_minutes": []int{45}},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPreferences(t *testing.T) {
	store := newFakeStore()
	store.prefs = []model.NotificationPreference{
		{PrayerName: model.Subuh, Enabled: true, SoundProfile: model.SoundAdzanShubuh, LeadMinutes: []int{30, 0}},
	}
	r := newTestRouter(store, &fakeRefresher{})
	token := signupToken(t, r, "admin@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/admin/settings/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		PrayerName   string `json:"prayer_name"`
		SoundProfile string `json:"sound_profile"`
		LeadMinutes  []int  `json:"lead_minutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Subuh", resp[0].PrayerName)
	assert.Equal(t, model.SoundAdzanShubuh, resp[0].SoundProfile)
	assert.Equal(t, []int{30, 0}, resp[0].LeadMinutes)
}

func TestTriggerRefresh_ResultMapping(t *testing.T) {
	cases := []struct {
		result refresh.Result
		code   int
	}{
		{refresh.ResultNewData, http.StatusOK},
		{refresh.ResultNoData, http.StatusOK},
		{refresh.ResultBusy, http.StatusConflict},
		{refresh.ResultFailed, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(string(tc.result), func(t *testing.T) {
			r := newTestRouter(newFakeStore(), &fakeRefresher{result: tc.result})
			token := signupToken(t, r, "admin@example.com")

			w := doJSON(t, r, http.MethodPost, "/api/admin/refresh", token, nil)
			assert.Equal(t, tc.code, w.Code)

			if tc.code == http.StatusOK {
				var resp struct {
					Result string `json:"result"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, string(tc.result), resp.Result)
			}
		})
	}
}

func TestSettings_RequireToken(t *testing.T) {
	r := newTestRouter(newFakeStore(), &fakeRefresher{})

	w := doJSON(t, r, http.MethodGet, "/api/admin/settings/city", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
