package myquran

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scheduleBody = `{
	"status": true,
	"data": {
		"id": 1301,
		"lokasi": "KAB. BANDUNG",
		"jadwal": {
			"tanggal": "Senin, 31/08/2026",
			"date": "2026-08-31",
			"imsak": "04:25",
			"subuh": "04:35",
			"terbit": "05:52",
			"dhuha": "06:20",
			"dzuhur": "12:01",
			"ashar": "15:24",
			"maghrib": "18:02",
			"isya": "19:12"
		}
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient()
	c.BaseURL = server.URL
	return c
}

func TestFetchSchedule(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(scheduleBody))
	})

	date := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	s, err := c.FetchSchedule(context.Background(), "1301", date)
	require.NoError(t, err)

	assert.Equal(t, "/sholat/jadwal/1301/2026-08-31", gotPath)
	assert.Equal(t, "1301", s.CityID)
	assert.Equal(t, "2026-08-31", s.Date)
	assert.Equal(t, "04:35", s.Subuh)
	assert.Equal(t, "12:01", s.Dzuhur)
	assert.Equal(t, "19:12", s.Isya)
}

func TestFetchScheduleErrors(t *testing.T) {
	date := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	t.Run("server error", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.FetchSchedule(context.Background(), "1301", date)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
	})

	t.Run("malformed body", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		})
		_, err := c.FetchSchedule(context.Background(), "1301", date)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
	})

	t.Run("empty schedule", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": false, "data": {}}`))
		})
		_, err := c.FetchSchedule(context.Background(), "1301", date)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
	})

	t.Run("out of order schedule", func(t *testing.T) {
		// Ashar before Dzuhur breaks the non-decreasing order invariant.
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"status": true,
				"data": {
					"jadwal": {
						"date": "2026-08-31",
						"imsak": "04:25",
						"subuh": "04:35",
						"terbit": "05:52",
						"dhuha": "06:20",
						"dzuhur": "12:01",
						"ashar": "11:24",
						"maghrib": "18:02",
						"isya": "19:12"
					}
				}
			}`))
		})
		_, err := c.FetchSchedule(context.Background(), "1301", date)

		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
	})
}

func TestSearchCities(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sholat/kota/cari/bandung", r.URL.Path)
		w.Write([]byte(`{"status": true, "data": [
			{"id": "1219", "lokasi": "KAB. BANDUNG"},
			{"id": "1220", "lokasi": "KOTA BANDUNG"}
		]}`))
	})

	cities, err := c.SearchCities(context.Background(), "bandung")
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "1219", cities[0].ID)
	assert.Equal(t, "KAB. BANDUNG", cities[0].Lokasi)
}

func TestSearchCitiesNoMatch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": false, "data": []}`))
	})

	_, err := c.SearchCities(context.Background(), "atlantis")
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
}
