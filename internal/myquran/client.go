package myquran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/islamku/muadzin/internal/model"
	"github.com/islamku/muadzin/internal/prayer"
)

const defaultBaseURL = "https://api.myquran.com/v2"

// Client talks to the myquran prayer-schedule API. It does not retry;
// retrying, if any, is the refresh loop's concern.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point the client at an httptest server.
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

// FetchSchedule retrieves the named city's schedule for one calendar date.
func (c *Client) FetchSchedule(ctx context.Context, cityID string, date time.Time) (model.DailySchedule, error) {
	endpoint := fmt.Sprintf("%s/sholat/jadwal/%s/%s", c.BaseURL, url.PathEscape(cityID), date.Format("2006-01-02"))

	var parsed scheduleResponse
	if err := c.getJSON(ctx, "schedule", endpoint, &parsed); err != nil {
		return model.DailySchedule{}, err
	}

	j := parsed.Data.Jadwal
	if !parsed.Status || j.Subuh == "" {
		return model.DailySchedule{}, &FetchError{Op: "schedule", Err: fmt.Errorf("no schedule in response for city %s", cityID)}
	}

	scheduleDate := j.Date
	if scheduleDate == "" {
		scheduleDate = date.Format("2006-01-02")
	}

	schedule := model.DailySchedule{
		CityID:  cityID,
		Date:    scheduleDate,
		Imsak:   j.Imsak,
		Subuh:   j.Subuh,
		Terbit:  j.Terbit,
		Dhuha:   j.Dhuha,
		Dzuhur:  j.Dzuhur,
		Ashar:   j.Ashar,
		Maghrib: j.Maghrib,
		Isya:    j.Isya,
	}

	// Entries must be non-decreasing in canonical order; a schedule that
	// violates that would make the resolver lie all day.
	if err := prayer.ValidateOrder(schedule); err != nil {
		return model.DailySchedule{}, &FetchError{Op: "schedule", Err: err}
	}
	return schedule, nil
}

// SearchCities looks up city candidates by free-text name.
func (c *Client) SearchCities(ctx context.Context, name string) ([]City, error) {
	endpoint := fmt.Sprintf("%s/sholat/kota/cari/%s", c.BaseURL, url.PathEscape(name))

	var parsed cityResponse
	if err := c.getJSON(ctx, "city search", endpoint, &parsed); err != nil {
		return nil, err
	}
	if !parsed.Status {
		return nil, &FetchError{Op: "city search", Err: fmt.Errorf("no match for %q", name)}
	}

	return parsed.Data, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
