package myquran

import (
	"encoding/json"
	"fmt"
)

// FetchError is any failure to retrieve or parse provider data. Callers
// treat it as "no schedule available"; it never crosses the HTTP layer raw.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("myquran %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// City is one candidate from the city-search endpoint. The first result is
// taken as authoritative when storing a selection.
type City struct {
	ID     string `json:"id"`
	Lokasi string `json:"lokasi"`
}

// scheduleResponse mirrors /v2/sholat/jadwal/{cityID}/{date}.
type scheduleResponse struct {
	Status bool `json:"status"`
	Data   struct {
		ID     json.Number `json:"id"`
		Lokasi string      `json:"lokasi"`
		Jadwal jadwal      `json:"jadwal"`
	} `json:"data"`
}

type jadwal struct {
	Tanggal string `json:"tanggal"`
	Date    string `json:"date"`
	Imsak   string `json:"imsak"`
	Subuh   string `json:"subuh"`
	Terbit  string `json:"terbit"`
	Dhuha   string `json:"dhuha"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

// cityResponse mirrors /v2/sholat/kota/cari/{name}.
type cityResponse struct {
	Status bool   `json:"status"`
	Data   []City `json:"data"`
}
