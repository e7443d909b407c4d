package packets

// one day's schedule for the configured city
type ScheduleResponse struct {
	CityID  string `json:"city_id"`
	Lokasi  string `json:"lokasi"`
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

type CountdownResponse struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// the live next-prayer line
type NextPrayerResponse struct {
	Name      string            `json:"name"`
	Time      string            `json:"time"`
	Countdown CountdownResponse `json:"countdown"`
	Text      string            `json:"text"`
}

type CityCandidateResponse struct {
	ID     string `json:"id"`
	Lokasi string `json:"lokasi"`
}
