package packets

// returned for profile endpoints
type ProfileResponse struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CityResponse struct {
	CityID    string `json:"city_id"`
	Lokasi    string `json:"lokasi"`
	UpdatedAt string `json:"updated_at"`
}

type PreferenceResponse struct {
	PrayerName   string `json:"prayer_name"`
	Enabled      bool   `json:"enabled"`
	SoundProfile string `json:"sound_profile"`
	LeadMinutes  []int  `json:"lead_minutes"`
}

type RefreshResponse struct {
	Result string `json:"result"`
}
