package packets

// body for registering
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

// body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
}

// body for selecting the schedule city
type SetCityRequest struct {
	CityID string `json:"city_id" binding:"required"`
	Lokasi string `json:"lokasi"`
}

// one reminder preference record in a full-list replace
type PreferenceRequest struct {
	PrayerName  string `json:"prayer_name" binding:"required"`
	Enabled     bool   `json:"enabled"`
	LeadMinutes []int  `json:"lead_minutes"`
}

type ReplacePreferencesRequest struct {
	Preferences []PreferenceRequest `json:"preferences" binding:"required"`
}
