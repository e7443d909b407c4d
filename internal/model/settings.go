package model

import "time"

// SelectedCity is the deployment's configured city for schedule lookups.
// There is exactly one (or none, before first configuration).
type SelectedCity struct {
	CityID    string    `db:"city_id" json:"city_id"`
	Lokasi    string    `db:"lokasi" json:"lokasi"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
