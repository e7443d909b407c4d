// exposes a Store interface that is passed to API handlers and the refresh loop
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/islamku/muadzin/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// city selection
	GetSelectedCity() (*model.SelectedCity, error)
	SetSelectedCity(cityID, lokasi string) error

	// reminder preferences
	ListNotificationPreferences() ([]model.NotificationPreference, error)
	ReplaceNotificationPreferences(prefs []model.NotificationPreference) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
