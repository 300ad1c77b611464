package model

import "time"

// DatingProfile is the rencontre profile, owned by profile management.
// Its ID is distinct from the owning account id; this core never mutates it.
type DatingProfile struct {
	ID              int64     `json:"id"`
	AccountID       int64     `json:"account_id"`
	DisplayName     string    `json:"display_name"`
	Gender          string    `json:"gender"`
	Age             int       `json:"age"`
	CountryID       *int64    `json:"country_id"`
	CityID          *int64    `json:"city_id"`
	EncounterTypeID *int64    `json:"encounter_type_id"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
}
