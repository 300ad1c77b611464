package model

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type City struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"country_id"`
	Name      string `json:"name"`
}

type EncounterType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
