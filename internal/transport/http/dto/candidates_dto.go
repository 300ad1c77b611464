package dto

type CandidateItem struct {
	ProfileID       int64  `json:"profile_id"`
	DisplayName     string `json:"display_name"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	CountryID       *int64 `json:"country_id,omitempty"`
	CityID          *int64 `json:"city_id,omitempty"`
	EncounterTypeID *int64 `json:"encounter_type_id,omitempty"`
	Bio             string `json:"bio,omitempty"`
}

type CandidatesResponse struct {
	Items []CandidateItem `json:"items"`
}
