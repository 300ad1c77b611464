package dto

type ReferenceOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReferenceOptionsResponse struct {
	Countries      []ReferenceOption `json:"countries"`
	EncounterTypes []ReferenceOption `json:"encounter_types"`
}

type CitiesResponse struct {
	Items []ReferenceOption `json:"items"`
}
