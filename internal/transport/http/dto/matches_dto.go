package dto

import "time"

type MatchItem struct {
	MatchID              int64     `json:"match_id"`
	CounterpartProfileID int64     `json:"counterpart_profile_id"`
	CounterpartName      string    `json:"counterpart_name"`
	CounterpartGender    string    `json:"counterpart_gender"`
	CounterpartAge       int       `json:"counterpart_age"`
	MatchedAt            time.Time `json:"matched_at"`
}

type MatchesResponse struct {
	Items []MatchItem `json:"items"`
}
