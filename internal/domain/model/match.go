package model

import "time"

// Match stores the unordered pair in canonical form: ProfileAID < ProfileBID.
type Match struct {
	ID         int64     `json:"id"`
	ProfileAID int64     `json:"profile_a_id"`
	ProfileBID int64     `json:"profile_b_id"`
	CreatedAt  time.Time `json:"created_at"`
}
