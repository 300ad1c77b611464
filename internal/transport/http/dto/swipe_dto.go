package dto

type SwipeRequest struct {
	TargetProfileID int64  `json:"target_profile_id"`
	Kind            string `json:"kind"`
}

type SwipeResponse struct {
	OK        bool          `json:"ok"`
	Duplicate bool          `json:"duplicate"`
	Match     *MatchCreated `json:"match,omitempty"`
}

type MatchCreated struct {
	MatchID   int64 `json:"match_id"`
	ProfileID int64 `json:"profile_id"`
}
