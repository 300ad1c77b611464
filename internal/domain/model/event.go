package model

import "time"

// MatchEvent is handed to the notifier exactly once per created match.
type MatchEvent struct {
	MatchID    int64     `json:"match_id"`
	ProfileAID int64     `json:"profile_a_id"`
	ProfileBID int64     `json:"profile_b_id"`
	AccountAID int64     `json:"account_a_id"`
	AccountBID int64     `json:"account_b_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// RealtimeEvent is the wire payload pushed on per-account channels.
// Consumers must treat repeated delivery of the same match id as a no-op.
type RealtimeEvent struct {
	ID     string     `json:"id"`
	Type   string     `json:"type"`
	Match  MatchEvent `json:"match"`
	SentAt time.Time  `json:"sent_at"`
}

const RealtimeEventTypeMatch = "match"
