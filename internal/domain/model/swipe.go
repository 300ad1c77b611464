package model

import (
	"time"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
)

// SwipeAction is append-only: at most one row per ordered (liker, target) pair.
type SwipeAction struct {
	ID              int64           `json:"id"`
	LikerProfileID  int64           `json:"liker_profile_id"`
	TargetProfileID int64           `json:"target_profile_id"`
	Kind            enums.SwipeKind `json:"kind"`
	CreatedAt       time.Time       `json:"created_at"`
}
