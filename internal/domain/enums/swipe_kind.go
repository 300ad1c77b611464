package enums

import "strings"

type SwipeKind string

const (
	SwipeKindLike SwipeKind = "like"
	SwipeKindPass SwipeKind = "pass"
)

func ParseSwipeKind(raw string) (SwipeKind, bool) {
	switch SwipeKind(strings.ToLower(strings.TrimSpace(raw))) {
	case SwipeKindLike:
		return SwipeKindLike, true
	case SwipeKindPass:
		return SwipeKindPass, true
	default:
		return "", false
	}
}
