package enums

type Feature string

const (
	FeatureRencontre Feature = "rencontre"
)

type FeatureAction string

const (
	ActionView   FeatureAction = "view"
	ActionSwipe  FeatureAction = "swipe"
	ActionCreate FeatureAction = "create"
)

// GrantKey is the flat key stored in feature_grants and used as the cache key.
func GrantKey(feature Feature, action FeatureAction) string {
	return string(feature) + ":" + string(action)
}
