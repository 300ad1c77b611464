package rules

import (
	"strings"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
)

const (
	GenderAny = "any"

	FilterAgeMin = 18
	FilterAgeMax = 65
)

// Criteria is caller-supplied and ephemeral; it is never persisted.
// Nil pointer fields mean "unset" and always pass.
type Criteria struct {
	Gender          string
	CountryID       *int64
	CityID          *int64
	EncounterTypeID *int64
	AgeMin          int
	AgeMax          int
}

// NormalizeCriteria maps absent or malformed fields to their permissive
// defaults. The age range is clamped to [FilterAgeMin, FilterAgeMax].
func NormalizeCriteria(c Criteria) Criteria {
	gender := strings.ToLower(strings.TrimSpace(c.Gender))
	switch gender {
	case "", "all", GenderAny:
		c.Gender = GenderAny
	default:
		c.Gender = gender
	}

	if c.AgeMin < FilterAgeMin || c.AgeMin > FilterAgeMax {
		c.AgeMin = FilterAgeMin
	}
	if c.AgeMax < FilterAgeMin || c.AgeMax > FilterAgeMax {
		c.AgeMax = FilterAgeMax
	}
	if c.AgeMin > c.AgeMax {
		c.AgeMin, c.AgeMax = FilterAgeMin, FilterAgeMax
	}

	// A city filter is only meaningful inside a chosen country.
	if c.CountryID == nil {
		c.CityID = nil
	}

	return c
}

// MatchesFilter reports whether the profile passes every criteria rule.
// Pure and total: no side effects, no error conditions.
func MatchesFilter(p model.DatingProfile, c Criteria) bool {
	if c.Gender != GenderAny && !strings.EqualFold(p.Gender, c.Gender) {
		return false
	}
	if c.CountryID != nil {
		if p.CountryID == nil || *p.CountryID != *c.CountryID {
			return false
		}
		if c.CityID != nil {
			if p.CityID == nil || *p.CityID != *c.CityID {
				return false
			}
		}
	}
	if c.EncounterTypeID != nil {
		if p.EncounterTypeID == nil || *p.EncounterTypeID != *c.EncounterTypeID {
			return false
		}
	}
	if p.Age < c.AgeMin || p.Age > c.AgeMax {
		return false
	}
	return true
}
