package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/rules"
	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/dto"
	httperrors "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/errors"
)

type CandidateProvider interface {
	Next(ctx context.Context, accountID int64, criteria rules.Criteria, limit int) ([]model.DatingProfile, error)
}

type CandidatesHandler struct {
	service CandidateProvider
	access  AccessGate
}

func NewCandidatesHandler(service CandidateProvider, access AccessGate) *CandidatesHandler {
	return &CandidatesHandler{service: service, access: access}
}

func (h *CandidatesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	if h.access != nil {
		allowed, err := h.access.CanAct(r.Context(), identity.AccountID, enums.FeatureRencontre, enums.ActionView)
		if err != nil {
			writeInternal(w, "INTERNAL_ERROR", "failed to resolve feature access")
			return
		}
		if !allowed {
			writeForbidden(w, "FEATURE_FORBIDDEN", "dating feature is not available for this account")
			return
		}
	}

	criteria := criteriaFromQuery(r)
	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 0)

	candidates, err := h.service.Next(r.Context(), identity.AccountID, criteria, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load candidates")
		return
	}

	items := make([]dto.CandidateItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, dto.CandidateItem{
			ProfileID:       c.ID,
			DisplayName:     c.DisplayName,
			Gender:          c.Gender,
			Age:             c.Age,
			CountryID:       c.CountryID,
			CityID:          c.CityID,
			EncounterTypeID: c.EncounterTypeID,
			Bio:             c.Bio,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.CandidatesResponse{Items: items})
}

func criteriaFromQuery(r *http.Request) rules.Criteria {
	query := r.URL.Query()

	criteria := rules.Criteria{
		Gender: strings.TrimSpace(query.Get("gender")),
		AgeMin: parseIntOrDefault(query.Get("age_min"), rules.FilterAgeMin),
		AgeMax: parseIntOrDefault(query.Get("age_max"), rules.FilterAgeMax),
	}

	if id := parseInt64OrZero(query.Get("country_id")); id > 0 {
		criteria.CountryID = &id
	}
	if id := parseInt64OrZero(query.Get("city_id")); id > 0 {
		criteria.CityID = &id
	}
	if id := parseInt64OrZero(query.Get("encounter_type_id")); id > 0 {
		criteria.EncounterTypeID = &id
	}

	return criteria
}
