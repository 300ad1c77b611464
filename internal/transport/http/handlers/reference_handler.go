package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/model"
	refsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/reference"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/dto"
	httperrors "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/errors"
)

type ReferenceProvider interface {
	Options(ctx context.Context) (refsvc.Options, error)
	Cities(ctx context.Context, countryID int64) ([]model.City, error)
}

type ReferenceHandler struct {
	service ReferenceProvider
}

func NewReferenceHandler(service ReferenceProvider) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "REFERENCE_SERVICE_UNAVAILABLE", "reference service is unavailable")
		return
	}

	options, err := h.service.Options(r.Context())
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load reference options")
		return
	}

	resp := dto.ReferenceOptionsResponse{
		Countries:      make([]dto.ReferenceOption, 0, len(options.Countries)),
		EncounterTypes: make([]dto.ReferenceOption, 0, len(options.EncounterTypes)),
	}
	for _, c := range options.Countries {
		resp.Countries = append(resp.Countries, dto.ReferenceOption{ID: c.ID, Name: c.Name})
	}
	for _, t := range options.EncounterTypes {
		resp.EncounterTypes = append(resp.EncounterTypes, dto.ReferenceOption{ID: t.ID, Name: t.Name})
	}

	httperrors.Write(w, http.StatusOK, resp)
}

func (h *ReferenceHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "REFERENCE_SERVICE_UNAVAILABLE", "reference service is unavailable")
		return
	}

	countryID := parseInt64OrZero(r.URL.Query().Get("country_id"))
	if countryID <= 0 {
		writeBadRequest(w, "VALIDATION_ERROR", "country_id is required")
		return
	}

	cities, err := h.service.Cities(r.Context(), countryID)
	if err != nil {
		if errors.Is(err, refsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "invalid country_id")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to load cities")
		return
	}

	items := make([]dto.ReferenceOption, 0, len(cities))
	for _, c := range cities {
		items = append(items, dto.ReferenceOption{ID: c.ID, Name: c.Name})
	}

	httperrors.Write(w, http.StatusOK, dto.CitiesResponse{Items: items})
}
