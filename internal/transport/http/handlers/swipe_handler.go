package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/domain/enums"
	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
	swipesvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/swipes"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/dto"
	httperrors "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/errors"
)

type SwipeRecorder interface {
	Record(ctx context.Context, accountID, targetProfileID int64, kind string) (swipesvc.Outcome, error)
}

type AccessGate interface {
	CanAct(ctx context.Context, accountID int64, feature enums.Feature, action enums.FeatureAction) (bool, error)
}

type SwipeHandler struct {
	service SwipeRecorder
	access  AccessGate
}

func NewSwipeHandler(service SwipeRecorder, access AccessGate) *SwipeHandler {
	return &SwipeHandler{service: service, access: access}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	if h.access != nil {
		allowed, err := h.access.CanAct(r.Context(), identity.AccountID, enums.FeatureRencontre, enums.ActionSwipe)
		if err != nil {
			writeInternal(w, "INTERNAL_ERROR", "failed to resolve feature access")
			return
		}
		if !allowed {
			writeForbidden(w, "FEATURE_FORBIDDEN", "dating feature is not available for this account")
			return
		}
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if req.TargetProfileID <= 0 || strings.TrimSpace(req.Kind) == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "target_profile_id and kind are required")
		return
	}

	outcome, err := h.service.Record(r.Context(), identity.AccountID, req.TargetProfileID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, swipesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid swipe request")
		case errors.Is(err, swipesvc.ErrUnsupportedKind):
			writeBadRequest(w, "VALIDATION_ERROR", "unsupported swipe kind")
		case errors.Is(err, swipesvc.ErrInvalidSwipeTarget):
			writeBadRequest(w, "INVALID_SWIPE_TARGET", "cannot swipe this profile")
		case errors.Is(err, pgrepo.ErrProfileNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "profile not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to process swipe")
		}
		return
	}

	resp := dto.SwipeResponse{
		OK:        true,
		Duplicate: outcome.Duplicate,
	}
	if outcome.Match != nil {
		counterpart := outcome.Match.ProfileAID
		if counterpart == outcome.Swipe.LikerProfileID {
			counterpart = outcome.Match.ProfileBID
		}
		resp.Match = &dto.MatchCreated{
			MatchID:   outcome.Match.ID,
			ProfileID: counterpart,
		}
	}

	httperrors.Write(w, http.StatusOK, resp)
}
