package handlers

import (
	"context"
	"net/http"

	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
	matchsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/matches"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/dto"
	httperrors "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/errors"
)

type MatchLister interface {
	List(ctx context.Context, accountID int64, limit int) ([]matchsvc.Summary, error)
}

type MatchesHandler struct {
	service MatchLister
}

func NewMatchesHandler(service MatchLister) *MatchesHandler {
	return &MatchesHandler{service: service}
}

func (h *MatchesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "MATCH_SERVICE_UNAVAILABLE", "match service is unavailable")
		return
	}

	limit := parseIntOrDefault(r.URL.Query().Get("limit"), 0)

	summaries, err := h.service.List(r.Context(), identity.AccountID, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load matches")
		return
	}

	items := make([]dto.MatchItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.MatchItem{
			MatchID:              s.MatchID,
			CounterpartProfileID: s.CounterpartProfileID,
			CounterpartName:      s.CounterpartName,
			CounterpartGender:    s.CounterpartGender,
			CounterpartAge:       s.CounterpartAge,
			MatchedAt:            s.MatchedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.MatchesResponse{Items: items})
}
