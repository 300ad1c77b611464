package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/config"
	accesssvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/access"
	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
	discoverysvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/discovery"
	matchessvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/matches"
	refsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/reference"
	swipesvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/swipes"
	"github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/handlers"
	wstransport "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/ws"
)

type Dependencies struct {
	JWTManager       *authsvc.JWTManager
	AccessService    *accesssvc.Service
	DiscoveryService *discoverysvc.Service
	SwipeService     *swipesvc.Service
	MatchService     *matchessvc.Service
	ReferenceService *refsvc.Service
	WSHandler        *wstransport.Handler
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	candidatesHandler := handlers.NewCandidatesHandler(deps.DiscoveryService, deps.AccessService)
	swipeHandler := handlers.NewSwipeHandler(deps.SwipeService, deps.AccessService)
	matchesHandler := handlers.NewMatchesHandler(deps.MatchService)
	referenceHandler := handlers.NewReferenceHandler(deps.ReferenceService)
	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Handle)

	r.Route("/rencontre", func(r chi.Router) {
		r.Use(authMW)
		r.Get("/candidates", candidatesHandler.Handle)
		r.Post("/swipe", swipeHandler.Handle)
		r.Get("/matches", matchesHandler.Handle)
		r.Get("/reference/options", referenceHandler.HandleOptions)
		r.Get("/reference/cities", referenceHandler.HandleCities)
	})

	if deps.WSHandler != nil {
		r.With(authMW).Get("/ws/rencontre", deps.WSHandler.Handle)
	}
}
