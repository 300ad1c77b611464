package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Onekamer/OneKamer-Front-Horizon/internal/config"
	pgrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/postgres"
	redisrepo "github.com/Onekamer/OneKamer-Front-Horizon/internal/repo/redis"
	accesssvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/access"
	authsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/auth"
	discoverysvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/discovery"
	matchessvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/matches"
	notifysvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/notify"
	refsvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/reference"
	swipesvc "github.com/Onekamer/OneKamer-Front-Horizon/internal/services/swipes"
	wstransport "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/ws"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}

	if pool != nil && cfg.Postgres.Migrate {
		if err := pgrepo.Migrate(cfg.Postgres.DSN); err != nil {
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
	}

	var redisClient *goredis.Client
	if c, err := redisrepo.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Warn("redis init failed, continuing in degraded mode", zap.Error(err))
	} else {
		redisClient = c
	}

	profileRepo := pgrepo.NewProfileRepo(pool)
	swipeRepo := pgrepo.NewSwipeRepo(pool)
	matchRepo := pgrepo.NewMatchRepo(pool)
	referenceRepo := pgrepo.NewReferenceRepo(pool)
	featureRepo := pgrepo.NewFeatureRepo(pool)
	eventRepo := redisrepo.NewEventRepo(redisClient)
	featureCacheRepo := redisrepo.NewFeatureCacheRepo(redisClient)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	accessService := accesssvc.NewService(accesssvc.Dependencies{
		Grants: featureRepo,
		Cache:  featureCacheRepo,
		Logger: log,
	}, accesssvc.Config{
		CacheTTL: cfg.Rencontre.FeatureCacheTTL,
	})
	notifyService := notifysvc.NewService(notifysvc.Dependencies{
		Publisher: eventRepo,
		Logger:    log,
	}, notifysvc.Config{
		PublishTimeout: cfg.Rencontre.NotifyTimeout,
	})
	swipeService := swipesvc.NewService(swipesvc.Dependencies{
		Pool:         pool,
		ProfileStore: profileRepo,
		SwipeStore:   swipeRepo,
		MatchStore:   matchRepo,
		Events:       notifyService,
		Logger:       log,
	})
	discoveryService := discoverysvc.NewService(discoverysvc.Dependencies{
		ProfileStore: profileRepo,
		SwipeHistory: swipeRepo,
		Logger:       log,
	}, discoverysvc.Config{
		PageSize:    cfg.Rencontre.PageSize,
		MaxPageSize: cfg.Rencontre.MaxPageSize,
	})
	matchService := matchessvc.NewService(matchessvc.Dependencies{
		ProfileStore: profileRepo,
		MatchStore:   matchRepo,
	}, matchessvc.Config{
		PageSize: cfg.Rencontre.MatchPageSize,
	})
	referenceService := refsvc.NewService(referenceRepo)
	wsHandler := wstransport.NewHandler(eventRepo, log)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		JWTManager:       jwtManager,
		AccessService:    accessService,
		DiscoveryService: discoveryService,
		SwipeService:     swipeService,
		MatchService:     matchService,
		ReferenceService: referenceService,
		WSHandler:        wsHandler,
		Logger:           log,
		Config:           cfg,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
