package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/userhub/modules/auth"
	"github.com/dmitrymomot/userhub/modules/users"
	"github.com/dmitrymomot/userhub/pkg/config"
	"github.com/dmitrymomot/userhub/pkg/httpserver"
	"github.com/dmitrymomot/userhub/pkg/logger"
	"github.com/dmitrymomot/userhub/pkg/pg"
	"github.com/dmitrymomot/userhub/pkg/redis"
)

type appConfig struct {
	Logger logger.Config
	PG     pg.Config
	Redis  redis.Config
	HTTP   httpserver.Config
	Users  users.Config
	Auth   auth.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Logger, "userhub")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	tokens, err := auth.NewTokenService(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL)
	if err != nil {
		return err
	}

	userSvc := users.NewService(cfg.Users, users.NewPostgresStorage(pool), log)
	limiter := auth.NewRedisLimiter(redisClient, cfg.Auth.LoginAttempts, cfg.Auth.LoginWindow)
	authSvc := auth.NewService(userSvc, tokens, limiter, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/auth", authSvc.Router())
	r.Mount("/users", users.Router(userSvc, auth.Middleware(tokens)))

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}
