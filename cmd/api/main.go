package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nutriapp/nutriapp-backend/api/controllers"
	"github.com/nutriapp/nutriapp-backend/api/routes"
	"github.com/nutriapp/nutriapp-backend/internal/auth"
	"github.com/nutriapp/nutriapp-backend/internal/community"
	"github.com/nutriapp/nutriapp-backend/internal/foods"
	"github.com/nutriapp/nutriapp-backend/internal/plans"
	"github.com/nutriapp/nutriapp-backend/internal/users"
	"github.com/nutriapp/nutriapp-backend/pkg/config"
	"github.com/nutriapp/nutriapp-backend/pkg/db"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
	"github.com/nutriapp/nutriapp-backend/pkg/metrics"
	"github.com/nutriapp/nutriapp-backend/pkg/migrate"
	"github.com/nutriapp/nutriapp-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	checks := controllers.ReadinessChecks{DB: dbClient}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		checks.Redis = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	usersRepo := users.NewRepository(dbClient.DB())
	foodsRepo := foods.NewRepository(dbClient.DB())
	plansRepo := plans.NewRepository(dbClient.DB())
	communityRepo := community.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  usersRepo,
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		UserRepo:       usersRepo,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	foodsService, err := foods.NewService(foodsRepo, foods.NewSelector(foodsRepo, usersRepo, logg))
	if err != nil {
		logg.Error(context.Background(), "failed to create foods service", err)
		os.Exit(1)
	}

	plansService, err := plans.NewService(plansRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create plans service", err)
		os.Exit(1)
	}

	communityService, err := community.NewService(communityRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create community service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			checks,
			registry,
			httpMetrics,
			redisClient,
			authService,
			registerService,
			usersService,
			foodsService,
			plansService,
			communityService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
