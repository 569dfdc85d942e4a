package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/webshop/storefront-api/docs"
	"github.com/webshop/storefront-api/internal/api"
	"github.com/webshop/storefront-api/internal/core/ports"
	"github.com/webshop/storefront-api/internal/core/service"
	"github.com/webshop/storefront-api/internal/infrastructure/catalog"
	mongodb "github.com/webshop/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/webshop/storefront-api/internal/infrastructure/db/redis"
	storehttp "github.com/webshop/storefront-api/internal/infrastructure/http"
	"github.com/webshop/storefront-api/internal/pkg/config"
	"github.com/webshop/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet; use a bare one for this single line.
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	var (
		rdb       *goredis.Client
		userCache ports.UserCache
	)
	rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, user cache disabled")
	} else {
		defer rdb.Close()
		userCache = redisdb.NewUserCache(rdb, cfg.Redis.UserCacheTTL)
	}

	products, err := catalog.Load(cfg.ProductsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load product catalog")
	}
	log.Info().Int("products", products.Len()).Msg("product catalog loaded")

	// --- Services ---
	userService := service.NewUserService(userRepo, userCache, log)
	authService := service.NewAuthService(userRepo, log)
	productService := service.NewProductService(products)

	if cfg.Admin.Enabled() {
		created, err := userService.SeedAdmin(ctx, ports.RegisterInput{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account")
		}
		if !created {
			log.Info().Str("email", cfg.Admin.Email).Msg("admin account already present")
		}
	}

	// --- HTTP ---
	router := api.NewRouter(api.Dependencies{
		Users:      userService,
		Auth:       authService,
		Products:   productService,
		Static:     storehttp.NewStaticResponder(cfg.PublicDir),
		Log:        log,
		Mongo:      db,
		Redis:      rdb,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server closed")
}
