package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soundwave-labs/soundwave/internal/config"
	"github.com/soundwave-labs/soundwave/internal/database"
	"github.com/soundwave-labs/soundwave/internal/gateway"
	"github.com/soundwave-labs/soundwave/internal/handler"
	"github.com/soundwave-labs/soundwave/internal/middleware"
	"github.com/soundwave-labs/soundwave/internal/repository"
	"github.com/soundwave-labs/soundwave/internal/router"
	"github.com/soundwave-labs/soundwave/internal/service"
	"github.com/soundwave-labs/soundwave/pkg/migration"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	if cfg.Migration.Auto {
		if err := migration.AutoMigrate(cfg.Database.DSN(), cfg.Migration.Path, logger); err != nil {
			logger.Error("auto-migration failed", "error", err)
			os.Exit(1)
		}
	}

	pg := database.NewPostgres(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pg.Connect(ctx); err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pg.Disconnect()
	logger.Info("database connected", "host", cfg.Database.Host, "db", cfg.Database.DBName)

	// Redis is optional: without it the rate limiter degrades to an
	// in-process token bucket.
	var redisClient *redis.Client
	if client, err := database.NewRedis(cfg.Redis); err != nil {
		logger.Warn("redis unavailable, using in-process rate limiting", "error", err)
	} else {
		redisClient = client
		defer redisClient.Close()
		logger.Info("redis connected", "host", cfg.Redis.Host)
	}

	db := pg.DB()
	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	songRepo := repository.NewSongRepository(db)

	userService := service.NewUserService(userRepo)
	artistService := service.NewArtistService(artistRepo)
	albumService := service.NewAlbumService(albumRepo, artistRepo)
	songService := service.NewSongService(songRepo, artistRepo, albumRepo)

	userHandler := handler.NewUserHandler(userService)
	artistHandler := handler.NewArtistHandler(artistService, albumService)
	albumHandler := handler.NewAlbumHandler(albumService, songService)
	songHandler := handler.NewSongHandler(songService)

	mux := router.NewRouter(userHandler, artistHandler, albumHandler, songHandler).Setup()

	limiter := middleware.NewRateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, cfg.RateLimit.Ban, logger)

	var root http.Handler = mux
	root = middleware.PrometheusMiddleware(root)
	root = limiter.Middleware(root)
	root = middleware.CORSMiddleware(root, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Host, cfg.Server.Port, root, logger, gateway.Options{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	if err := server.Start(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
